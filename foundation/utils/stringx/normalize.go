// File: normalize.go
// Title: Diacritic Normalizer
// Description: Folds Latin diacritics and ligatures to ASCII using the
//              diacritic table. Runes outside the table pass through.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"sync"
)

var (
	foldReplacer     *strings.Replacer
	foldReplacerOnce sync.Once
)

func replacer() *strings.Replacer {
	foldReplacerOnce.Do(func() {
		pairs := make([]string, 0, len(diacritics)*2)
		for _, f := range diacritics {
			pairs = append(pairs, string(f.Source), f.Replacement)
		}
		foldReplacer = strings.NewReplacer(pairs...)
	})
	return foldReplacer
}

// Normalize replaces every rune found in the diacritic table with its ASCII
// replacement. It never fails; invalid UTF-8 is copied through unchanged.
//
// Example: "åñ åwéßømé téßt" -> "an awesome test"
func Normalize(s string) string {
	if s == "" {
		return s
	}
	return replacer().Replace(s)
}
