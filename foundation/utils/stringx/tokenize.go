// File: tokenize.go
// Title: Word Boundary Tokenizer
// Description: Splits text into words on spaces, hyphens, underscores and
//              before ASCII capitals. Uses plain character scans.
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
	"unicode"
)

// Words splits s into its words. Hyphens and underscores count as spaces,
// every ASCII capital that does not follow whitespace starts a new word, and
// runs of whitespace collapse. The result never contains empty strings.
//
// Acronyms split per letter: "HTTPServer" -> [H T T P Server].
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
		case isASCIIUpper(r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

// SplitBoundaries returns s with its words joined by single spaces, the
// canonical form that the renderers sanitize further.
func SplitBoundaries(s string) string {
	return strings.Join(Words(s), " ")
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIAlnum(r rune) bool {
	return isASCIIUpper(r) || isASCIILower(r) || (r >= '0' && r <= '9')
}
