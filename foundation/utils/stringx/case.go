// File: case.go
// Title: String Format Renderers
// Description: Pure, uncached renderers for title case, slug, snake_case,
//              CamelCaps, camelCase and backslash separated namespace paths.
//              All of them share the tokenizer and the sanitize step.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-19 v0.2.0: Rebuilt on Normalize/Words, added slug and namespace forms

package stringx

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separators used by the sanitizing renderers.
const (
	SlugSeparator      = '-'
	SnakeSeparator     = '_'
	NamespaceSeparator = '\\'
)

// Title capitalizes the first letter of every word and joins the words with
// single spaces. Diacritics are kept and the rest of each word is untouched.
//
// Example: "this_is_a_test" -> "This Is A Test"
func Title(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	// A Caser keeps state between calls and must not be shared.
	caser := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		if first == utf8.RuneError {
			continue
		}
		words[i] = caser.String(string(first)) + w[size:]
		caser.Reset()
	}
	return strings.Join(words, " ")
}

// Slug renders s as a lowercase, hyphen separated ASCII slug.
//
// Example: "tést wîth spécîål chåråctérs" -> "test-with-special-characters"
func Slug(s string) string {
	return Sanitize(SplitBoundaries(Normalize(s)), SlugSeparator)
}

// SnakeCase renders s as lowercase ASCII words joined by underscores.
//
// Example: "TestingCamelCaps" -> "testing_camel_caps"
func SnakeCase(s string) string {
	return Sanitize(SplitBoundaries(Normalize(s)), SnakeSeparator)
}

// Namespaced renders s as lowercase ASCII words joined by backslashes.
// Backslashes already present are kept as separators.
//
// Example: "testingCamelCase" -> `testing\camel\case`
func Namespaced(s string) string {
	return Sanitize(SplitBoundaries(Normalize(s)), NamespaceSeparator)
}

// CamelCaps renders s as capitalized ASCII words with no separator.
//
// Example: "this-is-a-test" -> "ThisIsATest"
func CamelCaps(s string) string {
	return camelCapsFromSlug(Slug(s))
}

// CamelCase is CamelCaps with the first character lowercased.
//
// Example: "testing, with punctuation." -> "testingWithPunctuation"
func CamelCase(s string) string {
	return LowerFirst(CamelCaps(s))
}

// CamelCapsFromNormalized is CamelCaps for input that has already been run
// through Normalize. Callers that cache Normalize use it to skip a pass.
func CamelCapsFromNormalized(normalized string) string {
	return camelCapsFromSlug(Sanitize(SplitBoundaries(normalized), SlugSeparator))
}

// SanitizeNormalized applies the tokenizer and Sanitize to input that has
// already been run through Normalize.
func SanitizeNormalized(normalized string, sep rune) string {
	return Sanitize(SplitBoundaries(normalized), sep)
}

func camelCapsFromSlug(slug string) string {
	if slug == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(slug))
	upperNext := true
	for i := 0; i < len(slug); i++ {
		c := slug[i]
		if c == SlugSeparator {
			upperNext = true
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upperNext = false
		b.WriteByte(c)
	}
	return b.String()
}

// Sanitize maps s onto the alphabet [a-z0-9] plus sep. Every rune outside
// [A-Za-z0-9] becomes sep, runs of sep collapse to one, leading and trailing
// separators are dropped and letters are lowercased.
//
// The result never starts or ends with sep and never contains it twice in a row.
func Sanitize(s string, sep rune) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if !isASCIIAlnum(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteRune(sep)
		}
		pending = false
		if isASCIIUpper(r) {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LowerFirst lowercases the first character of s if it is an ASCII capital.
func LowerFirst(s string) string {
	if s == "" || !isASCIIUpper(rune(s[0])) {
		return s
	}
	return string(s[0]+('a'-'A')) + s[1:]
}
