// File: random.go
// Title: Random String Generation
// Description: Generates random strings over a fixed alphanumeric alphabet.
//              Intended for identifiers and test data, not for secrets.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with secure random generation
// - 2026-10-19 v0.2.0: Switched to math/rand/v2, added default length

package stringx

import (
	"math/rand/v2"
)

const (
	// Character sets for random string generation
	Digits           = "0123456789"
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Alphanumeric     = Digits + LettersLowercase + LettersUppercase

	// DefaultRandomLength is used when a non-positive length is requested
	DefaultRandomLength = 6
)

// Random returns a string of length characters drawn uniformly, with
// replacement, from Alphanumeric. A length of zero or less yields
// DefaultRandomLength characters.
func Random(length int) string {
	return RandomFrom(length, Alphanumeric)
}

// RandomFrom is Random over a custom single-byte charset. An empty charset
// falls back to Alphanumeric.
func RandomFrom(length int, charset string) string {
	if length <= 0 {
		length = DefaultRandomLength
	}
	if charset == "" {
		charset = Alphanumeric
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.IntN(len(charset))]
	}
	return string(result)
}
