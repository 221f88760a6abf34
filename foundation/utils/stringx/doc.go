// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx holds the uncached text conversion pipeline:
//              diacritic folding, word boundary detection and the format
//              renderers built on top of them.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Rewritten around the conversion pipeline

// Package stringx provides the pure string conversion pipeline of textcase.
//
// Package: stringx
// Title: Text Conversion Pipeline for the textcase Foundation
// Description: Every function in this package is deterministic (except the
//              random generators), allocation-light and free of shared state.
//              Memoization lives one level up in pkg/textcase.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// # Overview
//
// A conversion runs in three stages:
//
//	raw input -> Normalize -> Words -> renderer
//
// Normalize folds Latin letters with diacritics to ASCII using a fixed table
// (see Diacritics). Words splits text on whitespace, hyphens, underscores and
// in front of every ASCII capital. The renderers then shape the words:
//
//	stringx.Title("this_is_a_test")            // "This Is A Test"
//	stringx.Slug("Another Test")               // "another-test"
//	stringx.SnakeCase("TestingCamelCaps")      // "testing_camel_caps"
//	stringx.CamelCaps("this-is-a-test")        // "ThisIsATest"
//	stringx.CamelCase("Another Test")          // "anotherTest"
//	stringx.Namespaced("testingCamelCase")     // `testing\camel\case`
//
// Title is the only renderer that skips Normalize; accented letters survive.
// Slug, SnakeCase and Namespaced all end in Sanitize, which restricts the
// output to [a-z0-9] plus one separator that never repeats and never leads or
// trails. Applying any of them to its own output is a no-op.
//
// # Acronyms
//
// Capitals always start a new word, so "HTTPServer" becomes "h-t-t-p-server"
// as a slug. This keeps the boundary rule a single character test.
//
// # Random strings
//
// Random draws from [0-9a-zA-Z] with math/rand/v2. It is not suitable for
// secrets.
//
// # Thread Safety
//
// All exported functions are safe for concurrent use.
package stringx
