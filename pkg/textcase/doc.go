// Package textcase converts free text into title case, slugs, snake_case,
// CamelCaps, camelCase and backslash separated namespace paths.
//
// The pure pipeline lives in foundation/utils/stringx. This package adds
// memoization: a Converter owns one cache namespace per operation, keyed on
// the raw input, and the renderers that fold diacritics go through the cached
// Normalize as well.
//
//	c := textcase.New(textcase.DefaultConfig())
//	c.Slug("tést wîth spécîål chåråctérs") // "test-with-special-characters"
//	c.CamelCase("Another Test")             // "anotherTest"
//
// The package-level functions use a shared default converter:
//
//	textcase.Namespaced("testingCamelCase") // `testing\camel\case`
//
// None of the conversions fail. Empty input yields empty output, and
// ConvertNullable maps a nil input to nil without touching any cache.
//
// Caches are unbounded and never expire; create a fresh Converter, or call
// ClearCache, to release memory. A Converter is safe for concurrent use.
package textcase
