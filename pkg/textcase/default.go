package textcase

import (
	"sync"
)

var (
	defaultConverter *Converter
	defaultOnce      sync.Once
	defaultMu        sync.RWMutex
)

// Default returns the process-wide converter used by the package-level
// functions, creating it with DefaultConfig on first use.
func Default() *Converter {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultConverter == nil {
			defaultConverter = New(DefaultConfig())
		}
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultConverter
}

// SetDefault replaces the process-wide converter. Nil is ignored.
func SetDefault(c *Converter) {
	if c == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConverter = c
}

// Normalize folds diacritics using the default converter
func Normalize(text string) string { return Default().Normalize(text) }

// Title renders title case using the default converter
func Title(text string) string { return Default().Title(text) }

// Slug renders a slug using the default converter
func Slug(text string) string { return Default().Slug(text) }

// SnakeCase renders snake_case using the default converter
func SnakeCase(text string) string { return Default().SnakeCase(text) }

// CamelCaps renders CamelCaps using the default converter
func CamelCaps(text string) string { return Default().CamelCaps(text) }

// CamelCase renders camelCase using the default converter
func CamelCase(text string) string { return Default().CamelCase(text) }

// Namespaced renders a backslash path using the default converter
func Namespaced(text string) string { return Default().Namespaced(text) }

// Pluralize uses the default converter
func Pluralize(word string) string { return Default().Pluralize(word) }

// Singularize uses the default converter
func Singularize(word string) string { return Default().Singularize(word) }

// Random uses the default converter
func Random(length int) string { return Default().Random(length) }

// Convert uses the default converter
func Convert(format Format, text string) string { return Default().Convert(format, text) }

// ConvertNullable uses the default converter
func ConvertNullable(format Format, text *string) *string {
	return Default().ConvertNullable(format, text)
}
