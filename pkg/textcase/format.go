package textcase

import (
	"strings"

	tcerror "github.com/msto63/textcase/foundation/core/error"
)

// Format identifies one output representation
type Format int

const (
	// FormatTitle capitalizes every word: "This Is A Test"
	FormatTitle Format = iota
	// FormatSlug joins lowercase ASCII words with hyphens: "this-is-a-test"
	FormatSlug
	// FormatSnake joins lowercase ASCII words with underscores: "this_is_a_test"
	FormatSnake
	// FormatCamelCaps capitalizes every word with no separator: "ThisIsATest"
	FormatCamelCaps
	// FormatCamelCase is FormatCamelCaps with a lowercase head: "thisIsATest"
	FormatCamelCase
	// FormatNamespaced joins lowercase ASCII words with backslashes: `this\is\a\test`
	FormatNamespaced
)

var formatNames = [...]string{
	FormatTitle:      "title",
	FormatSlug:       "slug",
	FormatSnake:      "snake",
	FormatCamelCaps:  "camelcaps",
	FormatCamelCase:  "camelcase",
	FormatNamespaced: "namespaced",
}

var formatAliases = map[string]Format{
	"title":      FormatTitle,
	"slug":       FormatSlug,
	"kebab":      FormatSlug,
	"snake":      FormatSnake,
	"snake_case": FormatSnake,
	"camelcaps":  FormatCamelCaps,
	"pascal":     FormatCamelCaps,
	"camel":      FormatCamelCase,
	"camelcase":  FormatCamelCase,
	"namespace":  FormatNamespaced,
	"namespaced": FormatNamespaced,
}

// String returns the canonical name of the format
func (f Format) String() string {
	if f.IsValid() {
		return formatNames[f]
	}
	return "unknown"
}

// IsValid reports whether f is one of the defined formats
func (f Format) IsValid() bool {
	return f >= FormatTitle && f <= FormatNamespaced
}

// MarshalText implements encoding.TextMarshaler
func (f Format) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, unknownFormat(f.String())
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormat resolves a format name or alias, ignoring case and surrounding
// whitespace. Unknown names return an UNKNOWN_FORMAT error.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return FormatTitle, unknownFormat(name)
}

// Formats returns every format in declaration order
func Formats() []Format {
	out := make([]Format, 0, len(formatNames))
	for f := range formatNames {
		out = append(out, Format(f))
	}
	return out
}

// FormatNames returns the canonical names in declaration order
func FormatNames() []string {
	out := make([]string, len(formatNames))
	copy(out, formatNames[:])
	return out
}

func unknownFormat(name string) error {
	return tcerror.Newf("unknown format %q (known: %s)", name, strings.Join(FormatNames(), ", ")).
		WithCode(tcerror.CodeUnknownFormat).
		WithDetail("format", name).
		WithOperation("ParseFormat")
}
