package textcase

import (
	tclog "github.com/msto63/textcase/foundation/core/log"
	"github.com/msto63/textcase/foundation/utils/stringx"
	"github.com/msto63/textcase/pkg/core/cache"
)

// Cache namespace names, one per cached operation
const (
	NamespaceNormalize   = "normalize"
	NamespaceTitle       = "title"
	NamespaceSlug        = "slug"
	NamespaceSnake       = "snake"
	NamespaceCamelCaps   = "camelcaps"
	NamespaceCamelCase   = "camelcase"
	NamespaceNamespaced  = "namespaced"
	NamespacePluralize   = "pluralize"
	NamespaceSingularize = "singularize"
)

// Config holds converter configuration
type Config struct {
	// CacheDisabled makes every call recompute its result
	CacheDisabled bool

	// RandomLength is used by Random for non-positive lengths
	RandomLength int

	// Inflector backs Pluralize and Singularize. Nil selects the rule
	// based inflector without overrides.
	Inflector Inflector

	// Logger receives cache misses at trace level. Nil discards them.
	Logger *tclog.Logger
}

// DefaultConfig returns default converter configuration
func DefaultConfig() Config {
	return Config{
		RandomLength: stringx.DefaultRandomLength,
	}
}

// Converter renders text into the supported formats and memoizes every
// result by input. It is safe for concurrent use.
type Converter struct {
	store        *cache.Store
	normalize    *cache.Cache
	title        *cache.Cache
	slug         *cache.Cache
	snake        *cache.Cache
	camelCaps    *cache.Cache
	camelCase    *cache.Cache
	namespaced   *cache.Cache
	pluralize    *cache.Cache
	singularize  *cache.Cache
	inflector    Inflector
	randomLength int
	logger       *tclog.Logger
}

// New creates a converter with its own, empty caches
func New(cfg Config) *Converter {
	if cfg.RandomLength <= 0 {
		cfg.RandomLength = stringx.DefaultRandomLength
	}
	if cfg.Inflector == nil {
		cfg.Inflector = NewInflector(InflectionConfig{})
	}
	if cfg.Logger == nil {
		cfg.Logger = tclog.Discard()
	}

	store := cache.NewStore(cache.StoreConfig{Disabled: cfg.CacheDisabled})
	return &Converter{
		store:        store,
		normalize:    store.Namespace(NamespaceNormalize),
		title:        store.Namespace(NamespaceTitle),
		slug:         store.Namespace(NamespaceSlug),
		snake:        store.Namespace(NamespaceSnake),
		camelCaps:    store.Namespace(NamespaceCamelCaps),
		camelCase:    store.Namespace(NamespaceCamelCase),
		namespaced:   store.Namespace(NamespaceNamespaced),
		pluralize:    store.Namespace(NamespacePluralize),
		singularize:  store.Namespace(NamespaceSingularize),
		inflector:    cfg.Inflector,
		randomLength: cfg.RandomLength,
		logger:       cfg.Logger.WithName("textcase"),
	}
}

// Normalize folds Latin diacritics and ligatures to ASCII.
// "åñ åwéßømé téßt ßtrîñg" -> "an awesome test string"
func (c *Converter) Normalize(text string) string {
	return c.memo(NamespaceNormalize, c.normalize, text, stringx.Normalize)
}

// Title capitalizes every word and keeps diacritics.
// "this_is_a_test" -> "This Is A Test"
func (c *Converter) Title(text string) string {
	return c.memo(NamespaceTitle, c.title, text, stringx.Title)
}

// Slug renders lowercase ASCII words joined by hyphens.
// "tést wîth spécîål chåråctérs" -> "test-with-special-characters"
func (c *Converter) Slug(text string) string {
	return c.memo(NamespaceSlug, c.slug, text, func(s string) string {
		return stringx.SanitizeNormalized(c.Normalize(s), stringx.SlugSeparator)
	})
}

// SnakeCase renders lowercase ASCII words joined by underscores.
// "TestingCamelCaps" -> "testing_camel_caps"
func (c *Converter) SnakeCase(text string) string {
	return c.memo(NamespaceSnake, c.snake, text, func(s string) string {
		return stringx.SanitizeNormalized(c.Normalize(s), stringx.SnakeSeparator)
	})
}

// CamelCaps renders capitalized ASCII words without separators.
// "this-is-a-test" -> "ThisIsATest"
func (c *Converter) CamelCaps(text string) string {
	return c.memo(NamespaceCamelCaps, c.camelCaps, text, func(s string) string {
		return stringx.CamelCapsFromNormalized(c.Normalize(s))
	})
}

// CamelCase is CamelCaps with the first character lowercased.
// "testing, with punctuation." -> "testingWithPunctuation"
func (c *Converter) CamelCase(text string) string {
	return c.memo(NamespaceCamelCase, c.camelCase, text, func(s string) string {
		return stringx.LowerFirst(c.CamelCaps(s))
	})
}

// Namespaced renders lowercase ASCII words joined by backslashes.
// "testingCamelCase" -> `testing\camel\case`
func (c *Converter) Namespaced(text string) string {
	return c.memo(NamespaceNamespaced, c.namespaced, text, func(s string) string {
		return stringx.SanitizeNormalized(c.Normalize(s), stringx.NamespaceSeparator)
	})
}

// Pluralize returns the plural of word using the configured inflector
func (c *Converter) Pluralize(word string) string {
	return c.memo(NamespacePluralize, c.pluralize, word, c.inflector.Pluralize)
}

// Singularize returns the singular of word using the configured inflector
func (c *Converter) Singularize(word string) string {
	return c.memo(NamespaceSingularize, c.singularize, word, c.inflector.Singularize)
}

// Random returns length characters from [0-9a-zA-Z]. Non-positive lengths
// use the configured default. Results are never cached.
func (c *Converter) Random(length int) string {
	if length <= 0 {
		length = c.randomLength
	}
	return stringx.Random(length)
}

// Convert renders text in format. An invalid format returns text unchanged.
func (c *Converter) Convert(format Format, text string) string {
	switch format {
	case FormatTitle:
		return c.Title(text)
	case FormatSlug:
		return c.Slug(text)
	case FormatSnake:
		return c.SnakeCase(text)
	case FormatCamelCaps:
		return c.CamelCaps(text)
	case FormatCamelCase:
		return c.CamelCase(text)
	case FormatNamespaced:
		return c.Namespaced(text)
	default:
		return text
	}
}

// ConvertNullable is Convert for optional input: nil in, nil out.
func (c *Converter) ConvertNullable(format Format, text *string) *string {
	if text == nil {
		return nil
	}
	out := c.Convert(format, *text)
	return &out
}

// ConvertAll renders text in every format
func (c *Converter) ConvertAll(text string) map[Format]string {
	out := make(map[Format]string, len(formatNames))
	for _, f := range Formats() {
		out[f] = c.Convert(f, text)
	}
	return out
}

// Stats returns a snapshot of every cache namespace
func (c *Converter) Stats() map[string]cache.Stats {
	return c.store.Stats()
}

// ClearCache drops every memoized result
func (c *Converter) ClearCache() {
	c.store.Clear()
}

func (c *Converter) memo(namespace string, table *cache.Cache, input string, compute func(string) string) string {
	if !c.logger.IsLevelEnabled(tclog.LevelTrace) {
		return table.GetOrCompute(input, compute)
	}

	return table.GetOrCompute(input, func(s string) string {
		out := compute(s)
		c.logger.Trace("cache miss", tclog.Fields{
			"namespace":    namespace,
			"input_bytes":  len(s),
			"output_bytes": len(out),
		})
		return out
	})
}
