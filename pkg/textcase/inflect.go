package textcase

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// Inflector turns English nouns into their plural or singular form
type Inflector interface {
	Pluralize(word string) string
	Singularize(word string) string
}

// InflectionConfig holds per-word exceptions layered over the rule set
type InflectionConfig struct {
	// PluralOverrides maps a singular word to its plural
	PluralOverrides map[string]string
	// SingularOverrides maps a plural word to its singular
	SingularOverrides map[string]string
	// Uncountable words are returned unchanged in both directions
	Uncountable []string
}

// RuleInflector applies configured overrides, then the inflection rules
type RuleInflector struct {
	plural      map[string]string
	singular    map[string]string
	uncountable map[string]struct{}
}

// NewInflector creates an inflector from cfg. The maps are copied; the
// inflection package's global rule tables are never modified.
func NewInflector(cfg InflectionConfig) *RuleInflector {
	in := &RuleInflector{
		plural:      make(map[string]string, len(cfg.PluralOverrides)),
		singular:    make(map[string]string, len(cfg.SingularOverrides)),
		uncountable: make(map[string]struct{}, len(cfg.Uncountable)),
	}
	for k, v := range cfg.PluralOverrides {
		in.plural[k] = v
	}
	for k, v := range cfg.SingularOverrides {
		in.singular[k] = v
	}
	for _, w := range cfg.Uncountable {
		in.uncountable[strings.ToLower(w)] = struct{}{}
	}
	return in
}

// Pluralize converts a singular word to its plural form.
// Checks custom overrides first, then falls back to the inflection library.
func (in *RuleInflector) Pluralize(word string) string {
	if word == "" {
		return ""
	}
	if override, ok := in.plural[word]; ok {
		return override
	}
	if in.isUncountable(word) {
		return word
	}
	return inflection.Plural(word)
}

// Singularize converts a plural word to its singular form.
// Checks custom overrides first, then falls back to the inflection library.
func (in *RuleInflector) Singularize(word string) string {
	if word == "" {
		return ""
	}
	if override, ok := in.singular[word]; ok {
		return override
	}
	if in.isUncountable(word) {
		return word
	}
	return inflection.Singular(word)
}

func (in *RuleInflector) isUncountable(word string) bool {
	_, ok := in.uncountable[strings.ToLower(word)]
	return ok
}
