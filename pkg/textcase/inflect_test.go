package textcase

import "testing"

func TestRuleInflector(t *testing.T) {
	in := NewInflector(InflectionConfig{})

	plurals := []struct {
		input    string
		expected string
	}{
		{"box", "boxes"},
		{"category", "categories"},
		{"person", "people"},
		{"child", "children"},
		{"fish", "fish"},
		{"", ""},
	}
	for _, tt := range plurals {
		if got := in.Pluralize(tt.input); got != tt.expected {
			t.Errorf("Pluralize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}

	singulars := []struct {
		input    string
		expected string
	}{
		{"boxes", "box"},
		{"categories", "category"},
		{"people", "person"},
		{"children", "child"},
		{"", ""},
	}
	for _, tt := range singulars {
		if got := in.Singularize(tt.input); got != tt.expected {
			t.Errorf("Singularize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRuleInflector_Overrides(t *testing.T) {
	overrides := map[string]string{"cactus": "cactuses"}
	in := NewInflector(InflectionConfig{
		PluralOverrides:   overrides,
		SingularOverrides: map[string]string{"data": "datum"},
		Uncountable:       []string{"Firmware"},
	})
	overrides["cactus"] = "mutated"

	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"plural override", in.Pluralize, "cactus", "cactuses"},
		{"singular override", in.Singularize, "data", "datum"},
		{"uncountable plural", in.Pluralize, "firmware", "firmware"},
		{"uncountable singular", in.Singularize, "FIRMWARE", "FIRMWARE"},
		{"fallback", in.Pluralize, "box", "boxes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); got != tt.expected {
				t.Errorf("%s: got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

type stubInflector struct{ calls int }

func (s *stubInflector) Pluralize(word string) string {
	s.calls++
	return word + "s"
}

func (s *stubInflector) Singularize(word string) string {
	s.calls++
	return word[:len(word)-1]
}

func TestConverter_InflectionIsCached(t *testing.T) {
	stub := &stubInflector{}
	c := New(Config{Inflector: stub})

	for i := 0; i < 3; i++ {
		if got := c.Pluralize("cat"); got != "cats" {
			t.Errorf("Pluralize(cat) = %q", got)
		}
		if got := c.Singularize("dogs"); got != "dog" {
			t.Errorf("Singularize(dogs) = %q", got)
		}
	}
	if stub.calls != 2 {
		t.Errorf("inflector called %d times, want 2", stub.calls)
	}
}
