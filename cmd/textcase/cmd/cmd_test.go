package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	tcerror "github.com/msto63/textcase/foundation/core/error"
	"github.com/msto63/textcase/pkg/core/config"
)

// run executes the command tree with isolated configuration lookup
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"slug from args", "", []string{"convert", "slug", "tést", "wîth", "spécîål", "chåråctérs"}, "test-with-special-characters\n"},
		{"alias", "", []string{"convert", "kebab", "Another Test"}, "another-test\n"},
		{"snake from stdin", "TestingCamelCaps\n", []string{"convert", "snake"}, "testing_camel_caps\n"},
		{"camelcase", "", []string{"convert", "camelcase", "testing, with punctuation."}, "testingWithPunctuation\n"},
		{"camelcaps", "", []string{"convert", "camelcaps", "this-is-a-test"}, "ThisIsATest\n"},
		{"namespaced", "", []string{"convert", "namespaced", "testingCamelCase"}, "testing\\camel\\case\n"},
		{"title", "", []string{"convert", "title", "this_is_a_test"}, "This Is A Test\n"},
		{"default format", "Hello World\r\n", []string{"convert"}, "hello-world\n"},
		{"empty stdin", "", []string{"convert", "slug"}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvert_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("Über Größe\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, _, err := run(t, "", "convert", "snake", "--file", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "uber_grose\n" {
		t.Errorf("output = %q, want %q", got, "uber_grose\n")
	}
}

func TestConvert_All(t *testing.T) {
	got, _, err := run(t, "", "convert", "--all", "testingCamelCase")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Format", "title", "Testing Camel Case", "testing-camel-case", "testing_camel_case", "TestingCamelCase", `testing\camel\case`} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestConvert_AllJSON(t *testing.T) {
	got, _, err := run(t, "", "convert", "--all", "-o", "json", "this", "is", "a", "test")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var results []conversion
	if err := json.Unmarshal([]byte(got), &results); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, got)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}
	if results[1].Format != "slug" || results[1].Output != "this-is-a-test" {
		t.Errorf("results[1] = %+v", results[1])
	}
	for _, r := range results {
		if r.Input != "this is a test" {
			t.Errorf("Input = %q, want %q", r.Input, "this is a test")
		}
	}
}

func TestConvert_Lines(t *testing.T) {
	stdin := "First Line\nSecond Line\n\nfourthLine\n"

	got, _, err := run(t, stdin, "convert", "snake", "--lines", "--workers", "3")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "first_line\nsecond_line\n\nfourth_line\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConvert_LinesYAML(t *testing.T) {
	got, _, err := run(t, "a b\nc d\n", "convert", "camelcase", "--lines", "-o", "yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var results []conversion
	if err := yaml.Unmarshal([]byte(got), &results); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, got)
	}
	if len(results) != 2 || results[0].Output != "aB" || results[1].Output != "cD" {
		t.Errorf("results = %+v", results)
	}
}

func TestConvert_LinesEmptyInput(t *testing.T) {
	got, _, err := run(t, "", "convert", "slug", "--lines")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code tcerror.Code
	}{
		{"unknown format", []string{"convert", "shouting", "x"}, tcerror.CodeUnknownFormat},
		{"unknown output", []string{"convert", "slug", "-o", "xml", "x"}, tcerror.CodeInvalidInput},
		{"missing file", []string{"convert", "slug", "--file", "/nonexistent/input.txt"}, tcerror.CodeIO},
		{"missing config", []string{"--config", "/nonexistent/textcase.toml", "convert", "slug", "x"}, tcerror.CodeMissingConfig},
		{"negative length", []string{"random", "--length", "-1"}, tcerror.CodeInvalidLength},
		{"zero count", []string{"random", "--count", "0"}, tcerror.CodeInvalidInput},
		{"unknown tui format", []string{"tui", "--format", "shouting"}, tcerror.CodeUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			if err == nil {
				t.Fatal("Execute() should fail")
			}
			if !tcerror.HasCode(err, tt.code) {
				t.Errorf("error code = %v, want %v (%v)", tcerror.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got, _, err := run(t, "", "normalize", "åñ åwéßømé téßt ßtrîñg")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "an awesome test string\n" {
		t.Errorf("output = %q, want %q", got, "an awesome test string\n")
	}
}

func TestRandom(t *testing.T) {
	got, _, err := run(t, "", "random", "--length", "12", "--count", "5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d values, want 5", len(lines))
	}
	pattern := regexp.MustCompile(`^[0-9a-zA-Z]{12}$`)
	for _, line := range lines {
		if !pattern.MatchString(line) {
			t.Errorf("value %q does not match %s", line, pattern)
		}
	}
}

func TestRandom_DefaultLengthFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textcase.yaml")
	if err := os.WriteFile(path, []byte("random:\n  default_length: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, _, err := run(t, "", "--config", path, "random", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var values []string
	if err := json.Unmarshal([]byte(got), &values); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(values) != 1 || len(values[0]) != 9 {
		t.Errorf("values = %q, want one value of length 9", values)
	}
}

func TestInflect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textcase.toml")
	content := `
[inflection]
uncountable = ["feedback"]

[inflection.plural]
octopus = "octopodes"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"plural", "box"}, "boxes\n"},
		{[]string{"singular", "categories"}, "category\n"},
		{[]string{"--config", path, "plural", "octopus"}, "octopodes\n"},
		{[]string{"--config", path, "plural", "feedback"}, "feedback\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInflect_RequiresWord(t *testing.T) {
	if _, _, err := run(t, "", "plural"); err == nil {
		t.Error("plural without a word should fail")
	}
}

func TestVersion(t *testing.T) {
	got, _, err := run(t, "", "version", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var info map[string]string
	if err := json.Unmarshal([]byte(got), &info); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if info["release"] == "" || info["go_version"] == "" {
		t.Errorf("incomplete version info: %v", info)
	}
}

func TestVersion_IgnoresBrokenConfig(t *testing.T) {
	got, _, err := run(t, "", "--config", "/nonexistent/textcase.toml", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(got, "textcase v") {
		t.Errorf("output = %q", got)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := run(t, "a\nb\n", "-v", "convert", "slug", "--lines")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "a\nb\n" {
		t.Errorf("stdout = %q", stdout)
	}
	for _, want := range []string{"configuration loaded", "convert lines completed", "run="} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}
