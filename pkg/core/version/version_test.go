package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Release", Release},
		{"Library", Library},
		{"CLI", CLI},
		{"Preview", Preview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		component string
		expected  string
	}{
		{"library", Library},
		{"textcase", Library},
		{"cli", CLI},
		{"tui", Preview},
		{"unknown", Release},
		{"", Release},
	}

	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			if got := ComponentVersion(tt.component); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, got, tt.expected)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Release != Release || info.GoVersion != runtime.Version() {
		t.Errorf("Get() = %+v", info)
	}
	if !strings.HasPrefix(info.String(), "textcase "+Release) {
		t.Errorf("String() = %q", info.String())
	}
}
