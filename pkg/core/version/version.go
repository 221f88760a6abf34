// ============================================================================
// textcase - String format conversion toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all textcase components
const (
	// Release version
	Release = "1.0.0"

	// Component versions
	Library = "1.0.0"
	CLI     = "1.0.0"
	Preview = "1.0.0"
)

// Build metadata, set with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "library", "textcase":
		return Library
	case "cli":
		return CLI
	case "preview", "tui":
		return Preview
	default:
		return Release
	}
}

// Info is the full build description
type Info struct {
	Release   string `json:"release" yaml:"release"`
	Library   string `json:"library" yaml:"library"`
	CLI       string `json:"cli" yaml:"cli"`
	Preview   string `json:"preview" yaml:"preview"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build description of the running binary
func Get() Info {
	return Info{
		Release:   Release,
		Library:   Library,
		CLI:       CLI,
		Preview:   Preview,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("textcase %s (commit %s, built %s, %s %s)", i.Release, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
