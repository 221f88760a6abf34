// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by textcase. Conversion itself never
//              fails; codes classify failures at the edges (configuration,
//              format names, CLI input and output encoding).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by textcase

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIO           Code = "IO_ERROR"

	// Conversion front-end
	CodeUnknownFormat Code = "UNKNOWN_FORMAT"
	CodeInvalidLength Code = "INVALID_LENGTH"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeIO,
		CodeUnknownFormat, CodeInvalidLength,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput, CodeUnknownFormat, CodeInvalidLength:
		return "validation"
	case CodeIO:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	case "configuration":
		return 3
	case "io":
		return 4
	default:
		return 1
	}
}
