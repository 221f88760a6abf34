// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick the log level when an
//              error is reported through the foundation logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for textcase codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as a bad argument
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that stops one operation
	SeverityMedium

	// SeverityHigh indicates an error that stops the program from starting
	SeverityHigh

	// SeverityCritical indicates a broken invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeIO:
		return SeverityMedium
	case CodeInvalidInput, CodeUnknownFormat, CodeInvalidLength:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
