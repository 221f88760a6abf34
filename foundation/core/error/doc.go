// Package error provides structured errors for textcase.
//
// Package: error
// Title: Structured Errors
// Description: Errors carry a Code, a Severity, free-form details and the
//              operation that failed. They wrap standard errors and keep
//              compatibility with errors.Is / errors.As through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//
//	import tcerror "github.com/msto63/textcase/foundation/core/error"
//
//	err := tcerror.New("unknown format").
//		WithCode(tcerror.CodeUnknownFormat).
//		WithDetail("format", name)
//
//	if tcerror.HasCode(err, tcerror.CodeUnknownFormat) {
//		// ...
//	}
package error
