// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Adjusted to the textcase code set

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("bad format").WithCode(CodeUnknownFormat),
			message:  "convert",
			wantMsg:  "convert: bad format",
			wantCode: CodeUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWrapWithCode(t *testing.T) {
	base := errors.New("open textcase.toml: no such file")
	err := WrapWithCode(base, CodeMissingConfig, "load config")

	if err.Code() != CodeMissingConfig {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeMissingConfig)
	}
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
	if WrapWithCode(nil, CodeIO, "noop") != nil {
		t.Error("WrapWithCode(nil) should return nil")
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, "layer")
	}

	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if depth := chainDepth(err); depth > MaxErrorChainDepth {
		t.Errorf("chain depth %d exceeds limit %d", depth, MaxErrorChainDepth)
	}
}

func TestDetailsAndOperation(t *testing.T) {
	err := New("unknown format").
		WithCode(CodeUnknownFormat).
		WithDetail("format", "pascalish").
		WithDetails(map[string]interface{}{"known": 6}).
		WithOperation("ParseFormat")

	details := err.Details()
	if details["format"] != "pascalish" {
		t.Errorf("Details()[format] = %v, want pascalish", details["format"])
	}
	if details["known"] != 6 {
		t.Errorf("Details()[known] = %v, want 6", details["known"])
	}

	details["format"] = "mutated"
	if err.Details()["format"] != "pascalish" {
		t.Error("Details() should return a copy")
	}

	if err.Operation() != "ParseFormat" {
		t.Errorf("Operation() = %q, want ParseFormat", err.Operation())
	}

	s := err.String()
	for _, want := range []string{"Code: UNKNOWN_FORMAT", "Operation: ParseFormat", "format=pascalish"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("disk full"), "write output").WithCode(CodeIO)

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}
	if decoded["code"] != string(CodeIO) {
		t.Errorf("code = %v, want %v", decoded["code"], CodeIO)
	}
	if decoded["cause"] != "disk full" {
		t.Errorf("cause = %v, want disk full", decoded["cause"])
	}
}

func TestHasCodeAndGetters(t *testing.T) {
	inner := New("bad length").WithCode(CodeInvalidLength)
	outer := Wrap(inner, "random")
	plain := errors.New("plain")

	if !HasCode(outer, CodeInvalidLength) {
		t.Error("HasCode() should find code through the chain")
	}
	if HasCode(plain, CodeInvalidLength) {
		t.Error("HasCode() should be false for standard errors")
	}
	if GetCode(plain) != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", GetCode(plain), CodeUnknown)
	}
	if GetSeverity(outer) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(outer), SeverityLow)
	}
	if outer.RootCause() != inner {
		t.Error("RootCause() should return the innermost error")
	}
}

func TestCodeClassification(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeUnknownFormat, true, "validation", 2},
		{CodeInvalidLength, true, "validation", 2},
		{CodeMissingConfig, true, "configuration", 3},
		{CodeIO, true, "io", 4},
		{CodeInternal, true, "generic", 1},
		{Code("NOPE"), false, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		severity Severity
		name     string
		alert    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.severity.ShouldAlert(); got != tt.alert {
				t.Errorf("ShouldAlert() = %v, want %v", got, tt.alert)
			}
		})
	}
}
