// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to pick
//              the level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input, e.g. a negative factorial argument
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure that has a workaround
	SeverityMedium

	// SeverityHigh indicates a failure that aborts the current operation
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
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

	case CodeIOError, CodeConfigError:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeDomainError, CodeInvalidRange,
		CodeValueOutOfRange, CodeInvalidFormat, CodeValidationFailed, CodeRequiredField:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
