// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across plus so that failures can be
//              classified without parsing error messages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial set of generic codes
// - 2026-10-16 v0.2.0: Added domain, range and image codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Argument domain
	CodeDomainError     Code = "DOMAIN_ERROR"
	CodeInvalidRange    Code = "INVALID_RANGE"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat   Code = "INVALID_FORMAT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"

	// I/O
	CodeIOError Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDomainError, CodeInvalidRange, CodeValueOutOfRange, CodeInvalidFormat,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField,
		CodeIOError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDomainError, CodeInvalidRange, CodeValueOutOfRange, CodeInvalidFormat:
		return "domain"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField:
		return "validation"
	case CodeIOError:
		return "io"
	default:
		return "generic"
	}
}
