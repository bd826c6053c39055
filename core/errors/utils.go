// File: utils.go
// Title: Shared Error Construction Utilities
// Description: Fluent error builder, generic constructors and the module
//              convenience constructors used by mathx, imagex and the
//              configuration layer.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Builder and generic constructors
// - 2026-10-16 v0.2.0: Domain, range, complex parsing and image constructors
// - 2026-10-17 v0.2.1: Configuration lookup, parse and CLI argument constructors

package errors

import (
	"errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/plus/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// GENERIC CONSTRUCTORS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(getFormatErrorCode(module)).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(getOperationErrorCode(module)).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// ExtractDetails extracts all details from the first structured error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// MathxDomainError reports an argument outside the domain of a mathx function
func MathxDomainError(operation string, input interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message(reason).
		Code(CodeMathxDomainError).
		Detail("input", input).
		Severity(mdwerror.SeverityLow).
		Build()
}

// MathxInvalidRange reports a range whose minimum exceeds its maximum
func MathxInvalidRange(operation string, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Message("minimum value cannot be greater than maximum value").
		Code(CodeMathxInvalidRange).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// MathxInvalidComplex reports text that does not parse as a complex number
func MathxInvalidComplex(input string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation("parse_complex").
		Messagef("invalid complex number %q", input).
		Cause(cause).
		Code(CodeMathxInvalidComplex).
		Detail("input", input).
		Detail("expected_format", "a + bi").
		Severity(mdwerror.SeverityLow).
		Build()
}

// ImagexDecodeFailed reports an image that could not be read
func ImagexDecodeFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleImagex).
		Operation("decode").
		Messagef("cannot decode image %s", path).
		Cause(cause).
		Code(CodeImagexDecodeFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// ImagexEncodeFailed reports an image that could not be written
func ImagexEncodeFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleImagex).
		Operation("encode").
		Messagef("cannot encode image %s", path).
		Cause(cause).
		Code(CodeImagexEncodeFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ImagexInvalidColor reports a colour specification that cannot be parsed
func ImagexInvalidColor(input string) *mdwerror.Error {
	return InvalidFormat(ModuleImagex, input, "RRGGBB or #RRGGBB")
}

// ConfigInvalidValue reports a configuration value of the wrong kind
func ConfigInvalidValue(key string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid value for %s: expected %s", key, expected).
		Code(CodeConfigInvalidValue).
		Detail("key", key).
		Detail("value", value).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// ConfigNotFound reports that no configuration file exists at any of the
// searched locations
func ConfigNotFound(searched []string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("discover").
		Messagef("no configuration file found in: %s", strings.Join(searched, ", ")).
		Code(CodeConfigNotFound).
		Detail("searched", searched).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// ConfigParseFailed reports configuration content that is not valid TOML or YAML
func ConfigParseFailed(source, format string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("parse").
		Messagef("cannot parse %s configuration %s", format, source).
		Cause(cause).
		Code(CodeConfigParseFailed).
		Detail("source", source).
		Detail("format", format).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// CLIInvalidArgument reports a command line argument of the wrong kind
func CLIInvalidArgument(command, arg, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCLI).
		Operation(command).
		Messagef("invalid argument %q for %s: expected %s", arg, command, expected).
		Code(CodeInvalidInput).
		Detail("input", arg).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}
