// File: standards.go
// Title: Error Standards for plus
// Description: Module identifiers and module-specific error codes, plus the
//              mapping from an operation name to its default code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial module identifiers and codes
// - 2026-10-16 v0.2.0: Typed codes, imagex and config modules

package errors

import (
	"strings"

	mdwerror "github.com/msto63/plus/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx  = "mathx"
	ModuleImagex = "imagex"
	ModuleConfig = "config"
	ModuleLog    = "log"
	ModuleCLI    = "cli"
)

// Common error codes
const (
	CodeInvalidInput    mdwerror.Code = "INVALID_INPUT"
	CodeInvalidFormat   mdwerror.Code = "INVALID_FORMAT"
	CodeOutOfRange      mdwerror.Code = "OUT_OF_RANGE"
	CodeNotFound        mdwerror.Code = "NOT_FOUND"
	CodeOperationFailed mdwerror.Code = "OPERATION_FAILED"
)

// Module-specific error codes
const (
	CodeMathxDomainError     mdwerror.Code = "MATHX_DOMAIN_ERROR"
	CodeMathxInvalidRange    mdwerror.Code = "MATHX_INVALID_RANGE"
	CodeMathxInvalidComplex  mdwerror.Code = "MATHX_INVALID_COMPLEX"
	CodeMathxOperationFailed mdwerror.Code = "MATHX_OPERATION_FAILED"

	CodeImagexDecodeFailed    mdwerror.Code = "IMAGEX_DECODE_FAILED"
	CodeImagexEncodeFailed    mdwerror.Code = "IMAGEX_ENCODE_FAILED"
	CodeImagexInvalidColor    mdwerror.Code = "IMAGEX_INVALID_COLOR"
	CodeImagexOperationFailed mdwerror.Code = "IMAGEX_OPERATION_FAILED"

	CodeConfigInvalidValue mdwerror.Code = "CONFIG_INVALID_VALUE"
	CodeConfigNotFound     mdwerror.Code = "CONFIG_NOT_FOUND"
	CodeConfigParseFailed  mdwerror.Code = "CONFIG_PARSE_FAILED"
)

// getModuleErrorCode returns the default code for a module operation
func getModuleErrorCode(module, operation string) mdwerror.Code {
	switch module {
	case ModuleMathx:
		return getMathxErrorCode(operation)
	case ModuleImagex:
		return getImagexErrorCode(operation)
	case ModuleConfig:
		if strings.Contains(operation, "parse") {
			return CodeConfigParseFailed
		}
		return CodeOperationFailed
	default:
		return CodeOperationFailed
	}
}

func getMathxErrorCode(operation string) mdwerror.Code {
	switch {
	case strings.Contains(operation, "range"):
		return CodeMathxInvalidRange
	case strings.Contains(operation, "parse") || strings.Contains(operation, "complex"):
		return CodeMathxInvalidComplex
	case strings.Contains(operation, "factorial"):
		return CodeMathxDomainError
	default:
		return CodeInvalidInput
	}
}

func getImagexErrorCode(operation string) mdwerror.Code {
	switch {
	case strings.Contains(operation, "decode"):
		return CodeImagexDecodeFailed
	case strings.Contains(operation, "encode"):
		return CodeImagexEncodeFailed
	case strings.Contains(operation, "color"):
		return CodeImagexInvalidColor
	default:
		return CodeImagexOperationFailed
	}
}

func getFormatErrorCode(module string) mdwerror.Code {
	switch module {
	case ModuleMathx:
		return CodeMathxInvalidComplex
	case ModuleImagex:
		return CodeImagexInvalidColor
	default:
		return CodeInvalidFormat
	}
}

func getOperationErrorCode(module string) mdwerror.Code {
	switch module {
	case ModuleMathx:
		return CodeMathxOperationFailed
	case ModuleImagex:
		return CodeImagexOperationFailed
	default:
		return CodeOperationFailed
	}
}
