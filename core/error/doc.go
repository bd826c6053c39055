// Package error provides the structured error type shared by all plus packages.
//
// Package: error
// Title: plus Error Handling Framework
// Description: Structured errors carrying a code, a severity, free-form details
//              and the stack at the point of creation. Argument-domain failures
//              raised by mathx and friends are instances of *Error so callers can
//              branch on the code instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial error type with codes and severity
// - 2026-10-16 v0.2.0: Domain and range codes for the numeric helpers
//
// Usage:
//
//	import mdwerror "github.com/msto63/plus/core/error"
//
//	err := mdwerror.New("minimum value cannot be greater than maximum value").
//		WithCode(mdwerror.CodeInvalidRange).
//		WithDetail("min", 10.0).
//		WithDetail("max", 1.0)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidRange) {
//		// reject the request
//	}
package error
