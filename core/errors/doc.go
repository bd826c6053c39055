// Package errors is the standard error construction API for plus packages.
//
// Package: errors
// Title: Standard Error Construction for plus
// Description: Module-aware constructors on top of core/error. Every error built
//              here carries the module and operation in its details together with
//              a module-specific code, so the CLI and the logger can report where
//              a failure came from without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Builder and generic constructors
// - 2026-10-16 v0.2.0: mathx domain/range and imagex constructors
//
// Usage:
//
//	func Factorial(n float64) (float64, error) {
//		if n < 0 {
//			return 0, errors.MathxDomainError("factorial", n, "value cannot be negative")
//		}
//		...
//	}
//
//	if errors.IsModuleError(err, errors.ModuleMathx) {
//		// argument rejected by mathx
//	}
package errors
