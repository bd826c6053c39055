// File: numeric.go
// Title: Scalar Numeric Helpers
// Description: Interpolation, square and nth roots, factorial and range checks.
//              Factorial and InRange validate their arguments and report domain
//              violations as structured errors.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Must variants, non-finite factorial arguments rejected
// - 2026-10-18 v0.2.1: Iterative factorial for large arguments

package mathx

import (
	"math"

	"github.com/msto63/plus/core/errors"
)

const (
	// Tau is the ratio of a circle's circumference to its radius (2π)
	Tau = 6.2831853071795864769

	// Phi is the golden ratio
	Phi = 1.6180339887498948482

	// Omega is the omega constant, the solution of Ω·e^Ω = 1
	Omega = 0.5671432904097838729

	// RootTwo is the square root of two
	RootTwo = 1.4142135623730950488
)

// LinearInterpolation returns the value t of the way from a to b.
// t is not clamped, so values outside [0, 1] extrapolate.
//
//	LinearInterpolation(2, 6, 0.5) == 4
func LinearInterpolation(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Sqrt returns the square root of a as a complex number: 0 + √(-a)i for
// negative a, √a + 0i otherwise. NaN and +Inf end up in the real part.
func Sqrt(a float64) Complex {
	if a < 0 {
		return Complex{Real: 0, Imaginary: math.Sqrt(-a)}
	}
	return Complex{Real: math.Sqrt(a), Imaginary: 0}
}

// Nthrt returns the nth root of a as a^(1/n). Only real powers are taken,
// so an even root of a negative number is NaN.
func Nthrt(a, n float64) float64 {
	return math.Pow(a, 1.0/n)
}

// Factorial returns n! for a non-negative integral n. The computation runs in
// float64, so results beyond 2^53 are approximate and 171! overflows to +Inf.
func Factorial(n float64) (float64, error) {
	if n < 0 {
		return 0, errors.MathxDomainError("factorial", n, "value cannot be negative")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Mod(n, 1) != 0 {
		return 0, errors.MathxDomainError("factorial", n, "value must be an integer")
	}
	return factorial(n), nil
}

// factorial multiplies 2..n in ascending order and stops once the product
// has overflowed
func factorial(n float64) float64 {
	r := 1.0
	for i := 2.0; i <= n && !math.IsInf(r, 1); i++ {
		r *= i
	}
	return r
}

// MustFactorial is like Factorial but panics on a domain error
func MustFactorial(n float64) float64 {
	f, err := Factorial(n)
	if err != nil {
		panic(err)
	}
	return f
}

// InRange reports whether min <= val <= max. It fails with an invalid range
// error when min > max.
func InRange(val, min, max float64) (bool, error) {
	if min > max {
		return false, errors.MathxInvalidRange("in_range", min, max)
	}
	return val >= min && val <= max, nil
}

// MustInRange is like InRange but panics on an invalid range
func MustInRange(val, min, max float64) bool {
	ok, err := InRange(val, min, max)
	if err != nil {
		panic(err)
	}
	return ok
}
