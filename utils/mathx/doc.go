// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the numeric helpers of plus: a complex
//              number value type, interpolation, random ranges, simple
//              statistics, factorial, roots and 2D geometry.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Complex type and scalar helpers
// - 2026-10-16 v0.2.0: Generic statistics, injectable random source, geometry

// Package mathx provides numeric helpers that the standard math package does
// not cover.
//
// # Complex numbers
//
// Complex is a plain value type holding a real and an imaginary part. The
// arithmetic methods Add, Subtract, Multiply, Divide and Conjugate are pure:
// they return a new value and leave both operands untouched.
//
//	a := mathx.NewComplex(1, 2)
//	b := mathx.NewComplex(3, -1)
//	fmt.Println(a.Multiply(b)) // 5 + 5i
//
// Code that wants to accumulate into a variable uses the explicit
// compute-and-assign forms, which store the result in the receiver and
// return the receiver so calls can be chained:
//
//	acc := mathx.NewComplex(0, 0)
//	acc.AddAssign(a).MultiplyAssign(b)
//
// Division by 0 + 0i is not an error; the parts become Inf or NaN following
// IEEE-754, exactly as float64 division does.
//
// # Scalar helpers
//
// Sqrt always returns a Complex so that negative radicands have a defined
// result:
//
//	mathx.Sqrt(-4) // 0 + 2i
//	mathx.Sqrt(4)  // 2 + 0i
//
// Factorial and InRange validate their arguments and return a structured
// error from core/errors when the argument is outside the function's domain:
//
//	if _, err := mathx.Factorial(2.5); err != nil {
//		// errors.CodeMathxDomainError
//	}
//
// # Statistics
//
// Max, Min, Sum and Average are generic over every integer and float type.
// Max and Min index their first argument and therefore panic when called
// without arguments, Sum of nothing is zero and Average of nothing is NaN.
// Mode returns every value sharing the highest occurrence count in the order
// the values first appeared, which for all-distinct input is every value.
//
// # Random numbers
//
// RandomInt, RandomIntBetween, RandomFloat and RandomFloatBetween draw from a
// process-wide source that is safe for concurrent use. NewRand returns a
// seeded generator for reproducible sequences.
//
// # Thread Safety
//
// All functions are safe for concurrent use. A Complex value shared between
// goroutines must not be mutated through the *Assign methods without external
// synchronization.
package mathx
