// File: example_test.go
// Title: Example Tests for MathX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16

package mathx_test

import (
	"fmt"
	"image"

	mdwmathx "github.com/msto63/plus/utils/mathx"
)

func ExampleComplex_Multiply() {
	a := mdwmathx.NewComplex(1, 2)
	b := mdwmathx.NewComplex(3, -1)

	fmt.Println(a.Multiply(b))
	// Output:
	// 5 + 5i
}

func ExampleComplex_AddAssign() {
	x := mdwmathx.NewComplex(1, 2)
	x.AddAssign(mdwmathx.NewComplex(3, 4)).SubtractAssign(mdwmathx.NewComplex(1, 10))

	fmt.Println(x)
	// Output:
	// 3 - 4i
}

func ExampleParseComplex() {
	c, err := mdwmathx.ParseComplex("2 - 3i")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Conjugate())
	// Output:
	// 2 + 3i
}

func ExampleSqrt() {
	fmt.Println(mdwmathx.Sqrt(-4))
	fmt.Println(mdwmathx.Sqrt(4))
	// Output:
	// 0 + 2i
	// 2 + 0i
}

func ExampleFactorial() {
	f, _ := mdwmathx.Factorial(5)
	fmt.Println(f)

	_, err := mdwmathx.Factorial(2.5)
	fmt.Println(err)
	// Output:
	// 120
	// value must be an integer
}

func ExampleInRange() {
	ok, _ := mdwmathx.InRange(5, 1, 10)
	fmt.Println(ok)

	_, err := mdwmathx.InRange(5, 10, 1)
	fmt.Println(err)
	// Output:
	// true
	// minimum value cannot be greater than maximum value
}

func ExampleMode() {
	fmt.Println(mdwmathx.Mode(1, 2, 2, 3, 3))
	fmt.Println(mdwmathx.Mode(1, 2, 3))
	// Output:
	// [2 3]
	// [1 2 3]
}

func ExampleAverage() {
	fmt.Println(mdwmathx.Average(1, 2, 3, 4))
	fmt.Println(mdwmathx.Max(3, 9, 4), mdwmathx.Min(3, 9, 4))
	// Output:
	// 2.5
	// 9 3
}

func ExampleMirror() {
	fmt.Println(mdwmathx.Mirror(image.Pt(1, 1), 0, 0, 2, 0))
	// Output:
	// (1,-1)
}

func ExampleNewRand() {
	r := mdwmathx.NewRand(1)
	v := r.IntBetween(0, 5)
	fmt.Println(v >= 0 && v <= 5)
	// Output:
	// true
}
