// File: numeric_test.go
// Title: Unit Tests for Scalar Numeric Helpers
// Description: Interpolation, complex square roots, nth roots, factorial
//              domain checks and range validation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-18

package mathx

import (
	"math"
	"testing"

	mdwerror "github.com/msto63/plus/core/error"
	"github.com/msto63/plus/core/errors"
)

func TestConstants(t *testing.T) {
	if math.Abs(Tau-2*math.Pi) > 1e-15 {
		t.Errorf("Tau = %v, want 2π", Tau)
	}
	if math.Abs(Phi-(1+math.Sqrt(5))/2) > 1e-12 {
		t.Errorf("Phi = %v", Phi)
	}
	if math.Abs(Omega*math.Exp(Omega)-1) > 1e-12 {
		t.Errorf("Omega·e^Omega = %v, want 1", Omega*math.Exp(Omega))
	}
	if math.Abs(RootTwo*RootTwo-2) > 1e-15 {
		t.Errorf("RootTwo² = %v, want 2", RootTwo*RootTwo)
	}
}

func TestLinearInterpolation(t *testing.T) {
	tests := []struct {
		a, b, t float64
		want    float64
	}{
		{2, 6, 0.5, 4},
		{2, 6, 0, 2},
		{2, 6, 1, 6},
		{2, 6, 2, 10},
		{2, 6, -1, -2},
		{-1, 1, 0.25, -0.5},
	}

	for _, tt := range tests {
		if got := LinearInterpolation(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("LinearInterpolation(%v, %v, %v) = %v; want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		input float64
		want  Complex
	}{
		{-4, Complex{0, 2}},
		{4, Complex{2, 0}},
		{0, Complex{0, 0}},
		{2.25, Complex{1.5, 0}},
		{-0.25, Complex{0, 0.5}},
		{math.Inf(1), Complex{math.Inf(1), 0}},
		{math.Inf(-1), Complex{0, math.Inf(1)}},
	}

	for _, tt := range tests {
		if got := Sqrt(tt.input); got != tt.want {
			t.Errorf("Sqrt(%v) = %v; want %v", tt.input, got, tt.want)
		}
	}

	if got := Sqrt(math.NaN()); !math.IsNaN(got.Real) || got.Imaginary != 0 {
		t.Errorf("Sqrt(NaN) = %v; want NaN + 0i", got)
	}
	if got := Sqrt(math.Copysign(0, -1)); got.Real != 0 || got.Imaginary != 0 {
		t.Errorf("Sqrt(-0) = %v; want 0 + 0i", got)
	}
}

func TestNthrt(t *testing.T) {
	tests := []struct {
		a, n float64
		want float64
	}{
		{27, 3, 3},
		{16, 4, 2},
		{2, 1, 2},
		{1, 7, 1},
	}

	for _, tt := range tests {
		if got := Nthrt(tt.a, tt.n); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Nthrt(%v, %v) = %v; want %v", tt.a, tt.n, got, tt.want)
		}
	}

	if got := Nthrt(-16, 2); !math.IsNaN(got) {
		t.Errorf("Nthrt(-16, 2) = %v; want NaN", got)
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    float64
		want float64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		got, err := Factorial(tt.n)
		if err != nil {
			t.Errorf("Factorial(%v) unexpected error: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Factorial(%v) = %v; want %v", tt.n, got, tt.want)
		}
	}

	if got := MustFactorial(171); !math.IsInf(got, 1) {
		t.Errorf("Factorial(171) = %v; want +Inf", got)
	}
}

func TestFactorialLargeArguments(t *testing.T) {
	tests := []float64{171, 1000, 1e8, 1e15}

	for _, n := range tests {
		got, err := Factorial(n)
		if err != nil {
			t.Errorf("Factorial(%v) unexpected error: %v", n, err)
			continue
		}
		if !math.IsInf(got, 1) {
			t.Errorf("Factorial(%v) = %v; want +Inf", n, got)
		}
	}

	want := 1.0
	for i := 2.0; i <= 170; i++ {
		want *= i
	}
	if got := MustFactorial(170); got != want || math.IsInf(got, 0) {
		t.Errorf("Factorial(170) = %v; want %v", got, want)
	}
}

func TestFactorialDomainError(t *testing.T) {
	inputs := []float64{-1, 2.5, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)}

	for _, n := range inputs {
		_, err := Factorial(n)
		if err == nil {
			t.Errorf("Factorial(%v) expected domain error", n)
			continue
		}
		if !mdwerror.HasCode(err, errors.CodeMathxDomainError) {
			t.Errorf("Factorial(%v) code = %v; want %v", n, mdwerror.GetCode(err), errors.CodeMathxDomainError)
		}
		if !errors.IsModuleOperation(err, errors.ModuleMathx, "factorial") {
			t.Errorf("Factorial(%v) error not attributed to mathx.factorial", n)
		}
	}
}

func TestMustFactorialPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFactorial(-1) expected panic")
		}
	}()
	MustFactorial(-1)
}

func TestInRange(t *testing.T) {
	tests := []struct {
		val, min, max float64
		want          bool
	}{
		{5, 1, 10, true},
		{1, 1, 10, true},
		{10, 1, 10, true},
		{0.999, 1, 10, false},
		{10.001, 1, 10, false},
		{3, 3, 3, true},
		{math.NaN(), 1, 10, false},
	}

	for _, tt := range tests {
		got, err := InRange(tt.val, tt.min, tt.max)
		if err != nil {
			t.Errorf("InRange(%v, %v, %v) unexpected error: %v", tt.val, tt.min, tt.max, err)
			continue
		}
		if got != tt.want {
			t.Errorf("InRange(%v, %v, %v) = %v; want %v", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestInRangeInvalidRange(t *testing.T) {
	_, err := InRange(5, 10, 1)
	if err == nil {
		t.Fatal("InRange(5, 10, 1) expected error")
	}
	if !mdwerror.HasCode(err, errors.CodeMathxInvalidRange) {
		t.Errorf("code = %v; want %v", mdwerror.GetCode(err), errors.CodeMathxInvalidRange)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustInRange(5, 10, 1) expected panic")
		}
	}()
	MustInRange(5, 10, 1)
}
