// File: complex_test.go
// Title: Unit Tests for Complex Numbers
// Description: Arithmetic laws, division by zero, compute-and-assign chaining,
//              rendering and parsing of the Complex type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Assign forms and ParseComplex

package mathx

import (
	"math"
	"testing"
)

var complexSamples = []Complex{
	{0, 0},
	{1, 2},
	{3, -1},
	{-2.5, 4},
	{-7, -0.125},
	{1e6, 1e-6},
}

func approxEqual(a, b Complex, tol float64) bool {
	return math.Abs(a.Real-b.Real) <= tol*math.Max(1, math.Abs(b.Real)) &&
		math.Abs(a.Imaginary-b.Imaginary) <= tol*math.Max(1, math.Abs(b.Imaginary))
}

func TestComplexArithmetic(t *testing.T) {
	a := NewComplex(1, 2)
	b := NewComplex(3, -1)

	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"add", a.Add(b), Complex{4, 1}},
		{"subtract", a.Subtract(b), Complex{-2, 3}},
		{"multiply", a.Multiply(b), Complex{5, 5}},
		{"divide", a.Divide(b), Complex{0.1, 0.7}},
		{"conjugate", a.Conjugate(), Complex{1, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxEqual(tt.got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if a != NewComplex(1, 2) || b != NewComplex(3, -1) {
		t.Error("pure operations must not modify their operands")
	}
}

func TestComplexLaws(t *testing.T) {
	for _, c1 := range complexSamples {
		for _, c2 := range complexSamples {
			if !c1.Add(c2).Equal(c2.Add(c1)) {
				t.Errorf("Add not commutative for %v, %v", c1, c2)
			}
			if !c1.Multiply(c2).Equal(c2.Multiply(c1)) {
				t.Errorf("Multiply not commutative for %v, %v", c1, c2)
			}
			if c2.Abs() == 0 {
				continue
			}
			if got := c1.Multiply(c2).Divide(c2); !approxEqual(got, c1, 1e-9) {
				t.Errorf("(%v * %v) / %v = %v", c1, c2, c2, got)
			}
		}
		if !c1.Conjugate().Conjugate().Equal(c1) {
			t.Errorf("Conjugate not an involution for %v", c1)
		}
	}
}

func TestComplexDivideByZero(t *testing.T) {
	// c * conj(0) is zero for any finite c, so every part is 0/0
	for _, c := range []Complex{{1, 1}, {1, -1}, {0, 0}, {-3, 2}} {
		got := c.Divide(Complex{})
		if !math.IsNaN(got.Real) || !math.IsNaN(got.Imaginary) {
			t.Errorf("%v / 0 = %v, want NaN parts", c, got)
		}
	}

	got := NewComplex(math.Inf(1), 0).Divide(NewComplex(1e-300, 0))
	if !math.IsInf(got.Real, 1) {
		t.Errorf("+Inf / 1e-300 = %v, want +Inf real part", got)
	}
}

func TestComplexAssignChaining(t *testing.T) {
	x := NewComplex(1, 2)
	y := NewComplex(3, 4)
	z := NewComplex(0.5, 0.5)

	ret := x.AddAssign(y).SubtractAssign(z)

	want := NewComplex(3.5, 5.5)
	if x != want {
		t.Errorf("x = %v, want %v", x, want)
	}
	if ret != &x {
		t.Error("Assign methods should return the receiver")
	}

	x.MultiplyAssign(NewComplex(0, 1))
	if x != NewComplex(-5.5, 3.5) {
		t.Errorf("after MultiplyAssign x = %v", x)
	}

	x.ConjugateAssign()
	if x != NewComplex(-5.5, -3.5) {
		t.Errorf("after ConjugateAssign x = %v", x)
	}

	x.DivideAssign(NewComplex(2, 0))
	if x != NewComplex(-2.75, -1.75) {
		t.Errorf("after DivideAssign x = %v", x)
	}
}

func TestComplexAssignMatchesPure(t *testing.T) {
	for _, c1 := range complexSamples {
		for _, c2 := range complexSamples {
			x := c1
			x.MultiplyAssign(c2)
			if x != c1.Multiply(c2) {
				t.Errorf("MultiplyAssign(%v, %v) = %v, want %v", c1, c2, x, c1.Multiply(c2))
			}
		}
	}
}

func TestComplexString(t *testing.T) {
	tests := []struct {
		c    Complex
		want string
	}{
		{Complex{1, 2}, "1 + 2i"},
		{Complex{1, -2}, "1 - 2i"},
		{Complex{0, 0}, "0 + 0i"},
		{Complex{-1.5, 0.25}, "-1.5 + 0.25i"},
		{Complex{math.NaN(), 1}, "NaN + 1i"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String(%#v) = %q; want %q", tt.c, got, tt.want)
		}
	}
}

func TestParseComplex(t *testing.T) {
	tests := []struct {
		input   string
		want    Complex
		wantErr bool
	}{
		{"1 + 2i", Complex{1, 2}, false},
		{"1 - 2i", Complex{1, -2}, false},
		{"1+2i", Complex{1, 2}, false},
		{"-3.5", Complex{-3.5, 0}, false},
		{"2i", Complex{0, 2}, false},
		{"-i", Complex{0, -1}, false},
		{"i", Complex{0, 1}, false},
		{"4 + i", Complex{4, 1}, false},
		{"1.5e3 - 2e-2i", Complex{1500, -0.02}, false},
		{"", Complex{}, true},
		{"abc", Complex{}, true},
		{"1 + xi", Complex{}, true},
		{"1 + 2j", Complex{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComplex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseComplex(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseComplex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseComplex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseComplexRoundTripsString(t *testing.T) {
	for _, c := range complexSamples {
		got, err := ParseComplex(c.String())
		if err != nil {
			t.Fatalf("ParseComplex(%q) error: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseComplex(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestMustParseComplexPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseComplex(\"bad\") expected panic")
		}
	}()
	MustParseComplex("bad")
}

func TestComplex128Interop(t *testing.T) {
	c := NewComplex(2, -3)
	if c.Complex128() != complex(2, -3) {
		t.Errorf("Complex128() = %v", c.Complex128())
	}
	if FromComplex128(complex(2, -3)) != c {
		t.Errorf("FromComplex128() = %v", FromComplex128(complex(2, -3)))
	}
	if got := NewComplex(3, 4).Abs(); got != 5 {
		t.Errorf("Abs() = %v, want 5", got)
	}
}
