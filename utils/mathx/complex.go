// File: complex.go
// Title: Complex Number Value Type
// Description: Implements Complex, a real/imaginary pair with the four
//              arithmetic operations and conjugation. Pure value methods return
//              new values; the *Assign methods store the result in the receiver.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with arithmetic and String
// - 2026-10-16 v0.2.0: Split compute-and-assign forms from the pure methods,
//                       added ParseComplex and complex128 interop

package mathx

import (
	"math"
	"strconv"
	"strings"

	"github.com/msto63/plus/core/errors"
)

// Complex represents the complex number Real + Imaginary·i.
// The zero value is 0 + 0i.
type Complex struct {
	Real      float64
	Imaginary float64
}

// NewComplex creates a complex number from its real and imaginary parts
func NewComplex(real, imaginary float64) Complex {
	return Complex{Real: real, Imaginary: imaginary}
}

// FromComplex128 converts Go's built-in complex type
func FromComplex128(c complex128) Complex {
	return Complex{Real: real(c), Imaginary: imag(c)}
}

// Complex128 converts c to Go's built-in complex type
func (c Complex) Complex128() complex128 {
	return complex(c.Real, c.Imaginary)
}

// Add returns c + other
func (c Complex) Add(other Complex) Complex {
	return Complex{
		Real:      c.Real + other.Real,
		Imaginary: c.Imaginary + other.Imaginary,
	}
}

// Subtract returns c - other
func (c Complex) Subtract(other Complex) Complex {
	return Complex{
		Real:      c.Real - other.Real,
		Imaginary: c.Imaginary - other.Imaginary,
	}
}

// Multiply returns c · other = (ac - bd) + (ad + bc)i
func (c Complex) Multiply(other Complex) Complex {
	return Complex{
		Real:      c.Real*other.Real - c.Imaginary*other.Imaginary,
		Imaginary: c.Real*other.Imaginary + c.Imaginary*other.Real,
	}
}

// Divide returns c / other, computed as c·conj(other) divided by the real
// part of other·conj(other). A zero divisor is not guarded: the parts of the
// result are ±Inf or NaN as float64 division defines them.
func (c Complex) Divide(other Complex) Complex {
	conj := other.Conjugate()
	numerator := c.Multiply(conj)
	denominator := other.Multiply(conj).Real
	return Complex{
		Real:      numerator.Real / denominator,
		Imaginary: numerator.Imaginary / denominator,
	}
}

// Conjugate returns Real - Imaginary·i
func (c Complex) Conjugate() Complex {
	return Complex{Real: c.Real, Imaginary: -c.Imaginary}
}

// Abs returns the modulus |c|
func (c Complex) Abs() float64 {
	return math.Hypot(c.Real, c.Imaginary)
}

// Equal reports whether both parts are equal. NaN parts are never equal.
func (c Complex) Equal(other Complex) bool {
	return c.Real == other.Real && c.Imaginary == other.Imaginary
}

// AddAssign sets c to c + other and returns c
func (c *Complex) AddAssign(other Complex) *Complex {
	*c = c.Add(other)
	return c
}

// SubtractAssign sets c to c - other and returns c
func (c *Complex) SubtractAssign(other Complex) *Complex {
	*c = c.Subtract(other)
	return c
}

// MultiplyAssign sets c to c · other and returns c
func (c *Complex) MultiplyAssign(other Complex) *Complex {
	*c = c.Multiply(other)
	return c
}

// DivideAssign sets c to c / other and returns c
func (c *Complex) DivideAssign(other Complex) *Complex {
	*c = c.Divide(other)
	return c
}

// ConjugateAssign sets c to its conjugate and returns c
func (c *Complex) ConjugateAssign() *Complex {
	*c = c.Conjugate()
	return c
}

// String renders "a + bi", or "a - bi" when the imaginary part is negative.
// The imaginary magnitude is always printed without sign.
func (c Complex) String() string {
	sep := " + "
	if c.Imaginary < 0 {
		sep = " - "
	}
	return formatFloat(c.Real) + sep + formatFloat(math.Abs(c.Imaginary)) + "i"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseComplex parses the String rendering of a complex number. Spaces are
// optional; "3", "2i", "-i" and "1.5e3 - 2i" are all accepted.
func ParseComplex(s string) (Complex, error) {
	text := strings.Join(strings.Fields(s), "")
	if text == "" {
		return Complex{}, errors.MathxInvalidComplex(s, nil)
	}

	if !strings.HasSuffix(text, "i") {
		re, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Complex{}, errors.MathxInvalidComplex(s, err)
		}
		return Complex{Real: re}, nil
	}

	body := strings.TrimSuffix(text, "i")
	split := imaginarySplit(body)

	im, err := parseImaginary(body[split:])
	if err != nil {
		return Complex{}, errors.MathxInvalidComplex(s, err)
	}
	if split == 0 {
		return Complex{Imaginary: im}, nil
	}

	re, err := strconv.ParseFloat(body[:split], 64)
	if err != nil {
		return Complex{}, errors.MathxInvalidComplex(s, err)
	}
	return Complex{Real: re, Imaginary: im}, nil
}

// MustParseComplex is like ParseComplex but panics on malformed input
func MustParseComplex(s string) Complex {
	c, err := ParseComplex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// imaginarySplit returns the index of the sign that starts the imaginary
// term, or 0 when the whole text is imaginary. Exponent signs are skipped.
func imaginarySplit(body string) int {
	for i := len(body) - 1; i > 0; i-- {
		if body[i] != '+' && body[i] != '-' {
			continue
		}
		if prev := body[i-1]; prev == 'e' || prev == 'E' {
			continue
		}
		return i
	}
	return 0
}

func parseImaginary(term string) (float64, error) {
	switch term {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.ParseFloat(term, 64)
}
