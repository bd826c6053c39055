// File: stats.go
// Title: Descriptive Statistics
// Description: Generic Max, Min, Sum and Average over any integer or float
//              type, plus Mode over float64 samples.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial float64 implementation
// - 2026-10-16 v0.2.0: Generic Number constraint

package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type
type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the largest of values. It panics when values is empty.
func Max[T Number](values ...T) T {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest of values. It panics when values is empty.
func Min[T Number](values ...T) T {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Sum returns the total of values, or zero for no values
func Sum[T Number](values ...T) T {
	var sum T
	for _, v := range values {
		sum += v
	}
	return sum
}

// Average returns the arithmetic mean of values as float64.
// An empty input divides zero by zero and yields NaN.
func Average[T Number](values ...T) float64 {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// Mode returns every value that occurs the maximum number of times, in order
// of first appearance. When all values are distinct, all of them are
// returned. Values are compared bit for bit with every NaN treated as the
// same value, so 0 and -0 are counted separately.
func Mode(values ...float64) []float64 {
	counts := make(map[uint64]int, len(values))
	distinct := make([]float64, 0, len(values))
	maxCount := 0

	for _, v := range values {
		key := modeKey(v)
		if counts[key] == 0 {
			distinct = append(distinct, v)
		}
		counts[key]++
		if counts[key] > maxCount {
			maxCount = counts[key]
		}
	}

	modes := make([]float64, 0, len(distinct))
	for _, v := range distinct {
		if counts[modeKey(v)] == maxCount {
			modes = append(modes, v)
		}
	}
	return modes
}

func modeKey(v float64) uint64 {
	if math.IsNaN(v) {
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(v)
}
