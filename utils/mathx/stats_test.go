// File: stats_test.go
// Title: Unit Tests for Descriptive Statistics
// Description: Max, Min, Sum, Average and Mode including empty input and
//              special float values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16

package mathx

import (
	"math"
	"reflect"
	"testing"
)

func TestMaxMin(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantMax float64
		wantMin float64
	}{
		{"single", []float64{3}, 3, 3},
		{"ascending", []float64{1, 2, 3}, 3, 1},
		{"descending", []float64{3, 2, 1}, 3, 1},
		{"negatives", []float64{-5, -1, -9}, -1, -9},
		{"ties", []float64{2, 7, 7, 2}, 7, 2},
		{"infinities", []float64{math.Inf(-1), 0, math.Inf(1)}, math.Inf(1), math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Max(tt.values...); got != tt.wantMax {
				t.Errorf("Max(%v) = %v; want %v", tt.values, got, tt.wantMax)
			}
			if got := Min(tt.values...); got != tt.wantMin {
				t.Errorf("Min(%v) = %v; want %v", tt.values, got, tt.wantMin)
			}
		})
	}
}

func TestMaxMinIntegers(t *testing.T) {
	if got := Max(4, 9, -2); got != 9 {
		t.Errorf("Max(4, 9, -2) = %d; want 9", got)
	}
	if got := Min[uint8](4, 9, 2); got != 2 {
		t.Errorf("Min[uint8](4, 9, 2) = %d; want 2", got)
	}
}

func TestMaxMinEmptyPanics(t *testing.T) {
	for name, fn := range map[string]func(...float64) float64{
		"Max": Max[float64],
		"Min": Min[float64],
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s() expected panic on empty input", name)
				}
			}()
			fn()
		})
	}
}

func TestSum(t *testing.T) {
	if got := Sum[float64](); got != 0 {
		t.Errorf("Sum() = %v; want 0", got)
	}
	if got := Sum(1.5, 2.5, -1); got != 3 {
		t.Errorf("Sum(1.5, 2.5, -1) = %v; want 3", got)
	}
	if got := Sum(1, 2, 3, 4); got != 10 {
		t.Errorf("Sum(1, 2, 3, 4) = %v; want 10", got)
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{[]float64{4}, 4},
		{[]float64{1, 2, 3, 4}, 2.5},
		{[]float64{-2, 2}, 0},
	}

	for _, tt := range tests {
		if got := Average(tt.values...); got != tt.want {
			t.Errorf("Average(%v) = %v; want %v", tt.values, got, tt.want)
		}
	}

	if got := Average(1, 2); got != 1.5 {
		t.Errorf("Average(1, 2) over ints = %v; want 1.5", got)
	}
	if got := Average[float64](); !math.IsNaN(got) {
		t.Errorf("Average() = %v; want NaN", got)
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{"two modes", []float64{1, 2, 2, 3, 3}, []float64{2, 3}},
		{"all distinct", []float64{1, 2, 3}, []float64{1, 2, 3}},
		{"single mode", []float64{4, 1, 4, 2}, []float64{4}},
		{"first occurrence order", []float64{3, 1, 1, 3, 2}, []float64{3, 1}},
		{"single value", []float64{7}, []float64{7}},
		{"signed zeros distinct", []float64{0, math.Copysign(0, -1), 0}, []float64{0}},
		{"empty", nil, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mode(tt.values...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Mode(%v) = %v; want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestModeNaN(t *testing.T) {
	got := Mode(math.NaN(), 1, math.NaN())
	if len(got) != 1 || !math.IsNaN(got[0]) {
		t.Errorf("Mode(NaN, 1, NaN) = %v; want [NaN]", got)
	}
}
