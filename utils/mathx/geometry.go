// File: geometry.go
// Title: Plane Geometry Helpers
// Description: Reflection of an integer point across a line and the angle of
//              the segment between two points.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Rounding no longer adds 0.5 before flooring

package mathx

import (
	"image"
	"math"
)

// Mirror reflects p across the line through (x0, y0) and (x1, y1).
// The reflected coordinates are rounded half up. The line is not checked:
// when both points coincide the coefficients are NaN and the result is
// the origin.
func Mirror(p image.Point, x0, y0, x1, y1 int) image.Point {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	a := (dx*dx - dy*dy) / (dx*dx + dy*dy)
	b := 2 * dx * dy / (dx*dx + dy*dy)

	px := float64(p.X - x0)
	py := float64(p.Y - y0)
	return image.Point{
		X: roundHalfUp(a*px + b*py + float64(x0)),
		Y: roundHalfUp(b*px - a*py + float64(y0)),
	}
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
// NaN maps to 0 and out-of-range values saturate.
func roundHalfUp(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	switch {
	case r >= math.MaxInt:
		return math.MaxInt
	case r <= math.MinInt:
		return math.MinInt
	}
	return int(r)
}

// AngleBetween returns the angle in radians of the vector from (x1, y1) to
// (x2, y2), in (-π, π].
func AngleBetween(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}
