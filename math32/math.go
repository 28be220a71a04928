// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and bounding-box math package
// for 3D geometry data.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Floating-point limit values.
const (
	MaxFloat32             = math.MaxFloat32
	SmallestNonzeroFloat32 = math.SmallestNonzeroFloat32
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// IsNaN reports whether f is an IEEE 754 "not-a-number" value.
func IsNaN(f float32) bool {
	return f != f
}
