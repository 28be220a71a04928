// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// SetLength sets the length of the given slice,
// re-using and preserving existing values to the extent possible.
// Elements beyond the prior length are always zero values, including
// capacity re-exposed by a shrink followed by a regrow.
func SetLength[E any](s []E, n int) []E {
	if len(s) == n {
		return s
	}
	if len(s) > n {
		return s[:n]
	}
	old := len(s)
	s = slices.Grow(s, n-old)[:n]
	clear(s[old:])
	return s
}

// Fill sets every element of the given slice to the given value.
func Fill[E any](s []E, val E) {
	for i := range s {
		s[i] = val
	}
}
