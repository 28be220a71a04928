// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrs

import "github.com/geomcore/geomcore/column"

// Varying is a logical array of length N that is either backed by a
// real attribute column or is a single uniform value repeated N times.
// It abstracts "attribute present vs using uniform default" behind one
// read interface, so consumers never branch on presence. Consumers
// that care about the distinction for performance can use
// [Varying.Single] to take a cheap uniform path.
type Varying[T column.ElemTypes] struct {
	values []T
	single T
	n      int
}

// VaryingOrDefault returns the named column of the given store as a
// [Varying] if it exists with element type exactly T, and otherwise a
// uniform [Varying] of the given default value with the store's
// element count.
func VaryingOrDefault[T column.ElemTypes](st *Store, name string, def T) Varying[T] {
	if vals, ok := Span[T](st, name); ok {
		return Varying[T]{values: vals, n: len(vals)}
	}
	return Varying[T]{single: def, n: st.Elems}
}

// VaryingSingle returns a uniform [Varying] of the given value and length.
func VaryingSingle[T column.ElemTypes](val T, n int) Varying[T] {
	return Varying[T]{single: val, n: n}
}

// VaryingSpan returns a [Varying] backed by the given values.
func VaryingSpan[T column.ElemTypes](vals []T) Varying[T] {
	return Varying[T]{values: vals, n: len(vals)}
}

// Len returns the logical length.
func (va Varying[T]) Len() int { return va.n }

// At returns the value at the given index.
func (va Varying[T]) At(i int) T {
	if va.values != nil {
		return va.values[i]
	}
	return va.single
}

// Single returns the uniform value and true if this array is uniform,
// so consumers can take a cheap path that does not visit every element.
func (va Varying[T]) Single() (T, bool) {
	if va.values == nil {
		return va.single, true
	}
	var zv T
	return zv, false
}

// Values returns the backing span, or nil if this array is uniform.
func (va Varying[T]) Values() []T { return va.values }
