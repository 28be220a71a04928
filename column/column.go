// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column provides typed, homogeneous, resizable arrays of
// per-element values, used as the storage unit for geometry attributes.
// The supported element types are a closed set, tagged by [DataType]
// and dispatched at the accessor boundary, so there are never raw
// untyped buffers or manual casts.
package column

import (
	"fmt"

	"github.com/geomcore/geomcore/math32"
)

// DataType is the type tag for the element type of a [Column].
type DataType int32

const (
	// Float32 is a single float32 scalar per element.
	Float32 DataType = iota

	// Int32 is a single int32 per element.
	Int32

	// Bool is a single bool per element.
	Bool

	// Vector3 is a [math32.Vector3] (3 float32s) per element.
	Vector3

	// DataTypesN is the number of data types.
	DataTypesN
)

func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "Float32"
	case Int32:
		return "Int32"
	case Bool:
		return "Bool"
	case Vector3:
		return "Vector3"
	}
	return fmt.Sprintf("DataType(%d)", int32(dt))
}

// ElemTypes are the supported element types, matching the [DataType] tags.
type ElemTypes interface {
	float32 | int32 | bool | math32.Vector3
}

// Column is the interface for a single typed per-element array.
// It is implemented by the generic [Buffer] type specialized by the
// concrete types in [ElemTypes].
type Column interface {
	// DataType returns the type tag for the elements of this column.
	DataType() DataType

	// Len returns the number of elements.
	Len() int

	// SetLen resizes the column to n elements, retaining existing
	// values that fit and zero-filling any new elements.
	SetLen(n int)

	// Sizeof returns the number of bytes contained in this column's values.
	Sizeof() int64

	// Clone returns a duplicate of this column with its own separate
	// memory for all the values.
	Clone() Column

	// String1D returns the value at given index formatted as a string,
	// suitable for text-based serialization.
	String1D(i int) string

	// SetString1D sets the value at given index from its string form,
	// returning an error if it cannot be parsed.
	SetString1D(val string, i int) error
}

// TypeFor returns the [DataType] tag for the given element type.
func TypeFor[T ElemTypes]() DataType {
	var v T
	switch any(v).(type) {
	case float32:
		return Float32
	case int32:
		return Int32
	case bool:
		return Bool
	case math32.Vector3:
		return Vector3
	}
	panic("column.TypeFor: unexpected error: type not supported")
}

// NewOfType returns a new column of given [DataType] with n elements,
// zero-filled.
func NewOfType(dt DataType, n int) Column {
	switch dt {
	case Float32:
		return New[float32](n)
	case Int32:
		return New[int32](n)
	case Bool:
		return New[bool](n)
	case Vector3:
		return New[math32.Vector3](n)
	}
	panic(fmt.Sprintf("column.NewOfType: type not supported: %v", dt))
}

// Values returns the typed values slice of the given column if its
// element type is exactly T, otherwise nil. There is no implicit
// type coercion.
func Values[T ElemTypes](c Column) []T {
	if cb, ok := c.(*Buffer[T]); ok {
		return cb.Values
	}
	return nil
}
