// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unsafe"

	"github.com/geomcore/geomcore/base/slicesx"
	"github.com/geomcore/geomcore/math32"
)

// Buffer is the generic implementation of [Column] for element type T.
type Buffer[T ElemTypes] struct {
	Values []T
}

// New returns a new column of element type T with n elements, zero-filled.
func New[T ElemTypes](n int) *Buffer[T] {
	return &Buffer[T]{Values: make([]T, n)}
}

// NewFromValues returns a new 1-dimensional column initialized directly
// from the given values, which are not copied: the column wraps them.
func NewFromValues[T ElemTypes](vals ...T) *Buffer[T] {
	return &Buffer[T]{Values: vals}
}

func (cb *Buffer[T]) DataType() DataType {
	return TypeFor[T]()
}

func (cb *Buffer[T]) Len() int { return len(cb.Values) }

func (cb *Buffer[T]) SetLen(n int) {
	cb.Values = slicesx.SetLength(cb.Values, n)
}

func (cb *Buffer[T]) Sizeof() int64 {
	var v T
	return int64(unsafe.Sizeof(v)) * int64(len(cb.Values))
}

// Fill sets all values to the given value.
func (cb *Buffer[T]) Fill(val T) {
	slicesx.Fill(cb.Values, val)
}

// Clone returns a duplicate of this column with its own separate
// memory for all the values.
func (cb *Buffer[T]) Clone() Column {
	return &Buffer[T]{Values: slices.Clone(cb.Values)}
}

func (cb *Buffer[T]) String1D(i int) string {
	switch v := any(cb.Values[i]).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case bool:
		return strconv.FormatBool(v)
	case math32.Vector3:
		return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
	}
	return ""
}

func (cb *Buffer[T]) SetString1D(val string, i int) error {
	switch any(cb.Values[i]).(type) {
	case float32:
		fv, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return err
		}
		cb.Values[i] = any(float32(fv)).(T)
	case int32:
		iv, err := strconv.ParseInt(val, 10, 32)
		if err != nil {
			return err
		}
		cb.Values[i] = any(int32(iv)).(T)
	case bool:
		bv, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		cb.Values[i] = any(bv).(T)
	case math32.Vector3:
		fs := strings.Fields(val)
		if len(fs) != 3 {
			return fmt.Errorf("column.SetString1D: vector value %q must have 3 fields", val)
		}
		var vec math32.Vector3
		for d, f := range fs {
			fv, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return err
			}
			switch d {
			case 0:
				vec.X = float32(fv)
			case 1:
				vec.Y = float32(fv)
			case 2:
				vec.Z = float32(fv)
			}
		}
		cb.Values[i] = any(vec).(T)
	}
	return nil
}
