// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"

	"github.com/geomcore/geomcore/math32"
	"gonum.org/v1/gonum/mat"
)

// ToDense returns a gonum [mat.Dense] matrix with one row per element
// of the given numeric column: a single column of values for Float32
// and Int32, and three columns (x, y, z) for Vector3.
// Bool columns are not convertible.
func ToDense(c Column) (*mat.Dense, error) {
	switch cb := c.(type) {
	case *Buffer[float32]:
		dm := mat.NewDense(max(1, cb.Len()), 1, nil)
		for i, v := range cb.Values {
			dm.Set(i, 0, float64(v))
		}
		return dm, nil
	case *Buffer[int32]:
		dm := mat.NewDense(max(1, cb.Len()), 1, nil)
		for i, v := range cb.Values {
			dm.Set(i, 0, float64(v))
		}
		return dm, nil
	case *Buffer[math32.Vector3]:
		dm := mat.NewDense(max(1, cb.Len()), 3, nil)
		for i, v := range cb.Values {
			dm.Set(i, 0, float64(v.X))
			dm.Set(i, 1, float64(v.Y))
			dm.Set(i, 2, float64(v.Z))
		}
		return dm, nil
	}
	return nil, fmt.Errorf("column.ToDense: type not supported: %v", c.DataType())
}

// CopyDense copies a gonum [mat.Dense] matrix into the given column,
// resizing it to the number of matrix rows. The required matrix shape
// is the same as produced by [ToDense].
func CopyDense(c Column, dm *mat.Dense) error {
	nr, nc := dm.Dims()
	switch cb := c.(type) {
	case *Buffer[float32]:
		if nc != 1 {
			return fmt.Errorf("column.CopyDense: Float32 requires 1 matrix column, not %d", nc)
		}
		cb.SetLen(nr)
		for i := range cb.Values {
			cb.Values[i] = float32(dm.At(i, 0))
		}
	case *Buffer[int32]:
		if nc != 1 {
			return fmt.Errorf("column.CopyDense: Int32 requires 1 matrix column, not %d", nc)
		}
		cb.SetLen(nr)
		for i := range cb.Values {
			cb.Values[i] = int32(dm.At(i, 0))
		}
	case *Buffer[math32.Vector3]:
		if nc != 3 {
			return fmt.Errorf("column.CopyDense: Vector3 requires 3 matrix columns, not %d", nc)
		}
		cb.SetLen(nr)
		for i := range cb.Values {
			cb.Values[i] = math32.Vec3(float32(dm.At(i, 0)), float32(dm.At(i, 1)), float32(dm.At(i, 2)))
		}
	default:
		return fmt.Errorf("column.CopyDense: type not supported: %v", c.DataType())
	}
	return nil
}
