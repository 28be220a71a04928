// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrs

import (
	"testing"

	"github.com/geomcore/geomcore/column"
	"github.com/geomcore/geomcore/math32"
	"github.com/stretchr/testify/assert"
)

func TestStoreInvariant(t *testing.T) {
	st := NewStore(Point, 4)
	assert.NoError(t, st.AddColumn("radius", column.New[float32](0)))
	assert.NoError(t, st.AddColumn("selected", column.New[bool](10)))
	// every column is resized to the store's element count on add
	for _, c := range st.Values {
		assert.Equal(t, 4, c.Len())
	}
	assert.Error(t, st.AddColumn("radius", column.New[float32](0)))

	st.SetElems(7)
	for _, c := range st.Values {
		assert.Equal(t, 7, c.Len())
	}
}

func TestSetElemsShrinkRegrowZeros(t *testing.T) {
	st := NewStore(Point, 3)
	st.SetColumn("radius", column.New[float32](0))
	vals, _ := Span[float32](st, "radius")
	vals[2] = 7

	// values dropped by a shrink must not reappear on a later grow
	st.SetElems(1)
	st.SetElems(3)
	vals, _ = Span[float32](st, "radius")
	assert.Equal(t, []float32{0, 0, 0}, vals)
}

func TestStoreOrderDeterministic(t *testing.T) {
	st := NewStore(Point, 1)
	st.SetColumn("c", column.New[float32](0))
	st.SetColumn("a", column.New[float32](0))
	st.SetColumn("b", column.New[float32](0))
	assert.Equal(t, []string{"c", "a", "b"}, st.Keys)
}

func TestSpanExactTypeOnly(t *testing.T) {
	st := NewStore(Point, 3)
	st.SetColumn("radius", column.New[float32](0))

	vals, ok := Span[float32](st, "radius")
	assert.True(t, ok)
	assert.Len(t, vals, 3)

	_, ok = Span[int32](st, "radius")
	assert.False(t, ok)
	_, ok = Span[float32](st, "missing")
	assert.False(t, ok)
}

func TestWriteSpan(t *testing.T) {
	st := NewStore(Point, 3)
	vals := WriteSpan(st, "radius", float32(0.01))
	assert.Len(t, vals, 3)
	for _, v := range vals {
		assert.Equal(t, float32(0.01), v)
	}
	// second call returns the same registered column, not a refill
	vals[1] = 5
	again := WriteSpan(st, "radius", float32(0.01))
	assert.Equal(t, float32(5), again[1])
}

func TestWriteSpanEmptyStore(t *testing.T) {
	st := NewStore(Point, 0)
	vals := WriteSpan(st, "radius", float32(0.01))
	assert.Empty(t, vals)
	assert.Nil(t, st.Column("radius")) // nothing registered
}

func TestVaryingOrDefault(t *testing.T) {
	st := NewStore(Point, 3)

	va := VaryingOrDefault(st, "radius", float32(0.01))
	assert.Equal(t, 3, va.Len())
	single, ok := va.Single()
	assert.True(t, ok)
	assert.Equal(t, float32(0.01), single)
	assert.Equal(t, float32(0.01), va.At(2))

	rad := WriteSpan(st, "radius", float32(0.01))
	rad[2] = 2
	va = VaryingOrDefault(st, "radius", float32(0.01))
	_, ok = va.Single()
	assert.False(t, ok)
	assert.Equal(t, float32(2), va.At(2))
	assert.Len(t, va.Values(), 3)
}

func TestCloneSeparate(t *testing.T) {
	st := NewStore(Point, 2)
	pos := WriteSpan(st, "position", math32.Vector3{})
	pos[0] = math32.Vec3(1, 2, 3)

	cp := st.Clone()
	cpos, _ := Span[math32.Vector3](cp, "position")
	cpos[0] = math32.Vec3(9, 9, 9)
	assert.Equal(t, math32.Vec3(1, 2, 3), pos[0])
	assert.Equal(t, st.Keys, cp.Keys)
}

func TestExportRebuild(t *testing.T) {
	st := NewStore(Point, 2)
	pos := WriteSpan(st, "position", math32.Vector3{})
	pos[1] = math32.Vec3(1, 0, 0)
	WriteSpan(st, "radius", float32(0.5))

	recs := st.Export()
	assert.Len(t, recs, 2)
	assert.Equal(t, "position", recs[0].Name)
	assert.Equal(t, column.Vector3, recs[0].Type)

	st2 := NewStore(Point, 0)
	st2.Rebuild(recs, 2)
	assert.Equal(t, st.Keys, st2.Keys)
	p2, ok := Span[math32.Vector3](st2, "position")
	assert.True(t, ok)
	assert.Equal(t, math32.Vec3(1, 0, 0), p2[1])
}
