// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"bytes"
	"testing"

	"github.com/geomcore/geomcore/attrs"
	"github.com/geomcore/geomcore/column"
	"github.com/geomcore/geomcore/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func makeCloud(t *testing.T) *PointCloud {
	t.Helper()
	pc := NewWithPoints(3)
	pos := pc.PositionsForWrite()
	pos[0] = math32.Vec3(0, 0, 0)
	pos[1] = math32.Vec3(1.5, 0, -2)
	pos[2] = math32.Vec3(0, 1, 0.25)
	pc.TagPositionsChanged()
	rad := pc.RadiusForWrite()
	rad[2] = 0.5
	pc.TagRadiiChanged()
	sel := attrs.WriteSpan(pc.Attrs, "selected", false)
	sel[1] = true
	return pc
}

// exporting and rebuilding from the export yields identical column
// names, types, lengths, and contents.
func TestRecordRoundTrip(t *testing.T) {
	pc := makeCloud(t)
	recs := pc.ExportAttributes()

	pc2 := New()
	pc2.RebuildAttributes(recs, pc.NumPoints())
	recs2 := pc2.ExportAttributes()

	if diff := cmp.Diff(recs, recs2); diff != "" {
		t.Errorf("round-trip records mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	pc := makeCloud(t)

	var buf bytes.Buffer
	assert.NoError(t, pc.WriteCSV(&buf, Comma))

	pc2 := New()
	assert.NoError(t, pc2.ReadCSV(&buf, Comma))
	assert.Equal(t, pc.NumPoints(), pc2.NumPoints())
	assert.Equal(t, pc.Attrs.Keys, pc2.Attrs.Keys)
	if diff := cmp.Diff(pc.ExportAttributes(), pc2.ExportAttributes()); diff != "" {
		t.Errorf("round-trip attributes mismatch (-want +got):\n%s", diff)
	}

	bb, ok := pc2.BoundsMinMax(false)
	assert.True(t, ok)
	assert.Equal(t, float32(-2), bb.Min.Z)
}

func TestCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, New().WriteCSV(&buf, Tab))
	pc := New()
	assert.NoError(t, pc.ReadCSV(&buf, Tab))
	assert.Equal(t, 0, pc.NumPoints())
}

// files written before the generic attribute store kept positions as
// three scalar columns and radius under a legacy name; rebuilding
// migrates them.
func TestRebuildLegacyLayout(t *testing.T) {
	recs := []attrs.Record{
		{Name: "position_x", Type: column.Float32, Data: column.NewFromValues[float32](0, 1)},
		{Name: "position_y", Type: column.Float32, Data: column.NewFromValues[float32](2, 3)},
		{Name: "position_z", Type: column.Float32, Data: column.NewFromValues[float32](4, 5)},
		{Name: "point_radius", Type: column.Float32, Data: column.NewFromValues[float32](0.1, 0.2)},
	}
	pc := New()
	pc.RebuildAttributes(recs, 2)

	assert.Equal(t, 2, pc.NumPoints())
	assert.Nil(t, pc.Attrs.Column("position_x"))
	assert.Nil(t, pc.Attrs.Column("point_radius"))

	pos := pc.Positions()
	assert.Equal(t, math32.Vec3(0, 2, 4), pos[0])
	assert.Equal(t, math32.Vec3(1, 3, 5), pos[1])

	rad, ok := attrs.Span[float32](pc.Attrs, AttrRadius)
	assert.True(t, ok)
	assert.Equal(t, float32(0.2), rad[1])
}

// a current-layout position record wins over stray legacy components.
func TestRebuildPrefersCurrentLayout(t *testing.T) {
	pos := column.NewFromValues(math32.Vec3(7, 7, 7))
	recs := []attrs.Record{
		{Name: "position_x", Type: column.Float32, Data: column.NewFromValues[float32](0)},
		{Name: "position_y", Type: column.Float32, Data: column.NewFromValues[float32](0)},
		{Name: "position_z", Type: column.Float32, Data: column.NewFromValues[float32](0)},
		{Name: AttrPosition, Type: column.Vector3, Data: pos},
	}
	pc := New()
	pc.RebuildAttributes(recs, 1)
	assert.Equal(t, math32.Vec3(7, 7, 7), pc.Positions()[0])
}

func TestRebuildEnsuresPosition(t *testing.T) {
	pc := New()
	pc.RebuildAttributes([]attrs.Record{
		{Name: AttrRadius, Type: column.Float32, Data: column.NewFromValues[float32](1, 2)},
	}, 2)
	assert.Len(t, pc.Positions(), 2)
}
