// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomset

import (
	"testing"

	"github.com/geomcore/geomcore/math32"
	"github.com/geomcore/geomcore/pointcloud"
	"github.com/stretchr/testify/assert"
)

func TestReleaseOwned(t *testing.T) {
	pc := pointcloud.NewWithPoints(2)
	gs := FromPointCloud(pc, Owned)

	comp, ok := gs.Release(PointCloudKind)
	assert.True(t, ok)
	assert.Same(t, pc, comp.(*PointCloudComponent).PointCloud)
	assert.False(t, gs.Has(PointCloudKind))
}

func TestReleaseReadOnly(t *testing.T) {
	pc := pointcloud.NewWithPoints(2)
	gs := FromPointCloud(pc, ReadOnly)

	_, ok := gs.Release(PointCloudKind)
	assert.False(t, ok)
	// the read-only component stays visible
	assert.True(t, gs.Has(PointCloudKind))
	assert.Same(t, pc, gs.PointCloud())
}

func TestReleaseAbsent(t *testing.T) {
	gs := NewGeometrySet()
	_, ok := gs.Release(PointCloudKind)
	assert.False(t, ok)
}

func TestTakePointCloudOwned(t *testing.T) {
	pc := pointcloud.NewWithPoints(2)
	gs := FromPointCloud(pc, Owned)

	got, owned := gs.TakePointCloud()
	assert.Same(t, pc, got)
	assert.True(t, owned)

	// a read-only alias of the same data is re-inserted so later
	// consumers can still observe it
	comp, own, ok := gs.Component(PointCloudKind)
	assert.True(t, ok)
	assert.Equal(t, ReadOnly, own)
	assert.Same(t, pc, comp.(*PointCloudComponent).PointCloud)
}

func TestTakePointCloudReadOnly(t *testing.T) {
	pc := pointcloud.NewWithPoints(2)
	gs := FromPointCloud(pc, ReadOnly)

	got, owned := gs.TakePointCloud()
	assert.Same(t, pc, got)
	assert.False(t, owned)
	assert.True(t, gs.Has(PointCloudKind))
}

func TestTakePointCloudEmpty(t *testing.T) {
	gs := NewGeometrySet()
	got, owned := gs.TakePointCloud()
	assert.Nil(t, got)
	assert.False(t, owned)

	gs.Replace(&PointCloudComponent{}, Owned)
	got, owned = gs.TakePointCloud()
	assert.Nil(t, got)
	assert.False(t, owned)
	assert.False(t, gs.Has(PointCloudKind)) // empty component is removed
}

func TestPointCloudForWriteCopiesReadOnly(t *testing.T) {
	src := pointcloud.NewWithPoints(1)
	src.PositionsForWrite()[0] = math32.Vec3(1, 2, 3)
	src.TagPositionsChanged()

	gs := FromPointCloud(src, ReadOnly)
	w := gs.PointCloudForWrite()
	assert.NotSame(t, src, w)
	w.PositionsForWrite()[0] = math32.Vec3(9, 9, 9)
	w.TagPositionsChanged()

	// the original is untouched
	assert.Equal(t, math32.Vec3(1, 2, 3), src.Positions()[0])

	// now owned: further writes do not clone again
	assert.Same(t, w, gs.PointCloudForWrite())
}

func TestReplaceOverwrites(t *testing.T) {
	a := pointcloud.NewWithPoints(1)
	b := pointcloud.NewWithPoints(2)
	gs := FromPointCloud(a, ReadOnly)
	gs.ReplacePointCloud(b, Owned)

	comp, own, ok := gs.Component(PointCloudKind)
	assert.True(t, ok)
	assert.Equal(t, Owned, own)
	assert.Same(t, b, comp.(*PointCloudComponent).PointCloud)
}
