// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointcloud implements the point-cloud geometry entity:
// a per-point attribute store with typed accessors, lazily computed
// derived caches (bounds, point index) invalidated on mutation, and
// material slots shared with an external material system.
package pointcloud

import (
	"github.com/geomcore/geomcore/attrs"
	"github.com/geomcore/geomcore/base/lazy"
	"github.com/geomcore/geomcore/base/metadata"
	"github.com/geomcore/geomcore/column"
	"github.com/geomcore/geomcore/math32"
)

// Built-in attribute names with defined defaults.
const (
	// AttrPosition is the reserved position attribute. It always exists
	// for any point cloud with points and can never be removed.
	AttrPosition = "position"

	// AttrRadius is the per-point radius attribute.
	AttrRadius = "radius"

	// AttrMaterialIndex is the per-point material slot index attribute.
	AttrMaterialIndex = "material_index"
)

// DefaultRadius is the uniform radius used when there is no radius attribute.
const DefaultRadius = float32(0.01)

// PointCloud is a geometric point-cloud entity. It exclusively owns
// its attribute store and derived caches; materials are shared
// references to external material entities.
//
// Mutation through the ForWrite accessors must be followed by the
// corresponding Tag call ([PointCloud.TagPositionsChanged],
// [PointCloud.TagRadiiChanged]) before the mutation is considered
// complete. The accessors cannot observe writes through the returned
// spans, so a caller that forgets the tag leaves stale derived caches
// observable on the next read.
type PointCloud struct {
	// Attrs is the per-point attribute store.
	Attrs *attrs.Store

	// Materials is the ordered list of material slots, shared with
	// the external material system.
	Materials []*Material

	// Meta is misc metadata for the entity (name, doc).
	Meta metadata.Data

	// derived caches, recomputed on demand after a Tag call.
	bounds           lazy.Cache[math32.Box3]
	boundsWithRadius lazy.Cache[math32.Box3]
	index            lazy.Cache[*PointIndex]

	// batchCache is the optional injected draw-batch caching capability.
	batchCache BatchCache
}

// New returns a new empty point cloud with the reserved position
// attribute registered (with zero length).
func New() *PointCloud {
	pc := &PointCloud{Attrs: attrs.NewStore(attrs.Point, 0)}
	pc.Attrs.SetColumn(AttrPosition, column.New[math32.Vector3](0))
	return pc
}

// NewWithPoints returns a new point cloud with n points and a
// zero-filled position attribute.
func NewWithPoints(n int) *PointCloud {
	pc := New()
	pc.Attrs.SetElems(n)
	return pc
}

// NewNoAttributes returns a new point cloud with n points and no
// attributes at all, not even position. This is for internal scratch
// use where attribute columns are filled in afterward.
func NewNoAttributes(n int) *PointCloud {
	return &PointCloud{Attrs: attrs.NewStore(attrs.Point, n)}
}

// NumPoints returns the number of points.
func (pc *PointCloud) NumPoints() int {
	return pc.Attrs.Elems
}

// Clone returns a deep copy of this point cloud: attributes are
// cloned, material slot references are shared (the slots list itself
// is copied), and the derived cache state is carried over so the copy
// starts with the same bounds and index already available.
// The batch-cache capability is not carried: the copy starts with none.
func (pc *PointCloud) Clone() *PointCloud {
	cp := &PointCloud{Attrs: pc.Attrs.Clone()}
	cp.Materials = make([]*Material, len(pc.Materials))
	copy(cp.Materials, pc.Materials)
	cp.Meta.Copy(pc.Meta)
	cp.bounds.CopyFrom(&pc.bounds)
	cp.boundsWithRadius.CopyFrom(&pc.boundsWithRadius)
	cp.index.CopyFrom(&pc.index)
	return cp
}

// CloneForEval returns a copy of this point cloud suitable for use as
// the starting state of an evaluated result.
func (pc *PointCloud) CloneForEval() *PointCloud {
	return pc.Clone()
}

// AdoptFrom takes over the storage of the given temporary, unowned
// point cloud, discarding the temporary: its attribute store and cache
// state are adopted wholesale and the temporary is reset to empty.
// No other holder may retain a pointer into the temporary's storage.
func (pc *PointCloud) AdoptFrom(tmp *PointCloud) {
	pc.Attrs = tmp.Attrs
	pc.bounds.CopyFrom(&tmp.bounds)
	pc.boundsWithRadius.CopyFrom(&tmp.boundsWithRadius)
	pc.index.CopyFrom(&tmp.index)
	tmp.Attrs = attrs.NewStore(attrs.Point, 0)
	tmp.bounds.TagDirty()
	tmp.boundsWithRadius.TagDirty()
	tmp.index.TagDirty()
}

// CopyParameters copies the non-geometry parameters (material slots,
// metadata) from src into this point cloud.
func (pc *PointCloud) CopyParameters(src *PointCloud) {
	pc.Materials = make([]*Material, len(src.Materials))
	copy(pc.Materials, src.Materials)
	pc.Meta.Copy(src.Meta)
}

// Positions returns a read view of the position attribute, or nil if
// it is not present.
func (pc *PointCloud) Positions() []math32.Vector3 {
	vals, _ := attrs.Span[math32.Vector3](pc.Attrs, AttrPosition)
	return vals
}

// PositionsForWrite returns a writable view of the position attribute,
// allocating it zero-filled if not present. The caller must call
// [PointCloud.TagPositionsChanged] when done writing.
func (pc *PointCloud) PositionsForWrite() []math32.Vector3 {
	return attrs.WriteSpan(pc.Attrs, AttrPosition, math32.Vector3{})
}

// Radius returns the per-point radius as a [attrs.Varying]: the real
// radius attribute if present, and otherwise the uniform
// [DefaultRadius].
func (pc *PointCloud) Radius() attrs.Varying[float32] {
	return attrs.VaryingOrDefault(pc.Attrs, AttrRadius, DefaultRadius)
}

// RadiusForWrite returns a writable view of the radius attribute,
// allocating it filled with [DefaultRadius] if not present. The caller
// must call [PointCloud.TagRadiiChanged] when done writing.
func (pc *PointCloud) RadiusForWrite() []float32 {
	return attrs.WriteSpan(pc.Attrs, AttrRadius, DefaultRadius)
}

// AttributeRequired reports whether the named attribute is required
// and may never be removed while the entity lives.
func (pc *PointCloud) AttributeRequired(name string) bool {
	return name == AttrPosition
}

// RemoveAttribute deletes the given attribute column, returning false
// without removing anything if the attribute is required or not present.
func (pc *PointCloud) RemoveAttribute(name string) bool {
	if pc.AttributeRequired(name) {
		return false
	}
	return pc.Attrs.Remove(name)
}

// TagPositionsChanged must be called after any mutation of the
// position attribute: it dirties the bounds, radius-inclusive bounds,
// and point-index caches.
func (pc *PointCloud) TagPositionsChanged() {
	pc.bounds.TagDirty()
	pc.boundsWithRadius.TagDirty()
	pc.index.TagDirty()
}

// TagRadiiChanged must be called after any mutation of the radius
// attribute: it dirties only the radius-inclusive bounds cache, as
// radius does not affect plain bounds or the position-keyed index.
func (pc *PointCloud) TagRadiiChanged() {
	pc.boundsWithRadius.TagDirty()
}

// MaterialIndexMax returns the maximum per-point material index,
// clamped to the valid slot range, or false for a point cloud with
// no points.
func (pc *PointCloud) MaterialIndexMax() (int, bool) {
	if pc.NumPoints() == 0 {
		return 0, false
	}
	mi := attrs.VaryingOrDefault[int32](pc.Attrs, AttrMaterialIndex, 0)
	maxIndex := int32(0)
	if single, ok := mi.Single(); ok {
		maxIndex = single
	} else {
		for _, v := range mi.Values() {
			maxIndex = max(maxIndex, v)
		}
	}
	maxIndex = min(max(maxIndex, 0), MaxMaterialSlots)
	return int(maxIndex), true
}
