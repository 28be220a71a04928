// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geomset provides the geometry container passed through the
// evaluation pipeline: a polymorphic holder of geometry components,
// each tagged as exclusively owned or borrowed read-only, with the
// ownership-transfer operations the pipeline is built on.
package geomset

import (
	"fmt"

	"github.com/geomcore/geomcore/pointcloud"
)

// ComponentKind identifies the kind of geometry a component holds.
// A [GeometrySet] holds at most one component per kind.
type ComponentKind int32

const (
	// PointCloudKind is a point-cloud geometry component.
	PointCloudKind ComponentKind = iota

	// ComponentKindsN is the number of component kinds.
	ComponentKindsN
)

func (ck ComponentKind) String() string {
	switch ck {
	case PointCloudKind:
		return "PointCloud"
	}
	return fmt.Sprintf("ComponentKind(%d)", int32(ck))
}

// Ownership tags how a [GeometrySet] holds a component.
type Ownership int32

const (
	// Owned means the container holds the component exclusively and
	// it may be mutated in place or transferred out.
	Owned Ownership = iota

	// ReadOnly means the component is a borrowed view of data owned
	// elsewhere and must never be mutated in place. A consumer
	// wanting to mutate must first clone into an Owned component.
	ReadOnly
)

func (ow Ownership) String() string {
	switch ow {
	case Owned:
		return "Owned"
	case ReadOnly:
		return "ReadOnly"
	}
	return fmt.Sprintf("Ownership(%d)", int32(ow))
}

// Component is one kind of geometry data held in a [GeometrySet].
type Component interface {
	// Kind returns the kind of geometry this component holds.
	Kind() ComponentKind

	// IsEmpty reports whether the component holds no geometry data.
	IsEmpty() bool

	// CopyForWrite returns an owned deep copy of this component,
	// used to clone a read-only component before mutation.
	CopyForWrite() Component
}

// PointCloudComponent holds a point cloud in a [GeometrySet].
type PointCloudComponent struct {
	PointCloud *pointcloud.PointCloud
}

func (pcc *PointCloudComponent) Kind() ComponentKind { return PointCloudKind }

func (pcc *PointCloudComponent) IsEmpty() bool { return pcc.PointCloud == nil }

func (pcc *PointCloudComponent) CopyForWrite() Component {
	if pcc.PointCloud == nil {
		return &PointCloudComponent{}
	}
	return &PointCloudComponent{PointCloud: pcc.PointCloud.CloneForEval()}
}

type entry struct {
	comp Component
	own  Ownership
}

// GeometrySet is the container of geometry components passed through
// the evaluation pipeline, holding at most one component per kind,
// each tagged with its [Ownership].
type GeometrySet struct {
	components map[ComponentKind]*entry
}

// NewGeometrySet returns a new empty [GeometrySet].
func NewGeometrySet() *GeometrySet {
	return &GeometrySet{components: make(map[ComponentKind]*entry)}
}

// FromPointCloud returns a new [GeometrySet] holding the given point
// cloud with the given ownership.
func FromPointCloud(pc *pointcloud.PointCloud, own Ownership) *GeometrySet {
	gs := NewGeometrySet()
	gs.Replace(&PointCloudComponent{PointCloud: pc}, own)
	return gs
}

// Has reports whether the container holds a component of the given kind.
func (gs *GeometrySet) Has(kind ComponentKind) bool {
	_, ok := gs.components[kind]
	return ok
}

// Component returns the component of the given kind and its
// ownership, or false if absent. The returned component must be
// treated as immutable if its ownership is [ReadOnly].
func (gs *GeometrySet) Component(kind ComponentKind) (Component, Ownership, bool) {
	ent, ok := gs.components[kind]
	if !ok {
		return nil, Owned, false
	}
	return ent.comp, ent.own, true
}

// Replace overwrites (or inserts) the entry for the component's kind
// with the given component and ownership tag.
func (gs *GeometrySet) Replace(comp Component, own Ownership) {
	gs.components[comp.Kind()] = &entry{comp: comp, own: own}
}

// Remove drops the entry of the given kind unconditionally.
func (gs *GeometrySet) Remove(kind ComponentKind) {
	delete(gs.components, kind)
}

// Release transfers the component of the given kind out of the
// container if it is owned, removing the entry entirely and returning
// the component with exclusive ownership to the caller. A read-only
// or absent component cannot be transferred: nothing is returned and
// a read-only entry is left in place.
func (gs *GeometrySet) Release(kind ComponentKind) (Component, bool) {
	ent, ok := gs.components[kind]
	if !ok || ent.own != Owned {
		return nil, false
	}
	delete(gs.components, kind)
	return ent.comp, true
}

// PointCloud returns the contained point cloud for reading,
// regardless of ownership, or nil if absent.
func (gs *GeometrySet) PointCloud() *pointcloud.PointCloud {
	ent, ok := gs.components[PointCloudKind]
	if !ok {
		return nil
	}
	return ent.comp.(*PointCloudComponent).PointCloud
}

// PointCloudForWrite returns the contained point cloud for mutation,
// first cloning a read-only component into an owned one
// (copy-on-write). Returns nil if the container has no point-cloud
// component.
func (gs *GeometrySet) PointCloudForWrite() *pointcloud.PointCloud {
	ent, ok := gs.components[PointCloudKind]
	if !ok {
		return nil
	}
	if ent.own == ReadOnly {
		ent.comp = ent.comp.CopyForWrite()
		ent.own = Owned
	}
	return ent.comp.(*PointCloudComponent).PointCloud
}

// ReplacePointCloud sets the point-cloud component to the given point
// cloud with the given ownership, replacing any existing one.
func (gs *GeometrySet) ReplacePointCloud(pc *pointcloud.PointCloud, own Ownership) {
	gs.Replace(&PointCloudComponent{PointCloud: pc}, own)
}

// TakePointCloud demotes the point-cloud component to a shared
// read-only alias, returning the exclusive handle if one existed.
// If the component is owned, the point cloud is returned with
// owned=true and a read-only non-owning alias of the same data is
// re-inserted, so later consumers of the container can still observe
// the geometry without a deep copy. If the component is read-only it
// stays in place and the borrowed point cloud is returned with
// owned=false. An empty or absent component is removed outright and
// nothing is returned.
func (gs *GeometrySet) TakePointCloud() (pc *pointcloud.PointCloud, owned bool) {
	ent, ok := gs.components[PointCloudKind]
	if !ok {
		return nil, false
	}
	if ent.comp.IsEmpty() {
		gs.Remove(PointCloudKind)
		return nil, false
	}
	pc = ent.comp.(*PointCloudComponent).PointCloud
	if comp, ok := gs.Release(PointCloudKind); ok {
		pc = comp.(*PointCloudComponent).PointCloud
		gs.ReplacePointCloud(pc, ReadOnly)
		return pc, true
	}
	return pc, false
}
