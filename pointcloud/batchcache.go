// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

// BatchDirtyMode selects which parts of an external draw-batch cache
// a dirty tag applies to.
type BatchDirtyMode int32

const (
	// BatchDirtyAll invalidates all cached draw batches.
	BatchDirtyAll BatchDirtyMode = iota

	// BatchDirtySelection invalidates only selection-display batches.
	BatchDirtySelection
)

// BatchCache is an optional capability, provided by an external
// drawing layer, for caching GPU draw batches derived from a point
// cloud. The entity only notifies it; absence is the default, no-op
// state.
type BatchCache interface {
	// DirtyTag marks the cached batches as out of date.
	DirtyTag(mode BatchDirtyMode)

	// Free releases all cached batches.
	Free()
}

// SetBatchCache injects the draw-batch caching capability.
// Passing nil removes it.
func (pc *PointCloud) SetBatchCache(bc BatchCache) {
	pc.batchCache = bc
}

// BatchCacheDirtyTag notifies the draw-batch cache, if any, that its
// batches are out of date.
func (pc *PointCloud) BatchCacheDirtyTag(mode BatchDirtyMode) {
	if pc.batchCache != nil {
		pc.batchCache.DirtyTag(mode)
	}
}

// BatchCacheFree releases the draw-batch cache contents, if any.
// Called when the entity is discarded.
func (pc *PointCloud) BatchCacheFree() {
	if pc.batchCache != nil {
		pc.batchCache.Free()
	}
}
