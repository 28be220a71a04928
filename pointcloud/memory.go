// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

// MemoryCounter accumulates the byte sizes of an entity's storage,
// attributed by name. A passive accumulator: counting has no side
// effects on the entity.
type MemoryCounter struct {
	// Total is the running total in bytes.
	Total int64

	// ByName attributes byte counts to individual named parts.
	ByName map[string]int64
}

// Add attributes the given number of bytes to the given name.
func (mc *MemoryCounter) Add(name string, bytes int64) {
	if mc.ByName == nil {
		mc.ByName = make(map[string]int64)
	}
	mc.ByName[name] += bytes
	mc.Total += bytes
}

// CountMemory attributes the byte size of each attribute column to
// the given counter.
func (pc *PointCloud) CountMemory(mc *MemoryCounter) {
	for i, c := range pc.Attrs.Values {
		mc.Add(pc.Attrs.Keys[i], c.Sizeof())
	}
}
