// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import "github.com/geomcore/geomcore/math32"

// BoundsMinMax returns the axis-aligned bounds over all point
// positions, optionally expanded by per-point radius pads.
// A point cloud with no points has no bounds: the second return value
// is false and callers must branch on it rather than assume a
// zero-extent box.
//
// The result is cached and recomputed only after the corresponding
// Tag call; uniform-radius point clouds take a cheap path that pads
// the plain bounds instead of visiting every point again.
func (pc *PointCloud) BoundsMinMax(useRadius bool) (math32.Box3, bool) {
	if pc.NumPoints() == 0 {
		return math32.Box3{}, false
	}
	if !useRadius {
		bb := pc.bounds.Ensure(func() math32.Box3 {
			var bb math32.Box3
			bb.SetFromPoints(pc.Positions())
			return bb
		})
		return bb, true
	}
	bb := pc.boundsWithRadius.Ensure(func() math32.Box3 {
		radius := pc.Radius()
		if single, ok := radius.Single(); ok {
			bb, _ := pc.BoundsMinMax(false)
			bb.ExpandByScalar(single)
			return bb
		}
		radii := radius.Values()
		bb := math32.B3Empty()
		for i, p := range pc.Positions() {
			bb.ExpandBySphere(p, radii[i])
		}
		return bb
	})
	return bb, true
}
