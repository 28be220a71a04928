// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import "github.com/geomcore/geomcore/math32"

// PointIndex is a uniform-grid spatial partition over point positions,
// supporting region queries. It is keyed on positions only, so it
// survives radius edits, and it is built lazily on first use after
// positions change.
type PointIndex struct {
	// Bounds is the overall extent the grid covers.
	Bounds math32.Box3

	// CellSize is the edge length of one grid cell.
	CellSize float32

	// Cells maps occupied cell coordinates to the indexes of the
	// points they contain.
	Cells map[CellCoord][]int32
}

// CellCoord is the integer coordinate of one grid cell.
type CellCoord struct{ X, Y, Z int32 }

// indexCellsPerAxis is the target grid resolution along the longest
// bounds axis.
const indexCellsPerAxis = 16

func buildPointIndex(positions []math32.Vector3) *PointIndex {
	pi := &PointIndex{Cells: make(map[CellCoord][]int32)}
	pi.Bounds.SetFromPoints(positions)
	sz := pi.Bounds.Size()
	longest := math32.Max(sz.X, math32.Max(sz.Y, sz.Z))
	pi.CellSize = longest / indexCellsPerAxis
	if pi.CellSize <= 0 {
		// degenerate extent (single point or all coincident)
		pi.CellSize = 1
	}
	for i, p := range positions {
		cc := pi.cellOf(p)
		pi.Cells[cc] = append(pi.Cells[cc], int32(i))
	}
	return pi
}

func (pi *PointIndex) cellOf(p math32.Vector3) CellCoord {
	rel := p.Sub(pi.Bounds.Min)
	return CellCoord{
		X: int32(rel.X / pi.CellSize),
		Y: int32(rel.Y / pi.CellSize),
		Z: int32(rel.Z / pi.CellSize),
	}
}

// NumCells returns the number of occupied grid cells.
func (pi *PointIndex) NumCells() int {
	return len(pi.Cells)
}

// PointsInRegion returns the indexes of all points whose cells
// intersect the given axis-aligned region. The result is a superset
// of the points strictly inside the region: callers needing exact
// containment filter against positions themselves.
func (pi *PointIndex) PointsInRegion(min, max math32.Vector3) []int32 {
	lo := pi.cellOf(pi.Bounds.ClampPoint(min))
	hi := pi.cellOf(pi.Bounds.ClampPoint(max))
	var pts []int32
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				pts = append(pts, pi.Cells[CellCoord{x, y, z}]...)
			}
		}
	}
	return pts
}

// PointIndex returns the lazily built spatial index over the current
// positions, or nil for a point cloud with no points. The index is
// rebuilt on first use after [PointCloud.TagPositionsChanged].
func (pc *PointCloud) PointIndex() *PointIndex {
	if pc.NumPoints() == 0 {
		return nil
	}
	return pc.index.Ensure(func() *PointIndex {
		return buildPointIndex(pc.Positions())
	})
}
