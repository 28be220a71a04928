// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomset

import (
	"errors"
	"testing"

	"github.com/geomcore/geomcore/math32"
	"github.com/geomcore/geomcore/pointcloud"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// modalStage is a stage gated to a single evaluation mode.
type modalStage struct {
	name string
	mode EvalMode
	fn   func(gs *GeometrySet, ctx *EvalContext) error
}

func (ms *modalStage) Name() string { return ms.name }

func (ms *modalStage) Enabled(mode EvalMode) bool { return mode == ms.mode }

func (ms *modalStage) Apply(gs *GeometrySet, ctx *EvalContext) error {
	return ms.fn(gs, ctx)
}

func evalCtx(mode EvalMode) *EvalContext {
	return &EvalContext{Mode: mode, ObjectID: uuid.New(), SceneID: uuid.New()}
}

func TestEvaluatePassThrough(t *testing.T) {
	src := pointcloud.NewWithPoints(3)
	res := EvaluatePointCloud(src, nil, evalCtx(Realtime))
	assert.Same(t, src, res.PointCloud)
	assert.False(t, res.Owned)
	assert.Empty(t, res.StageErrors)

	// the container retains the source read-only
	assert.Same(t, src, res.Geometry.PointCloud())
}

func TestEvaluateNilContext(t *testing.T) {
	src := pointcloud.NewWithPoints(1)
	var gotMode EvalMode = Render
	recordMode := &StageFunc{
		StageName: "mode",
		Func: func(gs *GeometrySet, ctx *EvalContext) error {
			gotMode = ctx.Mode
			return nil
		},
	}
	res := EvaluatePointCloud(src, []Stage{recordMode}, nil)
	assert.Equal(t, Realtime, gotMode) // nil context defaults to zero
	assert.Same(t, src, res.PointCloud)
}

func TestEvaluateStageReplaces(t *testing.T) {
	src := pointcloud.NewWithPoints(1)
	src.PositionsForWrite()[0] = math32.Vec3(1, 0, 0)
	src.TagPositionsChanged()

	translate := &StageFunc{
		StageName: "translate",
		Func: func(gs *GeometrySet, ctx *EvalContext) error {
			pc := gs.PointCloudForWrite()
			for i := range pc.PositionsForWrite() {
				pc.PositionsForWrite()[i].SetAdd(math32.Vec3(0, 1, 0))
			}
			pc.TagPositionsChanged()
			return nil
		},
	}

	res := EvaluatePointCloud(src, []Stage{translate}, evalCtx(Realtime))
	assert.NotSame(t, src, res.PointCloud)
	assert.True(t, res.Owned)
	assert.Equal(t, math32.Vec3(1, 1, 0), res.PointCloud.Positions()[0])

	// the source is never mutated by the pipeline
	assert.Equal(t, math32.Vec3(1, 0, 0), src.Positions()[0])
}

func TestEvaluateDisabledStageSkipped(t *testing.T) {
	src := pointcloud.NewWithPoints(1)
	ran := false
	renderOnly := &modalStage{
		name: "render-only",
		mode: Render,
		fn: func(gs *GeometrySet, ctx *EvalContext) error {
			ran = true
			return nil
		},
	}

	res := EvaluatePointCloud(src, []Stage{renderOnly}, evalCtx(Realtime))
	assert.False(t, ran)
	assert.Same(t, src, res.PointCloud)

	EvaluatePointCloud(src, []Stage{renderOnly}, evalCtx(Render))
	assert.True(t, ran)
}

func TestEvaluateStageErrorRecorded(t *testing.T) {
	src := pointcloud.NewWithPoints(1)
	boom := errors.New("boom")
	failing := &StageFunc{
		StageName: "failing",
		Func: func(gs *GeometrySet, ctx *EvalContext) error {
			return boom
		},
	}
	ran := false
	after := &StageFunc{
		StageName: "after",
		Func: func(gs *GeometrySet, ctx *EvalContext) error {
			ran = true
			return nil
		},
	}

	res := EvaluatePointCloud(src, []Stage{failing, after}, evalCtx(Realtime))
	assert.True(t, ran) // a failing stage does not abort later stages
	if assert.Len(t, res.StageErrors, 1) {
		assert.Equal(t, "failing", res.StageErrors[0].Stage)
		assert.ErrorIs(t, res.StageErrors[0], boom)
	}
}

func TestEvaluateStageRemovesGeometry(t *testing.T) {
	src := pointcloud.NewWithPoints(2)
	drop := &StageFunc{
		StageName: "drop",
		Func: func(gs *GeometrySet, ctx *EvalContext) error {
			gs.Remove(PointCloudKind)
			return nil
		},
	}

	res := EvaluatePointCloud(src, []Stage{drop}, evalCtx(Realtime))
	// the result is still a valid entity: a fresh empty point cloud
	assert.NotNil(t, res.PointCloud)
	assert.NotSame(t, src, res.PointCloud)
	assert.True(t, res.Owned)
	assert.Equal(t, 0, res.PointCloud.NumPoints())
}
