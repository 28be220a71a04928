// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomset

import (
	"fmt"

	"github.com/geomcore/geomcore/pointcloud"
	"github.com/google/uuid"
)

// EvalMode selects which stages run for an evaluation.
type EvalMode int32

const (
	// Realtime is interactive evaluation with caching enabled.
	Realtime EvalMode = iota

	// Render is final-quality evaluation for rendering.
	Render
)

func (em EvalMode) String() string {
	switch em {
	case Realtime:
		return "Realtime"
	case Render:
		return "Render"
	}
	return fmt.Sprintf("EvalMode(%d)", int32(em))
}

// EvalContext carries the identity and mode of one evaluation request
// into each stage.
type EvalContext struct {
	// Mode is the evaluation mode stages are filtered by.
	Mode EvalMode

	// ObjectID identifies the object owning the geometry being evaluated.
	ObjectID uuid.UUID

	// SceneID identifies the scene the evaluation runs in.
	SceneID uuid.UUID
}

// Stage is one opaque transformation step applied to a geometry
// container during evaluation, e.g., a procedural modifier.
// A stage must treat a read-only component as immutable: use
// [GeometrySet.PointCloudForWrite] to clone before mutating.
type Stage interface {
	// Name identifies the stage in error reports.
	Name() string

	// Enabled reports whether the stage runs in the given mode.
	Enabled(mode EvalMode) bool

	// Apply reads and optionally replaces the container contents.
	// A non-nil error is recorded against the stage; it does not
	// abort the remaining stages.
	Apply(gs *GeometrySet, ctx *EvalContext) error
}

// StageFunc adapts a function to the [Stage] interface, enabled in
// every mode.
type StageFunc struct {
	// StageName identifies the stage in error reports.
	StageName string

	// Func is the transformation to apply.
	Func func(gs *GeometrySet, ctx *EvalContext) error
}

func (sf *StageFunc) Name() string { return sf.StageName }

func (sf *StageFunc) Enabled(mode EvalMode) bool { return true }

func (sf *StageFunc) Apply(gs *GeometrySet, ctx *EvalContext) error {
	return sf.Func(gs, ctx)
}

// StageError records a failure of one stage during evaluation.
type StageError struct {
	// Stage is the name of the failing stage.
	Stage string

	// Err is the failure.
	Err error
}

func (se *StageError) Error() string {
	return fmt.Sprintf("stage %q: %v", se.Stage, se.Err)
}

func (se *StageError) Unwrap() error { return se.Err }

// EvalResult is the outcome of evaluating a point cloud through a
// stage pipeline. It is always valid: a pipeline that produces no
// geometry yields an owned empty point cloud.
type EvalResult struct {
	// PointCloud is the evaluated entity: either the unmodified
	// source (shared) or a new independently owned entity.
	PointCloud *pointcloud.PointCloud

	// Owned is whether PointCloud is a new entity needing independent
	// destruction, rather than an alias of the source's lifetime.
	Owned bool

	// Geometry is the final container state, retaining the evaluated
	// geometry read-only for later consumers.
	Geometry *GeometrySet

	// StageErrors are the per-stage failures, in stage order.
	// Failures never abort the remaining stages.
	StageErrors []*StageError
}

// EvaluatePointCloud applies the given ordered stages to the given
// source point cloud, starting from a read-only view of the source so
// the original is never mutated in place, and returns the evaluated
// result. Stages observe the container strictly in the given order.
// Stages disabled for the context's mode are skipped. A nil ctx is
// treated as a zero [EvalContext] (Realtime mode, no identities).
func EvaluatePointCloud(src *pointcloud.PointCloud, stages []Stage, ctx *EvalContext) *EvalResult {
	if ctx == nil {
		ctx = &EvalContext{}
	}
	gs := FromPointCloud(src, ReadOnly)
	res := &EvalResult{Geometry: gs}
	for _, st := range stages {
		if !st.Enabled(ctx.Mode) {
			continue
		}
		if err := st.Apply(gs, ctx); err != nil {
			res.StageErrors = append(res.StageErrors, &StageError{Stage: st.Name(), Err: err})
		}
	}
	evalPC, _ := gs.TakePointCloud()
	if evalPC == nil {
		// the container ended without an owned point cloud:
		// the caller still always receives a valid entity.
		evalPC = pointcloud.New()
	}
	res.PointCloud = evalPC
	res.Owned = evalPC != src
	return res
}
