// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import "context"

// Engine runs the pSCAN structural clustering algorithm over a fixed
// Graph and parameter set. Create one with NewEngine and call Run exactly
// once; Engine is not safe for concurrent calls to Run, and Run itself
// drives the only internal concurrency.
type Engine struct {
	graph *Graph
	epsA  int32
	epsB  int32
	mu    int
	cfg   Config

	edges   *edgeState
	classes *classification
	sets    *disjointSet

	cores       []int
	clusterID   []int
	assignments []Assignment

	ran    bool
	labels *Labelling
}

// NewEngine validates its preconditions and returns an Engine ready to
// Run. epsA and epsB are the pre-decomposed rational
// representation of eps such that epsA^2/epsB^2 == eps^2; epsA <= epsB,
// both positive. mu must be >= 2.
func NewEngine(g *Graph, epsA, epsB int32, mu int, cfg Config) (*Engine, error) {
	if g == nil {
		return nil, wrapGraphErr("NewEngine", -1, ErrOffsetMonotonicity)
	}
	if epsA <= 0 || epsB <= 0 {
		return nil, wrapParamErr("NewEngine", ErrEpsNonPositive)
	}
	if epsA > epsB {
		return nil, wrapParamErr("NewEngine", ErrEpsOrder)
	}
	if mu < 2 {
		return nil, wrapParamErr("NewEngine", ErrMuTooSmall)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.PruneBatch = firstPositive(cfg.PruneBatch, defaultPruneBatch)
	cfg.CheckFirstBatch = firstPositive(cfg.CheckFirstBatch, defaultCheckFirstBatch)
	cfg.CheckSecondBatch = firstPositive(cfg.CheckSecondBatch, defaultCheckSecondBatch)
	cfg.NonCoreEvalBatch = firstPositive(cfg.NonCoreEvalBatch, defaultNonCoreEvalBatch)

	return &Engine{
		graph:   g,
		epsA:    epsA,
		epsB:    epsB,
		mu:      mu,
		cfg:     cfg,
		edges:   newEdgeState(len(g.adj)),
		classes: newClassification(g.N()),
		sets:    newDisjointSet(g.N()),
	}, nil
}

// Run executes the four phases in order: pruning, two-pass core-checking,
// core clustering, non-core assignment (which folds in finalize between
// its eval and emit stages, since emit needs finalized cluster ids). Run
// may be called once; a second call returns ErrAlreadyRun.
func (e *Engine) Run(ctx context.Context) error {
	if e.ran {
		return wrapParamErr("Run", ErrAlreadyRun)
	}
	e.ran = true
	log := e.cfg.logger()

	log.Debugf("pscan: phase 1 prune starting")
	if err := e.prune(ctx); err != nil {
		return err
	}
	log.Debugf("pscan: phase 1 prune done")

	log.Debugf("pscan: phase 2 check-core first pass starting")
	if err := e.checkCoreFirstPass(ctx); err != nil {
		return err
	}
	log.Debugf("pscan: phase 2 check-core second pass starting")
	if err := e.checkCoreSecondPass(ctx); err != nil {
		return err
	}
	log.Debugf("pscan: phase 2 check-core done")

	log.Debugf("pscan: phase 3 cluster-core starting")
	e.clusterCores()
	log.Debugf("pscan: phase 3 cluster-core done")

	log.Debugf("pscan: phase 4 non-core assignment starting")
	if err := e.evalNonCoreEdges(ctx); err != nil {
		return err
	}
	e.finalize()
	e.emitNonCoreAssignments()
	log.Debugf("pscan: phase 4 non-core assignment done")

	return nil
}

// IsCore reports whether v was classified as a core vertex.
func (e *Engine) IsCore(v int) bool {
	return e.classes.core(v)
}

// Assignments returns the non-core assignment list built by Run. The
// returned slice is owned by the Engine and must not be mutated.
func (e *Engine) Assignments() []Assignment {
	return e.assignments
}

// ParentOf exposes the disjoint-set root for v, path-compressing as a
// side effect.
func (e *Engine) ParentOf(v int) int {
	return e.sets.find(v)
}

// Cores returns the ascending-id list of core vertices built during
// clustering. The returned slice is owned by the Engine and must not be
// mutated.
func (e *Engine) Cores() []int {
	return e.cores
}

// Label returns v's downstream classification (CORE, HUB, MEMBER, or
// OUTLIER). The underlying Labelling is built once, on first call, and
// reused for subsequent calls.
func (e *Engine) Label(v int) VertexLabel {
	if e.labels == nil {
		e.labels = NewLabelling(e)
	}
	return e.labels.Label(v)
}
