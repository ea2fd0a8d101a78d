// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import "sync/atomic"

// Edge state is encoded as a single tagged int32: the low values are
// reserved for the two terminal verdicts, and every value from boundBase
// upward encodes a still-undecided Bound(k). A packed sentinel scheme
// like this only works if "terminal" and "still bound" can never be
// confused by comparing against zero, which is why the tag is explicit
// rather than relying on the sign of a raw intersection counter.
const (
	stateUnknown   int32 = 0
	stateDirect    int32 = 1
	stateNotDirect int32 = 2
	// Any value >= boundBase encodes Bound(k) with k = value - boundBase + 2.
	// k is never less than 2, so boundBase maps to k=2.
	boundBase int32 = 3
)

func boundState(k int) int32 {
	if k < 2 {
		panic("pscan: Bound(k) requires k >= 2")
	}
	return boundBase + int32(k-2)
}

func boundK(state int32) int {
	return int(state-boundBase) + 2
}

// edgeState is a lock-free per-directed-edge status table. A word-sized
// atomic store is sufficient: concurrent writers to the same index always
// agree on the terminal verdict, so a reader observing a stale Bound
// value merely triggers one redundant oracle call.
type edgeState struct {
	words []int32
}

func newEdgeState(m int) *edgeState {
	return &edgeState{words: make([]int32, m)}
}

func (es *edgeState) load(idx int) int32 {
	return atomic.LoadInt32(&es.words[idx])
}

func (es *edgeState) store(idx int, v int32) {
	atomic.StoreInt32(&es.words[idx], v)
}

// setBound writes a fresh Bound(k) during pruning. Pruning writes disjoint
// edge indices per task, so a plain atomic store (not a CAS) is enough.
func (es *edgeState) setBound(idx int, k int) {
	es.store(idx, boundState(k))
}

// setTerminal writes DIRECT or NOT_DIRECT. The transition is monotonic
// (Bound -> terminal, never the reverse) and idempotent: two endpoints
// racing to evaluate the same edge always compute the same verdict, so
// whichever write lands last is harmless.
func (es *edgeState) setTerminal(idx int, direct bool) {
	if direct {
		es.store(idx, stateDirect)
	} else {
		es.store(idx, stateNotDirect)
	}
}

func (es *edgeState) isDirect(idx int) bool    { return es.load(idx) == stateDirect }
func (es *edgeState) isNotDirect(idx int) bool { return es.load(idx) == stateNotDirect }
func (es *edgeState) isBound(idx int) bool     { return es.load(idx) >= boundBase }
