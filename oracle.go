// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import "math"

// lowerBound computes the smallest integer k such that
// k^2 * epsB^2 >= du * dv * epsA^2, where du, dv are closed-neighbourhood
// sizes (degree+1). This is the exact integer threshold that
// sigma(u,v) >= eps reduces to once eps is expressed as the rational
// epsA/epsB: the floating-point sqrt gives a first estimate, corrected by
// at most one increment using 64-bit integer arithmetic so the result is
// exact regardless of floating-point rounding.
func lowerBound(du, dv, epsA, epsB int32) int {
	num := float64(du) * float64(dv) * float64(epsA) * float64(epsA)
	den := float64(epsB) * float64(epsB)
	k := int64(math.Sqrt(num / den))
	if k < 0 {
		k = 0
	}
	for k*k*int64(epsB)*int64(epsB) < int64(du)*int64(dv)*int64(epsA)*int64(epsA) {
		k++
	}
	return int(k)
}

// eval performs the exact sigma(u,v) >= eps comparison via sorted
// intersection of N[u] and N[v], exiting as soon as the answer is
// decided: either cn has reached k, or one side's remaining candidates
// can no longer make up the difference. k is the required intersection
// size carried by the edge's Bound(k) state.
func (g *Graph) eval(u, v, k int) bool {
	cn := 2 // u and v each count themselves as members of the other's closed neighbourhood
	iu, _ := g.EdgeRange(u)
	iv, _ := g.EdgeRange(v)
	du := g.Degree(u) + 2
	dv := g.Degree(v) + 2

	for {
		if cn >= k {
			return true
		}
		if du < k || dv < k {
			return false
		}
		// Termination is guaranteed because both ranges are finite and
		// one of the three conditions above must trigger before either
		// cursor overruns its range.
		switch {
		case g.adj[iu] < g.adj[iv]:
			iu++
			du--
		case g.adj[iu] > g.adj[iv]:
			iv++
			dv--
		default:
			cn++
			iu++
			iv++
		}
	}
}
