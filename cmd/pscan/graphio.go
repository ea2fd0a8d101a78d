// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/victordeboy/ppSCAN"
)

// readEdgeList parses a plain-text edge list, one undirected edge "u v"
// per line. Blank lines and lines starting with '#' are ignored. Vertex
// ids must be dense, zero-based integers; the vertex count is one plus
// the largest id seen.
func readEdgeList(r io.Reader) (*pscan.Graph, error) {
	var edges [][2]int
	maxID := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed edge line %q: expected \"u v\"", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("malformed vertex id %q: %w", fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed vertex id %q: %w", fields[1], err)
		}
		if u == v {
			continue // a self-loop contributes nothing to sigma; skip rather than reject
		}
		edges = append(edges, [2]int{u, v})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading edge list: %w", err)
	}

	n := maxID + 1
	adjSet := make([]map[int]struct{}, n)
	for i := range adjSet {
		adjSet[i] = make(map[int]struct{})
	}
	for _, e := range edges {
		adjSet[e[0]][e[1]] = struct{}{}
		adjSet[e[1]][e[0]] = struct{}{}
	}

	offset := make([]int32, n+1)
	var adj []int32
	for u := 0; u < n; u++ {
		nbrs := make([]int, 0, len(adjSet[u]))
		for v := range adjSet[u] {
			nbrs = append(nbrs, v)
		}
		sort.Ints(nbrs)
		offset[u+1] = offset[u] + int32(len(nbrs))
		for _, v := range nbrs {
			adj = append(adj, int32(v))
		}
	}

	return pscan.NewGraph(n, offset, adj)
}
