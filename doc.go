// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pscan implements the core of the pSCAN structural graph
// clustering algorithm: parallel edge pruning, two-pass lazy core
// checking, union-find based core clustering, and non-core assignment.
//
// Given an undirected graph in Compressed-Sparse-Row form, a similarity
// threshold eps decomposed into two integers (epsA, epsB) such that
// epsA^2/epsB^2 == eps^2, and a minimum neighbourhood size mu, Engine
// partitions vertices into density-connected clusters and classifies the
// remainder as hubs, cluster members, or outliers.
//
// Graph ingestion, parsing of the eps literal, output serialization, and
// thread-pool plumbing beyond the batch/worker-count knobs in Config are
// left to callers; see cmd/pscan for a minimal command-line client
// exercising those concerns.
package pscan
