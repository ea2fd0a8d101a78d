// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/victordeboy/ppSCAN"
)

func newClusterCmd() *cobra.Command {
	var epsA, epsB int32
	var mu, threads int

	cmd := &cobra.Command{
		Use:   "cluster <edge-list-file>",
		Short: "Cluster a graph by structural similarity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			g, err := readEdgeList(f)
			if err != nil {
				return err
			}

			cfg := pscan.DefaultConfig()
			if threads > 0 {
				cfg.Threads = threads
			}

			e, err := pscan.NewEngine(g, epsA, epsB, mu, cfg)
			if err != nil {
				return err
			}
			if err := e.Run(context.Background()); err != nil {
				return err
			}

			printResults(cmd, e, g.N())
			return nil
		},
	}

	cmd.Flags().Int32Var(&epsA, "eps-a", 1, "numerator of the similarity threshold (eps = eps-a/eps-b)")
	cmd.Flags().Int32Var(&epsB, "eps-b", 2, "denominator of the similarity threshold")
	cmd.Flags().IntVar(&mu, "mu", 2, "minimum structural neighbourhood size")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker count; 0 uses the number of CPUs")

	return cmd
}

// printResults writes one line per vertex: "<id> LABEL [cluster=<id>]".
// A non-core vertex's per-core assignments are collapsed into a single
// label by NewLabelling before printing, so a HUB line carries no
// cluster= suffix even though the underlying core set may have emitted
// more than one assignment for it.
func printResults(cmd *cobra.Command, e *pscan.Engine, n int) {
	labels := pscan.NewLabelling(e)
	out := cmd.OutOrStdout()
	for v := 0; v < n; v++ {
		label := labels.Label(v)
		switch label {
		case pscan.Core, pscan.Member:
			fmt.Fprintf(out, "%d %s cluster=%d\n", v, label, labels.ClusterID(v))
		default:
			fmt.Fprintf(out, "%d %s\n", v, label)
		}
	}
}
