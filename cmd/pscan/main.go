// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pscan",
	Short: "Structural graph clustering via pSCAN",
	Long: `pscan clusters an undirected graph by structural similarity.

It reads a plain-text edge list, classifies every vertex as a cluster
core, a hub, a cluster member, or an outlier, and prints one line of
output per vertex.`,
}

func init() {
	rootCmd.AddCommand(newClusterCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
