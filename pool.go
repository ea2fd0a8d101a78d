// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runBatches partitions [0,n) into fixed-size batches and runs fn over
// each batch on a fresh errgroup.Group, sized to e.cfg.Threads. The group
// (and its goroutines) is torn down when runBatches returns, so the next
// phase's call to runBatches starts a brand-new pool: each phase is a
// clean barrier, with no worker state surviving across it. The group's
// first-error-wins cancellation is seen only by tasks that have not yet
// started; a task already running is not interrupted.
func (e *Engine) runBatches(ctx context.Context, n, batchSize int, fn func(start, end int) error) error {
	if n == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = n
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Threads)

	for start := 0; start < n; start += batchSize {
		end := start + batchSize
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			if err := checkCancelled(gctx); err != nil {
				return err
			}
			return fn(start, end)
		})
	}

	return g.Wait()
}
