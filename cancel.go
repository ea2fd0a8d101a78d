// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import "context"

// ErrCancelled is returned by Run when ctx is cancelled at a phase or
// task boundary. Cancellation is cooperative and only ever consulted at
// task boundaries, never inside a running task: a task that has already
// started always runs to completion.
var ErrCancelled = context.Canceled

// checkCancelled reports whether ctx has been cancelled. It is consulted
// once per task, before the task's work begins, never inside the task's
// inner loop - cancellation here is all-or-nothing per task.
func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
