// SPDX-License-Identifier: MIT

package qmc

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Accelerator launches kernels on a device. Launch calls kernel(i) for every
// i in [0, n), possibly concurrently, and returns when all calls finished.
type Accelerator interface {
	Launch(ctx context.Context, device int, n int, kernel func(i int)) error
}

// HostAccelerator emulates a device with Lanes goroutines on the host, each
// taking every Lanes-th index.
type HostAccelerator struct {
	Lanes int
}

// Launch implements Accelerator. Device ids below HostDevice are rejected.
func (h HostAccelerator) Launch(ctx context.Context, device int, n int, kernel func(i int)) error {
	if device < HostDevice {
		return fmt.Errorf("qmc: host accelerator: invalid device %d", device)
	}
	lanes := max(h.Lanes, 1)
	lanes = min(lanes, n)

	g, gctx := errgroup.WithContext(ctx)
	for lane := 0; lane < lanes; lane++ {
		g.Go(func() error {
			for i := lane; i < n; i += lanes {
				if err := gctx.Err(); err != nil {
					return err
				}
				kernel(i)
			}
			return nil
		})
	}

	return g.Wait()
}
