// SPDX-License-Identifier: MIT

package qmc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// executor runs task(i) for every i in [0, tasks) and returns once all
// started calls have finished.
type executor interface {
	run(ctx context.Context, tasks int, task func(i int)) error
}

type serialExecutor struct{}

func (serialExecutor) run(ctx context.Context, tasks int, task func(int)) error {
	for i := 0; i < tasks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		task(i)
	}

	return nil
}

// poolExecutor runs tasks on at most threads goroutines.
type poolExecutor struct {
	threads int
}

func (p poolExecutor) run(ctx context.Context, tasks int, task func(int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.threads)
	for i := 0; i < tasks; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			task(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// deviceExecutor deals tasks round-robin to one lane per device.
type deviceExecutor struct {
	acc     Accelerator
	devices []int
}

func (d deviceExecutor) run(ctx context.Context, tasks int, task func(int)) error {
	lanes := len(d.devices)
	g, gctx := errgroup.WithContext(ctx)
	for lane, dev := range d.devices {
		n := tasks / lanes
		if lane < tasks%lanes {
			n++
		}
		if n == 0 {
			continue
		}
		g.Go(func() error {
			return d.acc.Launch(gctx, dev, n, func(j int) { task(j*lanes + lane) })
		})
	}

	return g.Wait()
}
