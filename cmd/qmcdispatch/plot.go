// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qmc/dispatch"
	"github.com/katalvlaran/qmc/qmc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// convergenceSteps is the number of lattice sizes sampled by plotConvergence.
const convergenceSteps = 6

// plotConvergence integrates f on lattices of size MinN·2^k, one lattice per
// run, and plots the standard error against n on log-log axes.
func plotConvergence(ctx context.Context, cfg dispatch.Config, f qmc.Integrand[float64], path string, logger *slog.Logger) error {
	n := cfg.MinN
	if n == 0 {
		n = qmc.DefaultMinN
	}

	pts := make(plotter.XYs, 0, convergenceSteps)
	for k := 0; k < convergenceSteps; k++ {
		step := cfg
		step.MinN = n << k
		step.MaxEval = 1 // a single lattice
		h, err := dispatch.Dispatch[float64](step, dispatch.WithLogger(logger))
		if err != nil {
			return err
		}
		res, err := h.Integrate(ctx, f)
		if err != nil {
			return fmt.Errorf("convergence run n=%d: %w", step.MinN, err)
		}
		if res.Error > 0 {
			pts = append(pts, plotter.XY{X: float64(res.N), Y: res.Error})
		}
	}
	if len(pts) < 2 {
		return fmt.Errorf("convergence plot: %d usable points, need 2", len(pts))
	}

	p := plot.New()
	p.Title.Text = "Lattice rule convergence"
	p.X.Label.Text = "lattice points n"
	p.Y.Label.Text = "standard error"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("convergence plot: %w", err)
	}
	p.Add(line, points)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("convergence plot: %w", err)
	}

	return nil
}
