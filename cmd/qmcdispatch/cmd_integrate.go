// SPDX-License-Identifier: MIT

package main

import (
	"encoding"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/qmc/dispatch"
	"github.com/katalvlaran/qmc/errslot"
	"github.com/katalvlaran/qmc/integrand"
	"github.com/spf13/cobra"
)

// integrateFlags holds the flags of the integrate command. Tuning flags only
// take effect when set on the command line.
type integrateFlags struct {
	configPath string

	epsRel              float64
	epsAbs              float64
	maxEval             uint64
	errorMode           string
	evaluateMinN        uint64
	minN                uint64
	minM                uint64
	maxNPerPackage      uint64
	maxMPerPackage      uint64
	cpuThreads          int
	cudaBlocks          uint64
	cudaThreadsPerBlock uint64
	verbosity           int
	seed                uint64
	transform           string
	fitFunction         string
	generatingVectors   string
	target              string
	devices             string

	dimension      int
	signCheckBelow float64
	plotPath       string
}

func newIntegrateCmd() *cobra.Command {
	var fl integrateFlags
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate the product x0·x1·…·x(d-1) over the unit hypercube",
		Long: `Integrate dispatches an integrator from the configuration and integrates
the product of the coordinates, whose exact value is 2^-d.

With --sign-check-below v the integrand reports a positive-polynomial
sign-check error whenever x0 < v, which aborts the run after the current
lattice and is printed as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig(cmd, &fl)
			if err != nil {
				return err
			}
			return runIntegrate(cmd, cfg, &fl)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.configPath, "config", "", "YAML configuration file")
	f.Float64Var(&fl.epsRel, "epsrel", 0, "relative error goal")
	f.Float64Var(&fl.epsAbs, "epsabs", 0, "absolute error goal")
	f.Uint64Var(&fl.maxEval, "maxeval", 0, "evaluation budget")
	f.StringVar(&fl.errorMode, "errormode", "", "all or largest")
	f.Uint64Var(&fl.evaluateMinN, "evaluateminn", 0, "minimum lattice size in evaluate mode")
	f.Uint64Var(&fl.minN, "minn", 0, "initial lattice size")
	f.Uint64Var(&fl.minM, "minm", 0, "number of random shifts")
	f.Uint64Var(&fl.maxNPerPackage, "maxnperpackage", 0, "lattice points per work package")
	f.Uint64Var(&fl.maxMPerPackage, "maxmperpackage", 0, "shifts per work package")
	f.IntVar(&fl.cpuThreads, "cputhreads", 0, "worker goroutines for the multi-thread target")
	f.Uint64Var(&fl.cudaBlocks, "cudablocks", 0, "device blocks")
	f.Uint64Var(&fl.cudaThreadsPerBlock, "cudathreadsperblock", 0, "device threads per block")
	f.IntVar(&fl.verbosity, "verbosity", 0, "log level; above 0 logs every lattice")
	f.Uint64Var(&fl.seed, "seed", 0, "random seed of the shifts")
	f.StringVar(&fl.transform, "transform", "", "none, baker, korobov<a>x<b>, sidi<r> or an id")
	f.StringVar(&fl.fitFunction, "fitfunction", "", "none, polysingular or an id")
	f.StringVar(&fl.generatingVectors, "generatingvectors", "", "generating-vector table name or id")
	f.StringVar(&fl.target, "target", "", "single-thread, multi-thread, single-device or multi-device")
	f.StringVar(&fl.devices, "devices", "", "comma-separated device ids for device targets")
	f.IntVar(&fl.dimension, "dimension", 4, "number of integration variables")
	f.Float64Var(&fl.signCheckBelow, "sign-check-below", 0, "report a sign-check error when x0 is below this value")
	f.StringVar(&fl.plotPath, "plot", "", "write a convergence plot (PNG, SVG or PDF by extension)")

	return cmd
}

// buildConfig layers the command-line flags over LoadConfig.
func buildConfig(cmd *cobra.Command, fl *integrateFlags) (dispatch.Config, error) {
	cfg, err := dispatch.LoadConfig(fl.configPath)
	if err != nil {
		return cfg, err
	}

	set := cmd.Flags().Changed
	if set("epsrel") {
		cfg.EpsRel = fl.epsRel
	}
	if set("epsabs") {
		cfg.EpsAbs = fl.epsAbs
	}
	if set("maxeval") {
		cfg.MaxEval = fl.maxEval
	}
	if set("evaluateminn") {
		cfg.EvaluateMinN = fl.evaluateMinN
	}
	if set("minn") {
		cfg.MinN = fl.minN
	}
	if set("minm") {
		cfg.MinM = fl.minM
	}
	if set("maxnperpackage") {
		cfg.MaxNPerPackage = fl.maxNPerPackage
	}
	if set("maxmperpackage") {
		cfg.MaxMPerPackage = fl.maxMPerPackage
	}
	if set("cputhreads") {
		cfg.CPUThreads = fl.cpuThreads
	}
	if set("cudablocks") {
		cfg.CUDABlocks = fl.cudaBlocks
	}
	if set("cudathreadsperblock") {
		cfg.CUDAThreadsPerBlock = fl.cudaThreadsPerBlock
	}
	if set("verbosity") {
		cfg.Verbosity = fl.verbosity
	}
	if set("seed") {
		cfg.Seed = fl.seed
	}

	text := []struct {
		flag  string
		value string
		into  encoding.TextUnmarshaler
	}{
		{"errormode", fl.errorMode, &cfg.ErrorMode},
		{"transform", fl.transform, &cfg.Transform},
		{"fitfunction", fl.fitFunction, &cfg.FitFunction},
		{"generatingvectors", fl.generatingVectors, &cfg.GeneratingVectors},
		{"target", fl.target, &cfg.Target},
	}
	for _, t := range text {
		if !set(t.flag) {
			continue
		}
		if err := t.into.UnmarshalText([]byte(t.value)); err != nil {
			return cfg, fmt.Errorf("--%s: %w", t.flag, err)
		}
	}
	if set("devices") {
		if cfg.Devices, err = dispatch.ParseDevices(fl.devices); err != nil {
			return cfg, fmt.Errorf("--devices: %w", err)
		}
	}

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, verbosity int) *slog.Logger {
	if verbosity <= 0 {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelInfo
	if verbosity > 1 {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// productIntegrand returns Π x_j over dim variables. When below > 0 it
// reports a positive-polynomial error for x0 < below.
func productIntegrand(dim int, below float64) *integrand.Integrand[float64, []float64] {
	return integrand.New(dim, func(x []float64, slot *errslot.Slot) float64 {
		if below > 0 && len(x) > 0 && x[0] < below {
			slot.Report(errslot.KindPositivePolynomial, 1)
		}
		v := 1.0
		for _, xj := range x {
			v *= xj
		}
		return v
	}).WithName("product")
}

func runIntegrate(cmd *cobra.Command, cfg dispatch.Config, fl *integrateFlags) error {
	if fl.dimension < 0 {
		return fmt.Errorf("--dimension %d: must not be negative", fl.dimension)
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbosity)

	h, err := dispatch.Dispatch[float64](cfg, dispatch.WithLogger(logger))
	if err != nil {
		return err
	}

	f := productIntegrand(fl.dimension, fl.signCheckBelow)
	res, err := h.Integrate(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("integrate %s: %w", f.Name(), err)
	}

	exact := math.Pow(2, -float64(fl.dimension))
	status := "converged"
	if !res.Converged {
		status = "maxeval reached"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "transform    %s\n", h.Transform())
	fmt.Fprintf(out, "fit          %s\n", h.FitFunction())
	fmt.Fprintf(out, "target       %s (%d threads)\n", h.Target(), h.Threads())
	fmt.Fprintf(out, "integral     %.12g\n", res.Integral)
	fmt.Fprintf(out, "error        %.3g\n", res.Error)
	fmt.Fprintf(out, "exact        %.12g\n", exact)
	fmt.Fprintf(out, "evaluations  %d (n=%d, m=%d, %s)\n", res.Evaluations, res.N, res.M, status)
	fmt.Fprintf(out, "run          %s\n", res.RunID)

	if fl.plotPath != "" {
		if err := plotConvergence(cmd.Context(), cfg, f, fl.plotPath, logger); err != nil {
			return err
		}
		fmt.Fprintf(out, "plot         %s\n", fl.plotPath)
	}

	return nil
}
