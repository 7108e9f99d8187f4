// SPDX-License-Identifier: MIT

package qmc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"runtime"

	"github.com/google/uuid"
	"github.com/katalvlaran/qmc/errslot"
	"github.com/katalvlaran/qmc/registry"
	"github.com/katalvlaran/qmc/transform"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/stat"
)

// minPackagePoints is the smallest number of lattice points per work package.
const minPackagePoints = 256

// Integrator is a lattice-rule integrator for values of type T, fixed to one
// transform, fit function and execution target. It is safe for concurrent
// use; runs do not share state.
type Integrator[T Number] struct {
	transform  registry.TransformSpec
	fit        registry.FitKind
	target     registry.TargetKind
	settings   Settings
	periodizer transform.Periodizer
	exec       executor
	maxDim     int
	logger     *slog.Logger
	level      slog.Level
	metrics    *Metrics
	tracer     trace.Tracer
}

var _ Handle[float64] = (*Integrator[float64])(nil)

// New builds an integrator. Without options it uses DefaultSettings, a
// discarding logger, no metrics and a HostAccelerator for device targets.
// The fit function is recorded; fitting itself is not performed.
func New[T Number](tr registry.TransformSpec, fit registry.FitKind, target registry.TargetKind, opts ...Option) (*Integrator[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := o.settings
	if err := s.Validate(target); err != nil {
		return nil, err
	}
	if s.GeneratingVectors == registry.DefaultGeneratingVectors {
		s.GeneratingVectors = DefaultGeneratingVectors
	}
	p, err := transform.New(tr)
	if err != nil {
		return nil, err
	}

	q := &Integrator[T]{
		transform:  tr,
		fit:        fit,
		target:     target,
		settings:   s,
		periodizer: p,
		maxDim:     s.GeneratingVectors.MaxDimension(),
		logger:     o.logger,
		level:      slog.LevelDebug,
		metrics:    o.metrics,
		tracer:     o.tracer,
	}
	if s.Verbosity > 0 {
		q.level = slog.LevelInfo
	}

	switch target {
	case registry.SingleThread:
		q.exec = serialExecutor{}
	case registry.MultiThread:
		q.exec = poolExecutor{threads: s.CPUThreads}
	default:
		acc := o.accelerator
		if acc == nil {
			acc = HostAccelerator{Lanes: hostLanes(s)}
		}
		q.exec = deviceExecutor{acc: acc, devices: s.Devices}
	}

	return q, nil
}

// hostLanes sizes the emulated device as CUDABlocks·CUDAThreadsPerBlock
// lanes, capped at the number of CPUs.
func hostLanes(s Settings) int {
	lanes := s.CUDABlocks * s.CUDAThreadsPerBlock
	if lanes == 0 || lanes > uint64(runtime.NumCPU()) {
		return runtime.NumCPU()
	}

	return int(lanes)
}

// Settings returns a copy of the tuning in use.
func (q *Integrator[T]) Settings() Settings { return q.settings.Clone() }

// Transform returns the resolved transform.
func (q *Integrator[T]) Transform() registry.TransformSpec { return q.transform }

// FitFunction returns the resolved fit function.
func (q *Integrator[T]) FitFunction() registry.FitKind { return q.fit }

// Target returns the execution target.
func (q *Integrator[T]) Target() registry.TargetKind { return q.target }

// Threads returns the degree of parallelism: 1 for single-thread,
// CPUThreads for multi-thread and the number of devices otherwise.
func (q *Integrator[T]) Threads() int {
	switch q.target {
	case registry.SingleThread:
		return 1
	case registry.MultiThread:
		return q.settings.CPUThreads
	default:
		return len(q.settings.Devices)
	}
}

// Integrate estimates the integral of f over the unit hypercube.
//
// It fails with ErrIncomplete for a pending integrand, with ErrUnhandledError
// if f's slot is already latched, with ErrDimensionTooLarge if f has more
// dimensions than the generating vectors cover, and with the latched
// *errslot.SignCheckError (wrapped) if f reports one during the run. Reaching
// MaxEval is not an error; Result.Converged is false then.
func (q *Integrator[T]) Integrate(ctx context.Context, f Integrand[T]) (Result[T], error) {
	runID := uuid.New()
	ctx, span := q.tracer.Start(ctx, "qmc.Integrator.Integrate",
		trace.WithAttributes(
			attribute.String("run_id", runID.String()),
			attribute.String("transform", q.transform.String()),
			attribute.String("fit", q.fit.String()),
			attribute.String("target", q.target.String()),
			attribute.Int("dimension", f.Dimension()),
		))
	defer span.End()

	res, err := q.integrate(ctx, runID, f)
	span.SetAttributes(
		attribute.Int64("evaluations", int64(res.Evaluations)),
		attribute.Bool("converged", res.Converged),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "integration failed")
		return res, err
	}
	span.SetStatus(codes.Ok, "")

	return res, nil
}

// IntegrateSets integrates f once per parameter set. An integrand without
// sets is integrated once. On error the results of the sets completed so far
// are returned.
func (q *Integrator[T]) IntegrateSets(ctx context.Context, f ParameterizedIntegrand[T]) ([]Result[T], error) {
	if r, ok := f.(readier); ok && !r.Ready() {
		q.metrics.observeRun(q.target, outcomeRejected)
		return nil, fmt.Errorf("qmc: integrate sets: %w", ErrIncomplete)
	}
	sets := f.NumParameterSets()
	if sets == 0 {
		res, err := q.Integrate(ctx, f)
		if err != nil {
			return nil, err
		}
		return []Result[T]{res}, nil
	}

	out := make([]Result[T], 0, sets)
	for k := 0; k < sets; k++ {
		res, err := q.Integrate(ctx, parameterSet[T]{ParameterizedIntegrand: f, k: k})
		if err != nil {
			return out, fmt.Errorf("qmc: parameter set %d: %w", k, err)
		}
		out = append(out, res)
	}

	return out, nil
}

// parameterSet evaluates a ParameterizedIntegrand with one fixed set.
type parameterSet[T Number] struct {
	ParameterizedIntegrand[T]
	k int
}

func (p parameterSet[T]) Call(x []float64) T { return p.CallSet(p.k, x) }

func checkSlot(s *errslot.Slot) error {
	if s == nil {
		return nil
	}

	return s.Check()
}

func (q *Integrator[T]) integrate(ctx context.Context, runID uuid.UUID, f Integrand[T]) (Result[T], error) {
	res := Result[T]{RunID: runID}
	log := q.logger.With(slog.String("run_id", runID.String()))

	if r, ok := f.(readier); ok && !r.Ready() {
		q.metrics.observeRun(q.target, outcomeRejected)
		return res, fmt.Errorf("qmc: integrate: %w", ErrIncomplete)
	}
	slot := f.Slot()
	// A latched slot is left over from an earlier run; the caller resets it.
	if err := checkSlot(slot); err != nil {
		q.metrics.observeRun(q.target, outcomeRejected)
		return res, fmt.Errorf("qmc: integrate: %w: %w", ErrUnhandledError, err)
	}
	dim := f.Dimension()
	if dim > q.maxDim {
		q.metrics.observeRun(q.target, outcomeRejected)
		return res, fmt.Errorf("qmc: integrate: dimension %d, %s covers %d: %w",
			dim, q.settings.GeneratingVectors, q.maxDim, ErrDimensionTooLarge)
	}

	log.Log(ctx, q.level, "integration started",
		slog.String("transform", q.transform.String()),
		slog.String("fit", q.fit.String()),
		slog.String("target", q.target.String()),
		slog.Int("dimension", dim),
		slog.Int("threads", q.Threads()))

	// A zero-dimensional integrand is a constant; one call is exact.
	if dim == 0 {
		res.Integral = f.Call([]float64{})
		res.N, res.M, res.Evaluations, res.Converged = 1, 1, 1, true
		q.metrics.addEvaluations(q.target, 1)
		if err := q.afterBatch(slot); err != nil {
			return res, err
		}
		q.metrics.observeRun(q.target, outcomeConverged)
		return res, nil
	}

	s := q.settings
	rng := rand.New(rand.NewSource(int64(s.Seed)))
	n := nextPrime(s.MinN)
	m := s.MinM
	for {
		// The first lattice always runs, even above MaxEval, so every
		// result carries an estimate. Later lattices run only if they fit.
		if res.Evaluations > 0 && res.Evaluations+n*m > s.MaxEval {
			log.Warn("maxeval reached before tolerance",
				slog.Uint64("maxeval", s.MaxEval),
				slog.Uint64("evaluations", res.Evaluations))
			q.metrics.observeRun(q.target, outcomeMaxEval)
			return res, nil
		}

		mean, sigma, err := q.lattice(ctx, f, dim, n, m, rng)
		if err != nil {
			q.metrics.observeRun(q.target, outcomeCanceled)
			return res, fmt.Errorf("qmc: integrate: %w", err)
		}
		res.Evaluations += n * m
		q.metrics.addEvaluations(q.target, n*m)
		// Sign checks latched during the batch surface here, never mid-batch.
		if err := q.afterBatch(slot); err != nil {
			return res, err
		}

		res.Integral = fromComplex[T](mean)
		res.Error = fromComplex[T](sigma)
		res.N, res.M = n, m
		res.Converged = q.converged(mean, sigma)

		log.Log(ctx, q.level, "lattice done",
			slog.Uint64("n", n),
			slog.Uint64("m", m),
			slog.String("integral", fmt.Sprint(mean)),
			slog.String("error", fmt.Sprint(sigma)))

		if res.Converged {
			q.metrics.observeRun(q.target, outcomeConverged)
			return res, nil
		}
		// Not there yet: double the lattice, keep the shift count.
		n = nextPrime(2 * n)
	}
}

// afterBatch reports a sign-check error latched during the last batch.
func (q *Integrator[T]) afterBatch(slot *errslot.Slot) error {
	err := checkSlot(slot)
	if err == nil {
		return nil
	}
	kind := "unknown"
	var sce *errslot.SignCheckError
	if errors.As(err, &sce) {
		kind = sce.Kind.String()
	}
	q.metrics.observeSignCheck(kind)
	q.metrics.observeRun(q.target, outcomeSignCheck)

	return fmt.Errorf("qmc: integrate: %w", err)
}

// lattice evaluates one shifted lattice of size n with m shifts and returns
// the mean over the shifts and its standard error, per component.
func (q *Integrator[T]) lattice(ctx context.Context, f Integrand[T], dim int, n, m uint64, rng *rand.Rand) (complex128, complex128, error) {
	z := generatingVector(q.settings.GeneratingVectors, n, dim)
	shifts := make([][]float64, m)
	for k := range shifts {
		shifts[k] = make([]float64, dim)
		for j := range shifts[k] {
			shifts[k][j] = rng.Float64()
		}
	}

	// Work packages tile (points × shifts). Each package owns its own
	// partial sums, so lanes never share a cell.
	block := max(q.settings.MaxNPerPackage, minPackagePoints)
	blocks := int((n + block - 1) / block)
	group := min(q.settings.MaxMPerPackage, m)
	groups := int((m + group - 1) / group)
	partial := make([]complex128, int(m)*blocks)

	task := func(t int) {
		b, g := t%blocks, uint64(t/blocks)
		lo := uint64(b) * block
		hi := min(lo+block, n)
		kLo := g * group
		kHi := min(kLo+group, m)

		x := make([]float64, dim)
		for i := lo; i < hi; i++ {
			for k := kLo; k < kHi; k++ {
				for j := range x {
					v := float64(mulMod(i, z[j], n))/float64(n) + shifts[k][j]
					x[j] = v - math.Floor(v)
				}
				w := q.periodizer.Apply(x)
				partial[int(k)*blocks+b] += toComplex(f.Call(x)) * complex(w, 0)
			}
		}
	}
	if err := q.exec.run(ctx, blocks*groups, task); err != nil {
		return 0, 0, err
	}

	// Reduce per shift in block order. The order is fixed whatever executor
	// ran the packages, so every target returns the same bits.
	re := make([]float64, m)
	im := make([]float64, m)
	scale := 1 / float64(n)
	for k := range re {
		var sum complex128
		for b := 0; b < blocks; b++ {
			sum += partial[k*blocks+b]
		}
		re[k], im[k] = real(sum)*scale, imag(sum)*scale
	}
	meanRe, sdRe := stat.MeanStdDev(re, nil)
	meanIm, sdIm := stat.MeanStdDev(im, nil)
	rootM := math.Sqrt(float64(m))

	return complex(meanRe, meanIm), complex(sdRe/rootM, sdIm/rootM), nil
}

// converged tests sigma against max(EpsAbs, EpsRel·|mean|).
func (q *Integrator[T]) converged(mean, sigma complex128) bool {
	s := q.settings
	tol := func(v float64) float64 { return max(s.EpsAbs, s.EpsRel*math.Abs(v)) }
	if s.ErrorMode == ErrorModeLargest {
		return max(real(sigma), imag(sigma)) <= tol(max(math.Abs(real(mean)), math.Abs(imag(mean))))
	}

	return real(sigma) <= tol(real(mean)) && imag(sigma) <= tol(imag(mean))
}
