// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/qmc/qmc"
	"github.com/katalvlaran/qmc/registry"
)

// variant is a fully resolved integrator tuple.
type variant struct {
	target    registry.TargetKind
	transform registry.TransformSpec
	fit       registry.FitKind
}

// Dispatch returns the integrator selected by cfg.
//
// Contracts:
//   - cfg passes Validate.
//   - cfg.Transform and cfg.FitFunction resolve and are in the family
//     (DefaultFamily unless WithFamily is given).
//   - Device targets carry a device set: exactly one device for
//     single-device, at least one for multi-device.
//
// Tuning fields that are non-zero overwrite the integrator's defaults; the
// device set replaces the default only for device targets.
//
// Errors: ErrInvalidConfig, ErrUnsupportedTransform,
// ErrUnsupportedFitFunction, ErrDeviceSet.
//
// Complexity: O(len(cfg.Devices)).
func Dispatch[T qmc.Number](cfg Config, opts ...Option) (qmc.Handle[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1 - unified validation.
	v, err := validateAll(cfg, o.family)
	if err != nil {
		o.logger.Warn("dispatch rejected", slog.String("error", err.Error()))
		return nil, err
	}

	// Stage 2 - tuning on top of the built-in defaults.
	settings := qmc.DefaultSettings()
	applyTuning(&settings, cfg, v.target)

	// Stage 3 - route by target, transform kind, degree, fit.
	q, err := route[T](v, settings, o)
	if err != nil {
		return nil, err
	}

	o.metrics.ObserveDispatch(v.transform, v.fit, v.target)
	o.logger.Info("integrator dispatched",
		slog.String("transform", v.transform.String()),
		slog.String("fit", v.fit.String()),
		slog.String("target", v.target.String()),
		slog.Int("threads", q.Threads()))

	return q, nil
}

// validateAll checks cfg in the order: field ranges, transform, fit
// function, device set.
func validateAll(cfg Config, family *registry.Family) (variant, error) {
	// 1) Record shape: ranges and enumerations from the validator tags.
	if err := cfg.Validate(); err != nil {
		return variant{}, err
	}

	// 2) Transform: a known id is not enough, the family must carry it.
	spec, err := registry.ResolveTransform(cfg.Transform)
	if err != nil || !family.SupportsTransform(cfg.Transform) {
		return variant{}, fmt.Errorf(
			"%w: transform id %d is not available; the transform must be enabled when the integrator family is built (see registry.WithTransforms)",
			ErrUnsupportedTransform, int(cfg.Transform))
	}

	// 3) Fit function, same rule.
	fit, err := registry.ResolveFitFunction(cfg.FitFunction)
	if err != nil || !family.SupportsFitFunction(cfg.FitFunction) {
		return variant{}, fmt.Errorf(
			"%w: fit function id %d is not available; the fit function must be enabled when the integrator family is built (see registry.WithFitFunctions)",
			ErrUnsupportedFitFunction, int(cfg.FitFunction))
	}

	// 4) Device set. Host targets ignore Devices, so only device targets
	// are checked here.
	switch cfg.Target {
	case registry.SingleDevice:
		if len(cfg.Devices) != 1 {
			return variant{}, fmt.Errorf("%w: single-device target needs exactly one device, got %d", ErrDeviceSet, len(cfg.Devices))
		}
	case registry.MultiDevice:
		if len(cfg.Devices) == 0 {
			return variant{}, fmt.Errorf("%w: multi-device target needs at least one device", ErrDeviceSet)
		}
	}

	return variant{target: cfg.Target, transform: spec, fit: fit}, nil
}

// route walks the decision structure and builds the integrator for v.
// Every branch ends in qmc.New with the fully resolved tuple.
func route[T qmc.Number](v variant, s qmc.Settings, o options) (*qmc.Integrator[T], error) {
	qopts := []qmc.Option{
		qmc.WithSettings(s),
		qmc.WithLogger(o.logger),
		qmc.WithMetrics(o.metrics),
	}

	switch v.target {
	case registry.SingleThread, registry.MultiThread:
	case registry.SingleDevice, registry.MultiDevice:
		if o.accelerator != nil {
			qopts = append(qopts, qmc.WithAccelerator(o.accelerator))
		}
	default:
		return nil, fmt.Errorf("%w: target %d", ErrInvalidConfig, int(v.target))
	}

	switch v.transform.Kind {
	case registry.TransformNone, registry.TransformBaker:
		// no degree axis
	case registry.TransformKorobov:
		if v.transform.Degree1 < 1 || v.transform.Degree2 < 1 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransform, v.transform)
		}
	case registry.TransformSidi:
		if v.transform.Degree1 < 1 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransform, v.transform)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTransform, v.transform)
	}

	switch v.fit {
	case registry.FitNone, registry.FitPolySingular:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFitFunction, v.fit)
	}

	return qmc.New[T](v.transform, v.fit, v.target, qopts...)
}

// applyTuning overwrites every field of s whose counterpart in cfg is
// non-zero. Devices are applied only for device targets and replace the
// previous set.
func applyTuning(s *qmc.Settings, cfg Config, target registry.TargetKind) {
	if cfg.EpsRel != 0 {
		s.EpsRel = cfg.EpsRel
	}
	if cfg.EpsAbs != 0 {
		s.EpsAbs = cfg.EpsAbs
	}
	if cfg.MaxEval != 0 {
		s.MaxEval = cfg.MaxEval
	}
	if cfg.ErrorMode != 0 {
		s.ErrorMode = cfg.ErrorMode
	}
	if cfg.EvaluateMinN != 0 {
		s.EvaluateMinN = cfg.EvaluateMinN
	}
	if cfg.MinN != 0 {
		s.MinN = cfg.MinN
	}
	if cfg.MinM != 0 {
		s.MinM = cfg.MinM
	}
	if cfg.MaxNPerPackage != 0 {
		s.MaxNPerPackage = cfg.MaxNPerPackage
	}
	if cfg.MaxMPerPackage != 0 {
		s.MaxMPerPackage = cfg.MaxMPerPackage
	}
	if cfg.CPUThreads != 0 {
		s.CPUThreads = cfg.CPUThreads
	}
	if cfg.CUDABlocks != 0 {
		s.CUDABlocks = cfg.CUDABlocks
	}
	if cfg.CUDAThreadsPerBlock != 0 {
		s.CUDAThreadsPerBlock = cfg.CUDAThreadsPerBlock
	}
	if cfg.Verbosity != 0 {
		s.Verbosity = cfg.Verbosity
	}
	if cfg.Seed != 0 {
		s.Seed = cfg.Seed
	}
	if cfg.GeneratingVectors != registry.DefaultGeneratingVectors {
		s.GeneratingVectors = cfg.GeneratingVectors
	}
	if target.UsesDevices() && len(cfg.Devices) > 0 {
		s.Devices = slices.Clone(cfg.Devices)
	}
}
