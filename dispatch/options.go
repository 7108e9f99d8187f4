// SPDX-License-Identifier: MIT

package dispatch

import (
	"log/slog"

	"github.com/katalvlaran/qmc/qmc"
	"github.com/katalvlaran/qmc/registry"
)

// Option customizes Dispatch.
type Option func(*options)

type options struct {
	family      *registry.Family
	logger      *slog.Logger
	metrics     *qmc.Metrics
	accelerator qmc.Accelerator
}

func defaultOptions() options {
	return options{
		family: registry.DefaultFamily(),
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithFamily restricts dispatch to the transforms and fit functions of f.
// Panics if f is nil.
func WithFamily(f *registry.Family) Option {
	if f == nil {
		panic("dispatch: WithFamily(nil)")
	}

	return func(o *options) { o.family = f }
}

// WithLogger sets the logger used by Dispatch and by the integrator it
// returns. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dispatch: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithMetrics records dispatches and hands m to the integrator.
func WithMetrics(m *qmc.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithAccelerator sets the backend of the device targets. Panics if a is nil.
func WithAccelerator(a qmc.Accelerator) Option {
	if a == nil {
		panic("dispatch: WithAccelerator(nil)")
	}

	return func(o *options) { o.accelerator = a }
}
