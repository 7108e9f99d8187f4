// SPDX-License-Identifier: MIT

package qmc

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of the spans Integrate starts.
const TracerName = "github.com/katalvlaran/qmc"

// Option configures New.
type Option func(*options)

type options struct {
	settings    Settings
	logger      *slog.Logger
	metrics     *Metrics
	accelerator Accelerator
	tracer      trace.Tracer
}

func defaultOptions() options {
	return options{
		settings: DefaultSettings(),
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.Tracer(TracerName),
	}
}

// WithSettings replaces the tuning. The device list is copied.
func WithSettings(s Settings) Option {
	s = s.Clone()
	return func(o *options) { o.settings = s }
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("qmc: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithMetrics attaches counters. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithAccelerator sets the backend of the device targets. Panics if a is nil.
func WithAccelerator(a Accelerator) Option {
	if a == nil {
		panic("qmc: WithAccelerator(nil)")
	}

	return func(o *options) { o.accelerator = a }
}

// WithTracer overrides the OpenTelemetry tracer. Panics if t is nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("qmc: WithTracer(nil)")
	}

	return func(o *options) { o.tracer = t }
}
