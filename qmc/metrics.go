// SPDX-License-Identifier: MIT

package qmc

import (
	"github.com/katalvlaran/qmc/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes recorded by the runs counter.
const (
	outcomeConverged = "converged"
	outcomeMaxEval   = "maxeval"
	outcomeSignCheck = "sign_check"
	outcomeRejected  = "rejected"
	outcomeCanceled  = "canceled"
)

// Metrics are the Prometheus counters of integrators and the dispatcher.
// A nil *Metrics records nothing.
type Metrics struct {
	evaluations *prometheus.CounterVec
	runs        *prometheus.CounterVec
	signChecks  *prometheus.CounterVec
	dispatches  *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
// Panics if registration fails, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// evaluations counts integrand calls by target
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmc_integrand_evaluations_total",
			Help: "Total integrand evaluations by execution target",
		}, []string{"target"}),

		// runs counts Integrate calls by outcome
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmc_integrations_total",
			Help: "Total integrations by target and outcome",
		}, []string{"target", "outcome"}),

		signChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmc_sign_check_errors_total",
			Help: "Sign-check errors latched during integration by quantity",
		}, []string{"kind"}),

		dispatches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmc_dispatches_total",
			Help: "Integrators constructed by transform, fit function and target",
		}, []string{"transform", "fit", "target"}),
	}
}

// ObserveDispatch records one constructed integrator.
func (m *Metrics) ObserveDispatch(tr registry.TransformSpec, fit registry.FitKind, target registry.TargetKind) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(tr.String(), fit.String(), target.String()).Inc()
}

func (m *Metrics) addEvaluations(target registry.TargetKind, n uint64) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(target.String()).Add(float64(n))
}

func (m *Metrics) observeRun(target registry.TargetKind, outcome string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(target.String(), outcome).Inc()
}

func (m *Metrics) observeSignCheck(kind string) {
	if m == nil {
		return
	}
	m.signChecks.WithLabelValues(kind).Inc()
}
