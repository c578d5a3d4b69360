// Package metrics exposes Prometheus instrumentation for the estimation
// engine. The engine itself is a pure library; callers that embed it in a
// service register these collectors to observe how often plans are evaluated
// and why candidate hardware gets rejected.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Label names used on engine metrics.
const (
	LabelModel  = "model"
	LabelReason = "reason"
)

// Rejection reasons recorded on setupRejectedTotal.
const (
	ReasonInsufficientVRAM = "insufficient_vram"
	ReasonLowConcurrency   = "low_concurrency"
	ReasonLowThroughput    = "low_throughput"
	ReasonUnknownGPU       = "unknown_gpu"
)

var (
	setupEvaluatedTotal *prometheus.CounterVec
	setupRejectedTotal  *prometheus.CounterVec
	matrixCellTotal     prometheus.Counter

	// initOnce ensures InitMetrics is only executed once for thread safety.
	initOnce sync.Once
	initErr  error
)

// InitMetrics registers all engine metrics with the provided registry.
// Safe to call multiple times; registration happens once with the first
// call's registry.
func InitMetrics(registry prometheus.Registerer) error {
	initOnce.Do(func() {
		setupEvaluatedTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capacity_engine_setups_evaluated_total",
				Help: "Total number of hardware offerings evaluated against a model",
			},
			[]string{LabelModel},
		)
		setupRejectedTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capacity_engine_setups_rejected_total",
				Help: "Total number of hardware offerings rejected, by reason",
			},
			[]string{LabelModel, LabelReason},
		)
		matrixCellTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "capacity_engine_matrix_cells_total",
				Help: "Total number of recommendation matrix cells assembled",
			},
		)

		for _, c := range []prometheus.Collector{
			setupEvaluatedTotal,
			setupRejectedTotal,
			matrixCellTotal,
		} {
			if err := registry.Register(c); err != nil {
				initErr = err
				return
			}
		}
	})
	return initErr
}

// RecordSetupEvaluated increments the evaluation counter for a model.
// No-op when InitMetrics has not been called.
func RecordSetupEvaluated(model string) {
	if setupEvaluatedTotal == nil {
		return
	}
	setupEvaluatedTotal.WithLabelValues(model).Inc()
}

// RecordSetupRejected increments the rejection counter for a model and reason.
func RecordSetupRejected(model, reason string) {
	if setupRejectedTotal == nil {
		return
	}
	setupRejectedTotal.WithLabelValues(model, reason).Inc()
}

// RecordMatrixCell increments the assembled-cell counter.
func RecordMatrixCell() {
	if matrixCellTotal == nil {
		return
	}
	matrixCellTotal.Inc()
}
