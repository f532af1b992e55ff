package metrics

import (
	"time"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gasEstimateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gas_estimator",
		Name:      "estimates_total",
		Help:      "Count of predicate gas estimations.",
	}, []string{"network", "status"})
	gasEstimateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gas_estimator",
		Name:      "estimate_duration_seconds",
		Help:      "Duration of predicate gas estimations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	gasEstimateUsed = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gas_estimator",
		Name:      "predicate_gas",
		Help:      "Gas consumed by one predicate input.",
		Buckets:   prometheus.ExponentialBuckets(1_000, 2, 14), // 1k..8M
	}, []string{"network"})
)

// GasEstimator tracks metrics for predicate gas estimation.
type GasEstimator struct {
	network model.Network
}

// NewGasEstimator constructs a metrics collector for predicate gas estimation.
func NewGasEstimator(network model.Network) *GasEstimator {
	return &GasEstimator{network: networkLabel(network)}
}

// ObserveEstimate records one estimation and, on success, the gas it measured.
func (m GasEstimator) ObserveEstimate(err error, gas uint64, started time.Time) {
	status := statusLabel(err)
	gasEstimateTotal.WithLabelValues(string(m.network), status).Inc()
	gasEstimateDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		gasEstimateUsed.WithLabelValues(string(m.network)).Observe(float64(gas))
	}
}
