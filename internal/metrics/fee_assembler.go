package metrics

import (
	"strconv"
	"time"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feePrepareTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fee_assembler",
		Name:      "prepare_total",
		Help:      "Count of transaction preparations.",
	}, []string{"network", "status"})
	feePrepareDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "fee_assembler",
		Name:      "prepare_duration_seconds",
		Help:      "Duration of transaction preparations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	feeDecisionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fee_assembler",
		Name:      "fee_decisions_total",
		Help:      "Count of max fee decisions, by whether the caller's budget was raised.",
	}, []string{"network", "raised"})
)

// FeeAssembler tracks metrics for fee assembly.
type FeeAssembler struct {
	network model.Network
}

// NewFeeAssembler constructs a metrics collector for fee assembly.
func NewFeeAssembler(network model.Network) *FeeAssembler {
	return &FeeAssembler{network: networkLabel(network)}
}

// ObservePrepare records the outcome and duration of one preparation.
func (m FeeAssembler) ObservePrepare(err error, started time.Time) {
	status := statusLabel(err)
	feePrepareTotal.WithLabelValues(string(m.network), status).Inc()
	feePrepareDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveFeeDecision records whether a preparation raised the max fee.
func (m FeeAssembler) ObserveFeeDecision(raised bool) {
	feeDecisionTotal.WithLabelValues(string(m.network), strconv.FormatBool(raised)).Inc()
}
