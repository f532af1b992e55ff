package metrics

import (
	"time"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transferTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transfer",
		Name:      "executions_total",
		Help:      "Count of transfer executions by final transaction status.",
	}, []string{"network", "tx_status", "status"})
	transferDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "transfer",
		Name:      "execution_duration_seconds",
		Help:      "Duration of transfers from preparation to final status.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	}, []string{"network", "status"})
)

// Transfer tracks metrics for the prepare, sign and submit flow.
type Transfer struct {
	network model.Network
}

// NewTransfer constructs a metrics collector for transfers.
func NewTransfer(network model.Network) *Transfer {
	return &Transfer{network: networkLabel(network)}
}

// ObserveExecute records one transfer. txStatus is empty when nothing reached the ledger.
func (m Transfer) ObserveExecute(txStatus model.TxStatus, err error, started time.Time) {
	status := statusLabel(err)
	if txStatus == "" {
		txStatus = "none"
	}
	transferTotal.WithLabelValues(string(m.network), string(txStatus), status).Inc()
	transferDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}
