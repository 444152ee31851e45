package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InventoryMetrics records write-path activity for the stock coordinator.
type InventoryMetrics struct {
	writeDuration *prometheus.HistogramVec
	transactions  *prometheus.CounterVec
	writeFailures *prometheus.CounterVec
}

// NewInventoryMetrics registers the coordinator metrics on the provided registerer.
func NewInventoryMetrics(reg prometheus.Registerer) *InventoryMetrics {
	if reg == nil {
		return &InventoryMetrics{}
	}
	writeDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_write_duration_seconds",
		Help:    "Duration of inventory write transactions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	transactions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_stock_transactions_total",
		Help: "Audit transactions recorded against inventory rows.",
	}, []string{"type"})
	writeFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_write_failures_total",
		Help: "Inventory write transactions that rolled back.",
	}, []string{"operation"})
	reg.MustRegister(writeDuration, transactions, writeFailures)
	return &InventoryMetrics{
		writeDuration: writeDuration,
		transactions:  transactions,
		writeFailures: writeFailures,
	}
}

// ObserveWrite records the duration for the named write operation.
func (m *InventoryMetrics) ObserveWrite(operation string, duration time.Duration) {
	if m == nil || m.writeDuration == nil {
		return
	}
	m.writeDuration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncTransaction counts one recorded audit transaction of the given type.
func (m *InventoryMetrics) IncTransaction(transactionType string) {
	if m == nil || m.transactions == nil {
		return
	}
	m.transactions.WithLabelValues(normalizeLabel(transactionType)).Inc()
}

// IncWriteFailure counts one rolled-back write for the named operation.
func (m *InventoryMetrics) IncWriteFailure(operation string) {
	if m == nil || m.writeFailures == nil {
		return
	}
	m.writeFailures.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
