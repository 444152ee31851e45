package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestInventoryMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewInventoryMetrics(reg)

	m.IncTransaction("STOCK_ADDITION")
	m.IncTransaction("STOCK_ADDITION")
	m.IncTransaction("")
	m.IncWriteFailure("update")
	m.ObserveWrite("create", 150*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	byName := map[string]*dto.MetricFamily{}
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	txFamily, ok := byName["inventory_stock_transactions_total"]
	if !ok {
		t.Fatal("transaction counter not registered")
	}
	counts := map[string]float64{}
	for _, metric := range txFamily.GetMetric() {
		counts[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
	}
	if counts["STOCK_ADDITION"] != 2 {
		t.Fatalf("expected 2 STOCK_ADDITION increments, got %v", counts["STOCK_ADDITION"])
	}
	if counts["unknown"] != 1 {
		t.Fatalf("expected empty label to normalize to unknown, got %v", counts)
	}

	if _, ok := byName["inventory_write_failures_total"]; !ok {
		t.Fatal("failure counter not registered")
	}
	if _, ok := byName["inventory_write_duration_seconds"]; !ok {
		t.Fatal("duration histogram not registered")
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := NewInventoryMetrics(nil)
	// Must not panic.
	m.IncTransaction("INITIAL_STOCK")
	m.IncWriteFailure("delete")
	m.ObserveWrite("update", time.Second)

	var empty *InventoryMetrics
	empty.IncTransaction("INITIAL_STOCK")
}
