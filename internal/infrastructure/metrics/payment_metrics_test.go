package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPaymentMetricsCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPaymentMetrics(reg)

	m.ObserveReconciliation("created")
	m.ObserveReconciliation("created")
	m.ObserveReconciliation("")
	m.ObserveNotification("failed")
	m.ObserveInitiation("pix", "success")

	if got := testutil.ToFloat64(m.reconciliations.WithLabelValues("created")); got != 2 {
		t.Fatalf("expected created=2, got %f", got)
	}
	if got := testutil.ToFloat64(m.reconciliations.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected unknown=1, got %f", got)
	}
	if got := testutil.ToFloat64(m.notifications.WithLabelValues("failed")); got != 1 {
		t.Fatalf("expected failed=1, got %f", got)
	}
	if got := testutil.ToFloat64(m.initiations.WithLabelValues("pix", "success")); got != 1 {
		t.Fatalf("expected pix success=1, got %f", got)
	}

	count, err := testutil.GatherAndCount(reg, "checkout_webhook_reconciliations_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 reconciliation series, got %d", count)
	}
}

func TestPaymentMetricsNilSafe(t *testing.T) {
	var m *PaymentMetrics
	m.ObserveReconciliation("created")
	m.ObserveNotification("created")
	m.ObserveInitiation("pix", "success")

	NewPaymentMetrics(nil).ObserveInitiation("pix", "success")
}
