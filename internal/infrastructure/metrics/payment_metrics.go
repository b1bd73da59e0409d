package metrics

import (
	"checkout_hub/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentMetrics exports reconciliation, notification and initiation
// outcomes. A nil receiver or one built without a registerer is a no-op.
type PaymentMetrics struct {
	reconciliations *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	initiations     *prometheus.CounterVec
}

var _ interfaces.IPaymentMetrics = (*PaymentMetrics)(nil)

func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	if reg == nil {
		return &PaymentMetrics{}
	}
	reconciliations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "webhook_reconciliations_total",
		Help:      "Webhook reconciliations by outcome.",
	}, []string{"result"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "notifications_total",
		Help:      "Notification writes by outcome.",
	}, []string{"result"})
	initiations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout",
		Name:      "payment_initiations_total",
		Help:      "Transparent payment initiations by method and outcome.",
	}, []string{"method", "result"})
	reg.MustRegister(reconciliations, notifications, initiations)
	return &PaymentMetrics{
		reconciliations: reconciliations,
		notifications:   notifications,
		initiations:     initiations,
	}
}

func (m *PaymentMetrics) ObserveReconciliation(result string) {
	if m == nil || m.reconciliations == nil {
		return
	}
	m.reconciliations.WithLabelValues(normalizeLabel(result)).Inc()
}

func (m *PaymentMetrics) ObserveNotification(result string) {
	if m == nil || m.notifications == nil {
		return
	}
	m.notifications.WithLabelValues(normalizeLabel(result)).Inc()
}

func (m *PaymentMetrics) ObserveInitiation(method, result string) {
	if m == nil || m.initiations == nil {
		return
	}
	m.initiations.WithLabelValues(normalizeLabel(method), normalizeLabel(result)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
