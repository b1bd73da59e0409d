package usecase

import "checkout_hub/internal/usecase/interfaces"

const (
	ReconcileResultIgnored   = "ignored"
	ReconcileResultCreated   = "created"
	ReconcileResultUpdated   = "updated"
	ReconcileResultUnchanged = "unchanged"
	ReconcileResultStale     = "stale"
	ReconcileResultFailed    = "failed"

	NotificationResultCreated = "created"
	NotificationResultFailed  = "failed"

	InitiationResultSuccess      = "success"
	InitiationResultGatewayError = "gateway_error"
	InitiationResultRejected     = "rejected"
)

type noopMetrics struct{}

func (noopMetrics) ObserveReconciliation(string)     {}
func (noopMetrics) ObserveNotification(string)       {}
func (noopMetrics) ObserveInitiation(string, string) {}

func metricsOrNoop(m interfaces.IPaymentMetrics) interfaces.IPaymentMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
