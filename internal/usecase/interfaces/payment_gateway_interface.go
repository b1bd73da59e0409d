package interfaces

import (
	"context"

	"checkout_hub/internal/domain/entities"
)

// IPaymentGateway abstracts the payment provider (Mercado Pago).
//
// Credentials are not process configuration: every call receives the stored
// GatewayConfig. Failures are reported as *GatewayError.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, cfg entities.GatewayConfig, paymentID string) (entities.GatewayPayment, error)
	CreatePayment(ctx context.Context, cfg entities.GatewayConfig, req entities.ChargeRequest, idempotencyKey string) (entities.GatewayPayment, error)
	CreatePreference(ctx context.Context, cfg entities.GatewayConfig, req entities.PreferenceRequest) (entities.Preference, error)
	ExpirePreference(ctx context.Context, cfg entities.GatewayConfig, preferenceID string) error
}
