package interfaces

import (
	"context"

	"checkout_hub/internal/domain/entities"
)

// Repositories return a zero value (empty ID) when a record does not exist.

type IGatewayConfigRepository interface {
	Get(ctx context.Context) (entities.GatewayConfig, error)
	Save(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error)
}

type ICheckoutLinkRepository interface {
	Create(ctx context.Context, link entities.CheckoutLink) (entities.CheckoutLink, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutLink, error)
	GetByReferenceID(ctx context.Context, referenceID string) (entities.CheckoutLink, error)
	List(ctx context.Context) ([]entities.CheckoutLink, error)
	SetActive(ctx context.Context, id string, active bool) (entities.CheckoutLink, error)
	Delete(ctx context.Context, id string) error
}

// IOrderBumpRepository stores at most one order bump per checkout link.
type IOrderBumpRepository interface {
	GetByCheckoutLinkID(ctx context.Context, checkoutLinkID string) (entities.OrderBump, error)
	Save(ctx context.Context, bump entities.OrderBump) (entities.OrderBump, error)
	DeleteByCheckoutLinkID(ctx context.Context, checkoutLinkID string) error
}

type PaymentFilter struct {
	Status         entities.PaymentStatus
	CheckoutLinkID string
	Limit          int
}

type IPaymentRepository interface {
	GetByMercadoPagoID(ctx context.Context, mercadoPagoPaymentID string) (entities.Payment, error)
	// Create fails with ErrAlreadyExists when a row with the same
	// mercadopago_payment_id exists.
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	// UpdateIfNotStale overwrites the row keyed by p.MercadoPagoPaymentID
	// unless the stored GatewayUpdatedAt is after p.GatewayUpdatedAt, in which
	// case it returns ErrStaleWrite.
	UpdateIfNotStale(ctx context.Context, p entities.Payment) (entities.Payment, error)
	// List returns payments newest first.
	List(ctx context.Context, filter PaymentFilter) ([]entities.Payment, error)
}

type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
}

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	// List returns notifications newest first.
	List(ctx context.Context, filter NotificationFilter) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type ICustomizationRepository interface {
	Get(ctx context.Context) (entities.CheckoutCustomization, error)
	Save(ctx context.Context, c entities.CheckoutCustomization) (entities.CheckoutCustomization, error)
}
