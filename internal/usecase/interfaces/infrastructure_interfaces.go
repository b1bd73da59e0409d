package interfaces

import (
	"context"

	"checkout_hub/internal/domain/entities"
)

// IPaymentLocker serializes work on a single key across replicas.
type IPaymentLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// INotificationBroker fans created notifications out to live subscribers.
type INotificationBroker interface {
	Publish(ctx context.Context, n entities.Notification) error
	// Subscribe returns a channel that is closed when ctx is done or cancel
	// is called.
	Subscribe(ctx context.Context) (<-chan entities.Notification, func(), error)
}

// IImageStorage removes product images uploaded for checkout links.
type IImageStorage interface {
	Delete(ctx context.Context, imageURL string) error
}

// IPaymentMetrics records reconciliation and initiation outcomes.
type IPaymentMetrics interface {
	ObserveReconciliation(result string)
	ObserveNotification(result string)
	ObserveInitiation(method, result string)
}
