package usecase

import "errors"

var (
	ErrConfigUnavailable       = errors.New("mercado pago configuration not found")
	ErrInvalidConfig           = errors.New("invalid mercado pago configuration")
	ErrInvalidWebhookEvent     = errors.New("invalid webhook event")
	ErrMissingPaymentID        = errors.New("payment id missing from webhook event")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrGatewayFetchFailed      = errors.New("failed to fetch payment from gateway")
	ErrPaymentStoreFailed      = errors.New("failed to store payment")

	ErrCheckoutLinkNotFound = errors.New("checkout link not found")
	ErrInvalidCheckoutLink  = errors.New("invalid checkout link")
	ErrInvalidOrderBump     = errors.New("invalid order bump")
	ErrOrderBumpNotFound    = errors.New("order bump not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrCardTokenRequired    = errors.New("card token required")
	ErrInvalidCustomer      = errors.New("invalid customer data")

	ErrNotificationNotFound = errors.New("notification not found")
	ErrStreamUnavailable    = errors.New("notification stream unavailable")
)
