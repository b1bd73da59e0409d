package entities

import "time"

type NotificationType string

const (
	NotificationPaymentApproved     NotificationType = "payment_approved"
	NotificationPaymentPending      NotificationType = "payment_pending"
	NotificationPaymentRejected     NotificationType = "payment_rejected"
	NotificationPaymentCancelled    NotificationType = "payment_cancelled"
	NotificationPaymentRefunded     NotificationType = "payment_refunded"
	NotificationPaymentStatusUpdate NotificationType = "payment_status_update"
	NotificationPaymentCreated      NotificationType = "payment_created"
)

// Notification is an operator-facing event derived from a payment transition.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	PaymentID string           `json:"payment_id,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
