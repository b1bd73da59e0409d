package response

import (
	"time"

	"checkout_hub/internal/domain/entities"
)

// GatewayConfigResponse never carries the raw access token.
type GatewayConfigResponse struct {
	AccessToken   string    `json:"access_token"`
	PublicKey     string    `json:"public_key,omitempty"`
	IsSandbox     bool      `json:"is_sandbox"`
	WebhookSecret string    `json:"webhook_secret,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromGatewayConfig(c entities.GatewayConfig) GatewayConfigResponse {
	return GatewayConfigResponse{
		AccessToken:   c.MaskedAccessToken(),
		PublicKey:     c.PublicKey,
		IsSandbox:     c.IsSandbox,
		WebhookSecret: c.WebhookSecret,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	PaymentID string    `json:"payment_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		PaymentID: n.PaymentID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNotification(n))
	}
	return out
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type WebhookResponse struct {
	Message       string `json:"message"`
	Status        string `json:"status,omitempty"`
	Created       bool   `json:"created,omitempty"`
	StatusChanged bool   `json:"status_changed,omitempty"`
	Ignored       bool   `json:"ignored,omitempty"`
	Stale         bool   `json:"stale,omitempty"`
}
