package request

import (
	"net/url"
	"strings"

	"checkout_hub/internal/domain/entities"
)

// WebhookNotificationRequest accepts both Mercado Pago delivery formats: the
// current one ({"type":"payment","data":{"id":...}}) and the legacy IPN one
// ({"topic":"payment","id":...}).
type WebhookNotificationRequest struct {
	Type   string              `json:"type"`
	Topic  string              `json:"topic"`
	Action string              `json:"action"`
	ID     entities.ExternalID `json:"id"`
	Data   struct {
		ID entities.ExternalID `json:"id"`
	} `json:"data"`
}

// WithQueryFallback fills whatever the body lacks from the query string
// (type, topic, data.id, id).
func (r WebhookNotificationRequest) WithQueryFallback(q url.Values) WebhookNotificationRequest {
	if strings.TrimSpace(r.Type) == "" {
		r.Type = strings.TrimSpace(q.Get("type"))
	}
	if strings.TrimSpace(r.Topic) == "" {
		r.Topic = strings.TrimSpace(q.Get("topic"))
	}
	if r.Data.ID == "" {
		r.Data.ID = entities.ExternalID(strings.TrimSpace(q.Get("data.id")))
	}
	if r.ID == "" {
		r.ID = entities.ExternalID(strings.TrimSpace(q.Get("id")))
	}
	return r
}

func (r WebhookNotificationRequest) EventType() string {
	if t := strings.TrimSpace(r.Type); t != "" {
		return t
	}
	return strings.TrimSpace(r.Topic)
}

// PaymentID prefers data.id. The top-level id is the notification's own id in
// the current format and only names the payment in legacy topic deliveries.
func (r WebhookNotificationRequest) PaymentID() string {
	if id := r.Data.ID.String(); id != "" {
		return id
	}
	if strings.TrimSpace(r.Type) == "" && strings.TrimSpace(r.Topic) != "" {
		return r.ID.String()
	}
	return ""
}
