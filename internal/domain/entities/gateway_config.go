package entities

import (
	"strings"
	"time"
)

// GatewayConfigID is the key of the singleton gateway configuration record.
const GatewayConfigID = "default"

type GatewayConfig struct {
	ID            string    `json:"id"`
	AccessToken   string    `json:"-"`
	PublicKey     string    `json:"public_key,omitempty"`
	IsSandbox     bool      `json:"is_sandbox"`
	WebhookSecret string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c GatewayConfig) Configured() bool {
	return strings.TrimSpace(c.AccessToken) != ""
}

// MaskedAccessToken keeps the first and last four characters.
func (c GatewayConfig) MaskedAccessToken() string {
	return maskSecret(c.AccessToken)
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
}
