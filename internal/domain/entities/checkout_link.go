package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "BRL"

// CheckoutLink is a sellable payment link backed by a Mercado Pago preference.
//
// ReferenceID is sent to the gateway as external_reference and is the only
// way an incoming payment is traced back to its link.
type CheckoutLink struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	ReferenceID  string          `json:"reference_id"`
	PreferenceID string          `json:"mercadopago_preference_id,omitempty"`
	CheckoutURL  string          `json:"checkout_url,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	DeliveryLink string          `json:"delivery_link,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewReferenceID builds "checkout_<unix millis>_<9 random chars>".
func NewReferenceID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("checkout_%d_%s", now.UnixMilli(), random)
}

// OrderBump is the optional add-on offered alongside a checkout link.
type OrderBump struct {
	ID             string          `json:"id"`
	CheckoutLinkID string          `json:"checkout_link_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	ImageURL       string          `json:"image_url,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
