package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the Mercado Pago payment status. Values outside the
// known set are stored as received.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Known() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected, PaymentStatusCancelled, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod is the method chosen on the transparent checkout.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodBoleto:
		return true
	}
	return false
}

func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

type Payer struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

// Payment is the local mirror of a Mercado Pago payment.
//
// MercadoPagoPaymentID is the natural key: at most one row exists per value.
// ID is the local surrogate referenced by notifications.
//
// GatewayUpdatedAt holds the provider's date_last_updated for the snapshot in
// WebhookData; writes carrying an older value are rejected.
type Payment struct {
	ID                   string        `json:"id"`
	MercadoPagoPaymentID string        `json:"mercadopago_payment_id"`
	CheckoutLinkID       string        `json:"checkout_link_id,omitempty"`
	Status               PaymentStatus `json:"status"`

	Amount            decimal.Decimal  `json:"amount"`
	Currency          string           `json:"currency"`
	TransactionAmount decimal.Decimal  `json:"transaction_amount"`
	NetReceivedAmount *decimal.Decimal `json:"net_received_amount,omitempty"`
	FeeAmount         *decimal.Decimal `json:"fee_amount,omitempty"`

	Payer         Payer  `json:"payer"`
	PaymentMethod string `json:"payment_method,omitempty"`

	OrderBumpSelected *bool            `json:"order_bump_selected,omitempty"`
	OrderBumpAmount   *decimal.Decimal `json:"order_bump_amount,omitempty"`

	CustomerData json.RawMessage `json:"customer_data,omitempty"`
	WebhookData  json.RawMessage `json:"webhook_data,omitempty"`

	GatewayUpdatedAt time.Time `json:"gateway_updated_at,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsNewerThan reports whether the payment snapshot p must not be replaced by
// a snapshot observed at other. Unknown timestamps never block a write.
func (p Payment) IsNewerThan(other time.Time) bool {
	if p.GatewayUpdatedAt.IsZero() || other.IsZero() {
		return false
	}
	return p.GatewayUpdatedAt.After(other)
}
