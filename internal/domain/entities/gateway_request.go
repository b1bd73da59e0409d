package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeRequest is the provider-neutral description of a transparent
// payment to be created at the gateway.
type ChargeRequest struct {
	TransactionAmount decimal.Decimal
	Description       string
	PaymentMethodID   string
	Token             string
	Installments      int
	ExternalReference string
	NotificationURL   string
	DateOfExpiration  *time.Time
	Payer             ChargePayer
	Metadata          map[string]any
}

type ChargePayer struct {
	Email          string
	FirstName      string
	LastName       string
	DocumentType   string
	DocumentNumber string
}

// PreferenceRequest describes the hosted checkout preference behind a link.
type PreferenceRequest struct {
	Title             string
	Description       string
	Quantity          int
	UnitPrice         decimal.Decimal
	CurrencyID        string
	PictureURL        string
	ExternalReference string
	NotificationURL   string
	SuccessURL        string
	FailureURL        string
	PendingURL        string
	AutoReturn        string
}

type Preference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

// CheckoutURL picks the sandbox init point when the account is in sandbox.
func (p Preference) CheckoutURL(sandbox bool) string {
	if sandbox && p.SandboxInitPoint != "" {
		return p.SandboxInitPoint
	}
	return p.InitPoint
}
