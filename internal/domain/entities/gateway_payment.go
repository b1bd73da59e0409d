package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MethodKind tags which of the method-specific payloads of a GatewayPayment
// is populated.
type MethodKind string

const (
	MethodKindPix    MethodKind = "pix"
	MethodKindBoleto MethodKind = "boleto"
	MethodKindCard   MethodKind = "card"
	MethodKindOther  MethodKind = "other"
)

type PixData struct {
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
}

type BoletoData struct {
	URL     string
	Barcode string
}

type CardData struct {
	Installments   int
	LastFourDigits string
}

type GatewayPayer struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DocumentType   string
	DocumentNumber string
}

// GatewayPayment is the typed view of a Mercado Pago payment resource. Only
// one of Pix, Boleto and Card is set, according to Kind. Raw keeps the full
// snapshot for archival.
type GatewayPayment struct {
	ID                string
	Status            PaymentStatus
	StatusDetail      string
	CurrencyID        string
	ExternalReference string
	PaymentMethodID   string
	PaymentTypeID     string

	TransactionAmount decimal.Decimal
	NetReceivedAmount *decimal.Decimal
	FeeAmount         *decimal.Decimal

	Payer            GatewayPayer
	DateLastUpdated  time.Time
	DateOfExpiration *time.Time

	Kind   MethodKind
	Pix    *PixData
	Boleto *BoletoData
	Card   *CardData

	Raw json.RawMessage
}

// PayerName joins first and last name, trimmed.
func (p GatewayPayment) PayerName() string {
	return strings.TrimSpace(strings.TrimSpace(p.Payer.FirstName) + " " + strings.TrimSpace(p.Payer.LastName))
}

var ErrEmptyGatewayPayment = errors.New("empty gateway payment payload")

type gatewayPaymentWire struct {
	ID                ExternalID          `json:"id"`
	Status            string              `json:"status"`
	StatusDetail      string              `json:"status_detail"`
	CurrencyID        string              `json:"currency_id"`
	ExternalReference string              `json:"external_reference"`
	PaymentMethodID   string              `json:"payment_method_id"`
	PaymentTypeID     string              `json:"payment_type_id"`
	TransactionAmount decimal.NullDecimal `json:"transaction_amount"`
	Installments      int                 `json:"installments"`
	DateLastUpdated   *time.Time          `json:"date_last_updated"`
	DateOfExpiration  *time.Time          `json:"date_of_expiration"`

	Payer *struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     *struct {
			AreaCode ExternalID `json:"area_code"`
			Number   ExternalID `json:"number"`
		} `json:"phone"`
		Identification *struct {
			Type   string     `json:"type"`
			Number ExternalID `json:"number"`
		} `json:"identification"`
	} `json:"payer"`

	TransactionDetails *struct {
		NetReceivedAmount   decimal.NullDecimal `json:"net_received_amount"`
		ExternalResourceURL string              `json:"external_resource_url"`
		DigitableLine       string              `json:"digitable_line"`
	} `json:"transaction_details"`

	FeeDetails []struct {
		Amount decimal.NullDecimal `json:"amount"`
	} `json:"fee_details"`

	PointOfInteraction *struct {
		TransactionData *struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`

	Barcode *struct {
		Content string `json:"content"`
	} `json:"barcode"`

	Card *struct {
		LastFourDigits string `json:"last_four_digits"`
	} `json:"card"`
}

// ParseGatewayPayment decodes a Mercado Pago payment resource.
func ParseGatewayPayment(raw json.RawMessage) (GatewayPayment, error) {
	if len(raw) == 0 {
		return GatewayPayment{}, ErrEmptyGatewayPayment
	}
	var w gatewayPaymentWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return GatewayPayment{}, fmt.Errorf("decode gateway payment: %w", err)
	}

	p := GatewayPayment{
		ID:                w.ID.String(),
		Status:            PaymentStatus(strings.TrimSpace(w.Status)),
		StatusDetail:      w.StatusDetail,
		CurrencyID:        w.CurrencyID,
		ExternalReference: strings.TrimSpace(w.ExternalReference),
		PaymentMethodID:   w.PaymentMethodID,
		PaymentTypeID:     w.PaymentTypeID,
		Raw:               append(json.RawMessage(nil), raw...),
	}
	if w.TransactionAmount.Valid {
		p.TransactionAmount = w.TransactionAmount.Decimal
	}
	if w.DateLastUpdated != nil && !w.DateLastUpdated.IsZero() {
		p.DateLastUpdated = w.DateLastUpdated.UTC()
	}
	if w.DateOfExpiration != nil && !w.DateOfExpiration.IsZero() {
		exp := w.DateOfExpiration.UTC()
		p.DateOfExpiration = &exp
	}

	if w.Payer != nil {
		p.Payer.FirstName = w.Payer.FirstName
		p.Payer.LastName = w.Payer.LastName
		p.Payer.Email = w.Payer.Email
		if w.Payer.Phone != nil {
			p.Payer.Phone = w.Payer.Phone.Number.String()
		}
		if w.Payer.Identification != nil {
			p.Payer.DocumentType = w.Payer.Identification.Type
			p.Payer.DocumentNumber = w.Payer.Identification.Number.String()
		}
	}

	var boletoURL, digitableLine string
	if td := w.TransactionDetails; td != nil {
		if td.NetReceivedAmount.Valid {
			net := td.NetReceivedAmount.Decimal
			p.NetReceivedAmount = &net
		}
		boletoURL = td.ExternalResourceURL
		digitableLine = td.DigitableLine
	}
	if len(w.FeeDetails) > 0 && w.FeeDetails[0].Amount.Valid {
		fee := w.FeeDetails[0].Amount.Decimal
		p.FeeAmount = &fee
	}

	p.Kind = classifyMethod(w.PaymentMethodID, w.PaymentTypeID)
	switch p.Kind {
	case MethodKindPix:
		pix := &PixData{}
		if w.PointOfInteraction != nil && w.PointOfInteraction.TransactionData != nil {
			td := w.PointOfInteraction.TransactionData
			pix.QRCode = td.QRCode
			pix.QRCodeBase64 = td.QRCodeBase64
			pix.TicketURL = td.TicketURL
		}
		p.Pix = pix
	case MethodKindBoleto:
		boleto := &BoletoData{URL: boletoURL, Barcode: digitableLine}
		if w.Barcode != nil && w.Barcode.Content != "" {
			boleto.Barcode = w.Barcode.Content
		}
		p.Boleto = boleto
	case MethodKindCard:
		card := &CardData{Installments: w.Installments}
		if w.Card != nil {
			card.LastFourDigits = w.Card.LastFourDigits
		}
		p.Card = card
	}
	return p, nil
}

func classifyMethod(methodID, typeID string) MethodKind {
	methodID = strings.ToLower(methodID)
	switch {
	case methodID == "pix":
		return MethodKindPix
	case typeID == "ticket" || strings.HasPrefix(methodID, "bol"):
		return MethodKindBoleto
	case typeID == "credit_card" || typeID == "debit_card" || typeID == "prepaid_card":
		return MethodKindCard
	}
	return MethodKindOther
}

// TicketURL is the hosted payment page for PIX and boleto payments.
func (p GatewayPayment) TicketURL() string {
	if p.Pix != nil && p.Pix.TicketURL != "" {
		return p.Pix.TicketURL
	}
	if p.Boleto != nil {
		return p.Boleto.URL
	}
	return ""
}
