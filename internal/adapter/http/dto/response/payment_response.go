package response

import (
	"encoding/json"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase"

	"github.com/shopspring/decimal"
)

// ProcessPaymentResponse is what the transparent checkout page renders after
// submitting: QR code for PIX, slip for boleto, status for cards.
type ProcessPaymentResponse struct {
	PaymentID         string     `json:"payment_id"`
	Status            string     `json:"status"`
	PaymentMethod     string     `json:"payment_method"`
	TransactionAmount float64    `json:"transaction_amount"`
	PixQRCode         string     `json:"pix_qr_code,omitempty"`
	PixQRCodeBase64   string     `json:"pix_qr_code_base64,omitempty"`
	PixKey            string     `json:"pix_key,omitempty"`
	ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
	BoletoURL         string     `json:"boleto_url,omitempty"`
	Barcode           string     `json:"barcode,omitempty"`
	SandboxURL        string     `json:"sandbox_url,omitempty"`
}

func FromProcessPaymentResult(method entities.PaymentMethod, res usecase.ProcessPaymentResult) ProcessPaymentResponse {
	gp := res.Gateway
	out := ProcessPaymentResponse{
		PaymentID:         gp.ID,
		Status:            string(gp.Status),
		PaymentMethod:     string(method),
		TransactionAmount: res.Total.InexactFloat64(),
		ExpirationDate:    gp.DateOfExpiration,
	}
	if gp.Pix != nil {
		out.PixQRCode = gp.Pix.QRCode
		out.PixQRCodeBase64 = gp.Pix.QRCodeBase64
		out.PixKey = gp.Pix.QRCode
	}
	if gp.Boleto != nil {
		out.BoletoURL = gp.Boleto.URL
		out.Barcode = gp.Boleto.Barcode
	}
	if res.Sandbox {
		out.SandboxURL = gp.TicketURL()
	}
	return out
}

type PayerResponse struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}

type PaymentResponse struct {
	ID                   string          `json:"id"`
	MercadoPagoPaymentID string          `json:"mercadopago_payment_id"`
	CheckoutLinkID       string          `json:"checkout_link_id,omitempty"`
	Status               string          `json:"status"`
	Amount               float64         `json:"amount"`
	Currency             string          `json:"currency"`
	TransactionAmount    float64         `json:"transaction_amount"`
	NetReceivedAmount    *float64        `json:"net_received_amount,omitempty"`
	FeeAmount            *float64        `json:"fee_amount,omitempty"`
	Payer                PayerResponse   `json:"payer"`
	PaymentMethod        string          `json:"payment_method,omitempty"`
	OrderBumpSelected    *bool           `json:"order_bump_selected,omitempty"`
	OrderBumpAmount      *float64        `json:"order_bump_amount,omitempty"`
	WebhookData          json.RawMessage `json:"webhook_data,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                   p.ID,
		MercadoPagoPaymentID: p.MercadoPagoPaymentID,
		CheckoutLinkID:       p.CheckoutLinkID,
		Status:               string(p.Status),
		Amount:               p.Amount.InexactFloat64(),
		Currency:             p.Currency,
		TransactionAmount:    p.TransactionAmount.InexactFloat64(),
		NetReceivedAmount:    floatPtr(p.NetReceivedAmount),
		FeeAmount:            floatPtr(p.FeeAmount),
		Payer: PayerResponse{
			Name:           p.Payer.Name,
			Email:          p.Payer.Email,
			Phone:          p.Payer.Phone,
			DocumentType:   p.Payer.DocumentType,
			DocumentNumber: p.Payer.DocumentNumber,
		},
		PaymentMethod:     p.PaymentMethod,
		OrderBumpSelected: p.OrderBumpSelected,
		OrderBumpAmount:   floatPtr(p.OrderBumpAmount),
		WebhookData:       p.WebhookData,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

func floatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
