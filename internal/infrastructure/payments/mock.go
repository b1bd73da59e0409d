package payments

import (
	"encoding/json"
	"strconv"
	"strings"

	"checkout_hub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// mockCharge fabricates a gateway reply shaped like the real one for the
// requested method: pix and boleto stay pending with their artifacts, cards
// are approved.
func (g *MercadoPagoGateway) mockCharge(req entities.ChargeRequest) entities.GatewayPayment {
	id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
	status := entities.PaymentStatusApproved
	switch req.PaymentMethodID {
	case "pix", "bolbradesco":
		status = entities.PaymentStatusPending
	}
	gp := g.mockPayment(id, status, req.PaymentMethodID)
	gp.TransactionAmount = req.TransactionAmount
	gp.ExternalReference = req.ExternalReference
	gp.Payer = entities.GatewayPayer{Email: req.Payer.Email, FirstName: req.Payer.FirstName, LastName: req.Payer.LastName}
	if req.DateOfExpiration != nil {
		exp := *req.DateOfExpiration
		gp.DateOfExpiration = &exp
	}
	gp.Raw, _ = json.Marshal(map[string]any{
		"id":                 id,
		"status":             gp.Status,
		"payment_method_id":  gp.PaymentMethodID,
		"transaction_amount": req.TransactionAmount,
		"external_reference": req.ExternalReference,
		"mock":               true,
	})
	return gp
}

func (g *MercadoPagoGateway) mockPayment(id string, status entities.PaymentStatus, methodID string) entities.GatewayPayment {
	now := g.now().UTC()
	gp := entities.GatewayPayment{
		ID:                id,
		Status:            status,
		StatusDetail:      "mock",
		CurrencyID:        entities.DefaultCurrency,
		PaymentMethodID:   methodID,
		TransactionAmount: decimal.Zero,
		DateLastUpdated:   now,
	}
	switch methodID {
	case "pix":
		gp.Kind = entities.MethodKindPix
		gp.PaymentTypeID = "bank_transfer"
		gp.Pix = &entities.PixData{
			QRCode:    "00020126580014br.gov.bcb.pix0136mock-" + id,
			TicketURL: "https://www.mercadopago.com.br/payments/" + id + "/ticket",
		}
		_ = ensurePixQR(&gp)
	case "bolbradesco":
		gp.Kind = entities.MethodKindBoleto
		gp.PaymentTypeID = "ticket"
		gp.Boleto = &entities.BoletoData{
			URL:     "https://www.mercadopago.com.br/payments/" + id + "/ticket",
			Barcode: "23790000000000000000000000000000000000000000",
		}
	default:
		gp.Kind = entities.MethodKindCard
		gp.PaymentTypeID = "credit_card"
		if strings.HasPrefix(methodID, "deb") {
			gp.PaymentTypeID = "debit_card"
		}
		gp.Card = &entities.CardData{Installments: 1, LastFourDigits: "0000"}
	}
	return gp
}
