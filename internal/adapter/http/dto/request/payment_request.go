package request

import (
	"strings"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase"
)

type CardDataRequest struct {
	Token           string `json:"token"`
	Installments    int    `json:"installments" binding:"omitempty,gte=1,lte=24"`
	PaymentMethodID string `json:"payment_method_id"`
}

type CustomerDataRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	DocumentType   string `json:"document_type" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
}

// ProcessPaymentRequest is the transparent checkout submission. Card methods
// must carry card_data.token (rule card_token_required).
type ProcessPaymentRequest struct {
	CheckoutLinkID    string              `json:"checkout_link_id" binding:"required"`
	PaymentMethod     string              `json:"payment_method" binding:"required,oneof=credit_card debit_card pix boleto"`
	CardData          *CardDataRequest    `json:"card_data"`
	CustomerData      CustomerDataRequest `json:"customer_data" binding:"required"`
	OrderBumpSelected bool                `json:"order_bump_selected"`
}

func (r ProcessPaymentRequest) ToInput(idempotencyKey string) usecase.ProcessPaymentInput {
	in := usecase.ProcessPaymentInput{
		CheckoutLinkID:    strings.TrimSpace(r.CheckoutLinkID),
		PaymentMethod:     entities.PaymentMethod(r.PaymentMethod),
		OrderBumpSelected: r.OrderBumpSelected,
		IdempotencyKey:    strings.TrimSpace(idempotencyKey),
		Customer: usecase.CustomerInput{
			Name:           r.CustomerData.Name,
			Email:          r.CustomerData.Email,
			Phone:          r.CustomerData.Phone,
			DocumentType:   r.CustomerData.DocumentType,
			DocumentNumber: r.CustomerData.DocumentNumber,
		},
	}
	if r.CardData != nil {
		in.Card = &usecase.CardInput{
			Token:           strings.TrimSpace(r.CardData.Token),
			Installments:    r.CardData.Installments,
			PaymentMethodID: strings.TrimSpace(r.CardData.PaymentMethodID),
		}
	}
	return in
}

type PaymentListQuery struct {
	Status         string `form:"status"`
	CheckoutLinkID string `form:"checkout_link_id"`
	Limit          int    `form:"limit" binding:"omitempty,gte=1"`
}
