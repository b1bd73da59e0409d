package request

import (
	"checkout_hub/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateCheckoutLinkRequest struct {
	Title        string          `json:"title" binding:"required,max=200"`
	Description  string          `json:"description" binding:"max=2000"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency" binding:"omitempty,len=3"`
	ImageURL     string          `json:"image_url" binding:"omitempty,url"`
	DeliveryLink string          `json:"delivery_link" binding:"omitempty,url"`
}

func (r CreateCheckoutLinkRequest) ToInput(origin string) usecase.CreateCheckoutLinkInput {
	return usecase.CreateCheckoutLinkInput{
		Title:        r.Title,
		Description:  r.Description,
		Amount:       r.Amount,
		Currency:     r.Currency,
		ImageURL:     r.ImageURL,
		DeliveryLink: r.DeliveryLink,
		Origin:       origin,
	}
}

type SetCheckoutLinkActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type OrderBumpRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" binding:"omitempty,url"`
	IsActive    *bool           `json:"is_active"`
}

// ToInput defaults is_active to true when omitted.
func (r OrderBumpRequest) ToInput() usecase.OrderBumpInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return usecase.OrderBumpInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsActive:    active,
	}
}
