package response

import (
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase"
)

type CheckoutLinkResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	ReferenceID  string    `json:"reference_id"`
	PreferenceID string    `json:"mercadopago_preference_id,omitempty"`
	CheckoutURL  string    `json:"checkout_url,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	DeliveryLink string    `json:"delivery_link,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromCheckoutLink(l entities.CheckoutLink) CheckoutLinkResponse {
	return CheckoutLinkResponse{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Amount:       l.Amount.InexactFloat64(),
		Currency:     l.Currency,
		ReferenceID:  l.ReferenceID,
		PreferenceID: l.PreferenceID,
		CheckoutURL:  l.CheckoutURL,
		ImageURL:     l.ImageURL,
		DeliveryLink: l.DeliveryLink,
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func FromCheckoutLinks(list []entities.CheckoutLink) []CheckoutLinkResponse {
	out := make([]CheckoutLinkResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromCheckoutLink(l))
	}
	return out
}

type OrderBumpResponse struct {
	ID             string    `json:"id"`
	CheckoutLinkID string    `json:"checkout_link_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromOrderBump(b entities.OrderBump) OrderBumpResponse {
	return OrderBumpResponse{
		ID:             b.ID,
		CheckoutLinkID: b.CheckoutLinkID,
		Title:          b.Title,
		Description:    b.Description,
		Price:          b.Price.InexactFloat64(),
		ImageURL:       b.ImageURL,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// PublicCheckoutResponse omits operator-only fields (preference id,
// delivery link) since it is served unauthenticated.
type PublicCheckoutResponse struct {
	ID            string                         `json:"id"`
	Title         string                         `json:"title"`
	Description   string                         `json:"description,omitempty"`
	Amount        float64                        `json:"amount"`
	Currency      string                         `json:"currency"`
	ImageURL      string                         `json:"image_url,omitempty"`
	PublicKey     string                         `json:"public_key,omitempty"`
	OrderBump     *OrderBumpResponse             `json:"order_bump,omitempty"`
	Customization entities.CheckoutCustomization `json:"customization"`
}

func FromPublicCheckout(p usecase.PublicCheckout, publicKey string) PublicCheckoutResponse {
	out := PublicCheckoutResponse{
		ID:            p.Link.ID,
		Title:         p.Link.Title,
		Description:   p.Link.Description,
		Amount:        p.Link.Amount.InexactFloat64(),
		Currency:      p.Link.Currency,
		ImageURL:      p.Link.ImageURL,
		PublicKey:     publicKey,
		Customization: p.Customization,
	}
	if p.OrderBump != nil {
		b := FromOrderBump(*p.OrderBump)
		out.OrderBump = &b
	}
	return out
}
