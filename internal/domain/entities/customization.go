package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const CustomizationID = "default"

// CheckoutCustomization is the singleton appearance record of the hosted
// checkout page.
type CheckoutCustomization struct {
	ID string `json:"id"`

	CompanyName         string `json:"company_name,omitempty"`
	CheckoutTitle       string `json:"checkout_title,omitempty"`
	CheckoutDescription string `json:"checkout_description,omitempty"`
	LogoURL             string `json:"logo_url,omitempty"`

	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	AccentColor     string `json:"accent_color,omitempty"`
	FontFamily      string `json:"font_family,omitempty"`

	EnableCreditCard bool `json:"enable_credit_card"`
	EnableDebitCard  bool `json:"enable_debit_card"`
	EnablePix        bool `json:"enable_pix"`
	EnableBoleto     bool `json:"enable_boleto"`
	EnableOrderBump  bool `json:"enable_order_bump"`

	OrderBumpTitle       string           `json:"order_bump_title,omitempty"`
	OrderBumpDescription string           `json:"order_bump_description,omitempty"`
	OrderBumpPrice       *decimal.Decimal `json:"order_bump_price,omitempty"`
	OrderBumpImageURL    string           `json:"order_bump_image_url,omitempty"`

	ShowCompanyLogo    bool   `json:"show_company_logo"`
	ShowSecurityBadges bool   `json:"show_security_badges"`
	ShowPaymentMethods bool   `json:"show_payment_methods"`
	SuccessMessage     string `json:"success_message,omitempty"`
	CustomCSS          string `json:"custom_css,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultCustomization is served until the operator saves a record.
func DefaultCustomization() CheckoutCustomization {
	return CheckoutCustomization{
		ID:                 CustomizationID,
		CheckoutTitle:      "Finalizar compra",
		PrimaryColor:       "#3b82f6",
		SecondaryColor:     "#1e40af",
		BackgroundColor:    "#ffffff",
		TextColor:          "#111827",
		SuccessMessage:     "Pagamento realizado com sucesso!",
		EnableCreditCard:   true,
		EnableDebitCard:    true,
		EnablePix:          true,
		EnableBoleto:       true,
		ShowCompanyLogo:    true,
		ShowSecurityBadges: true,
		ShowPaymentMethods: true,
	}
}
