package request

import (
	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase"

	"github.com/shopspring/decimal"
)

type SaveConfigRequest struct {
	AccessToken   string `json:"access_token" binding:"required"`
	PublicKey     string `json:"public_key"`
	IsSandbox     bool   `json:"is_sandbox"`
	WebhookSecret string `json:"webhook_secret"`
}

func (r SaveConfigRequest) ToInput() usecase.SaveConfigInput {
	return usecase.SaveConfigInput{
		AccessToken:   r.AccessToken,
		PublicKey:     r.PublicKey,
		IsSandbox:     r.IsSandbox,
		WebhookSecret: r.WebhookSecret,
	}
}

type CustomizationRequest struct {
	CompanyName         string `json:"company_name" binding:"max=200"`
	CheckoutTitle       string `json:"checkout_title" binding:"max=200"`
	CheckoutDescription string `json:"checkout_description" binding:"max=2000"`
	LogoURL             string `json:"logo_url" binding:"omitempty,url"`

	PrimaryColor    string `json:"primary_color" binding:"omitempty,hexcolor"`
	SecondaryColor  string `json:"secondary_color" binding:"omitempty,hexcolor"`
	BackgroundColor string `json:"background_color" binding:"omitempty,hexcolor"`
	TextColor       string `json:"text_color" binding:"omitempty,hexcolor"`
	AccentColor     string `json:"accent_color" binding:"omitempty,hexcolor"`
	FontFamily      string `json:"font_family"`

	EnableCreditCard bool `json:"enable_credit_card"`
	EnableDebitCard  bool `json:"enable_debit_card"`
	EnablePix        bool `json:"enable_pix"`
	EnableBoleto     bool `json:"enable_boleto"`
	EnableOrderBump  bool `json:"enable_order_bump"`

	OrderBumpTitle       string           `json:"order_bump_title"`
	OrderBumpDescription string           `json:"order_bump_description"`
	OrderBumpPrice       *decimal.Decimal `json:"order_bump_price"`
	OrderBumpImageURL    string           `json:"order_bump_image_url" binding:"omitempty,url"`

	ShowCompanyLogo    bool   `json:"show_company_logo"`
	ShowSecurityBadges bool   `json:"show_security_badges"`
	ShowPaymentMethods bool   `json:"show_payment_methods"`
	SuccessMessage     string `json:"success_message"`
	CustomCSS          string `json:"custom_css" binding:"max=20000"`
}

// ToEntity fills unset colors from the defaults.
func (r CustomizationRequest) ToEntity() entities.CheckoutCustomization {
	def := entities.DefaultCustomization()
	return entities.CheckoutCustomization{
		CompanyName:          r.CompanyName,
		CheckoutTitle:        r.CheckoutTitle,
		CheckoutDescription:  r.CheckoutDescription,
		LogoURL:              r.LogoURL,
		PrimaryColor:         orDefault(r.PrimaryColor, def.PrimaryColor),
		SecondaryColor:       orDefault(r.SecondaryColor, def.SecondaryColor),
		BackgroundColor:      orDefault(r.BackgroundColor, def.BackgroundColor),
		TextColor:            orDefault(r.TextColor, def.TextColor),
		AccentColor:          r.AccentColor,
		FontFamily:           r.FontFamily,
		EnableCreditCard:     r.EnableCreditCard,
		EnableDebitCard:      r.EnableDebitCard,
		EnablePix:            r.EnablePix,
		EnableBoleto:         r.EnableBoleto,
		EnableOrderBump:      r.EnableOrderBump,
		OrderBumpTitle:       r.OrderBumpTitle,
		OrderBumpDescription: r.OrderBumpDescription,
		OrderBumpPrice:       r.OrderBumpPrice,
		OrderBumpImageURL:    r.OrderBumpImageURL,
		ShowCompanyLogo:      r.ShowCompanyLogo,
		ShowSecurityBadges:   r.ShowSecurityBadges,
		ShowPaymentMethods:   r.ShowPaymentMethods,
		SuccessMessage:       r.SuccessMessage,
		CustomCSS:            r.CustomCSS,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type NotificationListQuery struct {
	UnreadOnly bool `form:"unread_only"`
}
