package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Row types map the postgres schema created by the goose migrations.

type gatewayConfigRow struct {
	ID            string `gorm:"primaryKey"`
	AccessToken   string
	PublicKey     string
	IsSandbox     bool
	WebhookSecret string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (gatewayConfigRow) TableName() string { return "mercadopago_config" }

type checkoutLinkRow struct {
	ID           string `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	Description  string
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency     string
	ReferenceID  string `gorm:"uniqueIndex;not null"`
	PreferenceID string `gorm:"column:mercadopago_preference_id"`
	CheckoutURL  string
	ImageURL     string
	DeliveryLink string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (checkoutLinkRow) TableName() string { return "checkout_links" }

type orderBumpRow struct {
	ID             string `gorm:"primaryKey"`
	CheckoutLinkID string `gorm:"uniqueIndex;not null"`
	Title          string `gorm:"not null"`
	Description    string
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL       string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (orderBumpRow) TableName() string { return "order_bumps" }

type paymentRow struct {
	ID                   string          `gorm:"primaryKey"`
	MercadoPagoPaymentID string          `gorm:"column:mercadopago_payment_id;uniqueIndex;not null"`
	CheckoutLinkID       string          `gorm:"index"`
	Status               string          `gorm:"index;not null"`
	Amount               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency             string
	TransactionAmount    decimal.Decimal     `gorm:"type:numeric(12,2)"`
	NetReceivedAmount    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	FeeAmount            decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	PayerName            string
	PayerEmail           string
	PayerPhone           string
	PayerDocumentType    string
	PayerDocumentNumber  string
	PaymentMethod        string
	OrderBumpSelected    *bool
	OrderBumpAmount      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CustomerData         datatypes.JSON
	WebhookData          datatypes.JSON
	GatewayUpdatedAtNs   int64 `gorm:"column:gateway_updated_at_ns;not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (paymentRow) TableName() string { return "payments" }

type notificationRow struct {
	ID        string `gorm:"primaryKey"`
	Type      string `gorm:"not null"`
	Message   string `gorm:"not null"`
	PaymentID string
	IsRead    bool
	CreatedAt time.Time
}

func (notificationRow) TableName() string { return "notifications" }

type customizationRow struct {
	ID                   string `gorm:"primaryKey"`
	CompanyName          string
	CheckoutTitle        string
	CheckoutDescription  string
	LogoURL              string
	PrimaryColor         string
	SecondaryColor       string
	BackgroundColor      string
	TextColor            string
	AccentColor          string
	FontFamily           string
	EnableCreditCard     bool
	EnableDebitCard      bool
	EnablePix            bool
	EnableBoleto         bool
	EnableOrderBump      bool
	OrderBumpTitle       string
	OrderBumpDescription string
	OrderBumpPrice       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	OrderBumpImageURL    string
	ShowCompanyLogo      bool
	ShowSecurityBadges   bool
	ShowPaymentMethods   bool
	SuccessMessage       string
	CustomCSS            string `gorm:"column:custom_css"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (customizationRow) TableName() string { return "checkout_customization" }

// GormModels lists every row type, for schema bootstrapping in tests and
// tooling. Production schemas come from the goose migrations.
func GormModels() []any {
	return []any{
		&gatewayConfigRow{},
		&checkoutLinkRow{},
		&orderBumpRow{},
		&paymentRow{},
		&notificationRow{},
		&customizationRow{},
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func jsonColumn(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}
