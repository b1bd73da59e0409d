package repository

import (
	"context"
	"errors"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GatewayConfigGormRepository and CustomizationGormRepository each hold a
// single row keyed by "default".

type GatewayConfigGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IGatewayConfigRepository = (*GatewayConfigGormRepository)(nil)

func NewGatewayConfigGormRepository(db *gorm.DB) *GatewayConfigGormRepository {
	return &GatewayConfigGormRepository{db: db}
}

func (r *GatewayConfigGormRepository) Get(ctx context.Context) (entities.GatewayConfig, error) {
	var row gatewayConfigRow
	if err := firstByID(ctx, r.db, entities.GatewayConfigID, &row); err != nil || row.ID == "" {
		return entities.GatewayConfig{}, err
	}
	return entities.GatewayConfig{
		ID:            row.ID,
		AccessToken:   row.AccessToken,
		PublicKey:     row.PublicKey,
		IsSandbox:     row.IsSandbox,
		WebhookSecret: row.WebhookSecret,
		CreatedAt:     row.CreatedAt.UTC(),
		UpdatedAt:     row.UpdatedAt.UTC(),
	}, nil
}

func (r *GatewayConfigGormRepository) Save(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
	cfg.ID = entities.GatewayConfigID
	row := gatewayConfigRow{
		ID:            cfg.ID,
		AccessToken:   cfg.AccessToken,
		PublicKey:     cfg.PublicKey,
		IsSandbox:     cfg.IsSandbox,
		WebhookSecret: cfg.WebhookSecret,
		CreatedAt:     cfg.CreatedAt.UTC(),
		UpdatedAt:     cfg.UpdatedAt.UTC(),
	}
	if err := upsert(ctx, r.db, &row); err != nil {
		return entities.GatewayConfig{}, err
	}
	return cfg, nil
}

type CustomizationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomizationRepository = (*CustomizationGormRepository)(nil)

func NewCustomizationGormRepository(db *gorm.DB) *CustomizationGormRepository {
	return &CustomizationGormRepository{db: db}
}

func (r *CustomizationGormRepository) Get(ctx context.Context) (entities.CheckoutCustomization, error) {
	var row customizationRow
	if err := firstByID(ctx, r.db, entities.CustomizationID, &row); err != nil || row.ID == "" {
		return entities.CheckoutCustomization{}, err
	}
	return entities.CheckoutCustomization{
		ID:                   row.ID,
		CompanyName:          row.CompanyName,
		CheckoutTitle:        row.CheckoutTitle,
		CheckoutDescription:  row.CheckoutDescription,
		LogoURL:              row.LogoURL,
		PrimaryColor:         row.PrimaryColor,
		SecondaryColor:       row.SecondaryColor,
		BackgroundColor:      row.BackgroundColor,
		TextColor:            row.TextColor,
		AccentColor:          row.AccentColor,
		FontFamily:           row.FontFamily,
		EnableCreditCard:     row.EnableCreditCard,
		EnableDebitCard:      row.EnableDebitCard,
		EnablePix:            row.EnablePix,
		EnableBoleto:         row.EnableBoleto,
		EnableOrderBump:      row.EnableOrderBump,
		OrderBumpTitle:       row.OrderBumpTitle,
		OrderBumpDescription: row.OrderBumpDescription,
		OrderBumpPrice:       decimalPtr(row.OrderBumpPrice),
		OrderBumpImageURL:    row.OrderBumpImageURL,
		ShowCompanyLogo:      row.ShowCompanyLogo,
		ShowSecurityBadges:   row.ShowSecurityBadges,
		ShowPaymentMethods:   row.ShowPaymentMethods,
		SuccessMessage:       row.SuccessMessage,
		CustomCSS:            row.CustomCSS,
		CreatedAt:            row.CreatedAt.UTC(),
		UpdatedAt:            row.UpdatedAt.UTC(),
	}, nil
}

func (r *CustomizationGormRepository) Save(ctx context.Context, c entities.CheckoutCustomization) (entities.CheckoutCustomization, error) {
	c.ID = entities.CustomizationID
	row := customizationRow{
		ID:                   c.ID,
		CompanyName:          c.CompanyName,
		CheckoutTitle:        c.CheckoutTitle,
		CheckoutDescription:  c.CheckoutDescription,
		LogoURL:              c.LogoURL,
		PrimaryColor:         c.PrimaryColor,
		SecondaryColor:       c.SecondaryColor,
		BackgroundColor:      c.BackgroundColor,
		TextColor:            c.TextColor,
		AccentColor:          c.AccentColor,
		FontFamily:           c.FontFamily,
		EnableCreditCard:     c.EnableCreditCard,
		EnableDebitCard:      c.EnableDebitCard,
		EnablePix:            c.EnablePix,
		EnableBoleto:         c.EnableBoleto,
		EnableOrderBump:      c.EnableOrderBump,
		OrderBumpTitle:       c.OrderBumpTitle,
		OrderBumpDescription: c.OrderBumpDescription,
		OrderBumpPrice:       nullDecimal(c.OrderBumpPrice),
		OrderBumpImageURL:    c.OrderBumpImageURL,
		ShowCompanyLogo:      c.ShowCompanyLogo,
		ShowSecurityBadges:   c.ShowSecurityBadges,
		ShowPaymentMethods:   c.ShowPaymentMethods,
		SuccessMessage:       c.SuccessMessage,
		CustomCSS:            c.CustomCSS,
		CreatedAt:            c.CreatedAt.UTC(),
		UpdatedAt:            c.UpdatedAt.UTC(),
	}
	if err := upsert(ctx, r.db, &row); err != nil {
		return entities.CheckoutCustomization{}, err
	}
	return c, nil
}

func firstByID(ctx context.Context, db *gorm.DB, id string, dest any) error {
	err := db.WithContext(ctx).Where("id = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func upsert(ctx context.Context, db *gorm.DB, row any) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
}
