package repository

import (
	"context"
	"errors"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CheckoutLinkGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICheckoutLinkRepository = (*CheckoutLinkGormRepository)(nil)

func NewCheckoutLinkGormRepository(db *gorm.DB) *CheckoutLinkGormRepository {
	return &CheckoutLinkGormRepository{db: db}
}

func (r *CheckoutLinkGormRepository) Create(ctx context.Context, l entities.CheckoutLink) (entities.CheckoutLink, error) {
	row := toCheckoutLinkRow(l)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.CheckoutLink{}, interfaces.ErrAlreadyExists
		}
		return entities.CheckoutLink{}, err
	}
	return l, nil
}

func (r *CheckoutLinkGormRepository) GetByID(ctx context.Context, id string) (entities.CheckoutLink, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CheckoutLinkGormRepository) GetByReferenceID(ctx context.Context, referenceID string) (entities.CheckoutLink, error) {
	return r.first(ctx, "reference_id = ?", referenceID)
}

func (r *CheckoutLinkGormRepository) List(ctx context.Context) ([]entities.CheckoutLink, error) {
	var rows []checkoutLinkRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.CheckoutLink, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromCheckoutLinkRow(row))
	}
	return out, nil
}

func (r *CheckoutLinkGormRepository) SetActive(ctx context.Context, id string, active bool) (entities.CheckoutLink, error) {
	res := r.db.WithContext(ctx).Model(&checkoutLinkRow{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": nowUTC()})
	if res.Error != nil {
		return entities.CheckoutLink{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.CheckoutLink{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *CheckoutLinkGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&checkoutLinkRow{}).Error
}

func (r *CheckoutLinkGormRepository) first(ctx context.Context, query string, arg any) (entities.CheckoutLink, error) {
	var row checkoutLinkRow
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CheckoutLink{}, nil
	}
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	return fromCheckoutLinkRow(row), nil
}

func toCheckoutLinkRow(l entities.CheckoutLink) checkoutLinkRow {
	return checkoutLinkRow{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Amount:       l.Amount,
		Currency:     l.Currency,
		ReferenceID:  l.ReferenceID,
		PreferenceID: l.PreferenceID,
		CheckoutURL:  l.CheckoutURL,
		ImageURL:     l.ImageURL,
		DeliveryLink: l.DeliveryLink,
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt.UTC(),
		UpdatedAt:    l.UpdatedAt.UTC(),
	}
}

func fromCheckoutLinkRow(row checkoutLinkRow) entities.CheckoutLink {
	return entities.CheckoutLink{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Amount:       row.Amount,
		Currency:     row.Currency,
		ReferenceID:  row.ReferenceID,
		PreferenceID: row.PreferenceID,
		CheckoutURL:  row.CheckoutURL,
		ImageURL:     row.ImageURL,
		DeliveryLink: row.DeliveryLink,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}
