package repository

import (
	"context"
	"errors"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderBumpGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderBumpRepository = (*OrderBumpGormRepository)(nil)

func NewOrderBumpGormRepository(db *gorm.DB) *OrderBumpGormRepository {
	return &OrderBumpGormRepository{db: db}
}

func (r *OrderBumpGormRepository) GetByCheckoutLinkID(ctx context.Context, checkoutLinkID string) (entities.OrderBump, error) {
	var row orderBumpRow
	err := r.db.WithContext(ctx).Where("checkout_link_id = ?", checkoutLinkID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.OrderBump{}, nil
	}
	if err != nil {
		return entities.OrderBump{}, err
	}
	return entities.OrderBump{
		ID:             row.ID,
		CheckoutLinkID: row.CheckoutLinkID,
		Title:          row.Title,
		Description:    row.Description,
		Price:          row.Price,
		ImageURL:       row.ImageURL,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
	}, nil
}

// Save upserts on checkout_link_id.
func (r *OrderBumpGormRepository) Save(ctx context.Context, b entities.OrderBump) (entities.OrderBump, error) {
	row := orderBumpRow{
		ID:             b.ID,
		CheckoutLinkID: b.CheckoutLinkID,
		Title:          b.Title,
		Description:    b.Description,
		Price:          b.Price,
		ImageURL:       b.ImageURL,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt.UTC(),
		UpdatedAt:      b.UpdatedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "checkout_link_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "price", "image_url", "is_active", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return entities.OrderBump{}, err
	}
	return b, nil
}

func (r *OrderBumpGormRepository) DeleteByCheckoutLinkID(ctx context.Context, checkoutLinkID string) error {
	return r.db.WithContext(ctx).Where("checkout_link_id = ?", checkoutLinkID).Delete(&orderBumpRow{}).Error
}
