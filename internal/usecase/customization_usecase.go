package usecase

import (
	"context"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
)

type ICustomizationUseCase interface {
	Get(ctx context.Context) (entities.CheckoutCustomization, error)
	Save(ctx context.Context, c entities.CheckoutCustomization) (entities.CheckoutCustomization, error)
}

type CustomizationUseCase struct {
	repo interfaces.ICustomizationRepository
	now  func() time.Time
}

var _ ICustomizationUseCase = (*CustomizationUseCase)(nil)

func NewCustomizationUseCase(repo interfaces.ICustomizationRepository) *CustomizationUseCase {
	return &CustomizationUseCase{repo: repo, now: time.Now}
}

// Get returns the stored record or the defaults when none was saved yet.
func (u *CustomizationUseCase) Get(ctx context.Context) (entities.CheckoutCustomization, error) {
	c, err := u.repo.Get(ctx)
	if err != nil {
		return entities.CheckoutCustomization{}, err
	}
	if c.ID == "" {
		return entities.DefaultCustomization(), nil
	}
	return c, nil
}

func (u *CustomizationUseCase) Save(ctx context.Context, c entities.CheckoutCustomization) (entities.CheckoutCustomization, error) {
	existing, err := u.repo.Get(ctx)
	if err != nil {
		return entities.CheckoutCustomization{}, err
	}
	now := u.now().UTC()
	c.ID = entities.CustomizationID
	c.CreatedAt = existing.CreatedAt
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return u.repo.Save(ctx, c)
}
