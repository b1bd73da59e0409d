package usecase

import (
	"context"
	"testing"
	"time"

	"checkout_hub/internal/domain/entities"
	mock_interfaces "checkout_hub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomizationUseCase(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("get falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomizationRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(entities.CheckoutCustomization{}, nil)

		c, err := NewCustomizationUseCase(repo).Get(ctx)
		if err != nil || c.PrimaryColor != entities.DefaultCustomization().PrimaryColor {
			t.Fatalf("expected defaults, got %+v err=%v", c, err)
		}
	})

	t.Run("save keeps creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomizationRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(entities.CheckoutCustomization{ID: "default", CreatedAt: created}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CheckoutCustomization) (entities.CheckoutCustomization, error) {
				return c, nil
			})

		uc := NewCustomizationUseCase(repo)
		uc.now = func() time.Time { return now }
		c, err := uc.Save(ctx, entities.CheckoutCustomization{ID: "other", CompanyName: "ACME"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if c.ID != entities.CustomizationID || !c.CreatedAt.Equal(created) || !c.UpdatedAt.Equal(now) || c.CompanyName != "ACME" {
			t.Fatalf("unexpected customization: %+v", c)
		}
	})
}
