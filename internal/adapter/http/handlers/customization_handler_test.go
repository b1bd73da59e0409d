package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"checkout_hub/internal/adapter/http/handlers/mocks"
	"checkout_hub/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCustomizationRouter(t *testing.T) (*gin.Engine, *mocks.MockICustomizationUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomizationUseCase(ctrl)
	h := NewCustomizationHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/customization", h.Get)
	r.PUT("/v1/customization", h.Save)
	return r, uc
}

func TestCustomizationHandler_Get(t *testing.T) {
	r, uc := newCustomizationRouter(t)
	uc.EXPECT().Get(gomock.Any()).Return(entities.DefaultCustomization(), nil)

	w := doRequest(r, http.MethodGet, "/v1/customization", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"primary_color":"#3b82f6"`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestCustomizationHandler_Save(t *testing.T) {
	t.Run("defaults unset colors", func(t *testing.T) {
		r, uc := newCustomizationRouter(t)
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CheckoutCustomization) (entities.CheckoutCustomization, error) {
				if c.PrimaryColor != "#000000" {
					t.Errorf("primary color not forwarded: %s", c.PrimaryColor)
				}
				if c.TextColor != entities.DefaultCustomization().TextColor {
					t.Errorf("text color not defaulted: %s", c.TextColor)
				}
				c.ID = entities.CustomizationID
				return c, nil
			})

		w := doRequest(r, http.MethodPut, "/v1/customization", `{"company_name":"Loja","primary_color":"#000000","enable_pix":true}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		r, _ := newCustomizationRouter(t)
		w := doRequest(r, http.MethodPut, "/v1/customization", `{"primary_color":"blue"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := newCustomizationRouter(t)
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.CheckoutCustomization{}, errors.New("boom"))

		w := doRequest(r, http.MethodPut, "/v1/customization", `{}`, nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
