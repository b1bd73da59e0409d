package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"checkout_hub/internal/adapter/http/handlers"
	"checkout_hub/internal/adapter/http/handlers/mocks"
	"checkout_hub/internal/adapter/http/middleware"
	"checkout_hub/internal/infrastructure/metrics"
	"checkout_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	reconciliation *mocks.MockIReconciliationUseCase
	links          *mocks.MockICheckoutLinkUseCase
	notifications  *mocks.MockINotificationUseCase
}

func newTestRouter(t *testing.T, gatherer prometheus.Gatherer) (*gin.Engine, routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := routerMocks{
		reconciliation: mocks.NewMockIReconciliationUseCase(ctrl),
		links:          mocks.NewMockICheckoutLinkUseCase(ctrl),
		notifications:  mocks.NewMockINotificationUseCase(ctrl),
	}
	configs := mocks.NewMockIConfigService(ctrl)

	h := Handlers{
		Webhook:       handlers.NewWebhookHandler(m.reconciliation, nil),
		Payments:      handlers.NewPaymentHandler(mocks.NewMockITransparentPaymentUseCase(ctrl), mocks.NewMockIPaymentQueryUseCase(ctrl), nil),
		CheckoutLinks: handlers.NewCheckoutLinkHandler(m.links, configs, nil),
		Config:        handlers.NewConfigHandler(configs, nil),
		Customization: handlers.NewCustomizationHandler(mocks.NewMockICustomizationUseCase(ctrl), nil),
		Notifications: handlers.NewNotificationHandler(m.notifications, nil),
	}
	return NewRouter(h, RouterOptions{Gatherer: gatherer}, nil), m
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := serve(r, http.MethodGet, "/v1/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestWebhookRouteDispatches(t *testing.T) {
	r, m := newTestRouter(t, nil)
	m.reconciliation.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).
		Return(usecase.ReconcileOutcome{Ignored: true}, nil)

	w := serve(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"merchant_order","data":{"id":"1"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotificationStaticRouteWinsOverParam(t *testing.T) {
	r, m := newTestRouter(t, nil)
	m.notifications.EXPECT().MarkAllRead(gomock.Any()).Return(int64(2), nil)
	m.notifications.EXPECT().MarkRead(gomock.Any(), "n1").Return(nil)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPatch, "/v1/notifications/read-all", "").Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPatch, "/v1/notifications/n1/read", "").Code)
}

func TestPublicCheckoutRoute(t *testing.T) {
	r, m := newTestRouter(t, nil)
	m.links.EXPECT().GetPublic(gomock.Any(), "L1").Return(usecase.PublicCheckout{}, usecase.ErrCheckoutLinkNotFound)

	w := serve(r, http.MethodGet, "/v1/public/checkout/L1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Run("served when a gatherer is given", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics.NewPaymentMetrics(reg).ObserveReconciliation(usecase.ReconcileResultCreated)
		r, _ := newTestRouter(t, reg)

		w := serve(r, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "checkout_webhook_reconciliations_total")
	})

	t.Run("absent otherwise", func(t *testing.T) {
		r, _ := newTestRouter(t, nil)
		assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/metrics", "").Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/v1/nope", "").Code)
}
