package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"checkout_hub/internal/adapter/http/dto/request"
	"checkout_hub/internal/adapter/http/dto/response"
	"checkout_hub/internal/usecase"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	headerSignature = "x-signature"
	headerRequestID = "x-request-id"
)

type WebhookHandler struct {
	usecase usecase.IReconciliationUseCase
	log     *logger.Logger
}

func NewWebhookHandler(uc usecase.IReconciliationUseCase, log *logger.Logger) *WebhookHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &WebhookHandler{usecase: uc, log: log}
}

// HandleMercadoPago reconciles a Mercado Pago notification.
//
// @Summary  Mercado Pago webhook
// @Tags     webhooks
// @Accept   json
// @Produce  json
// @Param    type     query  string  false  "event type when not in the body"
// @Param    data.id  query  string  false  "payment id when not in the body"
// @Success  200  {object}  response.WebhookResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  401  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /webhooks/mercadopago [post]
func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	var payload request.WebhookNotificationRequest
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, h.log, "[payment][webhook] read body failed", fmt.Errorf("%w: %w", usecase.ErrInvalidWebhookEvent, err))
		return
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			writeError(c, h.log, "[payment][webhook] malformed body", fmt.Errorf("%w: %w", usecase.ErrInvalidWebhookEvent, err))
			return
		}
	}
	payload = payload.WithQueryFallback(c.Request.URL.Query())

	ev := usecase.WebhookEvent{
		Type:      payload.EventType(),
		Action:    payload.Action,
		PaymentID: payload.PaymentID(),
		Signature: c.GetHeader(headerSignature),
		RequestID: c.GetHeader(headerRequestID),
	}
	ctx := h.log.WithFields(c.Request.Context(), map[string]any{"type": ev.Type, "action": ev.Action, "mercadopago_payment_id": ev.PaymentID})
	c.Request = c.Request.WithContext(ctx)
	h.log.Info(ctx, "[payment][webhook] received")

	out, err := h.usecase.HandleWebhook(ctx, ev)
	if err != nil {
		writeError(c, h.log, "[payment][webhook] reconciliation failed", err)
		return
	}

	if out.Notification.Err != nil {
		h.log.Warn(h.log.WithField(ctx, "error", out.Notification.Err.Error()), "[payment][webhook] notification not stored")
	}

	c.JSON(http.StatusOK, response.WebhookResponse{
		Message:       "OK",
		Status:        string(out.Payment.Status),
		Created:       out.Created,
		StatusChanged: out.StatusChanged,
		Ignored:       out.Ignored,
		Stale:         out.Stale,
	})
}
