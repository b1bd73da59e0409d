package handlers

import (
	"net/http"

	"checkout_hub/internal/adapter/http/dto/request"
	"checkout_hub/internal/adapter/http/dto/response"
	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

const headerIdempotencyKey = "X-Idempotency-Key"

type PaymentHandler struct {
	process usecase.ITransparentPaymentUseCase
	query   usecase.IPaymentQueryUseCase
	log     *logger.Logger
}

func NewPaymentHandler(process usecase.ITransparentPaymentUseCase, query usecase.IPaymentQueryUseCase, log *logger.Logger) *PaymentHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PaymentHandler{process: process, query: query, log: log}
}

// Process creates a transparent payment (card, PIX or boleto) for a checkout
// link. A caller-supplied X-Idempotency-Key is forwarded to the gateway.
//
// @Summary  Process transparent payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payload  body  request.ProcessPaymentRequest  true  "payment"
// @Success  200  {object}  response.ProcessPaymentResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /payments/process [post]
func (h *PaymentHandler) Process(c *gin.Context) {
	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, h.log, err)
		return
	}

	in := payload.ToInput(c.GetHeader(headerIdempotencyKey))
	res, err := h.process.Process(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.log, "[payment][handler] process failed", err)
		return
	}

	c.JSON(http.StatusOK, response.FromProcessPaymentResult(in.PaymentMethod, res))
}

// List returns stored payments newest first.
func (h *PaymentHandler) List(c *gin.Context) {
	var q request.PaymentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, h.log, err)
		return
	}

	list, err := h.query.List(c.Request.Context(), interfaces.PaymentFilter{
		Status:         entities.PaymentStatus(q.Status),
		CheckoutLinkID: q.CheckoutLinkID,
		Limit:          q.Limit,
	})
	if err != nil {
		writeError(c, h.log, "[payment][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}
