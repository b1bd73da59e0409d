package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"checkout_hub/internal/adapter/http/dto/request"
	"checkout_hub/internal/usecase"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

func mapError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookEvent), errors.Is(err, usecase.ErrMissingPaymentID):
		return pkg.NewDomainError("INVALID_WEBHOOK_EVENT", "Invalid webhook event", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainError("INVALID_SIGNATURE", "Invalid webhook signature", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrConfigUnavailable):
		return pkg.NewDomainError("CONFIG_NOT_FOUND", "Mercado Pago configuration not found", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidConfig):
		return pkg.NewDomainError("INVALID_CONFIG", "Invalid Mercado Pago configuration", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutLinkNotFound):
		return pkg.NewDomainError("CHECKOUT_LINK_NOT_FOUND", "Checkout link not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCheckoutLink):
		return pkg.NewDomainError("INVALID_CHECKOUT_LINK", "Invalid checkout link", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderBumpNotFound):
		return pkg.NewDomainError("ORDER_BUMP_NOT_FOUND", "Order bump not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderBump):
		return pkg.NewDomainError("INVALID_ORDER_BUMP", "Invalid order bump", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrCardTokenRequired), errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainError("NOTIFICATION_NOT_FOUND", "Notification not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrStreamUnavailable):
		return pkg.NewDomainError("STREAM_UNAVAILABLE", "Notification stream unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrLockTimeout):
		return pkg.NewDomainError("RECONCILIATION_BUSY", "Payment is being reconciled, retry later", err, http.StatusServiceUnavailable)
	case errors.As(err, &gwErr):
		appErr := pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway request failed", err, http.StatusInternalServerError)
		if len(gwErr.Details) > 0 && json.Valid(gwErr.Details) {
			appErr.WithDetails(gwErr.Details)
		}
		return appErr
	case errors.Is(err, usecase.ErrGatewayFetchFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway request failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// writeError maps err and logs 5xx responses with their cause.
func writeError(c *gin.Context, log *logger.Logger, msg string, err error) {
	appErr := mapError(err)
	ctx := c.Request.Context()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(ctx, msg, err)
	} else {
		log.Warn(log.WithField(ctx, "error", err.Error()), msg)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// writeBindError answers malformed or invalid payloads with 400 and, for
// validation failures, the offending fields.
func writeBindError(c *gin.Context, log *logger.Logger, err error) {
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	if details := request.ValidationDetails(err); len(details) > 0 {
		appErr.WithDetails(details)
	}
	log.Warn(log.WithField(c.Request.Context(), "error", err.Error()), "[http][bind] invalid payload")
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
