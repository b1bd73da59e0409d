package handlers

import (
	"net/http"

	"checkout_hub/internal/adapter/http/dto/request"
	"checkout_hub/internal/adapter/http/dto/response"
	"checkout_hub/internal/usecase"
	"checkout_hub/pkg"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configs usecase.IConfigService
	log     *logger.Logger
}

func NewConfigHandler(configs usecase.IConfigService, log *logger.Logger) *ConfigHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ConfigHandler{configs: configs, log: log}
}

// Get returns the stored configuration with the access token masked. A
// missing record is 404; a store failure is 500.
func (h *ConfigHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	cfg, err := h.configs.Current(ctx)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.FromGatewayConfig(cfg))
	case err == usecase.ErrConfigUnavailable: //nolint:errorlint // bare sentinel means nothing stored
		appErr := pkg.NewDomainErrorSimple("CONFIG_NOT_FOUND", "Mercado Pago configuration not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	default:
		h.log.Error(ctx, "[config][handler] load failed", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func (h *ConfigHandler) Save(c *gin.Context) {
	var payload request.SaveConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, h.log, err)
		return
	}

	cfg, err := h.configs.Save(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, h.log, "[config][handler] save failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromGatewayConfig(cfg))
}
