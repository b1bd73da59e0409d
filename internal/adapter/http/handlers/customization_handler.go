package handlers

import (
	"net/http"

	"checkout_hub/internal/adapter/http/dto/request"
	"checkout_hub/internal/usecase"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CustomizationHandler struct {
	usecase usecase.ICustomizationUseCase
	log     *logger.Logger
}

func NewCustomizationHandler(uc usecase.ICustomizationUseCase, log *logger.Logger) *CustomizationHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CustomizationHandler{usecase: uc, log: log}
}

func (h *CustomizationHandler) Get(c *gin.Context) {
	out, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "[customization][handler] load failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CustomizationHandler) Save(c *gin.Context) {
	var payload request.CustomizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, h.log, err)
		return
	}

	out, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, h.log, "[customization][handler] save failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
