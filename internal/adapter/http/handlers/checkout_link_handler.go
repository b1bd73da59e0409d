package handlers

import (
	"net/http"
	"strings"

	"checkout_hub/internal/adapter/http/dto/request"
	"checkout_hub/internal/adapter/http/dto/response"
	"checkout_hub/internal/usecase"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CheckoutLinkHandler struct {
	links   usecase.ICheckoutLinkUseCase
	configs usecase.IConfigService
	log     *logger.Logger
}

func NewCheckoutLinkHandler(links usecase.ICheckoutLinkUseCase, configs usecase.IConfigService, log *logger.Logger) *CheckoutLinkHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CheckoutLinkHandler{links: links, configs: configs, log: log}
}

// Create registers the gateway preference and stores the link. The Origin
// header decides where the gateway sends the buyer back to.
//
// @Summary  Create checkout link
// @Tags     checkout-links
// @Accept   json
// @Produce  json
// @Param    payload  body  request.CreateCheckoutLinkRequest  true  "link"
// @Success  201  {object}  response.CheckoutLinkResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /checkout-links [post]
func (h *CheckoutLinkHandler) Create(c *gin.Context) {
	var payload request.CreateCheckoutLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, h.log, err)
		return
	}

	link, err := h.links.Create(c.Request.Context(), payload.ToInput(strings.TrimSpace(c.GetHeader("Origin"))))
	if err != nil {
		writeError(c, h.log, "[checkout][handler] create failed", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutLink(link))
}

func (h *CheckoutLinkHandler) List(c *gin.Context) {
	links, err := h.links.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "[checkout][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutLinks(links))
}

func (h *CheckoutLinkHandler) SetActive(c *gin.Context) {
	var payload request.SetCheckoutLinkActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, h.log, err)
		return
	}

	link, err := h.links.SetActive(c.Request.Context(), c.Param("id"), *payload.IsActive)
	if err != nil {
		writeError(c, h.log, "[checkout][handler] toggle failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutLink(link))
}

func (h *CheckoutLinkHandler) Delete(c *gin.Context) {
	if err := h.links.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, "[checkout][handler] delete failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutLinkHandler) GetOrderBump(c *gin.Context) {
	bump, err := h.links.GetOrderBump(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[checkout][handler] order bump lookup failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderBump(bump))
}

func (h *CheckoutLinkHandler) SaveOrderBump(c *gin.Context) {
	var payload request.OrderBumpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, h.log, err)
		return
	}

	bump, err := h.links.SaveOrderBump(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, h.log, "[checkout][handler] order bump save failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderBump(bump))
}

// GetPublic serves what the hosted checkout page needs, including the
// gateway public key used by the card tokenizer.
//
// @Summary  Public checkout
// @Tags     public
// @Produce  json
// @Param    id  path  string  true  "checkout link id"
// @Success  200  {object}  response.PublicCheckoutResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /public/checkout/{id} [get]
func (h *CheckoutLinkHandler) GetPublic(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.links.GetPublic(ctx, c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[checkout][public] lookup failed", err)
		return
	}

	publicKey := ""
	if cfg, err := h.configs.Current(ctx); err == nil {
		publicKey = cfg.PublicKey
	}
	c.JSON(http.StatusOK, response.FromPublicCheckout(view, publicKey))
}
