package routes

import "github.com/gin-gonic/gin"

const (
	PathWebhooks      = "/webhooks"
	PathPayments      = "/payments"
	PathCheckoutLinks = "/checkout-links"
	PathConfig        = "/config"
	PathCustomization = "/customization"
	PathPublic        = "/public"
	PathNotifications = "/notifications"
)

func addCheckoutRoutes(rg *gin.RouterGroup, h Handlers) {
	webhooks := rg.Group(PathWebhooks)
	{
		// Mercado Pago posts here; also accepts the legacy query-string form.
		webhooks.POST("/mercadopago", h.Webhook.HandleMercadoPago)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/process", h.Payments.Process)
		payments.GET("", h.Payments.List)
	}

	links := rg.Group(PathCheckoutLinks)
	{
		links.POST("", h.CheckoutLinks.Create)
		links.GET("", h.CheckoutLinks.List)
		links.PATCH("/:id", h.CheckoutLinks.SetActive)
		links.DELETE("/:id", h.CheckoutLinks.Delete)
		links.GET("/:id/order-bump", h.CheckoutLinks.GetOrderBump)
		links.PUT("/:id/order-bump", h.CheckoutLinks.SaveOrderBump)
	}

	public := rg.Group(PathPublic)
	{
		public.GET("/checkout/:id", h.CheckoutLinks.GetPublic)
	}

	cfg := rg.Group(PathConfig)
	{
		cfg.GET("", h.Config.Get)
		cfg.PUT("", h.Config.Save)
	}

	customization := rg.Group(PathCustomization)
	{
		customization.GET("", h.Customization.Get)
		customization.PUT("", h.Customization.Save)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.Notifications.List)
		notifications.GET("/stream", h.Notifications.Stream)
		notifications.PATCH("/read-all", h.Notifications.MarkAllRead)
		notifications.PATCH("/:id/read", h.Notifications.MarkRead)
		notifications.DELETE("", h.Notifications.DeleteAll)
	}
}
