package handlers

import (
	"net/http"
	"time"

	"checkout_hub/internal/adapter/http/dto/request"
	"checkout_hub/internal/adapter/http/dto/response"
	"checkout_hub/internal/usecase"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

const streamKeepAlive = 25 * time.Second

type NotificationHandler struct {
	usecase   usecase.INotificationUseCase
	log       *logger.Logger
	keepAlive time.Duration
}

func NewNotificationHandler(uc usecase.INotificationUseCase, log *logger.Logger) *NotificationHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &NotificationHandler{usecase: uc, log: log, keepAlive: streamKeepAlive}
}

func (h *NotificationHandler) List(c *gin.Context) {
	var q request.NotificationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, h.log, err)
		return
	}
	list, err := h.usecase.List(c.Request.Context(), q.UnreadOnly)
	if err != nil {
		writeError(c, h.log, "[notification][handler] list failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.usecase.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, "[notification][handler] mark read failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.usecase.MarkAllRead(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "[notification][handler] mark all read failed", err)
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

func (h *NotificationHandler) DeleteAll(c *gin.Context) {
	n, err := h.usecase.DeleteAll(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "[notification][handler] delete all failed", err)
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

// Stream relays newly created notifications as Server-Sent Events until the
// client disconnects.
func (h *NotificationHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	events, cancel, err := h.usecase.Subscribe(ctx)
	if err != nil {
		writeError(c, h.log, "[notification][stream] subscribe failed", err)
		return
	}
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	h.log.Info(ctx, "[notification][stream] client connected")

	c.Header("Content-Type", "text/event-stream")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Info(ctx, "[notification][stream] client disconnected")
			return
		case n, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("notification", response.FromNotification(n))
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
		}
		c.Writer.Flush()
	}
}
