package middleware

import (
	"fmt"
	"net/http"

	"checkout_hub/pkg"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

func Recoverer(logg *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if logg != nil {
			ctx := logg.WithField(c.Request.Context(), "panic", recovered)
			logg.Error(ctx, "panic.recovered", fmt.Errorf("panic: %v", recovered))
		}
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
