package routes

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	_ "checkout_hub/docs" // swagger docs
	"checkout_hub/internal/adapter/http/dto/request"
	"checkout_hub/internal/adapter/http/handlers"
	"checkout_hub/internal/adapter/http/middleware"
	"checkout_hub/internal/config"
	"checkout_hub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Handlers groups everything mounted under /v1.
type Handlers struct {
	Webhook       *handlers.WebhookHandler
	Payments      *handlers.PaymentHandler
	CheckoutLinks *handlers.CheckoutLinkHandler
	Config        *handlers.ConfigHandler
	Customization *handlers.CustomizationHandler
	Notifications *handlers.NotificationHandler
}

// RouterOptions carries the optional parts of the router.
type RouterOptions struct {
	// Gatherer backs /metrics; nil leaves the endpoint unmounted.
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
}

// Run wires the dependencies, serves until ctx is cancelled and then drains
// in-flight requests.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	router := NewRouter(deps.handlers, RouterOptions{
		Gatherer:       deps.gatherer,
		AllowedOrigins: cfg.App.CORSOrigins,
	}, log)

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		// request contexts end with ctx so open SSE streams let go on shutdown
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(log.WithField(ctx, "addr", server.Addr), "[http] server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info(shutdownCtx, "[http] shutting down")
	return server.Shutdown(shutdownCtx)
}

func NewRouter(h Handlers, opts RouterOptions, log *logger.Logger) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		request.RegisterValidations(v)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(log),
		middleware.Logging(log),
		middleware.Recoverer(log),
		middleware.CORS(opts.AllowedOrigins),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, h)
	return router
}
