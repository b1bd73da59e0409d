package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"checkout_hub/internal/adapter/http/routes"
	"checkout_hub/internal/config"
	"checkout_hub/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Hub API
// @version         1.0
// @description     Mercado Pago checkout links, transparent payments and webhook reconciliation.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logg := logger.New(logger.Options{ServiceName: "checkout-hub"})

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logg.WithFields(ctx, map[string]any{
		"env":          cfg.App.Env,
		"store_driver": cfg.Store.Driver,
	})
	logg.Info(ctx, "starting api server")

	if err := routes.Run(ctx, cfg, logg); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
