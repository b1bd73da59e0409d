package routes

import (
	"context"
	"fmt"

	"checkout_hub/internal/adapter/http/handlers"
	"checkout_hub/internal/adapter/persistence/repository"
	"checkout_hub/internal/config"
	"checkout_hub/internal/infrastructure/cache"
	"checkout_hub/internal/infrastructure/database"
	"checkout_hub/internal/infrastructure/metrics"
	"checkout_hub/internal/infrastructure/payments"
	"checkout_hub/internal/infrastructure/storage"
	"checkout_hub/internal/usecase"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type repositories struct {
	configs       interfaces.IGatewayConfigRepository
	links         interfaces.ICheckoutLinkRepository
	bumps         interfaces.IOrderBumpRepository
	payments      interfaces.IPaymentRepository
	notifications interfaces.INotificationRepository
	customization interfaces.ICustomizationRepository
}

type dependencies struct {
	handlers Handlers
	gatherer prometheus.Gatherer
	closers  []func()
}

func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, log *logger.Logger) (*dependencies, error) {
	deps := &dependencies{}

	repos, err := buildRepositories(ctx, cfg, log, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	locker, broker, err := buildCoordination(ctx, cfg, log, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	var paymentMetrics interfaces.IPaymentMetrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		paymentMetrics = metrics.NewPaymentMetrics(reg)
		deps.gatherer = reg
	}

	var images interfaces.IImageStorage = storage.NoopStorage{}
	if cfg.Storage.Enabled() {
		images = storage.NewSupabaseStorage(cfg.Storage)
	} else {
		log.Warn(ctx, "[storage] supabase not configured, product images will not be removed")
	}

	gateway := payments.NewMercadoPagoGateway(cfg.MercadoPago.Timeout,
		payments.WithMockMode(cfg.MercadoPago.Mock),
		payments.WithLogger(log),
	)
	if cfg.MercadoPago.Mock {
		log.Warn(ctx, "[payments] mock gateway enabled, no calls will reach Mercado Pago")
	}

	configs := usecase.NewConfigService(repos.configs, log)
	customization := usecase.NewCustomizationUseCase(repos.customization)
	notifications := usecase.NewNotificationUseCase(repos.notifications, broker)
	reconciliation := usecase.NewReconciliationUseCase(
		configs, gateway, repos.links, repos.payments, repos.notifications,
		broker, locker, paymentMetrics, log,
		usecase.ReconciliationOptions{VerifySignature: cfg.MercadoPago.VerifyWebhookSignature},
	)
	transparent := usecase.NewTransparentPaymentUseCase(
		configs, gateway, repos.links, repos.bumps, repos.payments, repos.notifications,
		broker, paymentMetrics, log,
		usecase.TransparentPaymentOptions{NotificationURL: cfg.MercadoPago.NotificationURL},
	)
	links := usecase.NewCheckoutLinkUseCase(
		configs, gateway, repos.links, repos.bumps, customization, images, log,
		usecase.CheckoutLinkOptions{
			NotificationURL: cfg.MercadoPago.NotificationURL,
			DefaultOrigin:   cfg.MercadoPago.DefaultOrigin,
		},
	)

	deps.handlers = Handlers{
		Webhook:       handlers.NewWebhookHandler(reconciliation, log),
		Payments:      handlers.NewPaymentHandler(transparent, usecase.NewPaymentQueryUseCase(repos.payments), log),
		CheckoutLinks: handlers.NewCheckoutLinkHandler(links, configs, log),
		Config:        handlers.NewConfigHandler(configs, log),
		Customization: handlers.NewCustomizationHandler(customization, log),
		Notifications: handlers.NewNotificationHandler(notifications, log),
	}
	return deps, nil
}

func buildRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger, deps *dependencies) (repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres, log)
		if err != nil {
			return repositories{}, fmt.Errorf("connecting postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return repositories{}, fmt.Errorf("getting sql db handle: %w", err)
		}
		deps.closers = append(deps.closers, func() {
			if err := sqlDB.Close(); err != nil {
				log.Error(context.Background(), "[database] error closing postgres", err)
			}
		})
		if err := database.MaybeAutoMigrate(ctx, cfg.Postgres.AutoMigrate, sqlDB, log); err != nil {
			return repositories{}, err
		}
		return repositories{
			configs:       repository.NewGatewayConfigGormRepository(db),
			links:         repository.NewCheckoutLinkGormRepository(db),
			bumps:         repository.NewOrderBumpGormRepository(db),
			payments:      repository.NewPaymentGormRepository(db),
			notifications: repository.NewNotificationGormRepository(db),
			customization: repository.NewCustomizationGormRepository(db),
		}, nil

	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, fmt.Errorf("connecting dynamodb: %w", err)
		}
		tables := cfg.DynamoDB
		return repositories{
			configs:       repository.NewGatewayConfigDynamoRepository(ddb, tables.GatewayConfigTable),
			links:         repository.NewCheckoutLinkDynamoRepository(ddb, tables.CheckoutLinksTable),
			bumps:         repository.NewOrderBumpDynamoRepository(ddb, tables.OrderBumpsTable),
			payments:      repository.NewPaymentDynamoRepository(ddb, tables.PaymentsTable),
			notifications: repository.NewNotificationDynamoRepository(ddb, tables.NotificationsTable),
			customization: repository.NewCustomizationDynamoRepository(ddb, tables.CustomizationTable),
		}, nil
	}
}

// buildCoordination backs the per-payment lock and notification fan-out with
// Redis when configured; otherwise both stay in-process.
func buildCoordination(ctx context.Context, cfg *config.Config, log *logger.Logger, deps *dependencies) (interfaces.IPaymentLocker, interfaces.INotificationBroker, error) {
	if !cfg.Redis.Enabled() {
		log.Info(ctx, "[cache] redis not configured, using in-process locking and fan-out")
		return cache.NewLocalLocker(cfg.Redis.LockWait), cache.NewLocalBroker(), nil
	}

	raw, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting redis: %w", err)
	}
	deps.closers = append(deps.closers, func() {
		if err := raw.Close(); err != nil {
			log.Error(context.Background(), "[cache] error closing redis", err)
		}
	})
	return cache.NewRedisLocker(raw, cfg.Redis.LockTTL, cfg.Redis.LockWait, log),
		cache.NewRedisBroker(raw, cfg.Redis.NotificationChannel, log),
		nil
}
