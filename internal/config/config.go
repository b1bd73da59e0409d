package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "CHECKOUT"

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App         AppConfig
	Store       StoreConfig
	DynamoDB    DynamoDBConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	MercadoPago MercadoPagoConfig
	Storage     StorageConfig
	Metrics     MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StoreDriverDynamoDB:
	case StoreDriverPostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return errors.New("CHECKOUT_DATABASE_URL is required when CHECKOUT_STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	return nil
}

type AppConfig struct {
	Env          string   `envconfig:"CHECKOUT_APP_ENV" default:"dev"`
	Port         string   `envconfig:"CHECKOUT_APP_PORT" default:"8080"`
	CORSOrigins  []string `envconfig:"CHECKOUT_CORS_ALLOWED_ORIGINS" default:"*"`
	ServiceName  string   `envconfig:"CHECKOUT_SERVICE_NAME" default:"checkout-hub"`
	LogLevel     string   `envconfig:"CHECKOUT_LOG_LEVEL" default:"info"`
	LogFormat    string   `envconfig:"LOG_FORMAT" default:"json"`
	LogWarnStack bool     `envconfig:"CHECKOUT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

type StoreConfig struct {
	Driver string `envconfig:"CHECKOUT_STORE_DRIVER" default:"dynamodb"`
}

type DynamoDBConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`

	GatewayConfigTable string `envconfig:"GATEWAY_CONFIG_TABLE" default:"mercadopago_config"`
	CheckoutLinksTable string `envconfig:"CHECKOUT_LINKS_TABLE" default:"checkout_links"`
	OrderBumpsTable    string `envconfig:"ORDER_BUMPS_TABLE" default:"order_bumps"`
	PaymentsTable      string `envconfig:"PAYMENTS_TABLE" default:"payments"`
	NotificationsTable string `envconfig:"NOTIFICATIONS_TABLE" default:"notifications"`
	CustomizationTable string `envconfig:"CUSTOMIZATION_TABLE" default:"checkout_customization"`
}

type PostgresConfig struct {
	DSN             string        `envconfig:"CHECKOUT_DATABASE_URL"`
	MaxOpenConns    int           `envconfig:"CHECKOUT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CHECKOUT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CHECKOUT_DB_CONN_MAX_LIFETIME" default:"30m"`
	AutoMigrate     bool          `envconfig:"CHECKOUT_DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig is optional: without a URL the service falls back to
// in-process locking and notification fan-out.
type RedisConfig struct {
	URL                 string        `envconfig:"CHECKOUT_REDIS_URL"`
	LockTTL             time.Duration `envconfig:"CHECKOUT_REDIS_LOCK_TTL" default:"30s"`
	LockWait            time.Duration `envconfig:"CHECKOUT_REDIS_LOCK_WAIT" default:"10s"`
	NotificationChannel string        `envconfig:"CHECKOUT_REDIS_NOTIFICATION_CHANNEL" default:"checkout:notifications"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type MercadoPagoConfig struct {
	Mock                   bool          `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
	NotificationURL        string        `envconfig:"CHECKOUT_NOTIFICATION_URL"`
	DefaultOrigin          string        `envconfig:"CHECKOUT_DEFAULT_ORIGIN" default:"http://localhost:5173"`
	VerifyWebhookSignature bool          `envconfig:"CHECKOUT_VERIFY_WEBHOOK_SIGNATURE" default:"false"`
	Timeout                time.Duration `envconfig:"CHECKOUT_GATEWAY_TIMEOUT" default:"15s"`
}

type StorageConfig struct {
	SupabaseURL    string        `envconfig:"SUPABASE_URL"`
	ServiceRoleKey string        `envconfig:"SUPABASE_SERVICE_ROLE_KEY"`
	Bucket         string        `envconfig:"CHECKOUT_IMAGE_BUCKET" default:"product-images"`
	Timeout        time.Duration `envconfig:"CHECKOUT_STORAGE_TIMEOUT" default:"10s"`
}

func (s StorageConfig) Enabled() bool {
	return strings.TrimSpace(s.SupabaseURL) != "" && strings.TrimSpace(s.ServiceRoleKey) != ""
}

type MetricsConfig struct {
	Enabled bool `envconfig:"CHECKOUT_METRICS_ENABLED" default:"true"`
}
