package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/google/uuid"
)

// IConfigService is the only way payment flows reach gateway credentials.
type IConfigService interface {
	// Current returns ErrConfigUnavailable when nothing usable is stored. Store
	// failures are returned as they are.
	Current(ctx context.Context) (entities.GatewayConfig, error)
	Save(ctx context.Context, in SaveConfigInput) (entities.GatewayConfig, error)
}

type SaveConfigInput struct {
	AccessToken   string
	PublicKey     string
	IsSandbox     bool
	WebhookSecret string
}

type ConfigService struct {
	repo interfaces.IGatewayConfigRepository
	log  *logger.Logger
	now  func() time.Time
}

var _ IConfigService = (*ConfigService)(nil)

func NewConfigService(repo interfaces.IGatewayConfigRepository, log *logger.Logger) *ConfigService {
	if log == nil {
		log = logger.Nop()
	}
	return &ConfigService{repo: repo, log: log, now: time.Now}
}

func (s *ConfigService) Current(ctx context.Context) (entities.GatewayConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Error(ctx, "[config][service] load failed", err)
		return entities.GatewayConfig{}, fmt.Errorf("load gateway config: %w", err)
	}
	if !cfg.Configured() {
		return entities.GatewayConfig{}, ErrConfigUnavailable
	}
	return cfg, nil
}

// Save creates the record on first use and overwrites it afterwards. The
// webhook secret is kept across saves unless a new one is supplied.
func (s *ConfigService) Save(ctx context.Context, in SaveConfigInput) (entities.GatewayConfig, error) {
	token := strings.TrimSpace(in.AccessToken)
	if token == "" {
		return entities.GatewayConfig{}, ErrInvalidConfig
	}

	existing, err := s.repo.Get(ctx)
	if err != nil {
		return entities.GatewayConfig{}, err
	}

	now := s.now().UTC()
	cfg := entities.GatewayConfig{
		ID:            entities.GatewayConfigID,
		AccessToken:   token,
		PublicKey:     strings.TrimSpace(in.PublicKey),
		IsSandbox:     in.IsSandbox,
		WebhookSecret: strings.TrimSpace(in.WebhookSecret),
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     now,
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	if cfg.WebhookSecret == "" {
		cfg.WebhookSecret = existing.WebhookSecret
	}
	if cfg.WebhookSecret == "" {
		cfg.WebhookSecret = uuid.NewString()
	}

	saved, err := s.repo.Save(ctx, cfg)
	if err != nil {
		s.log.Error(ctx, "[config][service] save failed", err)
		return entities.GatewayConfig{}, err
	}
	ctx = s.log.WithFields(ctx, map[string]any{"is_sandbox": saved.IsSandbox, "access_token": saved.MaskedAccessToken()})
	s.log.Info(ctx, "[config][service] saved")
	return saved, nil
}
