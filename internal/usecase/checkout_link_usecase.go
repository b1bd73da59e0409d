package usecase

import (
	"context"
	"strings"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCheckoutLinkInput struct {
	Title        string
	Description  string
	Amount       decimal.Decimal
	Currency     string
	ImageURL     string
	DeliveryLink string
	// Origin is the front-end base URL used for the preference back URLs.
	Origin string
}

type OrderBumpInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	IsActive    bool
}

// PublicCheckout is what the hosted transparent checkout page loads.
type PublicCheckout struct {
	Link          entities.CheckoutLink
	OrderBump     *entities.OrderBump
	Customization entities.CheckoutCustomization
}

type ICheckoutLinkUseCase interface {
	Create(ctx context.Context, in CreateCheckoutLinkInput) (entities.CheckoutLink, error)
	List(ctx context.Context) ([]entities.CheckoutLink, error)
	GetPublic(ctx context.Context, id string) (PublicCheckout, error)
	SetActive(ctx context.Context, id string, active bool) (entities.CheckoutLink, error)
	Delete(ctx context.Context, id string) error
	SaveOrderBump(ctx context.Context, linkID string, in OrderBumpInput) (entities.OrderBump, error)
	GetOrderBump(ctx context.Context, linkID string) (entities.OrderBump, error)
}

type CheckoutLinkOptions struct {
	NotificationURL string
	DefaultOrigin   string
}

type CheckoutLinkUseCase struct {
	configs       IConfigService
	gateway       interfaces.IPaymentGateway
	links         interfaces.ICheckoutLinkRepository
	bumps         interfaces.IOrderBumpRepository
	customization ICustomizationUseCase
	images        interfaces.IImageStorage
	log           *logger.Logger
	opts          CheckoutLinkOptions
	now           func() time.Time
}

var _ ICheckoutLinkUseCase = (*CheckoutLinkUseCase)(nil)

func NewCheckoutLinkUseCase(
	configs IConfigService,
	gateway interfaces.IPaymentGateway,
	links interfaces.ICheckoutLinkRepository,
	bumps interfaces.IOrderBumpRepository,
	customization ICustomizationUseCase,
	images interfaces.IImageStorage,
	log *logger.Logger,
	opts CheckoutLinkOptions,
) *CheckoutLinkUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CheckoutLinkUseCase{
		configs:       configs,
		gateway:       gateway,
		links:         links,
		bumps:         bumps,
		customization: customization,
		images:        images,
		log:           log,
		opts:          opts,
		now:           time.Now,
	}
}

// Create registers the gateway preference first and persists the link only
// when that succeeds.
func (u *CheckoutLinkUseCase) Create(ctx context.Context, in CreateCheckoutLinkInput) (entities.CheckoutLink, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || !in.Amount.IsPositive() {
		return entities.CheckoutLink{}, ErrInvalidCheckoutLink
	}
	currency := strings.ToUpper(firstNonEmpty(in.Currency, entities.DefaultCurrency))

	cfg, err := u.configs.Current(ctx)
	if err != nil {
		return entities.CheckoutLink{}, err
	}

	now := u.now().UTC()
	referenceID := entities.NewReferenceID(now)
	ctx = u.log.WithField(ctx, "reference_id", referenceID)

	origin := strings.TrimRight(firstNonEmpty(in.Origin, u.opts.DefaultOrigin), "/")
	description := strings.TrimSpace(in.Description)
	pref, err := u.gateway.CreatePreference(ctx, cfg, entities.PreferenceRequest{
		Title:             title,
		Description:       firstNonEmpty(description, title),
		Quantity:          1,
		UnitPrice:         in.Amount,
		CurrencyID:        currency,
		PictureURL:        strings.TrimSpace(in.ImageURL),
		ExternalReference: referenceID,
		NotificationURL:   u.opts.NotificationURL,
		SuccessURL:        origin + "/payment-success",
		FailureURL:        origin + "/payment-failure",
		PendingURL:        origin + "/payment-pending",
		AutoReturn:        "approved",
	})
	if err != nil {
		u.log.Error(ctx, "[checkout][link] preference create failed", err)
		return entities.CheckoutLink{}, err
	}

	link := entities.CheckoutLink{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		Amount:       in.Amount,
		Currency:     currency,
		ReferenceID:  referenceID,
		PreferenceID: pref.ID,
		CheckoutURL:  pref.CheckoutURL(cfg.IsSandbox),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		DeliveryLink: strings.TrimSpace(in.DeliveryLink),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.links.Create(ctx, link)
	if err != nil {
		u.log.Error(ctx, "[checkout][link] insert failed", err)
		return entities.CheckoutLink{}, err
	}
	u.log.Info(u.log.WithFields(ctx, map[string]any{"checkout_link_id": created.ID, "preference_id": created.PreferenceID}), "[checkout][link] created")
	return created, nil
}

func (u *CheckoutLinkUseCase) List(ctx context.Context) ([]entities.CheckoutLink, error) {
	return u.links.List(ctx)
}

func (u *CheckoutLinkUseCase) GetPublic(ctx context.Context, id string) (PublicCheckout, error) {
	link, err := u.links.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return PublicCheckout{}, err
	}
	if link.ID == "" || !link.IsActive {
		return PublicCheckout{}, ErrCheckoutLinkNotFound
	}

	out := PublicCheckout{Link: link, Customization: entities.DefaultCustomization()}
	if bump, err := u.bumps.GetByCheckoutLinkID(ctx, link.ID); err != nil {
		u.log.Warn(ctx, "[checkout][public] order bump lookup failed: "+err.Error())
	} else if bump.ID != "" && bump.IsActive {
		out.OrderBump = &bump
	}
	if u.customization != nil {
		if c, err := u.customization.Get(ctx); err != nil {
			u.log.Warn(ctx, "[checkout][public] customization lookup failed: "+err.Error())
		} else {
			out.Customization = c
		}
	}
	return out, nil
}

func (u *CheckoutLinkUseCase) SetActive(ctx context.Context, id string, active bool) (entities.CheckoutLink, error) {
	link, err := u.links.SetActive(ctx, strings.TrimSpace(id), active)
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if link.ID == "" {
		return entities.CheckoutLink{}, ErrCheckoutLinkNotFound
	}
	return link, nil
}

// Delete removes the link. Expiring the gateway preference, removing the
// uploaded image and dropping the order bump are best-effort.
func (u *CheckoutLinkUseCase) Delete(ctx context.Context, id string) error {
	link, err := u.links.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if link.ID == "" {
		return ErrCheckoutLinkNotFound
	}
	ctx = u.log.WithField(ctx, "checkout_link_id", link.ID)

	if link.PreferenceID != "" {
		if cfg, err := u.configs.Current(ctx); err != nil {
			u.log.Warn(ctx, "[checkout][link] skipping preference expiry: "+err.Error())
		} else if err := u.gateway.ExpirePreference(ctx, cfg, link.PreferenceID); err != nil {
			u.log.Warn(ctx, "[checkout][link] preference expiry failed: "+err.Error())
		}
	}
	if link.ImageURL != "" && u.images != nil {
		if err := u.images.Delete(ctx, link.ImageURL); err != nil {
			u.log.Warn(ctx, "[checkout][link] image removal failed: "+err.Error())
		}
	}
	if err := u.bumps.DeleteByCheckoutLinkID(ctx, link.ID); err != nil {
		u.log.Warn(ctx, "[checkout][link] order bump removal failed: "+err.Error())
	}

	if err := u.links.Delete(ctx, link.ID); err != nil {
		u.log.Error(ctx, "[checkout][link] delete failed", err)
		return err
	}
	u.log.Info(ctx, "[checkout][link] deleted")
	return nil
}

func (u *CheckoutLinkUseCase) SaveOrderBump(ctx context.Context, linkID string, in OrderBumpInput) (entities.OrderBump, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || !in.Price.IsPositive() {
		return entities.OrderBump{}, ErrInvalidOrderBump
	}
	link, err := u.links.GetByID(ctx, strings.TrimSpace(linkID))
	if err != nil {
		return entities.OrderBump{}, err
	}
	if link.ID == "" {
		return entities.OrderBump{}, ErrCheckoutLinkNotFound
	}

	existing, err := u.bumps.GetByCheckoutLinkID(ctx, link.ID)
	if err != nil {
		return entities.OrderBump{}, err
	}
	now := u.now().UTC()
	bump := entities.OrderBump{
		ID:             existing.ID,
		CheckoutLinkID: link.ID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Price:          in.Price,
		ImageURL:       strings.TrimSpace(in.ImageURL),
		IsActive:       in.IsActive,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      now,
	}
	if bump.ID == "" {
		bump.ID = uuid.NewString()
		bump.CreatedAt = now
	}
	return u.bumps.Save(ctx, bump)
}

func (u *CheckoutLinkUseCase) GetOrderBump(ctx context.Context, linkID string) (entities.OrderBump, error) {
	bump, err := u.bumps.GetByCheckoutLinkID(ctx, strings.TrimSpace(linkID))
	if err != nil {
		return entities.OrderBump{}, err
	}
	if bump.ID == "" {
		return entities.OrderBump{}, ErrOrderBumpNotFound
	}
	return bump, nil
}
