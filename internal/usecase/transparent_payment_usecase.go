package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PixExpiry    = 30 * time.Minute
	BoletoExpiry = 72 * time.Hour

	defaultCreditCardMethodID = "visa"
	defaultDebitCardMethodID  = "debvisa"
	pixMethodID               = "pix"
	boletoMethodID            = "bolbradesco"
)

type CardInput struct {
	Token           string
	Installments    int
	PaymentMethodID string
}

type CustomerInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

type ProcessPaymentInput struct {
	CheckoutLinkID    string
	PaymentMethod     entities.PaymentMethod
	Card              *CardInput
	Customer          CustomerInput
	OrderBumpSelected bool
	// IdempotencyKey is forwarded to the gateway; generated when empty.
	IdempotencyKey string
}

type ProcessPaymentResult struct {
	Payment        entities.Payment
	Gateway        entities.GatewayPayment
	Total          decimal.Decimal
	Sandbox        bool
	IdempotencyKey string
	Notification   NotificationOutcome
}

type ITransparentPaymentUseCase interface {
	Process(ctx context.Context, in ProcessPaymentInput) (ProcessPaymentResult, error)
}

type TransparentPaymentOptions struct {
	NotificationURL string
}

type TransparentPaymentUseCase struct {
	configs       IConfigService
	gateway       interfaces.IPaymentGateway
	links         interfaces.ICheckoutLinkRepository
	bumps         interfaces.IOrderBumpRepository
	payments      interfaces.IPaymentRepository
	notifications interfaces.INotificationRepository
	broker        interfaces.INotificationBroker
	metrics       interfaces.IPaymentMetrics
	log           *logger.Logger
	opts          TransparentPaymentOptions
	now           func() time.Time
}

var _ ITransparentPaymentUseCase = (*TransparentPaymentUseCase)(nil)

func NewTransparentPaymentUseCase(
	configs IConfigService,
	gateway interfaces.IPaymentGateway,
	links interfaces.ICheckoutLinkRepository,
	bumps interfaces.IOrderBumpRepository,
	payments interfaces.IPaymentRepository,
	notifications interfaces.INotificationRepository,
	broker interfaces.INotificationBroker,
	metrics interfaces.IPaymentMetrics,
	log *logger.Logger,
	opts TransparentPaymentOptions,
) *TransparentPaymentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TransparentPaymentUseCase{
		configs:       configs,
		gateway:       gateway,
		links:         links,
		bumps:         bumps,
		payments:      payments,
		notifications: notifications,
		broker:        broker,
		metrics:       metricsOrNoop(metrics),
		log:           log,
		opts:          opts,
		now:           time.Now,
	}
}

func (u *TransparentPaymentUseCase) Process(ctx context.Context, in ProcessPaymentInput) (ProcessPaymentResult, error) {
	in.CheckoutLinkID = strings.TrimSpace(in.CheckoutLinkID)
	ctx = u.log.WithFields(ctx, map[string]any{"checkout_link_id": in.CheckoutLinkID, "payment_method": in.PaymentMethod})
	u.log.Info(ctx, "[payment][initiate] start")

	if err := validateProcessInput(in); err != nil {
		u.metrics.ObserveInitiation(string(in.PaymentMethod), InitiationResultRejected)
		return ProcessPaymentResult{}, err
	}

	link, err := u.links.GetByID(ctx, in.CheckoutLinkID)
	if err != nil {
		u.log.Error(ctx, "[payment][initiate] checkout link lookup failed", err)
		return ProcessPaymentResult{}, err
	}
	if link.ID == "" || !link.IsActive {
		u.metrics.ObserveInitiation(string(in.PaymentMethod), InitiationResultRejected)
		return ProcessPaymentResult{}, ErrCheckoutLinkNotFound
	}

	cfg, err := u.configs.Current(ctx)
	if err != nil {
		u.metrics.ObserveInitiation(string(in.PaymentMethod), InitiationResultRejected)
		return ProcessPaymentResult{}, err
	}

	bumpAmount := decimal.Zero
	if in.OrderBumpSelected {
		bumpAmount = u.orderBumpSurcharge(ctx, link.ID)
	}
	total := link.Amount.Add(bumpAmount)

	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" {
		key = fmt.Sprintf("%s_%s", link.ID, uuid.NewString())
	}

	req := u.buildChargeRequest(link, in, total, bumpAmount)
	gp, err := u.gateway.CreatePayment(ctx, cfg, req, key)
	if err != nil {
		u.metrics.ObserveInitiation(string(in.PaymentMethod), InitiationResultGatewayError)
		u.log.Error(ctx, "[payment][initiate] gateway create failed", err)
		return ProcessPaymentResult{}, err
	}
	ctx = u.log.WithFields(ctx, map[string]any{"mercadopago_payment_id": gp.ID, "status": gp.Status})
	u.metrics.ObserveInitiation(string(in.PaymentMethod), InitiationResultSuccess)

	result := ProcessPaymentResult{
		Gateway:        gp,
		Total:          total,
		Sandbox:        cfg.IsSandbox,
		IdempotencyKey: key,
	}

	record := u.buildPaymentRecord(link, in, gp, total, bumpAmount)
	saved, err := u.payments.Create(ctx, record)
	switch {
	case errors.Is(err, interfaces.ErrAlreadyExists):
		// The webhook materialized the payment first.
		u.log.Info(ctx, "[payment][initiate] payment already recorded by webhook")
		if existing, getErr := u.payments.GetByMercadoPagoID(ctx, record.MercadoPagoPaymentID); getErr == nil && existing.ID != "" {
			saved = existing
		} else {
			saved = record
		}
	case err != nil:
		// The charge exists at the gateway; the webhook will backfill the row.
		u.log.Error(ctx, "[payment][initiate] payment insert failed", err)
	}
	result.Payment = saved

	n, err := emitNotification(ctx, u.notifications, u.broker, u.log, entities.Notification{
		ID:        uuid.NewString(),
		Type:      entities.NotificationPaymentCreated,
		Message:   paymentCreatedMessage(total, link.Currency, gp.Status),
		PaymentID: saved.ID,
		CreatedAt: u.now().UTC(),
	})
	result.Notification = NotificationOutcome{Attempted: true, Notification: n, Err: err}
	if err != nil {
		u.metrics.ObserveNotification(NotificationResultFailed)
	} else {
		u.metrics.ObserveNotification(NotificationResultCreated)
	}

	u.log.Info(ctx, "[payment][initiate] done")
	return result, nil
}

// orderBumpSurcharge resolves the active bump price; any miss counts as zero.
func (u *TransparentPaymentUseCase) orderBumpSurcharge(ctx context.Context, linkID string) decimal.Decimal {
	if u.bumps == nil {
		return decimal.Zero
	}
	bump, err := u.bumps.GetByCheckoutLinkID(ctx, linkID)
	if err != nil {
		u.log.Warn(ctx, "[payment][initiate] order bump lookup failed: "+err.Error())
		return decimal.Zero
	}
	if bump.ID == "" || !bump.IsActive {
		return decimal.Zero
	}
	return bump.Price
}

func validateProcessInput(in ProcessPaymentInput) error {
	if in.CheckoutLinkID == "" {
		return ErrCheckoutLinkNotFound
	}
	if !in.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}
	if in.PaymentMethod.IsCard() && (in.Card == nil || strings.TrimSpace(in.Card.Token) == "") {
		return ErrCardTokenRequired
	}
	c := in.Customer
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" ||
		strings.TrimSpace(c.DocumentType) == "" || strings.TrimSpace(c.DocumentNumber) == "" {
		return ErrInvalidCustomer
	}
	return nil
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	if len(parts) == 1 {
		return first, first
	}
	return first, strings.Join(parts[1:], " ")
}

func (u *TransparentPaymentUseCase) buildChargeRequest(link entities.CheckoutLink, in ProcessPaymentInput, total, bumpAmount decimal.Decimal) entities.ChargeRequest {
	first, last := splitName(in.Customer.Name)
	description := link.Description
	if description == "" {
		description = link.Title
	}

	req := entities.ChargeRequest{
		TransactionAmount: total,
		Description:       description,
		ExternalReference: link.ReferenceID,
		NotificationURL:   u.opts.NotificationURL,
		Payer: entities.ChargePayer{
			Email:          strings.TrimSpace(in.Customer.Email),
			FirstName:      first,
			LastName:       last,
			DocumentType:   strings.TrimSpace(in.Customer.DocumentType),
			DocumentNumber: strings.TrimSpace(in.Customer.DocumentNumber),
		},
		Metadata: map[string]any{
			"checkout_link_id":    link.ID,
			"order_bump_selected": in.OrderBumpSelected,
			"order_bump_amount":   bumpAmount.InexactFloat64(),
		},
	}

	now := u.now()
	switch in.PaymentMethod {
	case entities.PaymentMethodCreditCard:
		req.Token = in.Card.Token
		req.Installments = in.Card.Installments
		if req.Installments < 1 {
			req.Installments = 1
		}
		req.PaymentMethodID = firstNonEmpty(in.Card.PaymentMethodID, defaultCreditCardMethodID)
	case entities.PaymentMethodDebitCard:
		req.Token = in.Card.Token
		req.PaymentMethodID = firstNonEmpty(in.Card.PaymentMethodID, defaultDebitCardMethodID)
	case entities.PaymentMethodPix:
		req.PaymentMethodID = pixMethodID
		exp := now.Add(PixExpiry)
		req.DateOfExpiration = &exp
	case entities.PaymentMethodBoleto:
		req.PaymentMethodID = boletoMethodID
		exp := now.Add(BoletoExpiry)
		req.DateOfExpiration = &exp
	}
	return req
}

func (u *TransparentPaymentUseCase) buildPaymentRecord(link entities.CheckoutLink, in ProcessPaymentInput, gp entities.GatewayPayment, total, bumpAmount decimal.Decimal) entities.Payment {
	now := u.now().UTC()
	selected := in.OrderBumpSelected
	customer, _ := json.Marshal(in.Customer)

	return entities.Payment{
		ID:                   uuid.NewString(),
		MercadoPagoPaymentID: gp.ID,
		CheckoutLinkID:       link.ID,
		Status:               gp.Status,
		Amount:               total,
		Currency:             firstNonEmpty(link.Currency, entities.DefaultCurrency),
		TransactionAmount:    gp.TransactionAmount,
		NetReceivedAmount:    gp.NetReceivedAmount,
		FeeAmount:            gp.FeeAmount,
		PaymentMethod:        gp.PaymentMethodID,
		Payer: entities.Payer{
			Name:           strings.TrimSpace(in.Customer.Name),
			Email:          strings.TrimSpace(in.Customer.Email),
			Phone:          strings.TrimSpace(in.Customer.Phone),
			DocumentType:   strings.TrimSpace(in.Customer.DocumentType),
			DocumentNumber: strings.TrimSpace(in.Customer.DocumentNumber),
		},
		OrderBumpSelected: &selected,
		OrderBumpAmount:   &bumpAmount,
		CustomerData:      customer,
		WebhookData:       gp.Raw,
		GatewayUpdatedAt:  gp.DateLastUpdated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
