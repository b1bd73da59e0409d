package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/google/uuid"
)

// WebhookEvent is a Mercado Pago notification after transport decoding.
type WebhookEvent struct {
	Type      string
	Action    string
	PaymentID string
	// Signature and RequestID carry the x-signature and x-request-id headers.
	Signature string
	RequestID string
}

// NotificationOutcome reports the secondary write of a reconciliation. A
// failure here never fails the webhook.
type NotificationOutcome struct {
	Attempted    bool
	Notification entities.Notification
	Err          error
}

// ReconcileOutcome is the result of applying one webhook event.
type ReconcileOutcome struct {
	Ignored        bool
	Payment        entities.Payment
	Created        bool
	PreviousStatus entities.PaymentStatus
	StatusChanged  bool
	// Stale is set when a newer snapshot was already stored and the event
	// was dropped.
	Stale        bool
	Notification NotificationOutcome
}

type IReconciliationUseCase interface {
	HandleWebhook(ctx context.Context, ev WebhookEvent) (ReconcileOutcome, error)
}

type ReconciliationOptions struct {
	VerifySignature bool
}

type ReconciliationUseCase struct {
	configs       IConfigService
	gateway       interfaces.IPaymentGateway
	links         interfaces.ICheckoutLinkRepository
	payments      interfaces.IPaymentRepository
	notifications interfaces.INotificationRepository
	broker        interfaces.INotificationBroker
	locker        interfaces.IPaymentLocker
	metrics       interfaces.IPaymentMetrics
	log           *logger.Logger
	opts          ReconciliationOptions
	now           func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	configs IConfigService,
	gateway interfaces.IPaymentGateway,
	links interfaces.ICheckoutLinkRepository,
	payments interfaces.IPaymentRepository,
	notifications interfaces.INotificationRepository,
	broker interfaces.INotificationBroker,
	locker interfaces.IPaymentLocker,
	metrics interfaces.IPaymentMetrics,
	log *logger.Logger,
	opts ReconciliationOptions,
) *ReconciliationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReconciliationUseCase{
		configs:       configs,
		gateway:       gateway,
		links:         links,
		payments:      payments,
		notifications: notifications,
		broker:        broker,
		locker:        locker,
		metrics:       metricsOrNoop(metrics),
		log:           log,
		opts:          opts,
		now:           time.Now,
	}
}

// HandleWebhook fetches the authoritative payment state from the gateway and
// folds it into the local Payment row keyed by mercadopago_payment_id. A
// notification is emitted when the row is created or its status changes.
func (u *ReconciliationUseCase) HandleWebhook(ctx context.Context, ev WebhookEvent) (ReconcileOutcome, error) {
	if !strings.EqualFold(strings.TrimSpace(ev.Type), "payment") {
		u.log.Debug(u.log.WithField(ctx, "type", ev.Type), "[payment][reconcile] ignoring non-payment event")
		u.metrics.ObserveReconciliation(ReconcileResultIgnored)
		return ReconcileOutcome{Ignored: true}, nil
	}

	paymentID := strings.TrimSpace(ev.PaymentID)
	if paymentID == "" {
		return ReconcileOutcome{}, ErrMissingPaymentID
	}
	ctx = u.log.WithField(ctx, "mercadopago_payment_id", paymentID)

	cfg, err := u.configs.Current(ctx)
	if err != nil {
		if errors.Is(err, ErrConfigUnavailable) {
			u.log.Warn(ctx, "[payment][reconcile] gateway config unavailable")
		} else {
			u.log.Error(ctx, "[payment][reconcile] gateway config load failed", err)
		}
		return ReconcileOutcome{}, err
	}

	if u.opts.VerifySignature && !verifyWebhookSignature(cfg.WebhookSecret, ev.Signature, ev.RequestID, paymentID) {
		u.log.Warn(ctx, "[payment][reconcile] signature mismatch")
		return ReconcileOutcome{}, ErrInvalidWebhookSignature
	}

	if u.locker != nil {
		unlock, err := u.locker.Lock(ctx, "payment:"+paymentID)
		if err != nil {
			u.metrics.ObserveReconciliation(ReconcileResultFailed)
			u.log.Error(ctx, "[payment][reconcile] lock failed", err)
			return ReconcileOutcome{}, fmt.Errorf("acquire reconciliation lock: %w", err)
		}
		defer unlock()
	}

	gp, err := u.gateway.GetPayment(ctx, cfg, paymentID)
	if err != nil {
		u.metrics.ObserveReconciliation(ReconcileResultFailed)
		u.log.Error(ctx, "[payment][reconcile] gateway fetch failed", err)
		return ReconcileOutcome{}, fmt.Errorf("%w: %w", ErrGatewayFetchFailed, err)
	}

	candidate := u.buildPaymentRecord(ctx, paymentID, gp)

	existing, err := u.payments.GetByMercadoPagoID(ctx, paymentID)
	if err != nil {
		u.metrics.ObserveReconciliation(ReconcileResultFailed)
		u.log.Error(ctx, "[payment][reconcile] lookup failed", err)
		return ReconcileOutcome{}, fmt.Errorf("%w: %w", ErrPaymentStoreFailed, err)
	}

	if existing.ID != "" {
		return u.applyUpdate(ctx, existing, candidate)
	}

	created, err := u.payments.Create(ctx, candidate)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		// Another delivery inserted the row between lookup and insert.
		u.log.Warn(ctx, "[payment][reconcile] insert raced, retrying as update")
		existing, err = u.payments.GetByMercadoPagoID(ctx, paymentID)
		if err != nil || existing.ID == "" {
			if err == nil {
				err = interfaces.ErrAlreadyExists
			}
			u.metrics.ObserveReconciliation(ReconcileResultFailed)
			return ReconcileOutcome{}, fmt.Errorf("%w: %w", ErrPaymentStoreFailed, err)
		}
		return u.applyUpdate(ctx, existing, candidate)
	}
	if err != nil {
		u.metrics.ObserveReconciliation(ReconcileResultFailed)
		u.log.Error(ctx, "[payment][reconcile] insert failed", err)
		return ReconcileOutcome{}, fmt.Errorf("%w: %w", ErrPaymentStoreFailed, err)
	}

	u.metrics.ObserveReconciliation(ReconcileResultCreated)
	u.log.Info(u.log.WithFields(ctx, map[string]any{"payment_id": created.ID, "status": created.Status}), "[payment][reconcile] payment created")

	return ReconcileOutcome{
		Payment:       created,
		Created:       true,
		StatusChanged: true,
		Notification:  u.notify(ctx, created),
	}, nil
}

func (u *ReconciliationUseCase) applyUpdate(ctx context.Context, existing, candidate entities.Payment) (ReconcileOutcome, error) {
	candidate.ID = existing.ID
	candidate.CreatedAt = existing.CreatedAt
	// Fields the gateway snapshot does not carry survive the overwrite.
	candidate.OrderBumpSelected = existing.OrderBumpSelected
	candidate.OrderBumpAmount = existing.OrderBumpAmount
	candidate.CustomerData = existing.CustomerData
	if candidate.CheckoutLinkID == "" {
		candidate.CheckoutLinkID = existing.CheckoutLinkID
	}

	outcome := ReconcileOutcome{PreviousStatus: existing.Status}

	if existing.IsNewerThan(candidate.GatewayUpdatedAt) {
		u.metrics.ObserveReconciliation(ReconcileResultStale)
		u.log.Warn(ctx, "[payment][reconcile] stored snapshot is newer, skipping")
		outcome.Payment = existing
		outcome.Stale = true
		return outcome, nil
	}

	updated, err := u.payments.UpdateIfNotStale(ctx, candidate)
	if errors.Is(err, interfaces.ErrStaleWrite) {
		u.metrics.ObserveReconciliation(ReconcileResultStale)
		u.log.Warn(ctx, "[payment][reconcile] conditional update rejected as stale")
		outcome.Payment = existing
		outcome.Stale = true
		return outcome, nil
	}
	if err != nil {
		u.metrics.ObserveReconciliation(ReconcileResultFailed)
		u.log.Error(ctx, "[payment][reconcile] update failed", err)
		return ReconcileOutcome{}, fmt.Errorf("%w: %w", ErrPaymentStoreFailed, err)
	}

	outcome.Payment = updated
	outcome.StatusChanged = existing.Status != updated.Status
	if !outcome.StatusChanged {
		u.metrics.ObserveReconciliation(ReconcileResultUnchanged)
		u.log.Info(u.log.WithField(ctx, "status", updated.Status), "[payment][reconcile] payment refreshed, status unchanged")
		return outcome, nil
	}

	u.metrics.ObserveReconciliation(ReconcileResultUpdated)
	u.log.Info(u.log.WithFields(ctx, map[string]any{"from": existing.Status, "to": updated.Status}), "[payment][reconcile] status changed")
	outcome.Notification = u.notify(ctx, updated)
	return outcome, nil
}

func (u *ReconciliationUseCase) buildPaymentRecord(ctx context.Context, paymentID string, gp entities.GatewayPayment) entities.Payment {
	now := u.now().UTC()
	p := entities.Payment{
		ID:                   uuid.NewString(),
		MercadoPagoPaymentID: paymentID,
		Status:               gp.Status,
		Amount:               gp.TransactionAmount,
		Currency:             gp.CurrencyID,
		TransactionAmount:    gp.TransactionAmount,
		NetReceivedAmount:    gp.NetReceivedAmount,
		FeeAmount:            gp.FeeAmount,
		PaymentMethod:        gp.PaymentMethodID,
		Payer: entities.Payer{
			Name:           gp.PayerName(),
			Email:          gp.Payer.Email,
			Phone:          gp.Payer.Phone,
			DocumentType:   gp.Payer.DocumentType,
			DocumentNumber: gp.Payer.DocumentNumber,
		},
		WebhookData:      gp.Raw,
		GatewayUpdatedAt: gp.DateLastUpdated,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if p.Currency == "" {
		p.Currency = entities.DefaultCurrency
	}

	if gp.ExternalReference == "" || u.links == nil {
		return p
	}
	link, err := u.links.GetByReferenceID(ctx, gp.ExternalReference)
	if err != nil {
		u.log.Warn(u.log.WithField(ctx, "external_reference", gp.ExternalReference), "[payment][reconcile] checkout link lookup failed: "+err.Error())
		return p
	}
	if link.ID == "" {
		u.log.Info(u.log.WithField(ctx, "external_reference", gp.ExternalReference), "[payment][reconcile] no checkout link for external reference")
		return p
	}
	p.CheckoutLinkID = link.ID
	return p
}

func (u *ReconciliationUseCase) notify(ctx context.Context, p entities.Payment) NotificationOutcome {
	kind, message := notificationFor(p)
	n, err := emitNotification(ctx, u.notifications, u.broker, u.log, entities.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Message:   message,
		PaymentID: p.ID,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		u.metrics.ObserveNotification(NotificationResultFailed)
		return NotificationOutcome{Attempted: true, Err: err}
	}
	u.metrics.ObserveNotification(NotificationResultCreated)
	return NotificationOutcome{Attempted: true, Notification: n}
}

// emitNotification stores n and publishes it to live subscribers. Publishing
// is best-effort.
func emitNotification(ctx context.Context, repo interfaces.INotificationRepository, broker interfaces.INotificationBroker, log *logger.Logger, n entities.Notification) (entities.Notification, error) {
	ctx = log.WithFields(ctx, map[string]any{"notification_type": n.Type, "payment_id": n.PaymentID})
	created, err := repo.Create(ctx, n)
	if err != nil {
		log.Error(ctx, "[notification] insert failed", err)
		return entities.Notification{}, err
	}
	if broker != nil {
		if err := broker.Publish(ctx, created); err != nil {
			log.Warn(ctx, "[notification] publish failed: "+err.Error())
		}
	}
	return created, nil
}
