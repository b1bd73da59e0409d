package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
	mock_interfaces "checkout_hub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testGatewayConfig = entities.GatewayConfig{ID: entities.GatewayConfigID, AccessToken: "TEST-token", WebhookSecret: "secret"}

func gatewaySnapshot(t *testing.T, id, status string, updatedAt time.Time, net string) entities.GatewayPayment {
	t.Helper()
	raw := fmt.Sprintf(`{
		"id": %s,
		"status": %q,
		"currency_id": "BRL",
		"external_reference": "REF-1",
		"payment_method_id": "pix",
		"payment_type_id": "bank_transfer",
		"transaction_amount": 50,
		"date_last_updated": %q,
		"payer": {"first_name": "Ana", "last_name": "Silva", "email": "ana@example.com",
			"identification": {"type": "CPF", "number": "12345678909"}},
		"transaction_details": {"net_received_amount": %s},
		"fee_details": [{"amount": 2.49}]
	}`, id, status, updatedAt.Format(time.RFC3339), net)
	gp, err := entities.ParseGatewayPayment([]byte(raw))
	if err != nil {
		t.Fatalf("parse snapshot: %v", err)
	}
	return gp
}

type reconcileFixture struct {
	uc            *ReconciliationUseCase
	gateway       *mock_interfaces.MockIPaymentGateway
	payments      *memPayments
	notifications *memNotifications
	broker        *recordingBroker
	metrics       *countingMetrics
}

func newReconcileFixture(t *testing.T, configs IConfigService, opts ReconciliationOptions) *reconcileFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &reconcileFixture{
		gateway:       mock_interfaces.NewMockIPaymentGateway(ctrl),
		payments:      newMemPayments(),
		notifications: &memNotifications{},
		broker:        &recordingBroker{},
		metrics:       newCountingMetrics(),
	}
	links := newMemLinks(entities.CheckoutLink{ID: "L1", ReferenceID: "REF-1", IsActive: true, Amount: decimal.NewFromInt(50)})
	f.uc = NewReconciliationUseCase(configs, f.gateway, links, f.payments, f.notifications, f.broker, &keyedTestLocker{}, f.metrics, nil, opts)
	return f
}

// keyedTestLocker serializes all keys through one mutex.
type keyedTestLocker struct {
	mu sync.Mutex
}

func (l *keyedTestLocker) Lock(context.Context, string) (func(), error) {
	l.mu.Lock()
	return l.mu.Unlock, nil
}

func TestReconciliationUseCase_HandleWebhook(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("non payment event is ignored", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})

		out, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "merchant_order", PaymentID: "1"})
		if err != nil || !out.Ignored {
			t.Fatalf("expected ignored outcome, got %+v err=%v", out, err)
		}
		if f.payments.count() != 0 || len(f.notifications.all()) != 0 {
			t.Fatalf("expected no writes")
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})

		_, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "  "})
		if !errors.Is(err, ErrMissingPaymentID) {
			t.Fatalf("expected ErrMissingPaymentID, got %v", err)
		}
	})

	t.Run("config unavailable never reaches the gateway", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{err: ErrConfigUnavailable}, ReconciliationOptions{})

		_, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if !errors.Is(err, ErrConfigUnavailable) {
			t.Fatalf("expected ErrConfigUnavailable, got %v", err)
		}
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		f.gateway.EXPECT().GetPayment(gomock.Any(), testGatewayConfig, "555").
			Return(entities.GatewayPayment{}, &interfaces.GatewayError{Op: "get payment", StatusCode: 404, Err: errors.New("not found")})

		_, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if !errors.Is(err, ErrGatewayFetchFailed) {
			t.Fatalf("expected ErrGatewayFetchFailed, got %v", err)
		}
		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) || gwErr.StatusCode != 404 {
			t.Fatalf("expected wrapped gateway error, got %v", err)
		}
		if f.payments.count() != 0 || len(f.notifications.all()) != 0 {
			t.Fatalf("expected no writes")
		}
		if f.metrics.get("reconcile:failed") != 1 {
			t.Fatalf("expected failed metric")
		}
	})

	t.Run("first delivery creates payment and notification", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		f.gateway.EXPECT().GetPayment(gomock.Any(), testGatewayConfig, "555").Return(gatewaySnapshot(t, "555", "approved", t0, "47.51"), nil)

		out, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !out.Created || !out.StatusChanged {
			t.Fatalf("expected created outcome, got %+v", out)
		}
		p := out.Payment
		if p.MercadoPagoPaymentID != "555" || p.Status != entities.PaymentStatusApproved || p.CheckoutLinkID != "L1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if !p.Amount.Equal(decimal.NewFromInt(50)) || p.NetReceivedAmount == nil || p.NetReceivedAmount.String() != "47.51" {
			t.Fatalf("unexpected amounts: %+v", p)
		}
		if p.FeeAmount == nil || p.FeeAmount.String() != "2.49" {
			t.Fatalf("unexpected fee: %+v", p.FeeAmount)
		}
		if p.Payer.Name != "Ana Silva" || p.Payer.DocumentNumber != "12345678909" || len(p.WebhookData) == 0 {
			t.Fatalf("unexpected payer/snapshot: %+v", p)
		}

		notes := f.notifications.all()
		if len(notes) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notes))
		}
		if notes[0].Type != entities.NotificationPaymentApproved || notes[0].PaymentID != p.ID {
			t.Fatalf("unexpected notification: %+v", notes[0])
		}
		if notes[0].Message != "✅ Pagamento aprovado! Ana Silva pagou R$ 50,00 via pix" {
			t.Fatalf("unexpected message: %q", notes[0].Message)
		}
		if len(f.broker.published) != 1 {
			t.Fatalf("expected notification to be published")
		}
	})

	t.Run("replays with the same status never notify again", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0, "47.51"), nil).Times(1)
		f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0.Add(time.Minute), "48.00"), nil).Times(4)

		for i := 0; i < 5; i++ {
			if _, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"}); err != nil {
				t.Fatalf("delivery %d: %v", i, err)
			}
		}

		if f.payments.count() != 1 {
			t.Fatalf("expected 1 payment, got %d", f.payments.count())
		}
		if n := len(f.notifications.all()); n != 1 {
			t.Fatalf("expected 1 notification, got %d", n)
		}
		stored, _ := f.payments.GetByMercadoPagoID(ctx, "555")
		if stored.NetReceivedAmount == nil || stored.NetReceivedAmount.String() != "48" {
			t.Fatalf("expected refreshed snapshot, got %+v", stored.NetReceivedAmount)
		}
		if f.payments.updates != 4 || f.metrics.get("reconcile:unchanged") != 4 {
			t.Fatalf("expected 4 unchanged refreshes, got updates=%d metric=%d", f.payments.updates, f.metrics.get("reconcile:unchanged"))
		}
	})

	t.Run("status transition notifies exactly once", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		gomock.InOrder(
			f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "pending", t0, "null"), nil),
			f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0.Add(time.Hour), "47.51"), nil),
			f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0.Add(time.Hour), "47.51"), nil),
		)

		first, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if err != nil || !first.Created {
			t.Fatalf("expected created, got %+v err=%v", first, err)
		}
		second, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if err != nil || !second.StatusChanged || second.PreviousStatus != entities.PaymentStatusPending {
			t.Fatalf("expected status change, got %+v err=%v", second, err)
		}
		third, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if err != nil || third.StatusChanged || third.Notification.Attempted {
			t.Fatalf("expected no change, got %+v err=%v", third, err)
		}

		notes := f.notifications.all()
		if len(notes) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(notes))
		}
		if notes[0].Type != entities.NotificationPaymentPending || notes[1].Type != entities.NotificationPaymentApproved {
			t.Fatalf("unexpected notification types: %s, %s", notes[0].Type, notes[1].Type)
		}
		if notes[0].PaymentID != notes[1].PaymentID {
			t.Fatalf("notifications must reference the same payment")
		}
	})

	t.Run("stale snapshot is dropped without notification", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		gomock.InOrder(
			f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0.Add(time.Hour), "47.51"), nil),
			f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "pending", t0, "null"), nil),
		)

		if _, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		out, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if err != nil || !out.Stale {
			t.Fatalf("expected stale outcome, got %+v err=%v", out, err)
		}
		stored, _ := f.payments.GetByMercadoPagoID(ctx, "555")
		if stored.Status != entities.PaymentStatusApproved {
			t.Fatalf("stale event must not overwrite, got %s", stored.Status)
		}
		if len(f.notifications.all()) != 1 || f.metrics.get("reconcile:stale") != 1 {
			t.Fatalf("expected only the creation notification and one stale metric")
		}
	})

	t.Run("unresolved external reference keeps checkout link empty", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		gp := gatewaySnapshot(t, "556", "pending", t0, "null")
		gp.ExternalReference = "unknown"
		f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "556").Return(gp, nil)

		out, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "556"})
		if err != nil || out.Payment.CheckoutLinkID != "" {
			t.Fatalf("expected payment without link, got %+v err=%v", out.Payment, err)
		}
	})

	t.Run("notification failure does not fail the webhook", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		f.notifications.createErr = errors.New("insert notification")
		f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0, "47.51"), nil)

		out, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !out.Notification.Attempted || out.Notification.Err == nil {
			t.Fatalf("expected failed notification outcome, got %+v", out.Notification)
		}
		if f.payments.count() != 1 || f.metrics.get("notification:failed") != 1 {
			t.Fatalf("expected payment stored and failure counted")
		}
	})

	t.Run("payment store failure surfaces", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		f.payments.createErr = errors.New("db down")
		f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0, "47.51"), nil)

		_, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if !errors.Is(err, ErrPaymentStoreFailed) {
			t.Fatalf("expected ErrPaymentStoreFailed, got %v", err)
		}
		if len(f.notifications.all()) != 0 {
			t.Fatalf("expected no notification")
		}
	})

	t.Run("update keeps fields the gateway does not carry", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
		selected := true
		bump := decimal.NewFromInt(20)
		f.payments.rows["555"] = entities.Payment{
			ID:                   "local-1",
			MercadoPagoPaymentID: "555",
			CheckoutLinkID:       "L1",
			Status:               entities.PaymentStatusPending,
			OrderBumpSelected:    &selected,
			OrderBumpAmount:      &bump,
			CustomerData:         []byte(`{"name":"Ana"}`),
			CreatedAt:            t0,
		}
		gp := gatewaySnapshot(t, "555", "approved", t0, "47.51")
		gp.ExternalReference = ""
		f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gp, nil)

		out, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		p := out.Payment
		if p.ID != "local-1" || !p.CreatedAt.Equal(t0) || p.CheckoutLinkID != "L1" {
			t.Fatalf("identity not preserved: %+v", p)
		}
		if p.OrderBumpSelected == nil || !*p.OrderBumpSelected || p.OrderBumpAmount == nil || !p.OrderBumpAmount.Equal(bump) {
			t.Fatalf("order bump not preserved: %+v", p)
		}
		if string(p.CustomerData) != `{"name":"Ana"}` {
			t.Fatalf("customer data not preserved: %s", p.CustomerData)
		}
	})

	t.Run("signature verification", func(t *testing.T) {
		f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{VerifySignature: true})

		_, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555", Signature: "ts=1,v1=deadbeef", RequestID: "req"})
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}

		sig := signWebhookManifest("secret", webhookManifest("555", "req", "1700000000"))
		f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0, "47.51"), nil)
		if _, err := f.uc.HandleWebhook(ctx, WebhookEvent{Type: "payment", PaymentID: "555", Signature: "ts=1700000000,v1=" + sig, RequestID: "req"}); err != nil {
			t.Fatalf("expected valid signature to pass, got %v", err)
		}
	})
}

// racingPayments reports no row on the first lookup and then loses the
// insert to a concurrent writer.
type racingPayments struct {
	*memPayments
	lookups int
}

func (r *racingPayments) GetByMercadoPagoID(ctx context.Context, id string) (entities.Payment, error) {
	r.lookups++
	if r.lookups == 1 {
		return entities.Payment{}, nil
	}
	return r.memPayments.GetByMercadoPagoID(ctx, id)
}

func TestReconciliationUseCase_InsertRaceFallsBackToUpdate(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	payments := &racingPayments{memPayments: newMemPayments()}
	payments.rows["555"] = entities.Payment{ID: "winner", MercadoPagoPaymentID: "555", Status: entities.PaymentStatusApproved, GatewayUpdatedAt: t0}
	notifications := &memNotifications{}

	uc := NewReconciliationUseCase(staticConfigs{cfg: testGatewayConfig}, gateway, newMemLinks(), payments, notifications, nil, nil, nil, nil, ReconciliationOptions{})
	gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0, "47.51"), nil)

	out, err := uc.HandleWebhook(context.Background(), WebhookEvent{Type: "payment", PaymentID: "555"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Created || out.Payment.ID != "winner" || out.StatusChanged {
		t.Fatalf("expected update of the winning row, got %+v", out)
	}
	if len(notifications.all()) != 0 {
		t.Fatalf("expected no notification for an unchanged status")
	}
}

func TestReconciliationUseCase_ConcurrentDeliveries(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f := newReconcileFixture(t, staticConfigs{cfg: testGatewayConfig}, ReconciliationOptions{})
	f.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any(), "555").Return(gatewaySnapshot(t, "555", "approved", t0, "47.51"), nil).Times(8)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.HandleWebhook(context.Background(), WebhookEvent{Type: "payment", PaymentID: "555"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	if f.payments.count() != 1 {
		t.Fatalf("expected 1 payment, got %d", f.payments.count())
	}
	if n := len(f.notifications.all()); n != 1 {
		t.Fatalf("expected 1 notification, got %d", n)
	}
}
