package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDynamo() *fakeDynamo {
	return newFakeDynamo(map[string]string{
		"payments":               "mercadopago_payment_id",
		"checkout_links":         "id",
		"order_bumps":            "checkout_link_id",
		"notifications":          "id",
		"mercadopago_config":     "id",
		"checkout_customization": "id",
	})
}

func samplePayment(id string, status entities.PaymentStatus, updatedAt time.Time) entities.Payment {
	net := decimal.RequireFromString("48.01")
	selected := true
	bump := decimal.NewFromInt(20)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return entities.Payment{
		ID:                   "local-" + id,
		MercadoPagoPaymentID: id,
		CheckoutLinkID:       "L1",
		Status:               status,
		Amount:               decimal.NewFromInt(120),
		Currency:             "BRL",
		TransactionAmount:    decimal.NewFromInt(120),
		NetReceivedAmount:    &net,
		Payer:                entities.Payer{Name: "Ana", Email: "ana@example.com"},
		PaymentMethod:        "pix",
		OrderBumpSelected:    &selected,
		OrderBumpAmount:      &bump,
		CustomerData:         []byte(`{"name":"Ana"}`),
		WebhookData:          []byte(`{"id":1}`),
		GatewayUpdatedAt:     updatedAt,
		CreatedAt:            created,
		UpdatedAt:            created,
	}
}

func TestPaymentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC)

	t.Run("create and read back", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(newTestDynamo(), "payments")
		p := samplePayment("9001", entities.PaymentStatusPending, t0)

		_, err := repo.Create(ctx, p)
		require.NoError(t, err)

		got, err := repo.GetByMercadoPagoID(ctx, "9001")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.True(t, got.Amount.Equal(p.Amount))
		assert.True(t, got.NetReceivedAmount.Equal(*p.NetReceivedAmount))
		assert.Nil(t, got.FeeAmount)
		assert.True(t, got.GatewayUpdatedAt.Equal(t0))
		assert.True(t, *got.OrderBumpSelected)
		assert.JSONEq(t, `{"name":"Ana"}`, string(got.CustomerData))
		assert.Equal(t, "Ana", got.Payer.Name)
	})

	t.Run("missing payment is zero value", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(newTestDynamo(), "payments")
		got, err := repo.GetByMercadoPagoID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("duplicate natural key", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(newTestDynamo(), "payments")
		_, err := repo.Create(ctx, samplePayment("9001", entities.PaymentStatusPending, t0))
		require.NoError(t, err)
		_, err = repo.Create(ctx, samplePayment("9001", entities.PaymentStatusApproved, t0))
		assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	})

	t.Run("update honours gateway timestamp", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(newTestDynamo(), "payments")
		_, err := repo.Create(ctx, samplePayment("9001", entities.PaymentStatusPending, t0.Add(time.Hour)))
		require.NoError(t, err)

		_, err = repo.UpdateIfNotStale(ctx, samplePayment("9001", entities.PaymentStatusRejected, t0))
		assert.ErrorIs(t, err, interfaces.ErrStaleWrite)

		_, err = repo.UpdateIfNotStale(ctx, samplePayment("9001", entities.PaymentStatusApproved, t0.Add(time.Hour)))
		require.NoError(t, err)

		_, err = repo.UpdateIfNotStale(ctx, samplePayment("9001", entities.PaymentStatusApproved, time.Time{}))
		require.NoError(t, err)

		got, _ := repo.GetByMercadoPagoID(ctx, "9001")
		assert.Equal(t, entities.PaymentStatusApproved, got.Status)
	})

	t.Run("update of missing row is rejected", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(newTestDynamo(), "payments")
		_, err := repo.UpdateIfNotStale(ctx, samplePayment("404", entities.PaymentStatusApproved, t0))
		assert.ErrorIs(t, err, interfaces.ErrStaleWrite)
	})

	t.Run("list filters sorts and limits across pages", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(newTestDynamo(), "payments")
		for i, status := range []entities.PaymentStatus{"approved", "pending", "approved", "approved"} {
			p := samplePayment(string(rune('a'+i)), status, t0)
			p.CreatedAt = t0.Add(time.Duration(i) * time.Minute)
			_, err := repo.Create(ctx, p)
			require.NoError(t, err)
		}

		got, err := repo.List(ctx, interfaces.PaymentFilter{Status: entities.PaymentStatusApproved, Limit: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "d", got[0].MercadoPagoPaymentID)
		assert.Equal(t, "c", got[1].MercadoPagoPaymentID)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		ddb := newTestDynamo()
		ddb.err = errors.New("throttled")
		repo := NewPaymentDynamoRepository(ddb, "payments")
		_, err := repo.GetByMercadoPagoID(ctx, "1")
		assert.Error(t, err)
	})
}

func TestCheckoutLinkDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCheckoutLinkDynamoRepository(newTestDynamo(), "checkout_links")
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	link := entities.CheckoutLink{
		ID: "L1", Title: "Curso", Amount: decimal.RequireFromString("97.90"), Currency: "BRL",
		ReferenceID: "checkout_1_abc", IsActive: true, CreatedAt: created, UpdatedAt: created,
	}
	_, err := repo.Create(ctx, link)
	require.NoError(t, err)
	_, err = repo.Create(ctx, link)
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)

	byRef, err := repo.GetByReferenceID(ctx, "checkout_1_abc")
	require.NoError(t, err)
	assert.Equal(t, "L1", byRef.ID)
	assert.True(t, byRef.Amount.Equal(link.Amount))

	missing, err := repo.GetByReferenceID(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	updated, err := repo.SetActive(ctx, "L1", false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Curso", updated.Title)

	none, err := repo.SetActive(ctx, "missing", true)
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	_, err = repo.Create(ctx, entities.CheckoutLink{ID: "L2", Title: "Novo", ReferenceID: "r2", CreatedAt: created.Add(time.Hour)})
	require.NoError(t, err)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "L2", all[0].ID)

	require.NoError(t, repo.Delete(ctx, "L1"))
	gone, err := repo.GetByID(ctx, "L1")
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}

func TestOrderBumpDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderBumpDynamoRepository(newTestDynamo(), "order_bumps")

	_, err := repo.Save(ctx, entities.OrderBump{ID: "B1", CheckoutLinkID: "L1", Title: "Bônus", Price: decimal.NewFromInt(20), IsActive: true})
	require.NoError(t, err)
	_, err = repo.Save(ctx, entities.OrderBump{ID: "B1", CheckoutLinkID: "L1", Title: "Bônus 2", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)

	got, err := repo.GetByCheckoutLinkID(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, "Bônus 2", got.Title)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(25)))
	assert.False(t, got.IsActive)

	require.NoError(t, repo.DeleteByCheckoutLinkID(ctx, "L1"))
	got, err = repo.GetByCheckoutLinkID(ctx, "L1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestNotificationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationDynamoRepository(newTestDynamo(), "notifications")
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"n1", "n2", "n3"} {
		_, err := repo.Create(ctx, entities.Notification{ID: id, Type: entities.NotificationPaymentCreated, Message: id, CreatedAt: t0.Add(time.Duration(i) * time.Second)})
		require.NoError(t, err)
	}

	found, err := repo.MarkRead(ctx, "n2")
	require.NoError(t, err)
	assert.True(t, found)
	found, err = repo.MarkRead(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	unread, err := repo.List(ctx, interfaces.NotificationFilter{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "n3", unread[0].ID)

	n, err := repo.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	latest, err := repo.List(ctx, interfaces.NotificationFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.True(t, latest[0].IsRead)

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)
}

func TestSingletonDynamoRepositories(t *testing.T) {
	ctx := context.Background()
	ddb := newTestDynamo()

	configs := NewGatewayConfigDynamoRepository(ddb, "mercadopago_config")
	empty, err := configs.Get(ctx)
	require.NoError(t, err)
	assert.False(t, empty.Configured())

	_, err = configs.Save(ctx, entities.GatewayConfig{AccessToken: "TEST-123", IsSandbox: true, WebhookSecret: "s"})
	require.NoError(t, err)
	cfg, err := configs.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.GatewayConfigID, cfg.ID)
	assert.Equal(t, "TEST-123", cfg.AccessToken)
	assert.Equal(t, "s", cfg.WebhookSecret)

	customization := NewCustomizationDynamoRepository(ddb, "checkout_customization")
	price := decimal.RequireFromString("19.90")
	c := entities.DefaultCustomization()
	c.CompanyName = "ACME"
	c.OrderBumpPrice = &price
	_, err = customization.Save(ctx, c)
	require.NoError(t, err)

	got, err := customization.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.CompanyName)
	assert.True(t, got.OrderBumpPrice.Equal(price))
	assert.True(t, got.EnablePix)
}
