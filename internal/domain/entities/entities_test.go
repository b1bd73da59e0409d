package entities

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferenceID(t *testing.T) {
	now := time.UnixMilli(1714557600123)
	ref := NewReferenceID(now)

	assert.Regexp(t, regexp.MustCompile(`^checkout_1714557600123_[0-9a-z]{9}$`), ref)
	assert.NotEqual(t, ref, NewReferenceID(now))
}

func TestGatewayConfigMasking(t *testing.T) {
	cfg := GatewayConfig{AccessToken: "APP_USR-1234567890"}
	assert.True(t, cfg.Configured())
	assert.Equal(t, "APP_**********7890", cfg.MaskedAccessToken())

	assert.Equal(t, "****", GatewayConfig{AccessToken: "abcd"}.MaskedAccessToken())
	assert.False(t, GatewayConfig{AccessToken: "  "}.Configured())
}

func TestPaymentIsNewerThan(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := Payment{GatewayUpdatedAt: t0}

	assert.True(t, p.IsNewerThan(t0.Add(-time.Minute)))
	assert.False(t, p.IsNewerThan(t0))
	assert.False(t, p.IsNewerThan(t0.Add(time.Minute)))
	assert.False(t, p.IsNewerThan(time.Time{}))
	assert.False(t, Payment{}.IsNewerThan(t0))
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentMethodCreditCard.IsCard())
	assert.True(t, PaymentMethodDebitCard.IsCard())
	assert.False(t, PaymentMethodPix.IsCard())
	assert.False(t, PaymentMethod("cash").Valid())
}

func TestExternalID(t *testing.T) {
	var body struct {
		ID ExternalID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id": 123456789012}`), &body))
	assert.Equal(t, "123456789012", body.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id": " 42 "}`), &body))
	assert.Equal(t, "42", body.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &body))
	assert.Empty(t, body.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id": {}}`), &body))
}

func TestPreferenceCheckoutURL(t *testing.T) {
	p := Preference{InitPoint: "https://mp/init", SandboxInitPoint: "https://sandbox/init"}
	assert.Equal(t, "https://sandbox/init", p.CheckoutURL(true))
	assert.Equal(t, "https://mp/init", p.CheckoutURL(false))
	assert.Equal(t, "https://mp/init", Preference{InitPoint: "https://mp/init"}.CheckoutURL(true))
}
