package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

var testConfig = entities.GatewayConfig{AccessToken: "TEST-123"}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	var captured *http.Request
	var payload map[string]any

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		b, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		if err := json.Unmarshal(b, &payload); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		return jsonResponse(http.StatusCreated, `{"id": 555, "status": "pending", "payment_method_id": "pix",
			"transaction_amount": 120, "date_last_updated": "2024-05-01T12:00:00.000-04:00",
			"point_of_interaction": {"transaction_data": {"qr_code": "000201", "qr_code_base64": "aGk=", "ticket_url": "https://mp/t"}}}`), nil
	})

	g := NewMercadoPagoGateway(time.Second, WithHTTPClient(&http.Client{Transport: rt}))
	exp := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	gp, err := g.CreatePayment(context.Background(), testConfig, entities.ChargeRequest{
		TransactionAmount: decimal.NewFromInt(120),
		Description:       "Curso",
		PaymentMethodID:   "pix",
		ExternalReference: "REF-1",
		DateOfExpiration:  &exp,
		Payer:             entities.ChargePayer{Email: "ana@example.com", FirstName: "Ana", DocumentType: "CPF", DocumentNumber: "123"},
	}, "key-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if captured.Header.Get(idempotencyHeader) != "key-1" {
		t.Fatalf("expected idempotency header, got %q", captured.Header.Get(idempotencyHeader))
	}
	if !strings.Contains(captured.Header.Get("Authorization"), "TEST-123") {
		t.Fatalf("expected bearer token, got %q", captured.Header.Get("Authorization"))
	}
	if payload["payment_method_id"] != "pix" || payload["external_reference"] != "REF-1" || payload["transaction_amount"] != 120.0 {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if gp.ID != "555" || gp.Status != entities.PaymentStatusPending || gp.Pix == nil || gp.Pix.QRCode != "000201" {
		t.Fatalf("unexpected gateway payment: %+v", gp)
	}
	if gp.DateLastUpdated.IsZero() {
		t.Fatalf("expected date_last_updated to be parsed")
	}
}

func TestMercadoPagoGateway_ErrorDetailsArePassedThrough(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"message":"invalid card token","status":400,"cause":[{"code":3003}]}`), nil
	})

	g := NewMercadoPagoGateway(time.Second, WithHTTPClient(&http.Client{Transport: rt}))
	_, err := g.CreatePayment(context.Background(), testConfig, entities.ChargeRequest{
		TransactionAmount: decimal.NewFromInt(10),
		PaymentMethodID:   "visa",
		Token:             "bad",
		Installments:      1,
	}, "key-2")

	var ge *interfaces.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if ge.StatusCode != http.StatusBadRequest || !strings.Contains(string(ge.Details), "invalid card token") {
		t.Fatalf("unexpected gateway error: %+v", ge)
	}
}

func TestMercadoPagoGateway_GetPayment(t *testing.T) {
	var path string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		path = req.URL.Path
		return jsonResponse(http.StatusOK, `{"id": 777, "status": "approved", "payment_method_id": "visa", "payment_type_id": "credit_card",
			"transaction_amount": 50, "external_reference": "REF-9"}`), nil
	})
	g := NewMercadoPagoGateway(time.Second, WithHTTPClient(&http.Client{Transport: rt}))

	gp, err := g.GetPayment(context.Background(), testConfig, "777")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.HasSuffix(path, "/v1/payments/777") {
		t.Fatalf("unexpected path %q", path)
	}
	if gp.Status != entities.PaymentStatusApproved || gp.ExternalReference != "REF-9" || gp.Kind != entities.MethodKindCard {
		t.Fatalf("unexpected payment: %+v", gp)
	}
}

func TestMercadoPagoGateway_GetPaymentRejectsNonNumericID(t *testing.T) {
	g := NewMercadoPagoGateway(time.Second)
	_, err := g.GetPayment(context.Background(), testConfig, "abc")

	var ge *interfaces.GatewayError
	if !errors.As(err, &ge) || ge.StatusCode != http.StatusBadRequest || !errors.Is(err, ErrInvalidPaymentID) {
		t.Fatalf("expected invalid id error, got %v", err)
	}
}

func TestMercadoPagoGateway_MissingToken(t *testing.T) {
	g := NewMercadoPagoGateway(time.Second)
	_, err := g.CreatePreference(context.Background(), entities.GatewayConfig{}, entities.PreferenceRequest{Title: "x"})
	if !errors.Is(err, ErrMissingAccessToken) {
		t.Fatalf("expected ErrMissingAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_CreatePreference(t *testing.T) {
	var payload map[string]any
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		b, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(b, &payload)
		return jsonResponse(http.StatusCreated, `{"id": "pref-1", "init_point": "https://mp/init", "sandbox_init_point": "https://sandbox.mp/init"}`), nil
	})
	g := NewMercadoPagoGateway(time.Second, WithHTTPClient(&http.Client{Transport: rt}))

	pref, err := g.CreatePreference(context.Background(), testConfig, entities.PreferenceRequest{
		Title:             "Curso",
		Quantity:          1,
		UnitPrice:         decimal.RequireFromString("97.9"),
		CurrencyID:        "BRL",
		ExternalReference: "checkout_1_abc",
		SuccessURL:        "https://shop/payment-success",
		AutoReturn:        "approved",
	})
	if err != nil {
		t.Fatalf("create preference: %v", err)
	}
	if pref.ID != "pref-1" || pref.CheckoutURL(true) != "https://sandbox.mp/init" {
		t.Fatalf("unexpected preference: %+v", pref)
	}
	if payload["external_reference"] != "checkout_1_abc" || payload["auto_return"] != "approved" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g := NewMercadoPagoGateway(time.Second, WithMockMode(true))
	ctx := context.Background()

	pix, err := g.CreatePayment(ctx, entities.GatewayConfig{}, entities.ChargeRequest{TransactionAmount: decimal.NewFromInt(10), PaymentMethodID: "pix"}, "k")
	if err != nil || pix.Status != entities.PaymentStatusPending || pix.Pix == nil || pix.Pix.QRCodeBase64 == "" || !pix.TransactionAmount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected pix mock: %+v err=%v", pix, err)
	}

	boleto, _ := g.CreatePayment(ctx, entities.GatewayConfig{}, entities.ChargeRequest{PaymentMethodID: "bolbradesco"}, "k")
	if boleto.Boleto == nil || boleto.Kind != entities.MethodKindBoleto {
		t.Fatalf("unexpected boleto mock: %+v", boleto)
	}

	card, _ := g.CreatePayment(ctx, entities.GatewayConfig{}, entities.ChargeRequest{PaymentMethodID: "visa", Token: "t"}, "k")
	if card.Status != entities.PaymentStatusApproved || card.Card == nil {
		t.Fatalf("unexpected card mock: %+v", card)
	}

	pref, err := g.CreatePreference(ctx, entities.GatewayConfig{}, entities.PreferenceRequest{Title: "x"})
	if err != nil || pref.ID == "" {
		t.Fatalf("unexpected preference mock: %+v err=%v", pref, err)
	}
	if err := g.ExpirePreference(ctx, entities.GatewayConfig{}, pref.ID); err != nil {
		t.Fatalf("expire: %v", err)
	}
}

func TestMercadoPagoGateway_ExpirePreference(t *testing.T) {
	var method, path string
	var payload map[string]any
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		method = req.Method
		path = req.URL.Path
		b, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(b, &payload)
		return jsonResponse(http.StatusOK, `{"id": "pref-1", "expires": true}`), nil
	})
	g := NewMercadoPagoGateway(time.Second, WithHTTPClient(&http.Client{Transport: rt}))

	if err := g.ExpirePreference(context.Background(), testConfig, "pref-1"); err != nil {
		t.Fatalf("expire: %v", err)
	}
	if method != http.MethodPut || !strings.HasSuffix(path, "/checkout/preferences/pref-1") {
		t.Fatalf("unexpected request %s %s", method, path)
	}
	if payload["expires"] != true {
		t.Fatalf("expected expires=true, got %v", payload)
	}
}

func TestMercadoPagoGateway_RawKeepsProviderBody(t *testing.T) {
	const body = `{"id": 777, "status": "approved", "payment_method_id": "pix",
		"transaction_amount": 50, "brand_new_provider_field": {"x": 1}}`
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	})
	g := NewMercadoPagoGateway(time.Second, WithHTTPClient(&http.Client{Transport: rt}))

	gp, err := g.GetPayment(context.Background(), testConfig, "777")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	raw := string(gp.Raw)
	if !strings.Contains(raw, "brand_new_provider_field") {
		t.Fatalf("expected unknown provider field in raw snapshot, got %s", raw)
	}
	if strings.Contains(raw, "0001-01-01") {
		t.Fatalf("raw snapshot carries zero-value dates: %s", raw)
	}
	if gp.ID != "777" || gp.Status != entities.PaymentStatusApproved {
		t.Fatalf("unexpected payment: %+v", gp)
	}
}
