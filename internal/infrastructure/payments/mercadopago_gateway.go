package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
	"checkout_hub/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var (
	ErrMissingAccessToken = errors.New("missing mercado pago access token")
	ErrInvalidPaymentID   = interfaces.ErrInvalidPaymentID
)

const mpTimeLayout = "2006-01-02T15:04:05.000-07:00"

// MercadoPagoGateway implements IPaymentGateway on the official SDK. The
// SDK config is built per call because credentials live in the store, not
// in process configuration.
type MercadoPagoGateway struct {
	requester *capturingRequester
	mockMode  bool
	log       *logger.Logger
	now       func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

type Option func(*MercadoPagoGateway)

// WithHTTPClient overrides the HTTP client the SDK sends requests through.
func WithHTTPClient(client *http.Client) Option {
	return func(g *MercadoPagoGateway) {
		if client != nil {
			g.requester.client = client
		}
	}
}

// WithMockMode short-circuits every call with canned responses.
func WithMockMode(enabled bool) Option {
	return func(g *MercadoPagoGateway) { g.mockMode = enabled }
}

func WithLogger(log *logger.Logger) Option {
	return func(g *MercadoPagoGateway) {
		if log != nil {
			g.log = log
		}
	}
}

func NewMercadoPagoGateway(timeout time.Duration, opts ...Option) *MercadoPagoGateway {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	g := &MercadoPagoGateway{
		requester: &capturingRequester{client: &http.Client{Timeout: timeout}},
		log:       logger.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.mockMode {
		g.log.Warn(context.Background(), "[payment][gateway] mock mode enabled")
	}
	return g
}

func (g *MercadoPagoGateway) sdkConfig(cfg entities.GatewayConfig) (*config.Config, error) {
	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		return nil, ErrMissingAccessToken
	}
	return config.New(token, config.WithHTTPClient(g.requester))
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, cfg entities.GatewayConfig, paymentID string) (entities.GatewayPayment, error) {
	const op = "get payment"
	ctx = g.log.WithField(ctx, "mercadopago_payment_id", paymentID)

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil || id <= 0 {
		return entities.GatewayPayment{}, &interfaces.GatewayError{Op: op, StatusCode: http.StatusBadRequest, Err: ErrInvalidPaymentID}
	}
	if g.mockMode {
		return g.mockPayment(paymentID, entities.PaymentStatusApproved, "pix"), nil
	}

	sdkCfg, err := g.sdkConfig(cfg)
	if err != nil {
		return entities.GatewayPayment{}, &interfaces.GatewayError{Op: op, Err: err}
	}

	ctx, call := withCall(ctx, "")
	resp, err := payment.NewClient(sdkCfg).Get(ctx, id)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] sdk get failed", err)
		return entities.GatewayPayment{}, call.gatewayError(op, err)
	}
	return parseSDKResponse(op, call.successBody(), resp)
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, cfg entities.GatewayConfig, req entities.ChargeRequest, idempotencyKey string) (entities.GatewayPayment, error) {
	const op = "create payment"
	ctx = g.log.WithFields(ctx, map[string]any{"payment_method_id": req.PaymentMethodID, "idempotency_key": idempotencyKey})

	if g.mockMode {
		gp := g.mockCharge(req)
		g.log.Info(g.log.WithField(ctx, "mercadopago_payment_id", gp.ID), "[payment][gateway] mock create success")
		return gp, nil
	}

	sdkCfg, err := g.sdkConfig(cfg)
	if err != nil {
		return entities.GatewayPayment{}, &interfaces.GatewayError{Op: op, Err: err}
	}

	var sdkReq payment.Request
	if err := remarshal(chargeBody(req), &sdkReq); err != nil {
		return entities.GatewayPayment{}, &interfaces.GatewayError{Op: op, Err: err}
	}

	ctx, call := withCall(ctx, idempotencyKey)
	g.log.Info(ctx, "[payment][gateway] create start")
	resp, err := payment.NewClient(sdkCfg).Create(ctx, sdkReq)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] sdk create failed", err)
		return entities.GatewayPayment{}, call.gatewayError(op, err)
	}

	gp, err := parseSDKResponse(op, call.successBody(), resp)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	if err := ensurePixQR(&gp); err != nil {
		g.log.Warn(ctx, "[payment][gateway] "+err.Error())
	}
	g.log.Info(g.log.WithFields(ctx, map[string]any{"mercadopago_payment_id": gp.ID, "status": gp.Status}), "[payment][gateway] create success")
	return gp, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, cfg entities.GatewayConfig, req entities.PreferenceRequest) (entities.Preference, error) {
	const op = "create preference"
	if g.mockMode {
		id := "mock-pref-" + strconv.FormatInt(g.now().UnixNano(), 10)
		return entities.Preference{
			ID:               id,
			InitPoint:        "https://www.mercadopago.com.br/checkout/v1/redirect?pref_id=" + id,
			SandboxInitPoint: "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=" + id,
		}, nil
	}

	sdkCfg, err := g.sdkConfig(cfg)
	if err != nil {
		return entities.Preference{}, &interfaces.GatewayError{Op: op, Err: err}
	}

	var sdkReq preference.Request
	if err := remarshal(preferenceBody(req), &sdkReq); err != nil {
		return entities.Preference{}, &interfaces.GatewayError{Op: op, Err: err}
	}

	ctx, call := withCall(ctx, "")
	resp, err := preference.NewClient(sdkCfg).Create(ctx, sdkReq)
	if err != nil {
		g.log.Error(ctx, "[payment][gateway] sdk preference create failed", err)
		return entities.Preference{}, call.gatewayError(op, err)
	}

	var out struct {
		ID               string `json:"id"`
		InitPoint        string `json:"init_point"`
		SandboxInitPoint string `json:"sandbox_init_point"`
	}
	if err := remarshal(resp, &out); err != nil {
		return entities.Preference{}, &interfaces.GatewayError{Op: op, Err: err}
	}
	return entities.Preference{ID: out.ID, InitPoint: out.InitPoint, SandboxInitPoint: out.SandboxInitPoint}, nil
}

// ExpirePreference marks the preference as expired so its hosted checkout
// stops accepting payments.
func (g *MercadoPagoGateway) ExpirePreference(ctx context.Context, cfg entities.GatewayConfig, preferenceID string) error {
	const op = "expire preference"
	if g.mockMode {
		return nil
	}

	sdkCfg, err := g.sdkConfig(cfg)
	if err != nil {
		return &interfaces.GatewayError{Op: op, Err: err}
	}

	var sdkReq preference.Request
	body := map[string]any{"expires": true, "expiration_date_to": g.now().Format(mpTimeLayout)}
	if err := remarshal(body, &sdkReq); err != nil {
		return &interfaces.GatewayError{Op: op, Err: err}
	}

	ctx, call := withCall(ctx, "")
	if _, err := preference.NewClient(sdkCfg).Update(ctx, preferenceID, sdkReq); err != nil {
		return call.gatewayError(op, err)
	}
	return nil
}

func chargeBody(req entities.ChargeRequest) map[string]any {
	payer := map[string]any{"email": req.Payer.Email}
	if req.Payer.FirstName != "" {
		payer["first_name"] = req.Payer.FirstName
	}
	if req.Payer.LastName != "" {
		payer["last_name"] = req.Payer.LastName
	}
	if req.Payer.DocumentNumber != "" {
		payer["identification"] = map[string]any{"type": req.Payer.DocumentType, "number": req.Payer.DocumentNumber}
	}

	body := map[string]any{
		"transaction_amount": req.TransactionAmount.InexactFloat64(),
		"description":        req.Description,
		"payment_method_id":  req.PaymentMethodID,
		"payer":              payer,
	}
	if req.Token != "" {
		body["token"] = req.Token
	}
	if req.Installments > 0 {
		body["installments"] = req.Installments
	}
	if req.ExternalReference != "" {
		body["external_reference"] = req.ExternalReference
	}
	if req.NotificationURL != "" {
		body["notification_url"] = req.NotificationURL
	}
	if req.DateOfExpiration != nil {
		body["date_of_expiration"] = req.DateOfExpiration.Format(mpTimeLayout)
	}
	if len(req.Metadata) > 0 {
		body["metadata"] = req.Metadata
	}
	return body
}

func preferenceBody(req entities.PreferenceRequest) map[string]any {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	item := map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"quantity":    quantity,
		"unit_price":  req.UnitPrice.InexactFloat64(),
		"currency_id": req.CurrencyID,
	}
	if req.PictureURL != "" {
		item["picture_url"] = req.PictureURL
	}

	body := map[string]any{
		"items":              []any{item},
		"external_reference": req.ExternalReference,
		"back_urls": map[string]any{
			"success": req.SuccessURL,
			"failure": req.FailureURL,
			"pending": req.PendingURL,
		},
	}
	if req.AutoReturn != "" {
		body["auto_return"] = req.AutoReturn
	}
	if req.NotificationURL != "" {
		body["notification_url"] = req.NotificationURL
	}
	return body
}

// parseSDKResponse prefers the bytes the provider sent so fields the SDK does
// not model survive into Raw. The SDK struct is only re-encoded when no body
// was captured.
func parseSDKResponse(op string, body json.RawMessage, resp any) (entities.GatewayPayment, error) {
	raw := body
	if len(raw) == 0 {
		b, err := json.Marshal(resp)
		if err != nil {
			return entities.GatewayPayment{}, &interfaces.GatewayError{Op: op, Err: err}
		}
		raw = b
	}
	gp, err := entities.ParseGatewayPayment(raw)
	if err != nil {
		return entities.GatewayPayment{}, &interfaces.GatewayError{Op: op, Err: err}
	}
	return gp, nil
}

func remarshal(in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decoding sdk payload: %w", err)
	}
	return nil
}
