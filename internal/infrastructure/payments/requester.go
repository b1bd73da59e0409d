package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"checkout_hub/internal/usecase/interfaces"
)

const (
	idempotencyHeader  = "X-Idempotency-Key"
	errorBodyReadLimit = 64 << 10
)

type callKey struct{}

// call carries per-request state between the gateway and the requester:
// the idempotency key to send and the provider's reply body as received.
type call struct {
	idempotencyKey string
	statusCode     int
	body           []byte
}

func withCall(ctx context.Context, idempotencyKey string) (context.Context, *call) {
	c := &call{idempotencyKey: idempotencyKey}
	return context.WithValue(ctx, callKey{}, c), c
}

func (c *call) gatewayError(op string, err error) *interfaces.GatewayError {
	ge := &interfaces.GatewayError{Op: op, StatusCode: c.statusCode, Err: err}
	if len(c.body) > 0 {
		if json.Valid(c.body) {
			ge.Details = json.RawMessage(c.body)
		} else {
			ge.Details, _ = json.Marshal(map[string]string{"message": string(c.body)})
		}
	}
	return ge
}

// capturingRequester is handed to the SDK as its HTTP client.
type capturingRequester struct {
	client *http.Client
}

func (r *capturingRequester) Do(req *http.Request) (*http.Response, error) {
	c, _ := req.Context().Value(callKey{}).(*call)
	if c != nil && c.idempotencyKey != "" {
		req.Header.Set(idempotencyHeader, c.idempotencyKey)
	}

	resp, err := r.client.Do(req)
	if err != nil || c == nil {
		return resp, err
	}
	c.statusCode = resp.StatusCode
	reader := resp.Body
	if resp.StatusCode >= http.StatusMultipleChoices {
		reader = io.NopCloser(io.LimitReader(resp.Body, errorBodyReadLimit))
	}
	body, err := io.ReadAll(reader)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	c.body = body
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

// successBody returns the provider's 2xx reply, or nil when none was captured.
func (c *call) successBody() json.RawMessage {
	if c.statusCode < http.StatusOK || c.statusCode >= http.StatusMultipleChoices || len(c.body) == 0 || !json.Valid(c.body) {
		return nil
	}
	return json.RawMessage(c.body)
}
