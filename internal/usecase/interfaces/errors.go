package interfaces

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists is returned by Create when the natural key is taken.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrStaleWrite is returned by conditional updates when the stored
	// snapshot is newer than the one being written.
	ErrStaleWrite = errors.New("stale write rejected")
	// ErrLockTimeout is returned when a reconciliation lock cannot be
	// acquired in time.
	ErrLockTimeout = errors.New("lock acquisition timed out")
	// ErrInvalidPaymentID is returned by the gateway for ids it cannot look
	// up, such as non-numeric values.
	ErrInvalidPaymentID = errors.New("payment id must be numeric")
)

// GatewayError wraps a failed payment provider call. Details holds the
// provider's error body as JSON so it can be passed through to the caller.
type GatewayError struct {
	Op         string
	StatusCode int
	Details    json.RawMessage
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("payment gateway %s failed (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
