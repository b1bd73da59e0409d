package request

import (
	"errors"
	"strings"

	"checkout_hub/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const TagCardTokenRequired = "card_token_required"

// RegisterValidations installs the request-level rules on the validator gin
// binds with.
func RegisterValidations(v *validator.Validate) {
	v.RegisterStructValidation(validateProcessPayment, ProcessPaymentRequest{})
}

func validateProcessPayment(sl validator.StructLevel) {
	r, ok := sl.Current().Interface().(ProcessPaymentRequest)
	if !ok {
		return
	}
	if !entities.PaymentMethod(r.PaymentMethod).IsCard() {
		return
	}
	if r.CardData == nil || strings.TrimSpace(r.CardData.Token) == "" {
		sl.ReportError(r.CardData, "CardData", "card_data", TagCardTokenRequired, "")
	}
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationDetails flattens binding errors into field/rule pairs. It returns
// nil for errors that are not validation failures (e.g. malformed JSON).
func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe.Namespace()), Rule: fe.Tag()})
	}
	return out
}

// fieldPath drops the root struct name: "ProcessPaymentRequest.CustomerData.Email"
// becomes "CustomerData.Email".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
