package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount the way Brazilian operators read it:
// FormatBRL(1234.5) == "R$ 1.234,50".
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + FormatAmountPtBR(amount)
}

// FormatAmount renders amount with its currency symbol. BRL uses "R$"; other
// currencies are prefixed with their ISO code.
func FormatAmount(amount decimal.Decimal, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" || currency == DefaultCurrency {
		return FormatBRL(amount)
	}
	return currency + " " + FormatAmountPtBR(amount)
}

// FormatAmountPtBR formats with two decimals, "." thousands and "," decimals.
func FormatAmountPtBR(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}
