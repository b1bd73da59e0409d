package usecase

import (
	"fmt"

	"checkout_hub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// notificationFor maps a reconciled payment status to the operator message.
func notificationFor(p entities.Payment) (entities.NotificationType, string) {
	amount := entities.FormatAmount(p.TransactionAmount, p.Currency)
	method := p.PaymentMethod
	if method == "" {
		method = "desconhecido"
	}

	switch p.Status {
	case entities.PaymentStatusApproved:
		name := p.Payer.Name
		if name == "" {
			name = "Cliente"
		}
		return entities.NotificationPaymentApproved, fmt.Sprintf("✅ Pagamento aprovado! %s pagou %s via %s", name, amount, method)
	case entities.PaymentStatusPending:
		return entities.NotificationPaymentPending, fmt.Sprintf("⏳ Pagamento pendente - %s via %s", amount, method)
	case entities.PaymentStatusRejected:
		return entities.NotificationPaymentRejected, fmt.Sprintf("❌ Pagamento rejeitado - %s via %s", amount, method)
	case entities.PaymentStatusCancelled:
		return entities.NotificationPaymentCancelled, fmt.Sprintf("🚫 Pagamento cancelado - %s via %s", amount, method)
	case entities.PaymentStatusRefunded:
		return entities.NotificationPaymentRefunded, fmt.Sprintf("💸 Pagamento reembolsado - %s via %s", amount, method)
	}
	return entities.NotificationPaymentStatusUpdate, fmt.Sprintf("Status do pagamento atualizado: %s - %s", p.Status, amount)
}

func paymentCreatedMessage(total decimal.Decimal, currency string, status entities.PaymentStatus) string {
	return fmt.Sprintf("Novo pagamento de %s - %s", entities.FormatAmount(total, currency), status)
}
