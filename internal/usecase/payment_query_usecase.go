package usecase

import (
	"context"
	"strings"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
)

const (
	defaultPaymentListLimit = 100
	maxPaymentListLimit     = 500
)

type IPaymentQueryUseCase interface {
	List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error)
}

type PaymentQueryUseCase struct {
	repo interfaces.IPaymentRepository
}

var _ IPaymentQueryUseCase = (*PaymentQueryUseCase)(nil)

func NewPaymentQueryUseCase(repo interfaces.IPaymentRepository) *PaymentQueryUseCase {
	return &PaymentQueryUseCase{repo: repo}
}

func (u *PaymentQueryUseCase) List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error) {
	filter.Status = entities.PaymentStatus(strings.TrimSpace(string(filter.Status)))
	filter.CheckoutLinkID = strings.TrimSpace(filter.CheckoutLinkID)
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultPaymentListLimit
	case filter.Limit > maxPaymentListLimit:
		filter.Limit = maxPaymentListLimit
	}
	return u.repo.List(ctx, filter)
}
