package usecase

import (
	"context"
	"strings"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"
)

const defaultNotificationLimit = 50

type INotificationUseCase interface {
	List(ctx context.Context, unreadOnly bool) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Subscribe(ctx context.Context) (<-chan entities.Notification, func(), error)
}

type NotificationUseCase struct {
	repo   interfaces.INotificationRepository
	broker interfaces.INotificationBroker
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, broker interfaces.INotificationBroker) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, broker: broker}
}

func (u *NotificationUseCase) List(ctx context.Context, unreadOnly bool) ([]entities.Notification, error) {
	return u.repo.List(ctx, interfaces.NotificationFilter{UnreadOnly: unreadOnly, Limit: defaultNotificationLimit})
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotificationNotFound
	}
	found, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context) (int64, error) {
	return u.repo.MarkAllRead(ctx)
}

func (u *NotificationUseCase) DeleteAll(ctx context.Context) (int64, error) {
	return u.repo.DeleteAll(ctx)
}

func (u *NotificationUseCase) Subscribe(ctx context.Context) (<-chan entities.Notification, func(), error) {
	if u.broker == nil {
		return nil, nil, ErrStreamUnavailable
	}
	return u.broker.Subscribe(ctx)
}
