package repository

import (
	"context"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.INotificationRepository = (*NotificationGormRepository)(nil)

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	row := notificationRow{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		PaymentID: n.PaymentID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Notification{}, interfaces.ErrAlreadyExists
		}
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationGormRepository) List(ctx context.Context, filter interfaces.NotificationFilter) ([]entities.Notification, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []notificationRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.Notification{
			ID:        row.ID,
			Type:      entities.NotificationType(row.Type),
			Message:   row.Message,
			PaymentID: row.PaymentID,
			IsRead:    row.IsRead,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (r *NotificationGormRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&notificationRow{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *NotificationGormRepository) MarkAllRead(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&notificationRow{}).Where("is_read = ?", false).Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&notificationRow{})
	return res.RowsAffected, res.Error
}
