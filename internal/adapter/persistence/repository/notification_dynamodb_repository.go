package repository

import (
	"context"
	"sort"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	Type      string `dynamodbav:"type"`
	Message   string `dynamodbav:"message"`
	PaymentID string `dynamodbav:"payment_id,omitempty"`
	IsRead    bool   `dynamodbav:"is_read"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type NotificationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb dynamoAPI, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		PaymentID: n.PaymentID,
		IsRead:    n.IsRead,
		CreatedAt: formatTime(n.CreatedAt),
	})
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Notification{}, interfaces.ErrAlreadyExists
		}
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) List(ctx context.Context, filter interfaces.NotificationFilter) ([]entities.Notification, error) {
	items, err := r.scan(ctx, filter.UnreadOnly)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return limitSlice(items, filter.Limit), nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_read = :is_read"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":is_read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#is_read": "is_read",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context) (int64, error) {
	unread, err := r.scan(ctx, true)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, it := range unread {
		ok, err := r.MarkRead(ctx, it.ID)
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

func (r *NotificationDynamoRepository) DeleteAll(ctx context.Context) (int64, error) {
	all, err := r.scan(ctx, false)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, it := range all {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: it.ID},
			},
		})
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (r *NotificationDynamoRepository) scan(ctx context.Context, unreadOnly bool) ([]entities.Notification, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Notification, 0, len(raw))
	for _, av := range raw {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		if unreadOnly && it.IsRead {
			continue
		}
		items = append(items, entities.Notification{
			ID:        it.ID,
			Type:      entities.NotificationType(it.Type),
			Message:   it.Message,
			PaymentID: it.PaymentID,
			IsRead:    it.IsRead,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return items, nil
}
