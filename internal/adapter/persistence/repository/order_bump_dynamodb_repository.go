package repository

import (
	"context"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type orderBumpItem struct {
	CheckoutLinkID string `dynamodbav:"checkout_link_id"`
	ID             string `dynamodbav:"id"`
	Title          string `dynamodbav:"title"`
	Description    string `dynamodbav:"description,omitempty"`
	Price          string `dynamodbav:"price"`
	ImageURL       string `dynamodbav:"image_url,omitempty"`
	IsActive       bool   `dynamodbav:"is_active"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// OrderBumpDynamoRepository persists OrderBump entities in DynamoDB.
//
// Table requirements:
//   - PK: checkout_link_id (string)
//
// The link id is the key, so a link has at most one order bump.
type OrderBumpDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderBumpRepository = (*OrderBumpDynamoRepository)(nil)

func NewOrderBumpDynamoRepository(ddb dynamoAPI, tableName string) *OrderBumpDynamoRepository {
	return &OrderBumpDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderBumpDynamoRepository) GetByCheckoutLinkID(ctx context.Context, checkoutLinkID string) (entities.OrderBump, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"checkout_link_id": &types.AttributeValueMemberS{Value: checkoutLinkID},
		},
	})
	if err != nil {
		return entities.OrderBump{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderBump{}, nil
	}

	var it orderBumpItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderBump{}, err
	}
	return entities.OrderBump{
		ID:             it.ID,
		CheckoutLinkID: it.CheckoutLinkID,
		Title:          it.Title,
		Description:    it.Description,
		Price:          parseDecimal(it.Price),
		ImageURL:       it.ImageURL,
		IsActive:       it.IsActive,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}, nil
}

func (r *OrderBumpDynamoRepository) Save(ctx context.Context, b entities.OrderBump) (entities.OrderBump, error) {
	av, err := attributevalue.MarshalMap(orderBumpItem{
		CheckoutLinkID: b.CheckoutLinkID,
		ID:             b.ID,
		Title:          b.Title,
		Description:    b.Description,
		Price:          b.Price.String(),
		ImageURL:       b.ImageURL,
		IsActive:       b.IsActive,
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
	})
	if err != nil {
		return entities.OrderBump{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.tableName), Item: av}); err != nil {
		return entities.OrderBump{}, err
	}
	return b, nil
}

func (r *OrderBumpDynamoRepository) DeleteByCheckoutLinkID(ctx context.Context, checkoutLinkID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"checkout_link_id": &types.AttributeValueMemberS{Value: checkoutLinkID},
		},
	})
	return err
}
