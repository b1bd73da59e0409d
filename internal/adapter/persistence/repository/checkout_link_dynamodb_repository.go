package repository

import (
	"context"
	"sort"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const checkoutLinksReferenceIndex = "reference_id-index"

type checkoutLinkItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	Description  string `dynamodbav:"description,omitempty"`
	Amount       string `dynamodbav:"amount"`
	Currency     string `dynamodbav:"currency"`
	ReferenceID  string `dynamodbav:"reference_id"`
	PreferenceID string `dynamodbav:"mercadopago_preference_id,omitempty"`
	CheckoutURL  string `dynamodbav:"checkout_url,omitempty"`
	ImageURL     string `dynamodbav:"image_url,omitempty"`
	DeliveryLink string `dynamodbav:"delivery_link,omitempty"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// CheckoutLinkDynamoRepository persists CheckoutLink entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference_id-index (PK: reference_id)
type CheckoutLinkDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ICheckoutLinkRepository = (*CheckoutLinkDynamoRepository)(nil)

func NewCheckoutLinkDynamoRepository(ddb dynamoAPI, tableName string) *CheckoutLinkDynamoRepository {
	return &CheckoutLinkDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *CheckoutLinkDynamoRepository) Create(ctx context.Context, l entities.CheckoutLink) (entities.CheckoutLink, error) {
	av, err := attributevalue.MarshalMap(toCheckoutLinkItem(l))
	if err != nil {
		return entities.CheckoutLink{}, err
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
			return entities.CheckoutLink{}, interfaces.ErrAlreadyExists
		}
		return entities.CheckoutLink{}, err
	}
	return l, nil
}

func (r *CheckoutLinkDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutLink, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutLink{}, nil
	}

	var it checkoutLinkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutLink{}, err
	}
	return fromCheckoutLinkItem(it), nil
}

func (r *CheckoutLinkDynamoRepository) GetByReferenceID(ctx context.Context, referenceID string) (entities.CheckoutLink, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkoutLinksReferenceIndex),
		KeyConditionExpression: aws.String("reference_id = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: referenceID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CheckoutLink{}, err
	}
	if len(out.Items) == 0 {
		return entities.CheckoutLink{}, nil
	}

	var it checkoutLinkItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CheckoutLink{}, err
	}
	return fromCheckoutLinkItem(it), nil
}

func (r *CheckoutLinkDynamoRepository) List(ctx context.Context) ([]entities.CheckoutLink, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CheckoutLink, 0, len(raw))
	for _, av := range raw {
		var it checkoutLinkItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCheckoutLinkItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *CheckoutLinkDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.CheckoutLink, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_active = :is_active, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":is_active":  &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.CheckoutLink{}, nil
		}
		return entities.CheckoutLink{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CheckoutLink{}, nil
	}
	var it checkoutLinkItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CheckoutLink{}, err
	}
	return fromCheckoutLinkItem(it), nil
}

func (r *CheckoutLinkDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCheckoutLinkItem(l entities.CheckoutLink) checkoutLinkItem {
	return checkoutLinkItem{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Amount:       l.Amount.String(),
		Currency:     l.Currency,
		ReferenceID:  l.ReferenceID,
		PreferenceID: l.PreferenceID,
		CheckoutURL:  l.CheckoutURL,
		ImageURL:     l.ImageURL,
		DeliveryLink: l.DeliveryLink,
		IsActive:     l.IsActive,
		CreatedAt:    formatTime(l.CreatedAt),
		UpdatedAt:    formatTime(l.UpdatedAt),
	}
}

func fromCheckoutLinkItem(it checkoutLinkItem) entities.CheckoutLink {
	return entities.CheckoutLink{
		ID:           it.ID,
		Title:        it.Title,
		Description:  it.Description,
		Amount:       parseDecimal(it.Amount),
		Currency:     it.Currency,
		ReferenceID:  it.ReferenceID,
		PreferenceID: it.PreferenceID,
		CheckoutURL:  it.CheckoutURL,
		ImageURL:     it.ImageURL,
		DeliveryLink: it.DeliveryLink,
		IsActive:     it.IsActive,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
