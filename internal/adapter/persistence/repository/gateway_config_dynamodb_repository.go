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

type gatewayConfigItem struct {
	ID            string `dynamodbav:"id"`
	AccessToken   string `dynamodbav:"access_token"`
	PublicKey     string `dynamodbav:"public_key,omitempty"`
	IsSandbox     bool   `dynamodbav:"is_sandbox"`
	WebhookSecret string `dynamodbav:"webhook_secret,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// GatewayConfigDynamoRepository stores the singleton Mercado Pago
// configuration under id "default".
type GatewayConfigDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IGatewayConfigRepository = (*GatewayConfigDynamoRepository)(nil)

func NewGatewayConfigDynamoRepository(ddb dynamoAPI, tableName string) *GatewayConfigDynamoRepository {
	return &GatewayConfigDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *GatewayConfigDynamoRepository) Get(ctx context.Context) (entities.GatewayConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.GatewayConfigID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayConfig{}, nil
	}

	var it gatewayConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayConfig{}, err
	}
	return entities.GatewayConfig{
		ID:            it.ID,
		AccessToken:   it.AccessToken,
		PublicKey:     it.PublicKey,
		IsSandbox:     it.IsSandbox,
		WebhookSecret: it.WebhookSecret,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}

func (r *GatewayConfigDynamoRepository) Save(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
	cfg.ID = entities.GatewayConfigID
	av, err := attributevalue.MarshalMap(gatewayConfigItem{
		ID:            cfg.ID,
		AccessToken:   cfg.AccessToken,
		PublicKey:     cfg.PublicKey,
		IsSandbox:     cfg.IsSandbox,
		WebhookSecret: cfg.WebhookSecret,
		CreatedAt:     formatTime(cfg.CreatedAt),
		UpdatedAt:     formatTime(cfg.UpdatedAt),
	})
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.tableName), Item: av}); err != nil {
		return entities.GatewayConfig{}, err
	}
	return cfg, nil
}
