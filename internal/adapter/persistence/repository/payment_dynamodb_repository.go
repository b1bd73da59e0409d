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

type paymentItem struct {
	MercadoPagoPaymentID string `dynamodbav:"mercadopago_payment_id"`
	ID                   string `dynamodbav:"id"`
	CheckoutLinkID       string `dynamodbav:"checkout_link_id,omitempty"`
	Status               string `dynamodbav:"status"`
	Amount               string `dynamodbav:"amount"`
	Currency             string `dynamodbav:"currency"`
	TransactionAmount    string `dynamodbav:"transaction_amount"`
	NetReceivedAmount    string `dynamodbav:"net_received_amount,omitempty"`
	FeeAmount            string `dynamodbav:"fee_amount,omitempty"`
	PayerName            string `dynamodbav:"payer_name,omitempty"`
	PayerEmail           string `dynamodbav:"payer_email,omitempty"`
	PayerPhone           string `dynamodbav:"payer_phone,omitempty"`
	PayerDocumentType    string `dynamodbav:"payer_document_type,omitempty"`
	PayerDocumentNumber  string `dynamodbav:"payer_document_number,omitempty"`
	PaymentMethod        string `dynamodbav:"payment_method,omitempty"`
	OrderBumpSelected    *bool  `dynamodbav:"order_bump_selected,omitempty"`
	OrderBumpAmount      string `dynamodbav:"order_bump_amount,omitempty"`
	CustomerData         string `dynamodbav:"customer_data,omitempty"`
	WebhookData          string `dynamodbav:"webhook_data,omitempty"`
	GatewayUpdatedAtNs   int64  `dynamodbav:"gateway_updated_at_ns"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: mercadopago_payment_id (string)
//
// Keying by the provider id makes the uniqueness of the natural key a
// property of the table; gateway_updated_at_ns is numeric so the stale-write
// guard can compare it in a condition expression.
type PaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb dynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) GetByMercadoPagoID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"mercadopago_payment_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "mercadopago_payment_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) UpdateIfNotStale(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "mercadopago_payment_id",
		},
	}
	if ns := unixNano(p.GatewayUpdatedAt); ns != 0 {
		in.ConditionExpression = aws.String("attribute_exists(#pk) AND (attribute_not_exists(#gu) OR #gu <= :gu)")
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, map[string]string{"#gu": "gateway_updated_at_ns"})
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":gu": &types.AttributeValueMemberN{Value: formatInt(ns)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		if isConditionFailed(err) {
			return entities.Payment{}, interfaces.ErrStaleWrite
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		if filter.Status != "" && it.Status != string(filter.Status) {
			continue
		}
		if filter.CheckoutLinkID != "" && it.CheckoutLinkID != filter.CheckoutLinkID {
			continue
		}
		items = append(items, fromPaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return limitSlice(items, filter.Limit), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		MercadoPagoPaymentID: p.MercadoPagoPaymentID,
		ID:                   p.ID,
		CheckoutLinkID:       p.CheckoutLinkID,
		Status:               string(p.Status),
		Amount:               p.Amount.String(),
		Currency:             p.Currency,
		TransactionAmount:    p.TransactionAmount.String(),
		NetReceivedAmount:    decimalString(p.NetReceivedAmount),
		FeeAmount:            decimalString(p.FeeAmount),
		PayerName:            p.Payer.Name,
		PayerEmail:           p.Payer.Email,
		PayerPhone:           p.Payer.Phone,
		PayerDocumentType:    p.Payer.DocumentType,
		PayerDocumentNumber:  p.Payer.DocumentNumber,
		PaymentMethod:        p.PaymentMethod,
		OrderBumpSelected:    p.OrderBumpSelected,
		OrderBumpAmount:      decimalString(p.OrderBumpAmount),
		CustomerData:         string(p.CustomerData),
		WebhookData:          string(p.WebhookData),
		GatewayUpdatedAtNs:   unixNano(p.GatewayUpdatedAt),
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                   it.ID,
		MercadoPagoPaymentID: it.MercadoPagoPaymentID,
		CheckoutLinkID:       it.CheckoutLinkID,
		Status:               entities.PaymentStatus(it.Status),
		Amount:               parseDecimal(it.Amount),
		Currency:             it.Currency,
		TransactionAmount:    parseDecimal(it.TransactionAmount),
		NetReceivedAmount:    parseDecimalPtr(it.NetReceivedAmount),
		FeeAmount:            parseDecimalPtr(it.FeeAmount),
		Payer: entities.Payer{
			Name:           it.PayerName,
			Email:          it.PayerEmail,
			Phone:          it.PayerPhone,
			DocumentType:   it.PayerDocumentType,
			DocumentNumber: it.PayerDocumentNumber,
		},
		PaymentMethod:     it.PaymentMethod,
		OrderBumpSelected: it.OrderBumpSelected,
		OrderBumpAmount:   parseDecimalPtr(it.OrderBumpAmount),
		GatewayUpdatedAt:  fromUnixNano(it.GatewayUpdatedAtNs),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.CustomerData != "" {
		p.CustomerData = []byte(it.CustomerData)
	}
	if it.WebhookData != "" {
		p.WebhookData = []byte(it.WebhookData)
	}
	return p
}
