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

type customizationItem struct {
	ID                   string `dynamodbav:"id"`
	CompanyName          string `dynamodbav:"company_name,omitempty"`
	CheckoutTitle        string `dynamodbav:"checkout_title,omitempty"`
	CheckoutDescription  string `dynamodbav:"checkout_description,omitempty"`
	LogoURL              string `dynamodbav:"logo_url,omitempty"`
	PrimaryColor         string `dynamodbav:"primary_color"`
	SecondaryColor       string `dynamodbav:"secondary_color"`
	BackgroundColor      string `dynamodbav:"background_color"`
	TextColor            string `dynamodbav:"text_color"`
	AccentColor          string `dynamodbav:"accent_color,omitempty"`
	FontFamily           string `dynamodbav:"font_family,omitempty"`
	EnableCreditCard     bool   `dynamodbav:"enable_credit_card"`
	EnableDebitCard      bool   `dynamodbav:"enable_debit_card"`
	EnablePix            bool   `dynamodbav:"enable_pix"`
	EnableBoleto         bool   `dynamodbav:"enable_boleto"`
	EnableOrderBump      bool   `dynamodbav:"enable_order_bump"`
	OrderBumpTitle       string `dynamodbav:"order_bump_title,omitempty"`
	OrderBumpDescription string `dynamodbav:"order_bump_description,omitempty"`
	OrderBumpPrice       string `dynamodbav:"order_bump_price,omitempty"`
	OrderBumpImageURL    string `dynamodbav:"order_bump_image_url,omitempty"`
	ShowCompanyLogo      bool   `dynamodbav:"show_company_logo"`
	ShowSecurityBadges   bool   `dynamodbav:"show_security_badges"`
	ShowPaymentMethods   bool   `dynamodbav:"show_payment_methods"`
	SuccessMessage       string `dynamodbav:"success_message,omitempty"`
	CustomCSS            string `dynamodbav:"custom_css,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

type CustomizationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICustomizationRepository = (*CustomizationDynamoRepository)(nil)

func NewCustomizationDynamoRepository(ddb dynamoAPI, tableName string) *CustomizationDynamoRepository {
	return &CustomizationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomizationDynamoRepository) Get(ctx context.Context) (entities.CheckoutCustomization, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.CustomizationID},
		},
	})
	if err != nil {
		return entities.CheckoutCustomization{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutCustomization{}, nil
	}

	var it customizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutCustomization{}, err
	}
	return fromCustomizationItem(it), nil
}

func (r *CustomizationDynamoRepository) Save(ctx context.Context, c entities.CheckoutCustomization) (entities.CheckoutCustomization, error) {
	c.ID = entities.CustomizationID
	av, err := attributevalue.MarshalMap(toCustomizationItem(c))
	if err != nil {
		return entities.CheckoutCustomization{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.tableName), Item: av}); err != nil {
		return entities.CheckoutCustomization{}, err
	}
	return c, nil
}

func toCustomizationItem(c entities.CheckoutCustomization) customizationItem {
	return customizationItem{
		ID:                   c.ID,
		CompanyName:          c.CompanyName,
		CheckoutTitle:        c.CheckoutTitle,
		CheckoutDescription:  c.CheckoutDescription,
		LogoURL:              c.LogoURL,
		PrimaryColor:         c.PrimaryColor,
		SecondaryColor:       c.SecondaryColor,
		BackgroundColor:      c.BackgroundColor,
		TextColor:            c.TextColor,
		AccentColor:          c.AccentColor,
		FontFamily:           c.FontFamily,
		EnableCreditCard:     c.EnableCreditCard,
		EnableDebitCard:      c.EnableDebitCard,
		EnablePix:            c.EnablePix,
		EnableBoleto:         c.EnableBoleto,
		EnableOrderBump:      c.EnableOrderBump,
		OrderBumpTitle:       c.OrderBumpTitle,
		OrderBumpDescription: c.OrderBumpDescription,
		OrderBumpPrice:       decimalString(c.OrderBumpPrice),
		OrderBumpImageURL:    c.OrderBumpImageURL,
		ShowCompanyLogo:      c.ShowCompanyLogo,
		ShowSecurityBadges:   c.ShowSecurityBadges,
		ShowPaymentMethods:   c.ShowPaymentMethods,
		SuccessMessage:       c.SuccessMessage,
		CustomCSS:            c.CustomCSS,
		CreatedAt:            formatTime(c.CreatedAt),
		UpdatedAt:            formatTime(c.UpdatedAt),
	}
}

func fromCustomizationItem(it customizationItem) entities.CheckoutCustomization {
	return entities.CheckoutCustomization{
		ID:                   it.ID,
		CompanyName:          it.CompanyName,
		CheckoutTitle:        it.CheckoutTitle,
		CheckoutDescription:  it.CheckoutDescription,
		LogoURL:              it.LogoURL,
		PrimaryColor:         it.PrimaryColor,
		SecondaryColor:       it.SecondaryColor,
		BackgroundColor:      it.BackgroundColor,
		TextColor:            it.TextColor,
		AccentColor:          it.AccentColor,
		FontFamily:           it.FontFamily,
		EnableCreditCard:     it.EnableCreditCard,
		EnableDebitCard:      it.EnableDebitCard,
		EnablePix:            it.EnablePix,
		EnableBoleto:         it.EnableBoleto,
		EnableOrderBump:      it.EnableOrderBump,
		OrderBumpTitle:       it.OrderBumpTitle,
		OrderBumpDescription: it.OrderBumpDescription,
		OrderBumpPrice:       parseDecimalPtr(it.OrderBumpPrice),
		OrderBumpImageURL:    it.OrderBumpImageURL,
		ShowCompanyLogo:      it.ShowCompanyLogo,
		ShowSecurityBadges:   it.ShowSecurityBadges,
		ShowPaymentMethods:   it.ShowPaymentMethods,
		SuccessMessage:       it.SuccessMessage,
		CustomCSS:            it.CustomCSS,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
