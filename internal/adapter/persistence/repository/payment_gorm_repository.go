package repository

import (
	"context"
	"errors"
	"time"

	"checkout_hub/internal/domain/entities"
	"checkout_hub/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// PaymentGormRepository is the postgres IPaymentRepository. The unique
// index on mercadopago_payment_id enforces the natural key.
type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) GetByMercadoPagoID(ctx context.Context, id string) (entities.Payment, error) {
	var row paymentRow
	err := r.db.WithContext(ctx).Where("mercadopago_payment_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	row := toPaymentRow(p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentGormRepository) UpdateIfNotStale(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	row := toPaymentRow(p)
	q := r.db.WithContext(ctx).Model(&paymentRow{}).Where("mercadopago_payment_id = ?", p.MercadoPagoPaymentID)
	if row.GatewayUpdatedAtNs != 0 {
		q = q.Where("gateway_updated_at_ns <= ?", row.GatewayUpdatedAtNs)
	}

	res := q.Updates(map[string]any{
		"checkout_link_id":      row.CheckoutLinkID,
		"status":                row.Status,
		"amount":                row.Amount,
		"currency":              row.Currency,
		"transaction_amount":    row.TransactionAmount,
		"net_received_amount":   row.NetReceivedAmount,
		"fee_amount":            row.FeeAmount,
		"payer_name":            row.PayerName,
		"payer_email":           row.PayerEmail,
		"payer_phone":           row.PayerPhone,
		"payer_document_type":   row.PayerDocumentType,
		"payer_document_number": row.PayerDocumentNumber,
		"payment_method":        row.PaymentMethod,
		"order_bump_selected":   row.OrderBumpSelected,
		"order_bump_amount":     row.OrderBumpAmount,
		"customer_data":         row.CustomerData,
		"webhook_data":          row.WebhookData,
		"gateway_updated_at_ns": row.GatewayUpdatedAtNs,
		"updated_at":            row.UpdatedAt,
	})
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, interfaces.ErrStaleWrite
	}
	return p, nil
}

func (r *PaymentGormRepository) List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.CheckoutLinkID != "" {
		q = q.Where("checkout_link_id = ?", filter.CheckoutLinkID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []paymentRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromPaymentRow(row))
	}
	return out, nil
}

func toPaymentRow(p entities.Payment) paymentRow {
	return paymentRow{
		ID:                   p.ID,
		MercadoPagoPaymentID: p.MercadoPagoPaymentID,
		CheckoutLinkID:       p.CheckoutLinkID,
		Status:               string(p.Status),
		Amount:               p.Amount,
		Currency:             p.Currency,
		TransactionAmount:    p.TransactionAmount,
		NetReceivedAmount:    nullDecimal(p.NetReceivedAmount),
		FeeAmount:            nullDecimal(p.FeeAmount),
		PayerName:            p.Payer.Name,
		PayerEmail:           p.Payer.Email,
		PayerPhone:           p.Payer.Phone,
		PayerDocumentType:    p.Payer.DocumentType,
		PayerDocumentNumber:  p.Payer.DocumentNumber,
		PaymentMethod:        p.PaymentMethod,
		OrderBumpSelected:    p.OrderBumpSelected,
		OrderBumpAmount:      nullDecimal(p.OrderBumpAmount),
		CustomerData:         jsonColumn(p.CustomerData),
		WebhookData:          jsonColumn(p.WebhookData),
		GatewayUpdatedAtNs:   unixNano(p.GatewayUpdatedAt),
		CreatedAt:            p.CreatedAt.UTC(),
		UpdatedAt:            p.UpdatedAt.UTC(),
	}
}

func fromPaymentRow(row paymentRow) entities.Payment {
	p := entities.Payment{
		ID:                   row.ID,
		MercadoPagoPaymentID: row.MercadoPagoPaymentID,
		CheckoutLinkID:       row.CheckoutLinkID,
		Status:               entities.PaymentStatus(row.Status),
		Amount:               row.Amount,
		Currency:             row.Currency,
		TransactionAmount:    row.TransactionAmount,
		NetReceivedAmount:    decimalPtr(row.NetReceivedAmount),
		FeeAmount:            decimalPtr(row.FeeAmount),
		Payer: entities.Payer{
			Name:           row.PayerName,
			Email:          row.PayerEmail,
			Phone:          row.PayerPhone,
			DocumentType:   row.PayerDocumentType,
			DocumentNumber: row.PayerDocumentNumber,
		},
		PaymentMethod:     row.PaymentMethod,
		OrderBumpSelected: row.OrderBumpSelected,
		OrderBumpAmount:   decimalPtr(row.OrderBumpAmount),
		GatewayUpdatedAt:  fromUnixNano(row.GatewayUpdatedAtNs),
		CreatedAt:         row.CreatedAt.UTC(),
		UpdatedAt:         row.UpdatedAt.UTC(),
	}
	if len(row.CustomerData) > 0 {
		p.CustomerData = []byte(row.CustomerData)
	}
	if len(row.WebhookData) > 0 {
		p.WebhookData = []byte(row.WebhookData)
	}
	return p
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
