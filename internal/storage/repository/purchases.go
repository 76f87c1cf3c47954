package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/magabrotheeeer/template-hub/internal/models"
)

const purchaseColumns = `id, user_id, template_id, purchase_type, amount,
			      currency, payment_status, payment_provider, payment_provider_id, created_at`

func scanPurchase(row rowScanner) (*models.Purchase, error) {
	p := &models.Purchase{}
	var templateID sql.NullInt64
	var amount string
	var paymentProvider, paymentProviderID sql.NullString
	if err := row.Scan(&p.ID, &p.UserID, &templateID, &p.PurchaseType, &amount,
		&p.Currency, &p.PaymentStatus, &paymentProvider, &paymentProviderID, &p.CreatedAt); err != nil {
		return nil, err
	}
	if templateID.Valid {
		id := int(templateID.Int64)
		p.TemplateID = &id
	}
	if paymentProvider.Valid {
		p.PaymentProvider = &paymentProvider.String
	}
	if paymentProviderID.Valid {
		p.PaymentProviderID = &paymentProviderID.String
	}
	// numeric(10,2) приходит строкой, наружу сумма отдаётся числом
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	p.Amount = value
	return p, nil
}

// CreatePurchase сохраняет новую покупку и возвращает созданную запись.
// Статус оплаты при создании всегда pending.
func (s *Storage) CreatePurchase(ctx context.Context, purchase models.Purchase) (*models.Purchase, error) {
	const op = "storage.CreatePurchase"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO purchases (user_id, template_id, purchase_type, amount,
			      currency, payment_status, payment_provider, payment_provider_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + purchaseColumns
	row := s.DB.QueryRowContext(ctx, query,
		purchase.UserID, purchase.TemplateID, purchase.PurchaseType,
		strconv.FormatFloat(purchase.Amount, 'f', 2, 64),
		purchase.Currency, purchase.PaymentStatus,
		purchase.PaymentProvider, purchase.PaymentProviderID)

	created, err := scanPurchase(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}
