package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"albumstore/internal/models"
)

type purchaseRepository struct {
	db *sqlx.DB
}

func NewPurchaseRepository(db *sqlx.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.Purchase, error) {
	var purchase models.Purchase

	query := `SELECT * FROM purchases WHERE user_id = $1 AND product_id = $2`

	err := r.db.GetContext(ctx, &purchase, query, userID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("покупка не найдена")
		}
		return nil, fmt.Errorf("ошибка при получении покупки: %w", err)
	}

	return &purchase, nil
}

// Upsert пишет покупку с ключом идемпотентности stripe_session_id: повторная
// доставка webhook с той же сессией не создает вторую строку. Возвращает true,
// если строка действительно была вставлена.
func (r *purchaseRepository) Upsert(ctx context.Context, purchase *models.Purchase) (bool, error) {
	if purchase.PurchaseID == "" {
		purchase.PurchaseID = uuid.New().String()
	}

	query := `
		INSERT INTO purchases (purchase_id, user_id, product_id, price_paid_cents, stripe_session_id, stripe_payment_intent_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (stripe_session_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query,
		purchase.PurchaseID,
		purchase.UserID,
		purchase.ProductID,
		purchase.PricePaidCents,
		purchase.StripeSessionID,
		purchase.StripePaymentIntentID,
	)
	if err != nil {
		return false, fmt.Errorf("ошибка при записи покупки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке вставленных строк: %w", err)
	}

	return rowsAffected > 0, nil
}
