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

type productRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product

	query := `SELECT * FROM products WHERE slug = $1`

	err := r.db.GetContext(ctx, &product, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("продукт со slug %s не найден", slug)
		}
		return nil, fmt.Errorf("ошибка при получении продукта: %w", err)
	}

	return &product, nil
}

func (r *productRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product

	query := `SELECT * FROM products WHERE product_id = $1`

	err := r.db.GetContext(ctx, &product, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("продукт с ID %s не найден", productID)
		}
		return nil, fmt.Errorf("ошибка при получении продукта: %w", err)
	}

	return &product, nil
}

// Upsert вставляет или обновляет продукт по slug; идемпотентность обеспечивает
// уникальный индекс. При конфликте возвращается существующий product_id.
func (r *productRepository) Upsert(ctx context.Context, product *models.Product) error {
	if product.ProductID == "" {
		product.ProductID = uuid.New().String()
	}

	query := `
		INSERT INTO products (product_id, slug, title, type, description, price_cents, creator_id, release_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			type = EXCLUDED.type,
			description = EXCLUDED.description,
			price_cents = EXCLUDED.price_cents,
			creator_id = EXCLUDED.creator_id,
			release_date = EXCLUDED.release_date
		RETURNING product_id
	`

	var productID string
	err := r.db.GetContext(ctx, &productID, query,
		product.ProductID,
		product.Slug,
		product.Title,
		product.Type,
		product.Description,
		product.PriceCents,
		product.CreatorID,
		product.ReleaseDate,
	)
	if err != nil {
		return fmt.Errorf("ошибка при upsert продукта: %w", err)
	}

	product.ProductID = productID
	return nil
}
