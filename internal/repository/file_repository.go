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

type fileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) GetByProductAndFormat(ctx context.Context, productID, format string) (*models.ProductFile, error) {
	var file models.ProductFile

	query := `SELECT * FROM product_files WHERE product_id = $1 AND format = $2`

	err := r.db.GetContext(ctx, &file, query, productID, format)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("файл продукта %s формата %s не найден", productID, format)
		}
		return nil, fmt.Errorf("ошибка при получении файла продукта: %w", err)
	}

	return &file, nil
}

// Upsert - запись о файле уникальна по (product_id, format)
func (r *fileRepository) Upsert(ctx context.Context, file *models.ProductFile) error {
	if file.FileID == "" {
		file.FileID = uuid.New().String()
	}

	query := `
		INSERT INTO product_files (file_id, product_id, format, file_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, format) DO UPDATE SET
			file_url = EXCLUDED.file_url
	`

	_, err := r.db.ExecContext(ctx, query, file.FileID, file.ProductID, file.Format, file.FileURL)
	if err != nil {
		return fmt.Errorf("ошибка при upsert файла продукта: %w", err)
	}

	return nil
}
