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

type creatorRepository struct {
	db *sqlx.DB
}

func NewCreatorRepository(db *sqlx.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

func (r *creatorRepository) GetByName(ctx context.Context, name string) (*models.Creator, error) {
	var creator models.Creator

	query := `SELECT * FROM creators WHERE name = $1`

	err := r.db.GetContext(ctx, &creator, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("исполнитель %s не найден", name)
		}
		return nil, fmt.Errorf("ошибка при получении исполнителя: %w", err)
	}

	return &creator, nil
}

// GetOrCreate - одно условное выражение вместо раздельных чтения и вставки,
// поэтому конкурентные синхронизации не создают дублей по одному имени.
func (r *creatorRepository) GetOrCreate(ctx context.Context, name string) (*models.Creator, error) {
	var creator models.Creator

	query := `
		INSERT INTO creators (creator_id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING creator_id, name
	`

	err := r.db.GetContext(ctx, &creator, query, uuid.New().String(), name)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании исполнителя: %w", err)
	}

	return &creator, nil
}
