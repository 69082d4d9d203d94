package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"albumstore/internal/models"
)

type ProductRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	Upsert(ctx context.Context, product *models.Product) error
}

type CreatorRepository interface {
	GetByName(ctx context.Context, name string) (*models.Creator, error)
	GetOrCreate(ctx context.Context, name string) (*models.Creator, error)
}

type FileRepository interface {
	GetByProductAndFormat(ctx context.Context, productID, format string) (*models.ProductFile, error)
	Upsert(ctx context.Context, file *models.ProductFile) error
}

type PurchaseRepository interface {
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.Purchase, error)
	Upsert(ctx context.Context, purchase *models.Purchase) (bool, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type Repository struct {
	Product  ProductRepository
	Creator  CreatorRepository
	File     FileRepository
	Purchase PurchaseRepository
	User     UserRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Product:  NewProductRepository(db),
		Creator:  NewCreatorRepository(db),
		File:     NewFileRepository(db),
		Purchase: NewPurchaseRepository(db),
		User:     NewUserRepository(db),
	}
}
