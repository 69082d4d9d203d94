package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	EmailVerified          bool      `json:"emailVerified" db:"email_verified"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Creator struct {
	CreatorID string `json:"creatorId" db:"creator_id"`
	Name      string `json:"name" db:"name"`
}

type Product struct {
	ProductID   string `json:"productId" db:"product_id"`
	Slug        string `json:"slug" db:"slug"`
	Title       string `json:"title" db:"title"`
	Type        string `json:"type" db:"type"`
	Description string `json:"description" db:"description"`
	PriceCents  int64  `json:"priceCents" db:"price_cents"`
	CreatorID   string `json:"creatorId" db:"creator_id"`
	ReleaseDate string `json:"releaseDate" db:"release_date"`
}

type ProductFile struct {
	FileID    string `json:"fileId" db:"file_id"`
	ProductID string `json:"productId" db:"product_id"`
	Format    string `json:"format" db:"format"`
	FileURL   string `json:"fileUrl" db:"file_url"`
}

type Purchase struct {
	PurchaseID            string    `json:"purchaseId" db:"purchase_id"`
	UserID                string    `json:"userId" db:"user_id"`
	ProductID             string    `json:"productId" db:"product_id"`
	PricePaidCents        int64     `json:"pricePaidCents" db:"price_paid_cents"`
	StripeSessionID       string    `json:"stripeSessionId" db:"stripe_session_id"`
	StripePaymentIntentID string    `json:"stripePaymentIntentId" db:"stripe_payment_intent_id"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
}

// ContentItem - производное значение, пересчитывается из файловой системы и не хранится в БД
type ContentItem struct {
	Type       string `json:"type"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	PriceCents int64  `json:"priceCents"`
	Image      string `json:"image,omitempty"`
	URL        string `json:"url"`
}
