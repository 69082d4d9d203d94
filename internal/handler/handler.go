package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"albumstore/internal/config"
	"albumstore/internal/mailer"
	"albumstore/internal/payment"
	"albumstore/internal/repository"
	"albumstore/internal/service"
	"albumstore/internal/storage"
)

type Handlers struct {
	ProductRepo  repository.ProductRepository
	PurchaseRepo repository.PurchaseRepository
	FileRepo     repository.FileRepository
	UserRepo     repository.UserRepository
	AuthService  service.AuthService
	Payments     payment.Provider
	Mailer       mailer.Mailer
	Storage      storage.Storage
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, payments payment.Provider, mail mailer.Mailer, store storage.Storage, cfg *config.Config) *Handlers {
	return &Handlers{
		ProductRepo:  repo.Product,
		PurchaseRepo: repo.Purchase,
		FileRepo:     repo.File,
		UserRepo:     repo.User,
		AuthService:  services.Auth,
		Payments:     payments,
		Mailer:       mail,
		Storage:      store,
		Cfg:          cfg,
		Validate:     validator.New(),
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
