package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"albumstore/cmd/app"
	"albumstore/internal/config"
	handlers "albumstore/internal/handler"
	"albumstore/internal/mailer"
	"albumstore/internal/middleware"
	"albumstore/internal/payment"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, repo, services, store := app.App(cfg)
	defer db.CloseDB()

	payments := payment.NewStripeProvider(cfg)
	mail := mailer.NewResendMailer(cfg)

	handler := handlers.NewHandlers(repo, services, payments, mail, store, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)
	r.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)

	r.HandleFunc("/api/content/{slug}", handler.GetContent).Methods(http.MethodGet)
	r.HandleFunc("/api/contact", handler.Contact).Methods(http.MethodPost)

	r.HandleFunc("/api/create-checkout-session", handler.CreateCheckoutSession).Methods(http.MethodPost)
	r.HandleFunc("/api/stripe-webhook", handler.StripeWebhook).Methods(http.MethodPost)
	r.HandleFunc("/api/downloads/{productSlug}", handler.GetDownload).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
