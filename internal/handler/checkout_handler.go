package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"albumstore/internal/payment"
)

type CheckoutRequest struct {
	ProductSlug string `json:"productSlug"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession starts a one-time payment for a product. Nothing is
// persisted locally: until the webhook confirms the payment, the only state is
// the pending session on the Stripe side.
func (h *Handlers) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.ProductSlug == "" {
		WriteError(w, "Не указан productSlug", http.StatusBadRequest)
		return
	}

	product, err := h.ProductRepo.GetBySlug(r.Context(), req.ProductSlug)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Продукт не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	var userID, customerEmail string

	// credential is optional: an unreadable token just means an anonymous checkout
	if token := bearerToken(r); token != "" {
		user, err := h.AuthService.GetUserFromToken(token)
		if err == nil && user != nil {
			userID = user.UserID
			customerEmail = user.Email

			// повторная покупка отклоняется до обращения к Stripe
			purchase, err := h.PurchaseRepo.GetByUserAndProduct(r.Context(), userID, product.ProductID)
			if err == nil && purchase != nil {
				WriteError(w, "Вы уже владеете этим альбомом", http.StatusBadRequest)
				return
			}
			if err != nil && !strings.Contains(err.Error(), "не найдена") {
				WriteError(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
	}

	origin := requestOrigin(r)

	session, err := h.Payments.CreateCheckoutSession(r.Context(), payment.CheckoutParams{
		ProductID:     product.ProductID,
		ProductSlug:   product.Slug,
		UserID:        userID,
		Title:         product.Title,
		Description:   fmt.Sprintf("Lifetime access to %s (FLAC)", product.Title),
		AmountCents:   product.PriceCents,
		Currency:      h.Cfg.Stripe.Currency,
		SuccessURL:    fmt.Sprintf("%s/%s?success=true", origin, product.Slug),
		CancelURL:     fmt.Sprintf("%s/%s?canceled=true", origin, product.Slug),
		CustomerEmail: customerEmail,
	})
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, CheckoutResponse{URL: session.URL}, http.StatusOK)
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
