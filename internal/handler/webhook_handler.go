package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"albumstore/internal/models"
	"albumstore/internal/payment"
)

// StripeWebhook confirms payments and records purchases. The signature is
// verified against the raw body; parsing happens only after verification.
// 5xx answers make Stripe redeliver the event, so any fulfillment error
// surfaces as 500.
func (h *Handlers) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, "Не удалось прочитать тело запроса", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		WriteError(w, "Отсутствует подпись Stripe", http.StatusBadRequest)
		return
	}

	event, err := h.Payments.VerifyWebhook(payload, signature)
	if err != nil {
		log.Printf("Проверка подписи webhook не пройдена: %v", err)
		WriteError(w, "Недействительная подпись", http.StatusBadRequest)
		return
	}

	if event.Type == payment.EventCheckoutCompleted {
		if err := h.fulfillOrder(r.Context(), event); err != nil {
			log.Printf("Ошибка выполнения заказа: %v", err)
			WriteError(w, fmt.Sprintf("Ошибка выполнения заказа: %v", err), http.StatusInternalServerError)
			return
		}
	}

	WriteSuccess(w, map[string]bool{"received": true}, http.StatusOK)
}

func (h *Handlers) fulfillOrder(ctx context.Context, event *payment.SessionEvent) error {
	if event.ProductID == "" {
		return fmt.Errorf("в метаданных сессии отсутствует product_id")
	}

	log.Printf("Выполняем заказ по сессии %s: продукт %s, сумма $%.2f",
		event.SessionID, event.ProductID, float64(event.AmountTotal)/100)

	userID := event.UserID

	// guest checkout: владелец определяется по email, при необходимости
	// создается аккаунт с неподтвержденным email
	if userID == "" && event.CustomerEmail != "" {
		user, err := h.UserRepo.GetUserByEmail(ctx, event.CustomerEmail)
		switch {
		case err == nil:
			userID = user.UserID
		case strings.Contains(err.Error(), "не найден"):
			newUser := &models.User{
				Email:         event.CustomerEmail,
				Role:          "Customer",
				EmailVerified: false,
			}
			if err := h.UserRepo.CreateUser(ctx, newUser, uuid.New().String()); err != nil {
				return fmt.Errorf("ошибка при создании пользователя: %w", err)
			}
			log.Printf("Создан новый пользователь %s для email %s", newUser.UserID, event.CustomerEmail)
			userID = newUser.UserID
		default:
			return err
		}
	}

	if userID == "" {
		return fmt.Errorf("не удалось определить пользователя для покупки")
	}

	purchase := &models.Purchase{
		UserID:                userID,
		ProductID:             event.ProductID,
		PricePaidCents:        event.AmountTotal,
		StripeSessionID:       event.SessionID,
		StripePaymentIntentID: event.PaymentIntentID,
	}

	created, err := h.PurchaseRepo.Upsert(ctx, purchase)
	if err != nil {
		return err
	}

	if !created {
		// повторная доставка того же события - покупка уже записана
		log.Printf("Покупка для сессии %s уже существует", event.SessionID)
	}

	return nil
}
