package test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"albumstore/internal/models"
	"albumstore/internal/payment"
)

func webhookRequest(t *testing.T, payload []byte, signature string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/stripe-webhook", bytes.NewBuffer(payload))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	return req
}

func completedEvent() *payment.SessionEvent {
	return &payment.SessionEvent{
		Type:            payment.EventCheckoutCompleted,
		SessionID:       "cs_test_123",
		PaymentIntentID: "pi_test_123",
		ProductID:       "product-1",
		ProductSlug:     "moon-goddess",
		UserID:          "user-1",
		CustomerEmail:   "listener@example.com",
		AmountTotal:     1999,
	}
}

func TestStripeWebhook_Success(t *testing.T) {
	// Arrange
	env := newTestEnv()
	payload := []byte(`{"type":"checkout.session.completed"}`)

	env.Payments.On("VerifyWebhook", payload, "sig-header").Return(completedEvent(), nil)

	env.PurchaseRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *models.Purchase) bool {
		return p.UserID == "user-1" &&
			p.ProductID == "product-1" &&
			p.PricePaidCents == 1999 &&
			p.StripeSessionID == "cs_test_123" &&
			p.StripePaymentIntentID == "pi_test_123"
	})).Return(true, nil)

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, payload, "sig-header"))

	// Assert
	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, true, response["received"])

	// известный пользователь из метаданных: обращений к таблице users нет
	env.UserRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	env.PurchaseRepo.AssertExpectations(t)
}

func TestStripeWebhook_DuplicateDelivery(t *testing.T) {
	// Arrange
	env := newTestEnv()
	payload := []byte(`{"type":"checkout.session.completed"}`)

	env.Payments.On("VerifyWebhook", payload, "sig-header").Return(completedEvent(), nil)

	// upsert по stripe_session_id отрабатывает без вставки
	env.PurchaseRepo.On("Upsert", mock.Anything, mock.Anything).Return(false, nil)

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, payload, "sig-header"))

	// Assert
	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, true, response["received"])
}

func TestStripeWebhook_GuestWithExistingAccount(t *testing.T) {
	// Arrange
	env := newTestEnv()
	payload := []byte(`{"type":"checkout.session.completed"}`)

	event := completedEvent()
	event.UserID = ""

	env.Payments.On("VerifyWebhook", payload, "sig-header").Return(event, nil)

	env.UserRepo.On("GetUserByEmail", mock.Anything, "listener@example.com").
		Return(&models.User{UserID: "existing-user", Email: "listener@example.com"}, nil)

	env.PurchaseRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *models.Purchase) bool {
		return p.UserID == "existing-user"
	})).Return(true, nil)

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, payload, "sig-header"))

	// Assert
	assertJSONSuccess(t, rr, http.StatusOK)
	env.UserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	env.PurchaseRepo.AssertExpectations(t)
}

func TestStripeWebhook_GuestProvisionsAccount(t *testing.T) {
	// Arrange
	env := newTestEnv()
	payload := []byte(`{"type":"checkout.session.completed"}`)

	event := completedEvent()
	event.UserID = ""

	env.Payments.On("VerifyWebhook", payload, "sig-header").Return(event, nil)

	env.UserRepo.On("GetUserByEmail", mock.Anything, "listener@example.com").
		Return(nil, fmt.Errorf("пользователь с email listener@example.com не найден"))

	env.UserRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "listener@example.com" && u.Role == "Customer" && !u.EmailVerified
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).UserID = "provisioned-user"
		}).
		Return(nil)

	env.PurchaseRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *models.Purchase) bool {
		return p.UserID == "provisioned-user"
	})).Return(true, nil)

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, payload, "sig-header"))

	// Assert
	assertJSONSuccess(t, rr, http.StatusOK)
	env.UserRepo.AssertExpectations(t)
	env.PurchaseRepo.AssertExpectations(t)
}

func TestStripeWebhook_NoResolvableUser(t *testing.T) {
	// Arrange
	env := newTestEnv()
	payload := []byte(`{"type":"checkout.session.completed"}`)

	event := completedEvent()
	event.UserID = ""
	event.CustomerEmail = ""

	env.Payments.On("VerifyWebhook", payload, "sig-header").Return(event, nil)

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, payload, "sig-header"))

	// Assert
	assertJSONError(t, rr, http.StatusInternalServerError, "не удалось определить пользователя")
	env.PurchaseRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestStripeWebhook_MissingProductID(t *testing.T) {
	// Arrange
	env := newTestEnv()
	payload := []byte(`{"type":"checkout.session.completed"}`)

	event := completedEvent()
	event.ProductID = ""

	env.Payments.On("VerifyWebhook", payload, "sig-header").Return(event, nil)

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, payload, "sig-header"))

	// Assert
	assertJSONError(t, rr, http.StatusInternalServerError, "отсутствует product_id")
	env.PurchaseRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestStripeWebhook_OtherEventType(t *testing.T) {
	// Arrange
	env := newTestEnv()
	payload := []byte(`{"type":"payment_intent.created"}`)

	env.Payments.On("VerifyWebhook", payload, "sig-header").
		Return(&payment.SessionEvent{Type: "payment_intent.created"}, nil)

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, payload, "sig-header"))

	// Assert
	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, true, response["received"])
	env.PurchaseRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestStripeWebhook_MissingSignature(t *testing.T) {
	// Arrange
	env := newTestEnv()

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, []byte(`{}`), ""))

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Отсутствует подпись Stripe")
	env.Payments.AssertNotCalled(t, "VerifyWebhook", mock.Anything, mock.Anything)
}

func TestStripeWebhook_InvalidSignature(t *testing.T) {
	// Arrange
	env := newTestEnv()
	payload := []byte(`{"type":"checkout.session.completed"}`)

	env.Payments.On("VerifyWebhook", payload, "bad-signature").
		Return(nil, fmt.Errorf("проверка подписи webhook не пройдена"))

	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, webhookRequest(t, payload, "bad-signature"))

	// Assert
	assertJSONError(t, rr, http.StatusBadRequest, "Недействительная подпись")
	env.PurchaseRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	env.UserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestStripeWebhook_WrongMethod(t *testing.T) {
	// Arrange
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/stripe-webhook", nil)
	rr := httptest.NewRecorder()

	// Act
	env.Handler.StripeWebhook(rr, req)

	// Assert
	assertJSONError(t, rr, http.StatusMethodNotAllowed, "Method not allowed")
}
