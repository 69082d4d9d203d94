package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"albumstore/internal/config"
	handlers "albumstore/internal/handler"
)

type testEnv struct {
	ProductRepo  *MockProductRepository
	PurchaseRepo *MockPurchaseRepository
	FileRepo     *MockFileRepository
	UserRepo     *MockUserRepository
	AuthService  *MockAuthService
	Payments     *MockPayments
	Mailer       *MockMailer
	Storage      *MockStorage
	Handler      *handlers.Handlers
}

func newTestEnv() *testEnv {
	env := &testEnv{
		ProductRepo:  new(MockProductRepository),
		PurchaseRepo: new(MockPurchaseRepository),
		FileRepo:     new(MockFileRepository),
		UserRepo:     new(MockUserRepository),
		AuthService:  new(MockAuthService),
		Payments:     new(MockPayments),
		Mailer:       new(MockMailer),
		Storage:      new(MockStorage),
	}

	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		ServerPort:   8080,
	}
	cfg.Stripe.Currency = "usd"
	cfg.ContentDir = "public/slugs"

	env.Handler = &handlers.Handlers{
		ProductRepo:  env.ProductRepo,
		PurchaseRepo: env.PurchaseRepo,
		FileRepo:     env.FileRepo,
		UserRepo:     env.UserRepo,
		AuthService:  env.AuthService,
		Payments:     env.Payments,
		Mailer:       env.Mailer,
		Storage:      env.Storage,
		Cfg:          cfg,
		Validate:     validator.New(),
	}

	return env
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

// assertJSONSuccess checks the successful JSON response
func assertJSONSuccess(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) map[string]interface{} {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handlers.HealthHandler(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "ok", response["status"])
}
