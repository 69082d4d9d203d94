package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"albumstore/internal/config"
)

// EventCheckoutCompleted - единственный тип события, который обрабатывается;
// остальные подтверждаются без действий
const EventCheckoutCompleted = "checkout.session.completed"

type CheckoutParams struct {
	ProductID     string
	ProductSlug   string
	UserID        string
	Title         string
	Description   string
	AmountCents   int64
	Currency      string
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// SessionEvent - проверенное webhook-событие, сведенное к нужным полям
type SessionEvent struct {
	Type            string
	SessionID       string
	PaymentIntentID string
	ProductID       string
	ProductSlug     string
	UserID          string
	CustomerEmail   string
	AmountTotal     int64
}

type Provider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	VerifyWebhook(payload []byte, signature string) (*SessionEvent, error)
}

type StripeProvider struct {
	client        *client.API
	webhookSecret string
}

func NewStripeProvider(cfg *config.Config) *StripeProvider {
	return &StripeProvider{
		client:        client.New(cfg.Stripe.SecretKey, nil),
		webhookSecret: cfg.Stripe.WebhookSecret,
	}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(params.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(params.Title),
						Description: stripe.String(params.Description),
					},
					UnitAmount: stripe.Int64(params.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}

	if params.CustomerEmail != "" {
		sessionParams.CustomerEmail = stripe.String(params.CustomerEmail)
	}

	// user_id пустой для анонимной покупки - webhook определит владельца по email
	sessionParams.AddMetadata("product_id", params.ProductID)
	sessionParams.AddMetadata("product_slug", params.ProductSlug)
	sessionParams.AddMetadata("user_id", params.UserID)

	session, err := p.client.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Stripe-сессии: %w", err)
	}

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// VerifyWebhook validates the signature against the raw body. The body must not
// be re-serialized before reaching this point or the signature check breaks.
func (p *StripeProvider) VerifyWebhook(payload []byte, signature string) (*SessionEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
		Tolerance:                300 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("проверка подписи webhook не пройдена: %w", err)
	}

	sessionEvent := &SessionEvent{Type: string(event.Type)}
	if sessionEvent.Type != EventCheckoutCompleted {
		return sessionEvent, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("ошибка разбора checkout-сессии: %w", err)
	}

	sessionEvent.SessionID = session.ID
	sessionEvent.AmountTotal = session.AmountTotal
	sessionEvent.ProductID = session.Metadata["product_id"]
	sessionEvent.ProductSlug = session.Metadata["product_slug"]
	sessionEvent.UserID = session.Metadata["user_id"]

	if session.PaymentIntent != nil {
		sessionEvent.PaymentIntentID = session.PaymentIntent.ID
	}

	sessionEvent.CustomerEmail = session.CustomerEmail
	if sessionEvent.CustomerEmail == "" && session.CustomerDetails != nil {
		sessionEvent.CustomerEmail = session.CustomerDetails.Email
	}

	return sessionEvent, nil
}
