package payment

import (
	"context"
	"errors"
	"fmt"

	"foodigo/internal/domain"
	"foodigo/internal/service"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var ErrNoPaymentIntent = errors.New("checkout session has no payment intent")

// StripeGateway creates hosted checkout sessions, saves cards for scheduled
// deliveries and issues refunds.
type StripeGateway struct {
	API      *client.API
	Currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	return &StripeGateway{API: client.New(secretKey, nil), Currency: currency}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, items []domain.LineItem, successURL, cancelURL string) (*domain.CheckoutSession, error) {
	lines := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lines = append(lines, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:  lines,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	session, err := g.API.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}
	return &domain.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// CreateCustomer registers a customer with paymentMethodID attached as the
// default card and returns the customer id.
func (g *StripeGateway) CreateCustomer(ctx context.Context, paymentMethodID, email string) (string, error) {
	params := &stripe.CustomerParams{
		Email:         stripe.String(email),
		PaymentMethod: stripe.String(paymentMethodID),
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	params.Context = ctx

	customer, err := g.API.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe customer: %w", err)
	}
	return customer.ID, nil
}

// ChargeSaved confirms an off-session payment against a saved card and
// returns the payment intent id.
func (g *StripeGateway) ChargeSaved(ctx context.Context, customerID, paymentMethodID string, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(g.Currency),
		Customer:      stripe.String(customerID),
		PaymentMethod: stripe.String(paymentMethodID),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
	}
	params.Context = ctx

	intent, err := g.API.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe charge: %w", err)
	}
	return intent.ID, nil
}

// Refund returns the full payment behind a checkout session or, when the
// reference is already a payment intent, behind that intent.
func (g *StripeGateway) Refund(ctx context.Context, ref string) error {
	intentID := ref
	if len(ref) > 3 && ref[:3] == "cs_" {
		params := &stripe.CheckoutSessionParams{}
		params.Context = ctx
		session, err := g.API.CheckoutSessions.Get(ref, params)
		if err != nil {
			return fmt.Errorf("stripe session lookup: %w", err)
		}
		if session.PaymentIntent == nil || session.PaymentIntent.ID == "" {
			return ErrNoPaymentIntent
		}
		intentID = session.PaymentIntent.ID
	}

	params := &stripe.RefundParams{PaymentIntent: stripe.String(intentID)}
	params.Context = ctx
	if _, err := g.API.Refunds.New(params); err != nil {
		return fmt.Errorf("stripe refund: %w", err)
	}
	return nil
}

// CheckoutPaid reports whether the checkout session has collected its
// payment.
func (g *StripeGateway) CheckoutPaid(ctx context.Context, sessionID string) (bool, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	session, err := g.API.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return false, fmt.Errorf("stripe session lookup: %w", err)
	}
	switch session.PaymentStatus {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return true, nil
	}
	return false, nil
}

var _ service.PaymentGateway = (*StripeGateway)(nil)
