// internal/services/checkout_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"

	"github.com/Mythicool/vaporlax/internal/config"
	"github.com/Mythicool/vaporlax/internal/models"
	"github.com/Mythicool/vaporlax/internal/pricing"
)

var ErrEmptyCart = errors.New("cart has no items")

// CheckoutService turns cart line items into a Stripe Checkout
// Session. Without a configured secret key it runs in demo mode:
// after the artificial delay it returns a synthetic session that the
// front-end treats as a completed checkout.
type CheckoutService struct {
	config *config.Config
}

func NewCheckoutService(cfg *config.Config) *CheckoutService {
	// Initialize Stripe
	stripe.Key = cfg.Payment.StripeSecretKey

	return &CheckoutService{config: cfg}
}

func (s *CheckoutService) simulateDelay(ctx context.Context) error {
	if !s.config.Simulate.Enabled || s.config.Simulate.CheckoutDelayMs <= 0 {
		return nil
	}
	timer := time.NewTimer(time.Duration(s.config.Simulate.CheckoutDelayMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// CreateSession builds a checkout session for the given line items.
func (s *CheckoutService) CreateSession(ctx context.Context, items []models.CartItem) (*models.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.simulateDelay(ctx); err != nil {
		return nil, err
	}

	if s.config.IsDemo() {
		return s.demoSession(items), nil
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.config.Payment.SuccessURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.config.Payment.CancelURL),
	}
	params.AddMetadata("order_type", "vape_products")
	params.AddMetadata("age_verified", "true")
	params.AddMetadata("minimum_age", "21")

	for _, item := range items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Product.Name),
					Description: stripe.String(item.Product.Description),
					Images:      stripe.StringSlice([]string{item.Product.Image}),
					Metadata: map[string]string{
						"product_id": item.Product.ID,
						"category":   item.Product.Category,
					},
				},
				// Stripe amounts are integer cents.
				UnitAmount: stripe.Int64(toCents(item.Product.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &models.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// VerifySession confirms a completed checkout for the success page.
func (s *CheckoutService) VerifySession(ctx context.Context, sessionID string) (string, error) {
	if s.config.IsDemo() {
		return string(stripe.CheckoutSessionPaymentStatusPaid), nil
	}

	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return "", fmt.Errorf("failed to verify checkout session: %w", err)
	}
	return string(sess.PaymentStatus), nil
}

func (s *CheckoutService) demoSession(items []models.CartItem) *models.CheckoutSession {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}

	id := fmt.Sprintf("cs_test_%d", time.Now().UnixNano())
	logrus.WithFields(logrus.Fields{
		"session_id": id,
		"items":      len(items),
		"total":      pricing.FormatPrice(total),
	}).Info("Demo checkout session created")

	return &models.CheckoutSession{
		ID:   id,
		URL:  "https://checkout.stripe.com/pay/" + id,
		Demo: true,
	}
}

func toCents(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
