package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const currency = "usd"

// CheckoutItem is one snapshotted line item sent to the hosted checkout page.
type CheckoutItem struct {
	Name       string
	Images     []string
	UnitAmount int64 // cents
	Quantity   int64
}

type CheckoutRequest struct {
	OrderID int
	UserID  int
	CartID  int // zero for single-product checkouts
	Items   []CheckoutItem
}

type CheckoutSession struct {
	ID  string
	URL string
}

// SessionStatus is the gateway's authoritative view of a checkout session.
type SessionStatus struct {
	ID            string
	PaymentStatus string
	Paid          bool
	OrderID       int
	CartID        int
}

// StripeGateway wraps the Stripe SDK behind the interface the order service
// consumes.
type StripeGateway struct {
	api         *client.API
	frontendURL string
}

func NewStripeGateway(secretKey, frontendURL string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, frontendURL: frontendURL}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(item.Name),
					Images: stripe.StringSlice(item.Images),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL: stripe.String(fmt.Sprintf(
			"%s/payment/success?session_id={CHECKOUT_SESSION_ID}&order_id=%d", g.frontendURL, req.OrderID)),
		CancelURL: stripe.String(fmt.Sprintf(
			"%s/payment/cancelled?session_id={CHECKOUT_SESSION_ID}&order_id=%d", g.frontendURL, req.OrderID)),
	}
	params.AddMetadata("orderId", strconv.Itoa(req.OrderID))
	params.AddMetadata("userId", strconv.Itoa(req.UserID))
	if req.CartID > 0 {
		params.AddMetadata("cartId", strconv.Itoa(req.CartID))
	}
	params.SetIdempotencyKey(uuid.NewString())

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*SessionStatus, error) {
	params := &stripe.CheckoutSessionParams{Params: stripe.Params{Context: ctx}}
	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	status := &SessionStatus{
		ID:            session.ID,
		PaymentStatus: string(session.PaymentStatus),
		Paid:          session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}
	status.OrderID, _ = strconv.Atoi(session.Metadata["orderId"])
	status.CartID, _ = strconv.Atoi(session.Metadata["cartId"])
	return status, nil
}
