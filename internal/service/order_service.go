package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"math"
	"time"

	"tablebite/internal/domain"
	"tablebite/internal/payments"
)

type OrderService struct {
	orders    OrderRepository
	carts     CartRepository
	catalog   CatalogRepository
	users     UserRepository
	gateway   PaymentGateway
	publisher OrderEventPublisher
	markers   MarkerStore
}

func NewOrderService(
	orders OrderRepository,
	carts CartRepository,
	catalog CatalogRepository,
	users UserRepository,
	gateway PaymentGateway,
	publisher OrderEventPublisher,
	markers MarkerStore,
) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		catalog:   catalog,
		users:     users,
		gateway:   gateway,
		publisher: publisher,
		markers:   markers,
	}
}

// CreateFromCart snapshots the cart into an order and opens a hosted checkout
// session. The cart is cleared only after payment is reconciled, not here.
func (s *OrderService) CreateFromCart(ctx context.Context, userID, cartID, addressID int) (*domain.Order, string, error) {
	cart, err := s.carts.GetCartByID(cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrCartNotFound
		}
		return nil, "", err
	}
	if cart.OwnerID != userID {
		return nil, "", ErrCartNotFound
	}
	if len(cart.Items) == 0 {
		return nil, "", ErrCartEmpty
	}

	if err := s.checkAddress(userID, addressID); err != nil {
		return nil, "", err
	}

	order := &domain.Order{
		BuyerID:       userID,
		TotalPrice:    cart.TotalPrice,
		TotalQuantity: cart.TotalQuantity,
		PaymentStatus: domain.PaymentPending,
		OrderStatus:   domain.OrderProcessing,
		AddressID:     addressID,
	}
	checkout := payments.CheckoutRequest{UserID: userID, CartID: cartID}
	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
		checkout.Items = append(checkout.Items, payments.CheckoutItem{
			Name:       item.Product.Name,
			Images:     item.Product.Images,
			UnitAmount: toCents(item.UnitPrice),
			Quantity:   int64(item.Quantity),
		})
	}

	return s.openCheckout(ctx, order, checkout)
}

// CreateFromProduct is the buy-it-now path: a one-line order that skips the
// cart entirely.
func (s *OrderService) CreateFromProduct(ctx context.Context, userID, productID, quantity, addressID int) (*domain.Order, string, error) {
	if quantity < 1 {
		return nil, "", ErrInvalidQuantity
	}

	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrProductNotFound
		}
		return nil, "", err
	}
	if !product.IsAvailable {
		return nil, "", ErrUnavailable
	}

	if err := s.checkAddress(userID, addressID); err != nil {
		return nil, "", err
	}

	order := &domain.Order{
		BuyerID:       userID,
		TotalPrice:    product.Price * float64(quantity),
		TotalQuantity: quantity,
		PaymentStatus: domain.PaymentPending,
		OrderStatus:   domain.OrderProcessing,
		AddressID:     addressID,
		Items: []domain.OrderItem{{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
		}},
	}
	checkout := payments.CheckoutRequest{
		UserID: userID,
		Items: []payments.CheckoutItem{{
			Name:       product.Name,
			Images:     product.Images,
			UnitAmount: toCents(product.Price),
			Quantity:   int64(quantity),
		}},
	}

	return s.openCheckout(ctx, order, checkout)
}

// CreateFromProducts builds an ad-hoc order from explicit product/quantity
// pairs, skipping the cart.
func (s *OrderService) CreateFromProducts(ctx context.Context, userID int, items []PurchaseItem, addressID int) (*domain.Order, string, error) {
	if len(items) == 0 {
		return nil, "", ErrMissingFields
	}

	order := &domain.Order{
		BuyerID:       userID,
		PaymentStatus: domain.PaymentPending,
		OrderStatus:   domain.OrderProcessing,
		AddressID:     addressID,
	}
	checkout := payments.CheckoutRequest{UserID: userID}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, "", ErrInvalidQuantity
		}
		product, err := s.catalog.GetProduct(item.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, "", ErrProductNotFound
			}
			return nil, "", err
		}
		if !product.IsAvailable {
			return nil, "", ErrUnavailable
		}

		order.Items = append(order.Items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
		order.TotalPrice += product.Price * float64(item.Quantity)
		order.TotalQuantity += item.Quantity
		checkout.Items = append(checkout.Items, payments.CheckoutItem{
			Name:       product.Name,
			Images:     product.Images,
			UnitAmount: toCents(product.Price),
			Quantity:   int64(item.Quantity),
		})
	}

	if err := s.checkAddress(userID, addressID); err != nil {
		return nil, "", err
	}

	return s.openCheckout(ctx, order, checkout)
}

func (s *OrderService) openCheckout(ctx context.Context, order *domain.Order, checkout payments.CheckoutRequest) (*domain.Order, string, error) {
	if err := s.orders.CreateOrder(order); err != nil {
		return nil, "", err
	}

	checkout.OrderID = order.ID
	session, err := s.gateway.CreateCheckoutSession(ctx, checkout)
	if err != nil {
		return nil, "", err
	}
	if err := s.orders.SetStripeSession(order.ID, session.ID); err != nil {
		return nil, "", err
	}
	order.StripeSessionID = session.ID

	s.publish(ctx, "order_created", order)
	return order, session.URL, nil
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForBuyer(buyerID, page, limit int) ([]domain.Order, domain.Pagination, error) {
	return s.listPage(buyerID, "", page, limit)
}

func (s *OrderService) List(orderStatus string, page, limit int) ([]domain.Order, domain.Pagination, error) {
	if orderStatus != "" && !domain.ValidOrderStatus(orderStatus) {
		return nil, domain.Pagination{}, ErrInvalidOrderStatus
	}
	return s.listPage(0, orderStatus, page, limit)
}

func (s *OrderService) listPage(buyerID int, orderStatus string, page, limit int) ([]domain.Order, domain.Pagination, error) {
	orders, err := s.orders.ListOrders(buyerID, orderStatus, limit, (page-1)*limit)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	total, err := s.orders.CountOrders(buyerID, orderStatus)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return orders, domain.NewPagination(page, limit, total), nil
}

// ListByStatuses buckets a single page of orders by status. The page walks
// the combined result set, not each bucket separately.
func (s *OrderService) ListByStatuses(statuses []string, page, limit int) ([]StatusGroup, domain.Pagination, error) {
	if len(statuses) == 0 {
		statuses = domain.OrderStatuses
	}
	for _, status := range statuses {
		if !domain.ValidOrderStatus(status) {
			return nil, domain.Pagination{}, ErrInvalidOrderStatus
		}
	}

	groups := make([]StatusGroup, 0, len(statuses))
	total := 0
	remaining := limit
	skip := (page - 1) * limit
	for _, status := range statuses {
		count, err := s.orders.CountOrders(0, status)
		if err != nil {
			return nil, domain.Pagination{}, err
		}
		total += count

		group := StatusGroup{Status: status, Orders: []domain.Order{}}
		if remaining > 0 && skip < count {
			orders, err := s.orders.ListOrders(0, status, remaining, skip)
			if err != nil {
				return nil, domain.Pagination{}, err
			}
			group.Orders = orders
			remaining -= len(orders)
		}
		skip -= count
		if skip < 0 {
			skip = 0
		}
		groups = append(groups, group)
	}

	return groups, domain.NewPagination(page, limit, total), nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	order, err := s.orders.UpdateOrderStatus(orderID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	s.publish(ctx, "status_updated", order)
	return order, nil
}

// Reconcile settles an order against the gateway's view of its checkout
// session. Safe to call from the webhook and the polling endpoint at once:
// the Pending->terminal update is a compare-and-swap, so only one caller wins
// and clears the cart.
func (s *OrderService) Reconcile(ctx context.Context, sessionID string, orderID int) error {
	marker := s.markers.ReconcileMarkerKey(orderID)
	if done, err := s.markers.Exists(ctx, marker); err == nil && done {
		return nil
	}

	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		return err
	}
	if domain.TerminalPaymentStatus(order.PaymentStatus) {
		s.setMarker(ctx, marker)
		return nil
	}

	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.OrderID != orderID {
		return ErrOrderNotFound
	}

	if !session.Paid {
		won, err := s.orders.FailPayment(orderID, sessionID)
		if err != nil {
			return err
		}
		if won {
			order.PaymentStatus = domain.PaymentFailed
			order.OrderStatus = domain.OrderFailed
			s.publish(ctx, "payment_failed", order)
		}
		s.setMarker(ctx, marker)
		return nil
	}

	won, err := s.orders.CompletePayment(orderID, sessionID)
	if err != nil {
		return err
	}
	if won {
		if session.CartID > 0 {
			if err := s.carts.ClearItems(session.CartID); err != nil {
				log.Printf("[order-service] clear cart %d after payment: %v", session.CartID, err)
			}
		}
		order.PaymentStatus = domain.PaymentCompleted
		order.OrderStatus = domain.OrderPaid
		s.publish(ctx, "payment_completed", order)
	}
	s.setMarker(ctx, marker)
	return nil
}

// MarkFailed handles asynchronous payment failures reported by the gateway.
func (s *OrderService) MarkFailed(ctx context.Context, orderID int, sessionID string) error {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		return err
	}
	if domain.TerminalPaymentStatus(order.PaymentStatus) {
		return nil
	}

	won, err := s.orders.FailPayment(orderID, sessionID)
	if err != nil {
		return err
	}
	if won {
		order.PaymentStatus = domain.PaymentFailed
		order.OrderStatus = domain.OrderFailed
		s.publish(ctx, "payment_failed", order)
	}
	return nil
}

func (s *OrderService) checkAddress(userID, addressID int) error {
	addr, err := s.users.GetAddress(addressID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAddressNotFound
		}
		return err
	}
	if addr.UserID != userID {
		return ErrAddressNotFound
	}
	return nil
}

// publish is best effort: a broker outage must not fail the request.
func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	event := domain.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		BuyerID:    order.BuyerID,
		TotalPrice: order.TotalPrice,
		Status:     order.OrderStatus,
		Timestamp:  time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[order-service] publish %s for order %d: %v", eventType, order.ID, err)
	}
}

func (s *OrderService) setMarker(ctx context.Context, key string) {
	if err := s.markers.SetMarker(ctx, key); err != nil {
		log.Printf("[order-service] set reconcile marker %s: %v", key, err)
	}
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

var _ OrderServiceInterface = (*OrderService)(nil)
