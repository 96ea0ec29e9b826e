package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
	"tablebite/internal/mocks"
	"tablebite/internal/payments"
	"tablebite/internal/service"
)

type orderServiceMocks struct {
	orders    *mocks.OrderRepository
	carts     *mocks.CartRepository
	catalog   *mocks.CatalogRepository
	users     *mocks.UserRepository
	gateway   *mocks.PaymentGateway
	publisher *mocks.OrderEventPublisher
	markers   *mocks.MarkerStore
}

func newOrderService(t *testing.T) (*service.OrderService, orderServiceMocks) {
	m := orderServiceMocks{
		orders:    mocks.NewOrderRepository(t),
		carts:     mocks.NewCartRepository(t),
		catalog:   mocks.NewCatalogRepository(t),
		users:     mocks.NewUserRepository(t),
		gateway:   mocks.NewPaymentGateway(t),
		publisher: mocks.NewOrderEventPublisher(t),
		markers:   mocks.NewMarkerStore(t),
	}
	svc := service.NewOrderService(
		m.orders, m.carts, m.catalog, m.users,
		m.gateway, m.publisher, m.markers)
	return svc, m
}

func TestOrderService_CreateFromCart(t *testing.T) {
	ctx := context.Background()

	margherita := &domain.Product{ID: 5, Name: "Margherita", Price: 12.5, Images: []string{"/uploads/m.png"}}
	cart := &domain.Cart{
		ID: 1, OwnerID: 7,
		Items:         []domain.CartItem{{ProductID: 5, Quantity: 2, UnitPrice: 12.5, Product: margherita}},
		TotalPrice:    25, TotalQuantity: 2,
	}
	address := &domain.Address{ID: 4, UserID: 7}

	t.Run("success_opens_checkout_session", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.carts.On("GetCartByID", 1).Return(cart, nil).Once()
		m.users.On("GetAddress", 4).Return(address, nil).Once()
		m.orders.On("CreateOrder", mock.Anything).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 42
		}).Return(nil).Once()
		m.gateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(req payments.CheckoutRequest) bool {
			return req.OrderID == 42 && req.CartID == 1 && len(req.Items) == 1 &&
				req.Items[0].UnitAmount == 1250 && req.Items[0].Quantity == 2
		})).Return(&payments.CheckoutSession{ID: "cs_123", URL: "https://checkout.test/cs_123"}, nil).Once()
		m.orders.On("SetStripeSession", 42, "cs_123").Return(nil).Once()
		m.publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

		order, sessionURL, err := svc.CreateFromCart(ctx, 7, 1, 4)
		assert.NoError(t, err)
		assert.Equal(t, 42, order.ID)
		assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
		assert.Equal(t, domain.OrderProcessing, order.OrderStatus)
		assert.Equal(t, 25.0, order.TotalPrice)
		assert.Equal(t, "https://checkout.test/cs_123", sessionURL)
	})

	t.Run("error_cart_owned_by_someone_else", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.carts.On("GetCartByID", 1).Return(cart, nil).Once()

		_, _, err := svc.CreateFromCart(ctx, 99, 1, 4)
		assert.ErrorIs(t, err, service.ErrCartNotFound)
	})

	t.Run("error_empty_cart", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.carts.On("GetCartByID", 2).Return(&domain.Cart{ID: 2, OwnerID: 7}, nil).Once()

		_, _, err := svc.CreateFromCart(ctx, 7, 2, 4)
		assert.ErrorIs(t, err, service.ErrCartEmpty)
	})

	t.Run("error_address_not_owned", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.carts.On("GetCartByID", 1).Return(cart, nil).Once()
		m.users.On("GetAddress", 4).Return(&domain.Address{ID: 4, UserID: 99}, nil).Once()

		_, _, err := svc.CreateFromCart(ctx, 7, 1, 4)
		assert.ErrorIs(t, err, service.ErrAddressNotFound)
	})
}

func TestOrderService_Reconcile(t *testing.T) {
	ctx := context.Background()
	// Reconcile mutates the order it loads, so every sub-test gets its own copy.
	pendingOrder := func() *domain.Order {
		return &domain.Order{ID: 42, BuyerID: 7, PaymentStatus: domain.PaymentPending}
	}

	t.Run("marker_short_circuits", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.markers.On("ReconcileMarkerKey", 42).Return("reconcile:42").Once()
		m.markers.On("Exists", ctx, "reconcile:42").Return(true, nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, "cs_123", 42))
	})

	t.Run("terminal_status_is_noop", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.markers.On("ReconcileMarkerKey", 42).Return("reconcile:42").Once()
		m.markers.On("Exists", ctx, "reconcile:42").Return(false, nil).Once()
		m.orders.On("GetOrder", 42).Return(&domain.Order{
			ID: 42, PaymentStatus: domain.PaymentCompleted,
		}, nil).Once()
		m.markers.On("SetMarker", ctx, "reconcile:42").Return(nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, "cs_123", 42))
	})

	t.Run("paid_session_cas_winner_clears_cart", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.markers.On("ReconcileMarkerKey", 42).Return("reconcile:42").Once()
		m.markers.On("Exists", ctx, "reconcile:42").Return(false, nil).Once()
		m.orders.On("GetOrder", 42).Return(pendingOrder(), nil).Once()
		m.gateway.On("RetrieveSession", ctx, "cs_123").Return(&payments.SessionStatus{
			ID: "cs_123", Paid: true, OrderID: 42, CartID: 1,
		}, nil).Once()
		m.orders.On("CompletePayment", 42, "cs_123").Return(true, nil).Once()
		m.carts.On("ClearItems", 1).Return(nil).Once()
		m.publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == "payment_completed" && e.OrderID == 42
		})).Return(nil).Once()
		m.markers.On("SetMarker", ctx, "reconcile:42").Return(nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, "cs_123", 42))
	})

	t.Run("paid_session_cas_loser_skips_cart_clear", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.markers.On("ReconcileMarkerKey", 42).Return("reconcile:42").Once()
		m.markers.On("Exists", ctx, "reconcile:42").Return(false, nil).Once()
		m.orders.On("GetOrder", 42).Return(pendingOrder(), nil).Once()
		m.gateway.On("RetrieveSession", ctx, "cs_123").Return(&payments.SessionStatus{
			ID: "cs_123", Paid: true, OrderID: 42, CartID: 1,
		}, nil).Once()
		m.orders.On("CompletePayment", 42, "cs_123").Return(false, nil).Once()
		m.markers.On("SetMarker", ctx, "reconcile:42").Return(nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, "cs_123", 42))
	})

	t.Run("unpaid_session_fails_order", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.markers.On("ReconcileMarkerKey", 42).Return("reconcile:42").Once()
		m.markers.On("Exists", ctx, "reconcile:42").Return(false, nil).Once()
		m.orders.On("GetOrder", 42).Return(pendingOrder(), nil).Once()
		m.gateway.On("RetrieveSession", ctx, "cs_123").Return(&payments.SessionStatus{
			ID: "cs_123", Paid: false, OrderID: 42,
		}, nil).Once()
		m.orders.On("FailPayment", 42, "cs_123").Return(true, nil).Once()
		m.publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == "payment_failed"
		})).Return(nil).Once()
		m.markers.On("SetMarker", ctx, "reconcile:42").Return(nil).Once()

		assert.NoError(t, svc.Reconcile(ctx, "cs_123", 42))
	})

	t.Run("session_for_different_order_rejected", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.markers.On("ReconcileMarkerKey", 42).Return("reconcile:42").Once()
		m.markers.On("Exists", ctx, "reconcile:42").Return(false, nil).Once()
		m.orders.On("GetOrder", 42).Return(pendingOrder(), nil).Once()
		m.gateway.On("RetrieveSession", ctx, "cs_other").Return(&payments.SessionStatus{
			ID: "cs_other", Paid: true, OrderID: 777,
		}, nil).Once()

		err := svc.Reconcile(ctx, "cs_other", 42)
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success_publishes_event", func(t *testing.T) {
		svc, m := newOrderService(t)
		updated := &domain.Order{ID: 42, OrderStatus: domain.OrderReady}
		m.orders.On("UpdateOrderStatus", 42, domain.OrderReady).Return(updated, nil).Once()
		m.publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == "status_updated" && e.Status == domain.OrderReady
		})).Return(nil).Once()

		order, err := svc.UpdateStatus(ctx, 42, domain.OrderReady)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderReady, order.OrderStatus)
	})

	t.Run("error_unknown_status", func(t *testing.T) {
		svc, _ := newOrderService(t)
		_, err := svc.UpdateStatus(ctx, 42, "Teleported")
		assert.ErrorIs(t, err, service.ErrInvalidOrderStatus)
	})
}

func TestOrderService_CreateFromProduct(t *testing.T) {
	ctx := context.Background()
	margherita := &domain.Product{ID: 5, Name: "Margherita", Price: 12.5, IsAvailable: true}
	address := &domain.Address{ID: 4, UserID: 7}

	t.Run("success_single_line_order", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.catalog.On("GetProduct", 5).Return(margherita, nil).Once()
		m.users.On("GetAddress", 4).Return(address, nil).Once()
		m.orders.On("CreateOrder", mock.Anything).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 43
		}).Return(nil).Once()
		m.gateway.On("CreateCheckoutSession", ctx, mock.Anything).
			Return(&payments.CheckoutSession{ID: "cs_456", URL: "https://checkout.test/cs_456"}, nil).Once()
		m.orders.On("SetStripeSession", 43, "cs_456").Return(nil).Once()
		m.publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

		order, _, err := svc.CreateFromProduct(ctx, 7, 5, 3, 4)
		assert.NoError(t, err)
		assert.Equal(t, 37.5, order.TotalPrice)
		assert.Len(t, order.Items, 1)
	})

	t.Run("error_product_unavailable", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.catalog.On("GetProduct", 6).
			Return(&domain.Product{ID: 6, IsAvailable: false}, nil).Once()

		_, _, err := svc.CreateFromProduct(ctx, 7, 6, 1, 4)
		assert.ErrorIs(t, err, service.ErrUnavailable)
	})
}

func TestOrderService_CreateFromProducts(t *testing.T) {
	ctx := context.Background()
	margherita := &domain.Product{ID: 5, Name: "Margherita", Price: 12.5, IsAvailable: true}
	lemonade := &domain.Product{ID: 8, Name: "Lemonade", Price: 3, IsAvailable: true}
	address := &domain.Address{ID: 4, UserID: 7}

	t.Run("success_sums_all_lines", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.catalog.On("GetProduct", 5).Return(margherita, nil).Once()
		m.catalog.On("GetProduct", 8).Return(lemonade, nil).Once()
		m.users.On("GetAddress", 4).Return(address, nil).Once()
		m.orders.On("CreateOrder", mock.Anything).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 44
		}).Return(nil).Once()
		m.gateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(req payments.CheckoutRequest) bool {
			return req.OrderID == 44 && len(req.Items) == 2 &&
				req.Items[0].UnitAmount == 1250 && req.Items[1].Quantity == 3
		})).Return(&payments.CheckoutSession{ID: "cs_789", URL: "https://checkout.test/cs_789"}, nil).Once()
		m.orders.On("SetStripeSession", 44, "cs_789").Return(nil).Once()
		m.publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

		order, sessionURL, err := svc.CreateFromProducts(ctx, 7, []service.PurchaseItem{
			{ProductID: 5, Quantity: 2},
			{ProductID: 8, Quantity: 3},
		}, 4)
		assert.NoError(t, err)
		assert.Equal(t, 34.0, order.TotalPrice)
		assert.Equal(t, 5, order.TotalQuantity)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, "https://checkout.test/cs_789", sessionURL)
	})

	t.Run("error_no_lines", func(t *testing.T) {
		svc, _ := newOrderService(t)
		_, _, err := svc.CreateFromProducts(ctx, 7, nil, 4)
		assert.ErrorIs(t, err, service.ErrMissingFields)
	})

	t.Run("error_zero_quantity_line", func(t *testing.T) {
		svc, _ := newOrderService(t)
		_, _, err := svc.CreateFromProducts(ctx, 7, []service.PurchaseItem{
			{ProductID: 5, Quantity: 0},
		}, 4)
		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	})

	t.Run("error_unavailable_line_rejects_order", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.catalog.On("GetProduct", 5).Return(margherita, nil).Once()
		m.catalog.On("GetProduct", 6).
			Return(&domain.Product{ID: 6, IsAvailable: false}, nil).Once()

		_, _, err := svc.CreateFromProducts(ctx, 7, []service.PurchaseItem{
			{ProductID: 5, Quantity: 1},
			{ProductID: 6, Quantity: 1},
		}, 4)
		assert.ErrorIs(t, err, service.ErrUnavailable)
	})
}
