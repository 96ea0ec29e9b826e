package storage

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"tablebite/internal/domain"
)

func newOrderRepo(t *testing.T) (*OrderRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewOrderRepo(db), mock, func() { db.Close() }
}

func TestOrderRepo_CreateOrder_SnapshotsItemsInTx(t *testing.T) {
	repo, mock, cleanup := newOrderRepo(t)
	defer cleanup()

	now := time.Now()
	order := &domain.Order{
		BuyerID: 7, TotalPrice: 25, TotalQuantity: 2,
		PaymentStatus: domain.PaymentPending, OrderStatus: domain.OrderProcessing,
		AddressID: 4,
		Items: []domain.OrderItem{
			{ProductID: 5, Name: "Margherita", UnitPrice: 12.5, Quantity: 2},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7, 25.0, 2, domain.PaymentPending, domain.OrderProcessing, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(42, now, now))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(42, 5, "Margherita", 12.5, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.CreateOrder(order))
	assert.Equal(t, 42, order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetOrder_IncludesBuyerAndAddress(t *testing.T) {
	repo, mock, cleanup := newOrderRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "buyer_id", "total_price", "total_quantity", "payment_status",
			"order_status", "address_id", "stripe_session_id", "created_at", "updated_at",
		}).AddRow(42, 7, 25.0, 2, domain.PaymentPending, domain.OrderProcessing, 4, "cs_123", now, now))
	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "unit_price", "quantity"}).
			AddRow(5, "Margherita", 12.5, 2))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "role", "created_at"}).
			AddRow(7, "Ada", "ada@example.com", "555-0101", domain.RoleCustomer, now))
	mock.ExpectQuery("SELECT (.+) FROM addresses WHERE id").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "street", "city", "state", "zip", "created_at"}).
			AddRow(4, 7, "1 Main St", "Springfield", "IL", "62701", now))

	order, err := repo.GetOrder(42)
	assert.NoError(t, err)
	assert.Len(t, order.Items, 1)
	if assert.NotNil(t, order.Buyer) {
		assert.Equal(t, "Ada", order.Buyer.Name)
		assert.Equal(t, "ada@example.com", order.Buyer.Email)
	}
	if assert.NotNil(t, order.Address) {
		assert.Equal(t, "1 Main St", order.Address.Street)
		assert.Equal(t, "Springfield", order.Address.City)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CompletePayment_IsCompareAndSwap(t *testing.T) {
	repo, mock, cleanup := newOrderRepo(t)
	defer cleanup()

	// First reconcile wins the row.
	mock.ExpectExec("UPDATE orders").
		WithArgs("cs_123", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	won, err := repo.CompletePayment(42, "cs_123")
	assert.NoError(t, err)
	assert.True(t, won)

	// Second reconcile sees no pending row.
	mock.ExpectExec("UPDATE orders").
		WithArgs("cs_123", 42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	won, err = repo.CompletePayment(42, "cs_123")
	assert.NoError(t, err)
	assert.False(t, won)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_FailPayment(t *testing.T) {
	repo, mock, cleanup := newOrderRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE orders").
		WithArgs("cs_123", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	won, err := repo.FailPayment(42, "cs_123")
	assert.NoError(t, err)
	assert.True(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_SetStripeSession_MissingOrder(t *testing.T) {
	repo, mock, cleanup := newOrderRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE orders SET stripe_session_id").
		WithArgs("cs_123", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetStripeSession(99, "cs_123")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CountOrders(t *testing.T) {
	repo, mock, cleanup := newOrderRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(7, domain.OrderPaid).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountOrders(7, domain.OrderPaid)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
