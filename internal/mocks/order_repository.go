package mocks

import (
	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
)

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) SetStripeSession(orderID int, sessionID string) error {
	args := m.Called(orderID, sessionID)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListOrders(buyerID int, orderStatus string, limit, offset int) ([]domain.Order, error) {
	args := m.Called(buyerID, orderStatus, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) CountOrders(buyerID int, orderStatus string) (int, error) {
	args := m.Called(buyerID, orderStatus)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) CompletePayment(orderID int, sessionID string) (bool, error) {
	args := m.Called(orderID, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) FailPayment(orderID int, sessionID string) (bool, error) {
	args := m.Called(orderID, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(orderID int, status string) (*domain.Order, error) {
	args := m.Called(orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
