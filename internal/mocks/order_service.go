package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
	"tablebite/internal/service"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) CreateFromCart(ctx context.Context, userID, cartID, addressID int) (*domain.Order, string, error) {
	args := m.Called(ctx, userID, cartID, addressID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Order), args.String(1), args.Error(2)
}

func (m *OrderServiceInterface) CreateFromProduct(ctx context.Context, userID, productID, quantity, addressID int) (*domain.Order, string, error) {
	args := m.Called(ctx, userID, productID, quantity, addressID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Order), args.String(1), args.Error(2)
}

func (m *OrderServiceInterface) CreateFromProducts(ctx context.Context, userID int, items []service.PurchaseItem, addressID int) (*domain.Order, string, error) {
	args := m.Called(ctx, userID, items, addressID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Order), args.String(1), args.Error(2)
}

func (m *OrderServiceInterface) Get(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) ListForBuyer(buyerID, page, limit int) ([]domain.Order, domain.Pagination, error) {
	args := m.Called(buyerID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.Pagination), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *OrderServiceInterface) List(orderStatus string, page, limit int) ([]domain.Order, domain.Pagination, error) {
	args := m.Called(orderStatus, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.Pagination), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *OrderServiceInterface) ListByStatuses(statuses []string, page, limit int) ([]service.StatusGroup, domain.Pagination, error) {
	args := m.Called(statuses, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.Pagination), args.Error(2)
	}
	return args.Get(0).([]service.StatusGroup), args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *OrderServiceInterface) UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) Reconcile(ctx context.Context, sessionID string, orderID int) error {
	args := m.Called(ctx, sessionID, orderID)
	return args.Error(0)
}

func (m *OrderServiceInterface) MarkFailed(ctx context.Context, orderID int, sessionID string) error {
	args := m.Called(ctx, orderID, sessionID)
	return args.Error(0)
}
