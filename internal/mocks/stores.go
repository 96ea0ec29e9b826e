package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
	"tablebite/internal/payments"
)

type RefreshTokenStore struct {
	mock.Mock
}

func NewRefreshTokenStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *RefreshTokenStore {
	m := &RefreshTokenStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RefreshTokenStore) SaveRefreshToken(ctx context.Context, userID int, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *RefreshTokenStore) GetRefreshToken(ctx context.Context, userID int) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *RefreshTokenStore) DeleteRefreshToken(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MarkerStore struct {
	mock.Mock
}

func NewMarkerStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MarkerStore {
	m := &MarkerStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MarkerStore) ReconcileMarkerKey(orderID int) string {
	args := m.Called(orderID)
	return args.String(0)
}

func (m *MarkerStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MarkerStore) SetMarker(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type PaymentGateway struct {
	mock.Mock
}

func NewPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentGateway) CreateCheckoutSession(ctx context.Context, req payments.CheckoutRequest) (*payments.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.CheckoutSession), args.Error(1)
}

func (m *PaymentGateway) RetrieveSession(ctx context.Context, sessionID string) (*payments.SessionStatus, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.SessionStatus), args.Error(1)
}

type OrderEventPublisher struct {
	mock.Mock
}

func NewOrderEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
