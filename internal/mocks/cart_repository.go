package mocks

import (
	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
)

type CartRepository struct {
	mock.Mock
}

func NewCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartRepository) EnsureCart(ownerID int) (int, error) {
	args := m.Called(ownerID)
	return args.Int(0), args.Error(1)
}

func (m *CartRepository) AddItem(cartID, productID, quantity int, unitPrice float64) error {
	args := m.Called(cartID, productID, quantity, unitPrice)
	return args.Error(0)
}

func (m *CartRepository) SetItemQuantity(cartID, productID, quantity int) (int64, error) {
	args := m.Called(cartID, productID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartRepository) DecrementItem(cartID, productID int) (int64, error) {
	args := m.Called(cartID, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartRepository) RemoveItem(cartID, productID int) (int64, error) {
	args := m.Called(cartID, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartRepository) ClearItems(cartID int) error {
	args := m.Called(cartID)
	return args.Error(0)
}

func (m *CartRepository) DeleteCart(ownerID int) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartRepository) GetCartByOwner(ownerID int) (*domain.Cart, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *CartRepository) GetCartByID(cartID int) (*domain.Cart, error) {
	args := m.Called(cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}
