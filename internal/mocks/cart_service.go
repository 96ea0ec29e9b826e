package mocks

import (
	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
)

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartServiceInterface) cartResult(args mock.Arguments) (*domain.Cart, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *CartServiceInterface) Create(userID, productID, quantity int) (*domain.Cart, error) {
	return m.cartResult(m.Called(userID, productID, quantity))
}

func (m *CartServiceInterface) AddProduct(userID, productID, quantity int) (*domain.Cart, error) {
	return m.cartResult(m.Called(userID, productID, quantity))
}

func (m *CartServiceInterface) SetQuantity(userID, productID, quantity int) (*domain.Cart, error) {
	return m.cartResult(m.Called(userID, productID, quantity))
}

func (m *CartServiceInterface) Decrement(userID, productID int) (*domain.Cart, error) {
	return m.cartResult(m.Called(userID, productID))
}

func (m *CartServiceInterface) RemoveProduct(userID, productID int) (*domain.Cart, error) {
	return m.cartResult(m.Called(userID, productID))
}

func (m *CartServiceInterface) Clear(userID int) (*domain.Cart, error) {
	return m.cartResult(m.Called(userID))
}

func (m *CartServiceInterface) Delete(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *CartServiceInterface) Get(userID int) (*domain.Cart, error) {
	return m.cartResult(m.Called(userID))
}
