package mocks

import (
	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
)

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) CreateCategory(name, description string) (*domain.Category, error) {
	args := m.Called(name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CatalogServiceInterface) ListCategories(page, limit int) ([]domain.Category, int, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Category), args.Int(1), args.Error(2)
}

func (m *CatalogServiceInterface) GetCategory(id int) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CatalogServiceInterface) UpdateCategory(id int, name, description string) (*domain.Category, error) {
	args := m.Called(id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CatalogServiceInterface) DeleteCategory(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *CatalogServiceInterface) CreateProduct(categoryID int, product *domain.Product) error {
	args := m.Called(categoryID, product)
	return args.Error(0)
}

func (m *CatalogServiceInterface) ListProducts(categoryID, page, limit int) ([]domain.Product, int, error) {
	args := m.Called(categoryID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func (m *CatalogServiceInterface) GetProduct(id int) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *CatalogServiceInterface) UpdateProduct(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *CatalogServiceInterface) ToggleAvailability(id int) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *CatalogServiceInterface) ChangeCategory(productID, categoryID int) error {
	args := m.Called(productID, categoryID)
	return args.Error(0)
}

func (m *CatalogServiceInterface) AddImages(productID int, urls []string) (*domain.Product, error) {
	args := m.Called(productID, urls)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *CatalogServiceInterface) RemoveImage(productID, index int) (*domain.Product, error) {
	args := m.Called(productID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *CatalogServiceInterface) DeleteProduct(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
