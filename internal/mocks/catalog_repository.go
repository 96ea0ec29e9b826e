package mocks

import (
	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
)

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogRepository) CreateCategory(cat *domain.Category) error {
	args := m.Called(cat)
	return args.Error(0)
}

func (m *CatalogRepository) ListCategories(limit, offset int) ([]domain.Category, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *CatalogRepository) CountCategories() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *CatalogRepository) GetCategory(id int) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CatalogRepository) UpdateCategory(id int, name, description string) (*domain.Category, error) {
	args := m.Called(id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CatalogRepository) DeleteCategory(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepository) CreateProduct(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *CatalogRepository) ListProducts(categoryID, limit, offset int) ([]domain.Product, error) {
	args := m.Called(categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *CatalogRepository) CountProducts(categoryID int) (int, error) {
	args := m.Called(categoryID)
	return args.Int(0), args.Error(1)
}

func (m *CatalogRepository) GetProduct(id int) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *CatalogRepository) UpdateProduct(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *CatalogRepository) SetProductAvailability(id int, available bool) (int64, error) {
	args := m.Called(id, available)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepository) SetProductCategory(productID, categoryID int) (int64, error) {
	args := m.Called(productID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepository) SetProductImages(id int, images []string) error {
	args := m.Called(id, images)
	return args.Error(0)
}

func (m *CatalogRepository) DeleteProduct(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}
