package tests

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablebite/internal/domain"
	"tablebite/internal/mocks"
	"tablebite/internal/service"
)

func TestCatalogService_CreateCategory(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repo)

	tests := []struct {
		name          string
		categoryName  string
		description   string
		prepareMocks  func()
		expectedError error
	}{
		{
			name:         "success",
			categoryName: "Pizza",
			description:  "Wood-fired pizzas",
			prepareMocks: func() {
				repo.On("CreateCategory", mock.Anything).Return(nil).Once()
			},
		},
		{
			name:          "error_missing_fields",
			categoryName:  "",
			description:   "no name",
			prepareMocks:  func() {},
			expectedError: service.ErrMissingFields,
		},
		{
			name:         "error_duplicate_name",
			categoryName: "Pizza",
			description:  "again",
			prepareMocks: func() {
				repo.On("CreateCategory", mock.Anything).
					Return(&pq.Error{Code: "23505"}).Once()
			},
			expectedError: service.ErrCategoryExists,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			_, err := svc.CreateCategory(testCase.categoryName, testCase.description)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repo)

	category := &domain.Category{ID: 3, Name: "Pizza"}

	tests := []struct {
		name          string
		product       *domain.Product
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success_marks_available",
			product: &domain.Product{
				Name: "Margherita", Description: "Classic", Price: 12.5,
				Images: []string{"/uploads/margherita.png"},
			},
			prepareMocks: func() {
				repo.On("GetCategory", 3).Return(category, nil).Once()
				repo.On("CreateProduct", mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "error_no_images",
			product: &domain.Product{
				Name: "Calzone", Description: "Folded", Price: 14,
			},
			prepareMocks:  func() {},
			expectedError: service.ErrImageRequired,
		},
		{
			name: "error_non_positive_price",
			product: &domain.Product{
				Name: "Free pizza", Description: "Too good", Price: 0,
				Images: []string{"/uploads/free.png"},
			},
			prepareMocks:  func() {},
			expectedError: service.ErrMissingFields,
		},
		{
			name: "error_category_missing",
			product: &domain.Product{
				Name: "Margherita", Description: "Classic", Price: 12.5,
				Images: []string{"/uploads/margherita.png"},
			},
			prepareMocks: func() {
				repo.On("GetCategory", 3).Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrCategoryNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.CreateProduct(3, testCase.product)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.True(t, testCase.product.IsAvailable)
				assert.Equal(t, 3, testCase.product.CategoryID)
			}
		})
	}
}

func TestCatalogService_ToggleAvailability(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repo)

	repo.On("GetProduct", 9).Return(&domain.Product{ID: 9, IsAvailable: true}, nil).Once()
	repo.On("SetProductAvailability", 9, false).Return(int64(1), nil).Once()

	product, err := svc.ToggleAvailability(9)
	assert.NoError(t, err)
	assert.False(t, product.IsAvailable)
}

func TestCatalogService_RemoveImage(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repo)

	t.Run("success", func(t *testing.T) {
		repo.On("GetProduct", 9).Return(&domain.Product{
			ID: 9, Images: []string{"/uploads/a.png", "/uploads/b.png"},
		}, nil).Once()
		repo.On("SetProductImages", 9, []string{"/uploads/b.png"}).Return(nil).Once()

		product, err := svc.RemoveImage(9, 0)
		assert.NoError(t, err)
		assert.Len(t, product.Images, 1)
	})

	t.Run("error_cannot_drop_last_image", func(t *testing.T) {
		repo.On("GetProduct", 9).Return(&domain.Product{
			ID: 9, Images: []string{"/uploads/a.png"},
		}, nil).Once()

		_, err := svc.RemoveImage(9, 0)
		assert.ErrorIs(t, err, service.ErrImageRequired)
	})

	t.Run("error_index_out_of_range", func(t *testing.T) {
		repo.On("GetProduct", 9).Return(&domain.Product{
			ID: 9, Images: []string{"/uploads/a.png", "/uploads/b.png"},
		}, nil).Once()

		_, err := svc.RemoveImage(9, 5)
		assert.ErrorIs(t, err, service.ErrImageRequired)
	})
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repo)

	repo.On("DeleteCategory", 3).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.DeleteCategory(3), service.ErrCategoryNotFound)

	repo.On("DeleteCategory", 4).Return(int64(1), nil).Once()
	assert.NoError(t, svc.DeleteCategory(4))
}
