package tests

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"tablebite/internal/domain"
	"tablebite/internal/mocks"
	"tablebite/internal/service"
)

func TestCartService_AddProduct(t *testing.T) {
	carts := mocks.NewCartRepository(t)
	products := mocks.NewCatalogRepository(t)
	svc := service.NewCartService(carts, products)

	margherita := &domain.Product{ID: 5, Name: "Margherita", Price: 12.5, IsAvailable: true}
	fullCart := &domain.Cart{
		ID: 1, OwnerID: 7,
		Items:         []domain.CartItem{{ProductID: 5, Quantity: 2, UnitPrice: 12.5, Product: margherita}},
		TotalPrice:    25, TotalQuantity: 2,
	}

	tests := []struct {
		name          string
		productID     int
		quantity      int
		prepareMocks  func()
		expectedError error
	}{
		{
			name:      "success_merges_line_item",
			productID: 5,
			quantity:  2,
			prepareMocks: func() {
				products.On("GetProduct", 5).Return(margherita, nil).Once()
				carts.On("EnsureCart", 7).Return(1, nil).Once()
				carts.On("AddItem", 1, 5, 2, 12.5).Return(nil).Once()
				carts.On("GetCartByOwner", 7).Return(fullCart, nil).Once()
			},
		},
		{
			name:          "error_zero_quantity",
			productID:     5,
			quantity:      0,
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidQuantity,
		},
		{
			name:      "error_unknown_product",
			productID: 99,
			quantity:  1,
			prepareMocks: func() {
				products.On("GetProduct", 99).Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrProductNotFound,
		},
		{
			name:      "error_unavailable_product",
			productID: 6,
			quantity:  1,
			prepareMocks: func() {
				products.On("GetProduct", 6).
					Return(&domain.Product{ID: 6, IsAvailable: false}, nil).Once()
			},
			expectedError: service.ErrUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			cart, err := svc.AddProduct(7, testCase.productID, testCase.quantity)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.Equal(t, 25.0, cart.TotalPrice)
				assert.Equal(t, 2, cart.TotalQuantity)
			}
		})
	}
}

func TestCartService_SetQuantity(t *testing.T) {
	carts := mocks.NewCartRepository(t)
	products := mocks.NewCatalogRepository(t)
	svc := service.NewCartService(carts, products)

	margherita := &domain.Product{ID: 5, Name: "Margherita", Price: 12.5, IsAvailable: true}
	ownedCart := &domain.Cart{ID: 1, OwnerID: 7, Items: []domain.CartItem{}}

	t.Run("zero_removes_line_item", func(t *testing.T) {
		products.On("GetProduct", 5).Return(margherita, nil).Once()
		carts.On("GetCartByOwner", 7).Return(ownedCart, nil).Twice()
		carts.On("RemoveItem", 1, 5).Return(int64(1), nil).Once()

		_, err := svc.SetQuantity(7, 5, 0)
		assert.NoError(t, err)
	})

	t.Run("error_product_not_in_cart", func(t *testing.T) {
		products.On("GetProduct", 5).Return(margherita, nil).Once()
		carts.On("GetCartByOwner", 7).Return(ownedCart, nil).Once()
		carts.On("SetItemQuantity", 1, 5, 3).Return(int64(0), nil).Once()

		_, err := svc.SetQuantity(7, 5, 3)
		assert.ErrorIs(t, err, service.ErrProductNotInCart)
	})

	t.Run("error_negative_quantity", func(t *testing.T) {
		_, err := svc.SetQuantity(7, 5, -1)
		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	})
}

func TestCartService_Get_MissingCartIsEmpty(t *testing.T) {
	carts := mocks.NewCartRepository(t)
	products := mocks.NewCatalogRepository(t)
	svc := service.NewCartService(carts, products)

	carts.On("GetCartByOwner", 7).Return(nil, sql.ErrNoRows).Once()

	cart, err := svc.Get(7)
	assert.NoError(t, err)
	assert.Equal(t, 7, cart.OwnerID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
}

func TestCartService_Delete(t *testing.T) {
	carts := mocks.NewCartRepository(t)
	products := mocks.NewCatalogRepository(t)
	svc := service.NewCartService(carts, products)

	carts.On("DeleteCart", 7).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.Delete(7), service.ErrCartNotFound)

	carts.On("DeleteCart", 8).Return(int64(1), nil).Once()
	assert.NoError(t, svc.Delete(8))
}
