package service

import (
	"database/sql"
	"errors"

	"tablebite/internal/domain"
)

// CartService mutates the per-user cart. Totals are recomputed from line items
// on every fetch, never adjusted incrementally.
type CartService struct {
	carts    CartRepository
	products CatalogRepository
}

func NewCartService(carts CartRepository, products CatalogRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Create makes an empty cart for the user, or behaves like AddProduct when a
// product id is supplied. Creating twice is a no-op.
func (s *CartService) Create(userID, productID, quantity int) (*domain.Cart, error) {
	if productID > 0 {
		return s.AddProduct(userID, productID, quantity)
	}
	if _, err := s.carts.EnsureCart(userID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) AddProduct(userID, productID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.GetProduct(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !product.IsAvailable {
		return nil, ErrUnavailable
	}

	cartID, err := s.carts.EnsureCart(userID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.AddItem(cartID, productID, quantity, product.Price); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// SetQuantity overwrites the line item's quantity; zero removes it.
func (s *CartService) SetQuantity(userID, productID, quantity int) (*domain.Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.products.GetProduct(productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.carts.GetCartByOwner(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	var rows int64
	if quantity == 0 {
		rows, err = s.carts.RemoveItem(cart.ID, productID)
	} else {
		rows, err = s.carts.SetItemQuantity(cart.ID, productID, quantity)
	}
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrProductNotInCart
	}
	return s.Get(userID)
}

func (s *CartService) Decrement(userID, productID int) (*domain.Cart, error) {
	cart, err := s.carts.GetCartByOwner(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	rows, err := s.carts.DecrementItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrProductNotInCart
	}
	return s.Get(userID)
}

func (s *CartService) RemoveProduct(userID, productID int) (*domain.Cart, error) {
	cart, err := s.carts.GetCartByOwner(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	rows, err := s.carts.RemoveItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrProductNotInCart
	}
	return s.Get(userID)
}

func (s *CartService) Clear(userID int) (*domain.Cart, error) {
	cart, err := s.carts.GetCartByOwner(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	if err := s.carts.ClearItems(cart.ID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) Delete(userID int) error {
	rows, err := s.carts.DeleteCart(userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCartNotFound
	}
	return nil
}

// Get returns the user's cart, or an empty cart payload when none exists.
func (s *CartService) Get(userID int) (*domain.Cart, error) {
	cart, err := s.carts.GetCartByOwner(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.Cart{OwnerID: userID, Items: []domain.CartItem{}}, nil
		}
		return nil, err
	}
	return cart, nil
}

var _ CartServiceInterface = (*CartService)(nil)
