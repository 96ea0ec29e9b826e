package storage

import (
	"database/sql"

	"tablebite/internal/domain"

	"github.com/lib/pq"
)

type CartRepo struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{DB: db}
}

// EnsureCart returns the id of the owner's cart, creating it when absent. The
// ON CONFLICT clause makes concurrent first-adds for the same user safe.
func (r *CartRepo) EnsureCart(ownerID int) (int, error) {
	var id int
	err := r.DB.QueryRow(`
		INSERT INTO carts (owner_id) VALUES ($1)
		ON CONFLICT (owner_id) DO UPDATE SET owner_id = EXCLUDED.owner_id
		RETURNING id`, ownerID,
	).Scan(&id)
	return id, err
}

func (r *CartRepo) AddItem(cartID, productID, quantity int, unitPrice float64) error {
	_, err := r.DB.Exec(`
		INSERT INTO cart_items (cart_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		cartID, productID, quantity, unitPrice)
	return err
}

func (r *CartRepo) SetItemQuantity(cartID, productID, quantity int) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND product_id = $3",
		quantity, cartID, productID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DecrementItem drops the quantity by one and removes the row when it reaches
// zero, in a single transaction.
func (r *CartRepo) DecrementItem(cartID, productID int) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE cart_items SET quantity = quantity - 1 WHERE cart_id = $1 AND product_id = $2 AND quantity > 1",
		cartID, productID)
	if err != nil {
		return 0, err
	}
	updated, _ := result.RowsAffected()
	if updated == 0 {
		result, err = tx.Exec(
			"DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2",
			cartID, productID)
		if err != nil {
			return 0, err
		}
		updated, _ = result.RowsAffected()
	}
	return updated, tx.Commit()
}

func (r *CartRepo) RemoveItem(cartID, productID int) (int64, error) {
	result, err := r.DB.Exec(
		"DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2",
		cartID, productID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CartRepo) ClearItems(cartID int) error {
	_, err := r.DB.Exec("DELETE FROM cart_items WHERE cart_id = $1", cartID)
	return err
}

func (r *CartRepo) DeleteCart(ownerID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM carts WHERE owner_id = $1", ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CartRepo) GetCartByOwner(ownerID int) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.DB.QueryRow(
		"SELECT id, owner_id, created_at FROM carts WHERE owner_id = $1",
		ownerID,
	).Scan(&cart.ID, &cart.OwnerID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r.loadItems(&cart)
}

func (r *CartRepo) GetCartByID(cartID int) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.DB.QueryRow(
		"SELECT id, owner_id, created_at FROM carts WHERE id = $1",
		cartID,
	).Scan(&cart.ID, &cart.OwnerID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r.loadItems(&cart)
}

// loadItems expands product details and recomputes totals from the line items.
// Totals are never stored, so they cannot drift.
func (r *CartRepo) loadItems(cart *domain.Cart) (*domain.Cart, error) {
	rows, err := r.DB.Query(`
		SELECT ci.product_id, ci.quantity, ci.unit_price,
		       p.category_id, p.name, COALESCE(p.description, ''), p.price, p.is_available, p.ingredients, p.images, p.created_at
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.cart_id = $1
		ORDER BY p.name`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		var product domain.Product
		if err := rows.Scan(
			&item.ProductID, &item.Quantity, &item.UnitPrice,
			&product.CategoryID, &product.Name, &product.Description, &product.Price,
			&product.IsAvailable, pq.Array(&product.Ingredients), pq.Array(&product.Images), &product.CreatedAt,
		); err != nil {
			continue
		}
		product.ID = item.ProductID
		item.Product = &product
		cart.Items = append(cart.Items, item)

		cart.TotalQuantity += item.Quantity
		cart.TotalPrice += item.UnitPrice * float64(item.Quantity)
	}
	return cart, nil
}
