package storage

import (
	"database/sql"

	"tablebite/internal/domain"
)

type OrderRepo struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{DB: db}
}

// CreateOrder inserts the order and its snapshotted items in one transaction.
func (r *OrderRepo) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (buyer_id, total_price, total_quantity, payment_status, order_status, address_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		order.BuyerID, order.TotalPrice, order.TotalQuantity,
		order.PaymentStatus, order.OrderStatus, order.AddressID,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5)`,
			order.ID, item.ProductID, item.Name, item.UnitPrice, item.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepo) SetStripeSession(orderID int, sessionID string) error {
	result, err := r.DB.Exec(
		"UPDATE orders SET stripe_session_id = $1, updated_at = now() WHERE id = $2",
		sessionID, orderID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *OrderRepo) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, buyer_id, total_price, total_quantity, payment_status, order_status,
		       address_id, COALESCE(stripe_session_id, ''), created_at, updated_at
		FROM orders WHERE id = $1`, orderID,
	).Scan(
		&order.ID, &order.BuyerID, &order.TotalPrice, &order.TotalQuantity,
		&order.PaymentStatus, &order.OrderStatus, &order.AddressID,
		&order.StripeSessionID, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	var buyer domain.User
	if err := r.DB.QueryRow(`
		SELECT id, name, email, phone, role, created_at
		FROM users WHERE id = $1`, order.BuyerID,
	).Scan(&buyer.ID, &buyer.Name, &buyer.Email, &buyer.Phone, &buyer.Role, &buyer.CreatedAt); err != nil {
		return nil, err
	}
	order.Buyer = &buyer

	var addr domain.Address
	if err := r.DB.QueryRow(`
		SELECT id, user_id, street, city, state, zip, created_at
		FROM addresses WHERE id = $1`, order.AddressID,
	).Scan(&addr.ID, &addr.UserID, &addr.Street, &addr.City, &addr.State, &addr.Zip, &addr.CreatedAt); err != nil {
		return nil, err
	}
	order.Address = &addr

	return &order, nil
}

func (r *OrderRepo) loadItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(
		"SELECT product_id, name, unit_price, quantity FROM order_items WHERE order_id = $1",
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ListOrders pages over orders, optionally filtered by buyer and/or order status.
// Zero buyerID and empty status mean no filter.
func (r *OrderRepo) ListOrders(buyerID int, orderStatus string, limit, offset int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, buyer_id, total_price, total_quantity, payment_status, order_status,
		       address_id, COALESCE(stripe_session_id, ''), created_at, updated_at
		FROM orders
		WHERE ($1 = 0 OR buyer_id = $1)
		  AND ($2 = '' OR order_status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`, buyerID, orderStatus, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.BuyerID, &order.TotalPrice, &order.TotalQuantity,
			&order.PaymentStatus, &order.OrderStatus, &order.AddressID,
			&order.StripeSessionID, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			continue
		}

		items, err := r.loadItems(order.ID)
		if err == nil {
			order.Items = items
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepo) CountOrders(buyerID int, orderStatus string) (int, error) {
	var count int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM orders
		WHERE ($1 = 0 OR buyer_id = $1)
		  AND ($2 = '' OR order_status = $2)`, buyerID, orderStatus).Scan(&count)
	return count, err
}

// CompletePayment flips a pending order to Completed/Paid. The WHERE clause on
// payment_status is the idempotency guard: concurrent reconciles race on the
// row and only one sees rows affected.
func (r *OrderRepo) CompletePayment(orderID int, sessionID string) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET payment_status = 'Completed', order_status = 'Paid', stripe_session_id = $1, updated_at = now()
		WHERE id = $2 AND payment_status = 'Pending'`,
		sessionID, orderID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *OrderRepo) FailPayment(orderID int, sessionID string) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET payment_status = 'Failed', order_status = 'Failed', stripe_session_id = $1, updated_at = now()
		WHERE id = $2 AND payment_status = 'Pending'`,
		sessionID, orderID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *OrderRepo) UpdateOrderStatus(orderID int, status string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		UPDATE orders SET order_status = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, buyer_id, total_price, total_quantity, payment_status, order_status,
		          address_id, COALESCE(stripe_session_id, ''), created_at, updated_at`,
		status, orderID,
	).Scan(
		&order.ID, &order.BuyerID, &order.TotalPrice, &order.TotalQuantity,
		&order.PaymentStatus, &order.OrderStatus, &order.AddressID,
		&order.StripeSessionID, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
