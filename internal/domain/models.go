package domain

import "time"

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Address struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	Products     []Product `json:"products,omitempty"`
}

type Product struct {
	ID          int       `json:"id"`
	CategoryID  int       `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	IsAvailable bool      `json:"is_available"`
	Ingredients []string  `json:"ingredients"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

type CartItem struct {
	ProductID int      `json:"product_id"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	Product   *Product `json:"product,omitempty"`
}

type Cart struct {
	ID            int        `json:"id"`
	OwnerID       int        `json:"owner_id"`
	Items         []CartItem `json:"products"`
	TotalPrice    float64    `json:"total_price"`
	TotalQuantity int        `json:"total_quantity"`
	CreatedAt     time.Time  `json:"created_at"`
}

type OrderItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID              int         `json:"id"`
	BuyerID         int         `json:"buyer_id"`
	Buyer           *User       `json:"buyer,omitempty"`
	Items           []OrderItem `json:"products"`
	TotalPrice      float64     `json:"total_price"`
	TotalQuantity   int         `json:"total_quantity"`
	PaymentStatus   string      `json:"payment_status"`
	OrderStatus     string      `json:"order_status"`
	AddressID       int         `json:"address_id"`
	Address         *Address    `json:"address,omitempty"`
	StripeSessionID string      `json:"stripe_session_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type Table struct {
	ID        int       `json:"id"`
	Number    int       `json:"number"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Reservation struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	TableID    int       `json:"table_id"`
	ReservedAt time.Time `json:"reserved_at"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Pagination is the page block attached to list responses.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalOrders int  `json:"totalOrders"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func NewPagination(page, limit, total int) Pagination {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalOrders: total,
		HasNextPage: page*limit < total,
		HasPrevPage: page > 1,
	}
}

// OrderEvent is the payload published to Kafka on order lifecycle changes.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    int       `json:"order_id"`
	BuyerID    int       `json:"buyer_id"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}
