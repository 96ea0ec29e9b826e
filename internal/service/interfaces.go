package service

import (
	"context"
	"time"

	"tablebite/internal/domain"
	"tablebite/internal/payments"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
	UpdatePassword(id int, passwordHash string) error
	UpdateAccount(id int, name, phone string) (*domain.User, error)
	UpdateRole(id int, role string) (*domain.User, error)
	CreateAddress(addr *domain.Address) error
	GetAddress(id int) (*domain.Address, error)
	ListAddresses(userID int) ([]domain.Address, error)
}

type CatalogRepository interface {
	CreateCategory(cat *domain.Category) error
	ListCategories(limit, offset int) ([]domain.Category, error)
	CountCategories() (int, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(id int, name, description string) (*domain.Category, error)
	DeleteCategory(id int) (int64, error)
	CreateProduct(product *domain.Product) error
	ListProducts(categoryID, limit, offset int) ([]domain.Product, error)
	CountProducts(categoryID int) (int, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	SetProductAvailability(id int, available bool) (int64, error)
	SetProductCategory(productID, categoryID int) (int64, error)
	SetProductImages(id int, images []string) error
	DeleteProduct(id int) (int64, error)
}

type CartRepository interface {
	EnsureCart(ownerID int) (int, error)
	AddItem(cartID, productID, quantity int, unitPrice float64) error
	SetItemQuantity(cartID, productID, quantity int) (int64, error)
	DecrementItem(cartID, productID int) (int64, error)
	RemoveItem(cartID, productID int) (int64, error)
	ClearItems(cartID int) error
	DeleteCart(ownerID int) (int64, error)
	GetCartByOwner(ownerID int) (*domain.Cart, error)
	GetCartByID(cartID int) (*domain.Cart, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	SetStripeSession(orderID int, sessionID string) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrders(buyerID int, orderStatus string, limit, offset int) ([]domain.Order, error)
	CountOrders(buyerID int, orderStatus string) (int, error)
	CompletePayment(orderID int, sessionID string) (bool, error)
	FailPayment(orderID int, sessionID string) (bool, error)
	UpdateOrderStatus(orderID int, status string) (*domain.Order, error)
}

type ReservationRepository interface {
	CreateTable(table *domain.Table) error
	GetTable(id int) (*domain.Table, error)
	ListTables() ([]domain.Table, error)
	UpdateTable(id, number, capacity int, isActive *bool) (*domain.Table, error)
	DeleteTable(id int) (int64, error)
	CreateReservation(res *domain.Reservation) error
	GetReservation(id int) (*domain.Reservation, error)
	UpdateReservation(id, tableID int, reservedAt time.Time, status string) (*domain.Reservation, error)
	CancelReservation(id int) (int64, error)
	ListByUser(userID int) ([]domain.Reservation, error)
	ListByRange(from, to time.Time) ([]domain.Reservation, error)
	ListAll() ([]domain.Reservation, error)
	ReservedSlots(tableID int, from, to time.Time) ([]time.Time, error)
}

type RefreshTokenStore interface {
	SaveRefreshToken(ctx context.Context, userID int, token string) error
	GetRefreshToken(ctx context.Context, userID int) (string, error)
	DeleteRefreshToken(ctx context.Context, userID int) error
}

// MarkerStore short-circuits duplicate reconciliations; the database CAS
// remains the real idempotency guard.
type MarkerStore interface {
	ReconcileMarkerKey(orderID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req payments.CheckoutRequest) (*payments.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*payments.SessionStatus, error)
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserServiceInterface interface {
	Register(name, email, password, phone, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.User, *TokenPair, error)
	Logout(ctx context.Context, userID int) error
	GetByID(userID int) (*domain.User, error)
	UpdatePassword(userID int, oldPassword, newPassword string) error
	UpdateAccount(userID int, name, phone string) (*domain.User, error)
	PromoteToAdmin(userID int) (*domain.User, error)
	AddAddress(addr *domain.Address) error
	ListAddresses(userID int) ([]domain.Address, error)
}

type CatalogServiceInterface interface {
	CreateCategory(name, description string) (*domain.Category, error)
	ListCategories(page, limit int) ([]domain.Category, int, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(id int, name, description string) (*domain.Category, error)
	DeleteCategory(id int) error
	CreateProduct(categoryID int, product *domain.Product) error
	ListProducts(categoryID, page, limit int) ([]domain.Product, int, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	ToggleAvailability(id int) (*domain.Product, error)
	ChangeCategory(productID, categoryID int) error
	AddImages(productID int, urls []string) (*domain.Product, error)
	RemoveImage(productID, index int) (*domain.Product, error)
	DeleteProduct(id int) error
}

type CartServiceInterface interface {
	Create(userID, productID, quantity int) (*domain.Cart, error)
	AddProduct(userID, productID, quantity int) (*domain.Cart, error)
	SetQuantity(userID, productID, quantity int) (*domain.Cart, error)
	Decrement(userID, productID int) (*domain.Cart, error)
	RemoveProduct(userID, productID int) (*domain.Cart, error)
	Clear(userID int) (*domain.Cart, error)
	Delete(userID int) error
	Get(userID int) (*domain.Cart, error)
}

// StatusGroup is one bucket of the grouped-by-status listing.
type StatusGroup struct {
	Status string         `json:"status"`
	Orders []domain.Order `json:"orders"`
}

// PurchaseItem is one requested line of a multi-product checkout.
type PurchaseItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type OrderServiceInterface interface {
	CreateFromCart(ctx context.Context, userID, cartID, addressID int) (*domain.Order, string, error)
	CreateFromProduct(ctx context.Context, userID, productID, quantity, addressID int) (*domain.Order, string, error)
	CreateFromProducts(ctx context.Context, userID int, items []PurchaseItem, addressID int) (*domain.Order, string, error)
	Get(orderID int) (*domain.Order, error)
	ListForBuyer(buyerID, page, limit int) ([]domain.Order, domain.Pagination, error)
	List(orderStatus string, page, limit int) ([]domain.Order, domain.Pagination, error)
	ListByStatuses(statuses []string, page, limit int) ([]StatusGroup, domain.Pagination, error)
	UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error)
	Reconcile(ctx context.Context, sessionID string, orderID int) error
	MarkFailed(ctx context.Context, orderID int, sessionID string) error
}

type ReservationServiceInterface interface {
	Slots(date time.Time) []time.Time
	Book(userID, tableID int, date, slot string) (*domain.Reservation, error)
	Update(reservationID, tableID int, date, slot, status string) (*domain.Reservation, error)
	Cancel(reservationID int) error
	Get(reservationID int) (*domain.Reservation, error)
	ListForUser(userID int) ([]domain.Reservation, error)
	ListForDay(date string) ([]domain.Reservation, error)
	ListAll() ([]domain.Reservation, error)
	AvailableSlots(tableID int, date string) ([]string, error)
	CreateTable(number, capacity int) (*domain.Table, error)
	UpdateTable(id, number, capacity int, isActive *bool) (*domain.Table, error)
	DeleteTable(id int) error
	GetTable(id int) (*domain.Table, error)
	ListTables() ([]domain.Table, error)
}
