package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"tablebite/internal/auth"
	"tablebite/internal/service"
)

type Handler struct {
	Users        service.UserServiceInterface
	Catalog      service.CatalogServiceInterface
	Carts        service.CartServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface

	Tokens        *auth.TokenManager
	WebhookSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func NewHandler(
	users service.UserServiceInterface,
	catalog service.CatalogServiceInterface,
	carts service.CartServiceInterface,
	orders service.OrderServiceInterface,
	reservations service.ReservationServiceInterface,
	tokens *auth.TokenManager,
	webhookSecret string,
	accessTTL, refreshTTL time.Duration,
) *Handler {
	return &Handler{
		Users:         users,
		Catalog:       catalog,
		Carts:         carts,
		Orders:        orders,
		Reservations:  reservations,
		Tokens:        tokens,
		WebhookSecret: webhookSecret,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/users/register", h.register).Methods("POST")
	api.HandleFunc("/users/login", h.login).Methods("POST")
	api.HandleFunc("/users/refresh-token", h.refreshToken).Methods("POST")
	api.HandleFunc("/users/logout", h.Authenticate(h.logout)).Methods("POST")
	api.HandleFunc("/users/me", h.Authenticate(h.currentUser)).Methods("GET")
	api.HandleFunc("/users/me", h.Authenticate(h.updateAccount)).Methods("PATCH")
	api.HandleFunc("/users/me/password", h.Authenticate(h.updatePassword)).Methods("PATCH")
	api.HandleFunc("/users/me/addresses", h.Authenticate(h.addAddress)).Methods("POST")
	api.HandleFunc("/users/me/addresses", h.Authenticate(h.listAddresses)).Methods("GET")
	api.HandleFunc("/users/{id}/promote", h.RequireAdmin(h.promoteUser)).Methods("PATCH")

	api.HandleFunc("/categories", h.RequireAdmin(h.createCategory)).Methods("POST")
	api.HandleFunc("/categories", h.listCategories).Methods("GET")
	api.HandleFunc("/categories/{id}", h.getCategory).Methods("GET")
	api.HandleFunc("/categories/{id}", h.RequireAdmin(h.updateCategory)).Methods("PATCH")
	api.HandleFunc("/categories/{id}", h.RequireAdmin(h.deleteCategory)).Methods("DELETE")
	api.HandleFunc("/categories/{categoryId}/products", h.RequireAdmin(h.createProduct)).Methods("POST")

	api.HandleFunc("/products", h.listProducts).Methods("GET")
	api.HandleFunc("/products/{id}", h.getProduct).Methods("GET")
	api.HandleFunc("/products/{id}", h.RequireAdmin(h.updateProduct)).Methods("PATCH")
	api.HandleFunc("/products/{id}", h.RequireAdmin(h.deleteProduct)).Methods("DELETE")
	api.HandleFunc("/products/{id}/availability", h.RequireAdmin(h.toggleAvailability)).Methods("PATCH")
	api.HandleFunc("/products/{id}/category", h.RequireAdmin(h.changeProductCategory)).Methods("PATCH")
	api.HandleFunc("/products/{id}/images", h.RequireAdmin(h.uploadProductImages)).Methods("POST")
	api.HandleFunc("/products/{id}/images/{index}", h.RequireAdmin(h.removeProductImage)).Methods("DELETE")

	api.HandleFunc("/cart", h.Authenticate(h.createCart)).Methods("POST")
	api.HandleFunc("/cart", h.Authenticate(h.getCart)).Methods("GET")
	api.HandleFunc("/cart", h.Authenticate(h.deleteCart)).Methods("DELETE")
	api.HandleFunc("/cart/products", h.Authenticate(h.addCartProduct)).Methods("POST")
	api.HandleFunc("/cart/products", h.Authenticate(h.clearCart)).Methods("DELETE")
	api.HandleFunc("/cart/products/{productId}", h.Authenticate(h.setCartQuantity)).Methods("PATCH")
	api.HandleFunc("/cart/products/{productId}", h.Authenticate(h.removeCartProduct)).Methods("DELETE")
	api.HandleFunc("/cart/products/{productId}/decrement", h.Authenticate(h.decrementCartProduct)).Methods("PATCH")
	api.HandleFunc("/carts/{userId}", h.RequireAdmin(h.getUserCart)).Methods("GET")

	api.HandleFunc("/orders", h.Authenticate(h.createOrderFromCart)).Methods("POST")
	api.HandleFunc("/orders/product", h.Authenticate(h.createOrderFromProduct)).Methods("POST")
	api.HandleFunc("/orders/products", h.Authenticate(h.createOrderFromProducts)).Methods("POST")
	api.HandleFunc("/orders/my", h.Authenticate(h.listMyOrders)).Methods("GET")
	api.HandleFunc("/orders/verify-payment", h.Authenticate(h.verifyPayment)).Methods("GET")
	api.HandleFunc("/orders", h.RequireAdmin(h.listOrders)).Methods("GET")
	api.HandleFunc("/orders/grouped", h.RequireAdmin(h.listOrdersGrouped)).Methods("GET")
	api.HandleFunc("/orders/user/{userId}", h.RequireAdmin(h.listUserOrders)).Methods("GET")
	api.HandleFunc("/orders/{id}", h.Authenticate(h.getOrder)).Methods("GET")
	api.HandleFunc("/orders/{id}/status", h.RequireAdmin(h.updateOrderStatus)).Methods("PATCH")

	api.HandleFunc("/webhook/stripe", h.stripeWebhook).Methods("POST")

	api.HandleFunc("/reservations", h.Authenticate(h.bookReservation)).Methods("POST")
	api.HandleFunc("/reservations/my", h.Authenticate(h.listMyReservations)).Methods("GET")
	api.HandleFunc("/reservations/all", h.RequireAdmin(h.listAllReservations)).Methods("GET")
	api.HandleFunc("/reservations", h.RequireAdmin(h.listReservationsByDay)).Methods("GET")
	api.HandleFunc("/reservations/{id}", h.Authenticate(h.getReservation)).Methods("GET")
	api.HandleFunc("/reservations/{id}", h.RequireAdmin(h.updateReservation)).Methods("PATCH")
	api.HandleFunc("/reservations/{id}", h.Authenticate(h.cancelReservation)).Methods("DELETE")

	api.HandleFunc("/tables", h.RequireAdmin(h.createTable)).Methods("POST")
	api.HandleFunc("/tables", h.listTables).Methods("GET")
	api.HandleFunc("/tables/{id}", h.getTable).Methods("GET")
	api.HandleFunc("/tables/{id}", h.RequireAdmin(h.updateTable)).Methods("PATCH")
	api.HandleFunc("/tables/{id}", h.RequireAdmin(h.deleteTable)).Methods("DELETE")
	api.HandleFunc("/tables/{id}/slots", h.Authenticate(h.availableSlots)).Methods("GET")

	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tablebite",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func NewRouter(handler *Handler, frontendURL string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Stripe-Signature"},
		AllowCredentials: true,
	})
	return secureHeaders(c.Handler(r))
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("[http] server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
