package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"tablebite/internal/domain"
	"tablebite/internal/service"
)

func (h *Handler) createOrderFromCart(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	var req struct {
		CartID    int `json:"cart_id"`
		AddressID int `json:"address_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, sessionURL, err := h.Orders.CreateFromCart(r.Context(), claims.UserID, req.CartID, req.AddressID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"order":       order,
		"session_url": sessionURL,
	})
}

func (h *Handler) createOrderFromProduct(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
		AddressID int `json:"address_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	order, sessionURL, err := h.Orders.CreateFromProduct(r.Context(), claims.UserID, req.ProductID, req.Quantity, req.AddressID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"order":       order,
		"session_url": sessionURL,
	})
}

func (h *Handler) createOrderFromProducts(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	var req struct {
		Products  []service.PurchaseItem `json:"products"`
		AddressID int                    `json:"address_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, sessionURL, err := h.Orders.CreateFromProducts(r.Context(), claims.UserID, req.Products, req.AddressID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"order":       order,
		"session_url": sessionURL,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if order.BuyerID != claims.UserID && claims.Role != domain.RoleAdmin {
		writeError(w, http.StatusForbidden, "not your order")
		return
	}
	writeSuccess(w, http.StatusOK, "order", order)
}

func (h *Handler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	page, limit := pageParams(r)

	orders, pagination, err := h.Orders.ListForBuyer(claims.UserID, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeOrderPage(w, orders, pagination)
}

func (h *Handler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	page, limit := pageParams(r)

	orders, pagination, err := h.Orders.ListForBuyer(userID, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeOrderPage(w, orders, pagination)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	status := r.URL.Query().Get("status")

	orders, pagination, err := h.Orders.List(status, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeOrderPage(w, orders, pagination)
}

func (h *Handler) listOrdersGrouped(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	var statuses []string
	if raw := r.URL.Query().Get("statuses"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	groups, pagination, err := h.Orders.ListByStatuses(statuses, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       groups,
		"pagination": pagination,
	})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "order", order)
}

// verifyPayment is the client-side polling entry to payment reconciliation.
// The webhook may have settled the order already; either way the caller gets
// its current state.
func (h *Handler) verifyPayment(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	sessionID := r.URL.Query().Get("session_id")
	orderID, _ := strconv.Atoi(r.URL.Query().Get("order_id"))
	if sessionID == "" || orderID == 0 {
		writeError(w, http.StatusBadRequest, "session_id and order_id are required")
		return
	}

	if err := h.Orders.Reconcile(r.Context(), sessionID, orderID); err != nil {
		writeServiceError(w, err)
		return
	}

	order, err := h.Orders.Get(orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if order.BuyerID != claims.UserID && claims.Role != domain.RoleAdmin {
		writeError(w, http.StatusForbidden, "not your order")
		return
	}
	writeSuccess(w, http.StatusOK, "order", order)
}

func writeOrderPage(w http.ResponseWriter, orders []domain.Order, pagination domain.Pagination) {
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       orders,
		"pagination": pagination,
	})
}
