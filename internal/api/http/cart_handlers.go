package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	// Body is optional: an empty cart needs no payload.
	json.NewDecoder(r.Body).Decode(&req)
	if req.ProductID > 0 && req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.Carts.Create(claims.UserID, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "cart", cart)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	cart, err := h.Carts.Get(claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "cart", cart)
}

func (h *Handler) getUserCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["userId"])
	cart, err := h.Carts.Get(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "cart", cart)
}

func (h *Handler) addCartProduct(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.Carts.AddProduct(claims.UserID, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "cart", cart)
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	productID, _ := strconv.Atoi(mux.Vars(r)["productId"])
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cart, err := h.Carts.SetQuantity(claims.UserID, productID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "cart", cart)
}

func (h *Handler) decrementCartProduct(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	productID, _ := strconv.Atoi(mux.Vars(r)["productId"])

	cart, err := h.Carts.Decrement(claims.UserID, productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "cart", cart)
}

func (h *Handler) removeCartProduct(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	productID, _ := strconv.Atoi(mux.Vars(r)["productId"])

	cart, err := h.Carts.RemoveProduct(claims.UserID, productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "cart", cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	cart, err := h.Carts.Clear(claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "cart", cart)
}

func (h *Handler) deleteCart(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	if err := h.Carts.Delete(claims.UserID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "cart deleted")
}
