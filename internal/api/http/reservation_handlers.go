package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tablebite/internal/domain"
)

func (h *Handler) bookReservation(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	var req struct {
		TableID int    `json:"table_id"`
		Date    string `json:"date"`
		Slot    string `json:"slot"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.Reservations.Book(claims.UserID, req.TableID, req.Date, req.Slot)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "data", res)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	res, err := h.Reservations.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if res.UserID != claims.UserID && claims.Role != domain.RoleAdmin {
		writeError(w, http.StatusForbidden, "not your reservation")
		return
	}
	writeSuccess(w, http.StatusOK, "data", res)
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		TableID int    `json:"table_id"`
		Date    string `json:"date"`
		Slot    string `json:"slot"`
		Status  string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.Reservations.Update(id, req.TableID, req.Date, req.Slot, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", res)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	res, err := h.Reservations.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if res.UserID != claims.UserID && claims.Role != domain.RoleAdmin {
		writeError(w, http.StatusForbidden, "not your reservation")
		return
	}

	if err := h.Reservations.Cancel(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "reservation cancelled")
}

func (h *Handler) listMyReservations(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	reservations, err := h.Reservations.ListForUser(claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeReservations(w, reservations)
}

// listReservationsByDay defaults to today when no date is given.
func (h *Handler) listReservationsByDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	reservations, err := h.Reservations.ListForDay(date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeReservations(w, reservations)
}

func (h *Handler) listAllReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.ListAll()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeReservations(w, reservations)
}

func (h *Handler) availableSlots(w http.ResponseWriter, r *http.Request) {
	tableID, _ := strconv.Atoi(mux.Vars(r)["id"])
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	slots, err := h.Reservations.AvailableSlots(tableID, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"date":    date,
		"slots":   slots,
	})
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number   int `json:"number"`
		Capacity int `json:"capacity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	table, err := h.Reservations.CreateTable(req.Number, req.Capacity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "data", table)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	table, err := h.Reservations.GetTable(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", table)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Reservations.ListTables()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tables == nil {
		tables = []domain.Table{}
	}
	writeSuccess(w, http.StatusOK, "data", tables)
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Number   int   `json:"number"`
		Capacity int   `json:"capacity"`
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	table, err := h.Reservations.UpdateTable(id, req.Number, req.Capacity, req.IsActive)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", table)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Reservations.DeleteTable(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "table deleted")
}

func writeReservations(w http.ResponseWriter, reservations []domain.Reservation) {
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	writeSuccess(w, http.StatusOK, "data", reservations)
}
