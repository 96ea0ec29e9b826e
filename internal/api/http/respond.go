package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"tablebite/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeSuccess wraps the value in the response envelope under the given key
// ("data", "cart", "order", "user", ...).
func writeSuccess(w http.ResponseWriter, status int, key string, value interface{}) {
	writeJSON(w, status, map[string]interface{}{"success": true, key: value})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": true, "message": message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
}

// writeServiceError maps service sentinels onto HTTP status codes. Anything
// unrecognized is a 500 with a generic message; the real cause goes to the log.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidOrderStatus),
		errors.Is(err, service.ErrInvalidResStatus),
		errors.Is(err, service.ErrInvalidSlot),
		errors.Is(err, service.ErrPastDate),
		errors.Is(err, service.ErrImageRequired),
		errors.Is(err, service.ErrCartEmpty),
		errors.Is(err, service.ErrUnavailable),
		errors.Is(err, service.ErrTableInactive),
		errors.Is(err, service.ErrWrongPassword):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidRefresh):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrProductNotInCart),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrAddressNotFound),
		errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrCategoryExists),
		errors.Is(err, service.ErrTableNumberTaken),
		errors.Is(err, service.ErrSlotTaken),
		errors.Is(err, service.ErrAlreadyCancelled):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("[http] internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
