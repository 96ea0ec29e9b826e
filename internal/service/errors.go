package service

import "errors"

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("password is invalid")
	ErrInvalidRefresh     = errors.New("refresh token is expired or invalid")

	ErrCategoryExists   = errors.New("category with the given name already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrUnavailable      = errors.New("product is not available")
	ErrImageRequired    = errors.New("at least one image is required")

	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrCartNotFound     = errors.New("cart not found")
	ErrProductNotInCart = errors.New("product not found in cart")
	ErrCartEmpty        = errors.New("cart is empty")

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrAddressNotFound    = errors.New("address not found")

	ErrTableNotFound       = errors.New("table not found")
	ErrTableNumberTaken    = errors.New("table with the given number already exists")
	ErrTableInactive       = errors.New("table is not active")
	ErrInvalidSlot         = errors.New("slot is outside the reservation window")
	ErrPastDate            = errors.New("reservation date is in the past")
	ErrSlotTaken           = errors.New("table is already booked for this slot")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrInvalidResStatus    = errors.New("invalid reservation status")
)
