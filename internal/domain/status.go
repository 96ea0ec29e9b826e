package domain

// Payment statuses. Completed and Failed are terminal.
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
	PaymentCancelled = "Cancelled"
)

// Order statuses.
const (
	OrderProcessing = "Processing"
	OrderPaid       = "Paid"
	OrderReady      = "Ready"
	OrderOnTheWay   = "On the way"
	OrderReceived   = "Received"
	OrderFailed     = "Failed"
)

// Reservation statuses. Cancelled is terminal.
const (
	ReservationPending   = "Pending"
	ReservationConfirmed = "Confirmed"
	ReservationCancelled = "Cancelled"
)

const (
	RoleCustomer = "Customer"
	RoleAdmin    = "Admin"
)

var OrderStatuses = []string{
	OrderProcessing,
	OrderPaid,
	OrderReady,
	OrderOnTheWay,
	OrderReceived,
	OrderFailed,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func ValidReservationStatus(status string) bool {
	switch status {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

func TerminalPaymentStatus(status string) bool {
	return status == PaymentCompleted || status == PaymentFailed
}
