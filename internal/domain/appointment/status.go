package appointment

import "github.com/itabaza/hms-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current != StatusBooked {
		return httperr.ErrValidation("invalid_state", "Only booked appointments can be cancelled.")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusBooked {
		return httperr.ErrValidation("invalid_state", "Only booked appointments can be completed.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
