package reservation

import "github.com/barberia-app/barberia-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus rejects anything outside the fixed, case-sensitive enum.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

func InitialStatus() Status {
	return StatusPending
}
