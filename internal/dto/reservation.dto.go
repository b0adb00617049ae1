package dto

import "github.com/barberia-app/barberia-api/internal/models"

// ReservationWithDetails is the canonical creation/lookup response: the
// reservation row plus its line items.
type ReservationWithDetails struct {
	models.Reservation
	Details []models.ReservationDetail `json:"details"`

	// TotalsPending flags the recognized inconsistency window where the
	// booking committed but the totals-finalization step failed.
	TotalsPending bool `json:"totals_pending,omitempty"`
}

type AvailableSlotsResponse struct {
	BarberID       uint     `json:"barber_id"`
	Date           string   `json:"date"`
	SlotsAvailable []string `json:"slots_available"`
	SlotsOccupied  []string `json:"slots_occupied"`
}

type NextDiscountDTO struct {
	Applies                 bool    `json:"applies"`
	Percentage              float64 `json:"percentage"`
	WillBeAppointmentNumber int     `json:"will_be_appointment_number"`
}

type LoyaltyStatsResponse struct {
	CompletedCount    int             `json:"completed_count"`
	NextDiscount      NextDiscountDTO `json:"next_discount"`
	TimesDiscountUsed int             `json:"times_discount_used"`
	TotalSaved        float64         `json:"total_saved"`
}
