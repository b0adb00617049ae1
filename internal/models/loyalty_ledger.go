package models

import "time"

// LoyaltyLedger is an append-only audit row recording a discount that was
// actually granted. The unique index on ReservationID makes the
// totals-finalization step idempotent: re-running it can never record the
// same discount twice.
type LoyaltyLedger struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ReservationID uint `gorm:"uniqueIndex;not null" json:"reservation_id"`
	UserID        uint `gorm:"index;not null" json:"user_id"`

	CompletedAtGrant int     `json:"completed_at_grant"`
	Percent          float64 `json:"percent"`
	DiscountAmount   float64 `json:"discount_amount"`
	Subtotal         float64 `json:"subtotal"`
	Total            float64 `json:"total"`

	CreatedAt time.Time `json:"created_at"`
}
