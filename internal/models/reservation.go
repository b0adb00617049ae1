package models

import "time"

// Reservation is one booking for a barber at a fixed half-hour slot.
// Exactly one of UserID / guest identity (GuestName+GuestPhone) is set,
// discriminated by IsGuest. Monetary fields are written once by the
// totals-finalization step, never supplied by the client.
type Reservation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	IsGuest    bool   `gorm:"default:false" json:"is_guest"`
	GuestName  string `gorm:"size:100" json:"guest_name,omitempty"`
	GuestPhone string `gorm:"size:20;index" json:"guest_phone,omitempty"`
	GuestEmail string `gorm:"size:100" json:"guest_email,omitempty"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	// Partial unique index on (barber_id, date, time) excluding cancelled
	// rows is created in internal/db, gorm tags cannot express it.
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy *string    `gorm:"size:100" json:"cancelled_by,omitempty"`

	// Loyalty snapshot frozen at creation time. CompletedPrior counts the
	// owner's completed reservations strictly before this one and is not
	// recomputed if older reservations later change status.
	CompletedPrior  int     `gorm:"default:0" json:"completed_prior"`
	AppliesDiscount bool    `gorm:"default:false" json:"applies_discount"`
	DiscountPercent float64 `gorm:"default:0" json:"discount_percent"`

	Subtotal       float64 `gorm:"default:0" json:"subtotal"`
	DiscountAmount float64 `gorm:"default:0" json:"discount_amount"`
	Total          float64 `gorm:"default:0" json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
