package models

import "time"

// BarberUnavailability is a declared blackout window for a barber on a
// date. A null StartTime blocks the whole day; otherwise the window is the
// half-open interval [StartTime, EndTime).
type BarberUnavailability struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint   `gorm:"index;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	Date      string  `gorm:"size:10;not null;index" json:"date"`
	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`
	Reason    string  `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
