package models

import "time"

type Barber struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	StageName string `gorm:"size:100;not null" json:"stage_name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Available bool   `gorm:"default:true" json:"available"`

	// Running counters, only ever mutated with atomic UPDATE ... + 1
	// statements so concurrent bookings cannot lose increments.
	TotalAppointments     int `gorm:"default:0" json:"total_appointments"`
	CompletedAppointments int `gorm:"default:0" json:"completed_appointments"`
	CancelledAppointments int `gorm:"default:0" json:"cancelled_appointments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
