package models

import "time"

type User struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	RoleID uint `json:"role_id"`
	Role   Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email        string `gorm:"size:100" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
