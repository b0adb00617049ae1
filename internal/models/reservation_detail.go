package models

// ReservationDetail is one service or product line attached to a
// reservation. UnitPrice is copied from the catalog at insertion time so
// later catalog price changes never alter historical reservations.
type ReservationDetail struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ReservationID uint `gorm:"index;not null" json:"reservation_id"`

	Kind string `gorm:"size:10;not null" json:"kind"` // "service" or "product"

	ServiceID *uint    `json:"service_id,omitempty"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	ProductID *uint    `json:"product_id,omitempty"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product,omitempty"`

	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}
