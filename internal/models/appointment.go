package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the client-facing identifier.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint `gorm:"uniqueIndex:idx_barber_slot" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Date is the slot timestamp in wire format ("YYYY-MM-DD HH:MM:SS", UTC).
	// Stored as the formatted string so the (barber_id, date) unique index
	// enforces the exact-timestamp uniqueness policy at the database level.
	Date string `gorm:"size:19;not null;uniqueIndex:idx_barber_slot" json:"date"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Redeemed marks a zero-value appointment paid with loyalty points.
	Redeemed      bool `gorm:"default:false" json:"redeemed"`
	PointsAwarded int  `json:"points_awarded"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
