package models

import "time"

// LoyaltyAccount holds a client's running point total. Points are credited
// when appointments complete and debited by free-service redemptions. The
// balance never goes negative.
type LoyaltyAccount struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	Points int  `gorm:"not null;default:0" json:"points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoyaltyTransaction is an append-only record of every balance change.
type LoyaltyTransaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`

	// Delta is positive for credits, negative for redemptions.
	Delta int `gorm:"not null" json:"delta"`

	AppointmentID *uint  `json:"appointment_id"`
	Reason        string `gorm:"size:50;not null" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
