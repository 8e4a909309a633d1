package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	DurationMin int     `json:"duration"`
	Value       float64 `json:"value"`

	// Points credited to the client when an appointment for this
	// service is completed.
	Points int `json:"points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
