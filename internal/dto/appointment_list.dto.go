package dto

// Enriched appointment rows, mirroring what the booking pages render.

// BarberAppointmentDTO is a row of a barber's schedule: who booked it and
// what service it is.
type BarberAppointmentDTO struct {
	ID              uint    `json:"id"`
	Reference       string  `json:"reference"`
	ServiceID       uint    `json:"service_id"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	Redeemed        bool    `json:"redeemed"`
	UserName        string  `json:"user_name"`
	ServiceName     string  `json:"service_name"`
	ServiceValue    float64 `json:"service_value"`
	ServiceDuration int     `json:"service_duration"`
}

// UserAppointmentDTO is a row of a client's own bookings.
type UserAppointmentDTO struct {
	ID              uint    `json:"id"`
	Reference       string  `json:"reference"`
	ServiceID       uint    `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	ServiceDuration int     `json:"service_duration"`
	ServiceValue    float64 `json:"service_value"`
	Barber          string  `json:"barber"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	Redeemed        bool    `json:"redeemed"`
}
