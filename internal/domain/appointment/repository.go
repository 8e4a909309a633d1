package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Accounts --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.User, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------

	// ListDatesForBarber returns the raw wire-format dates of every
	// appointment booked against a barber, excluding excludeID (0 for
	// none). Feed for the availability pre-scan.
	ListDatesForBarber(
		ctx context.Context,
		barberID uint,
		excludeID uint,
	) ([]string, error)

	// CreateAppointment inserts with a locked exact-slot re-check in one
	// transaction. Returns slot_taken when the slot was won by a
	// concurrent booking.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	// CompleteAndCredit persists the completed appointment and credits
	// its owner's loyalty account in the same transaction.
	CompleteAndCredit(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
