package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID    uint
	BarberID  uint
	ServiceID uint

	// Date in wire format "YYYY-MM-DD HH:MM:SS", UTC.
	Date string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := timezone.ParseWire(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// Availability pre-scan: past dates and day+minute collisions are
	// rejected before touching the insert path. The repository re-checks
	// the exact slot under lock, so a race here still ends in slot_taken.
	existing, err := uc.repo.ListDatesForBarber(ctx, in.BarberID, 0)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckSlot(start, timezone.Now(), existing); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Reference: uuid.NewString(),
		UserID:    in.UserID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      timezone.FormatWire(start),
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			uc.audit.Dispatch(audit.Event{
				UserID:   &in.UserID,
				Action:   audit.ActionSlotConflict,
				Entity:   "appointment",
				Metadata: map[string]any{"barber_id": in.BarberID, "date": ap.Date},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
