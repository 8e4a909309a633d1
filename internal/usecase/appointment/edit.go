package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Partial update: nil fields keep their current value.
type EditAppointmentInput struct {
	UserID        uint
	AppointmentID uint

	Date      *string
	ServiceID *uint
	BarberID  *uint
}

// ======================================================
// USE CASE
// ======================================================

type EditAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEditAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EditAppointment {
	return &EditAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *EditAppointment) Execute(
	ctx context.Context,
	in EditAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if ap.Status != string(domain.StatusScheduled) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	if in.ServiceID != nil {
		if _, err := uc.repo.GetService(ctx, *in.ServiceID); err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		ap.ServiceID = *in.ServiceID
	}

	if in.BarberID != nil {
		if _, err := uc.repo.GetBarber(ctx, *in.BarberID); err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		ap.BarberID = *in.BarberID
	}

	// A date or barber change moves the slot, so the full availability
	// gate runs again against the target barber's calendar.
	if in.Date != nil || in.BarberID != nil {
		date := ap.Date
		if in.Date != nil {
			date = *in.Date
		}

		start, err := timezone.ParseWire(date)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidSlot)
		}

		existing, err := uc.repo.ListDatesForBarber(ctx, ap.BarberID, ap.ID)
		if err != nil {
			return nil, err
		}

		if err := domain.CheckSlot(start, timezone.Now(), existing); err != nil {
			return nil, err
		}

		ap.Date = timezone.FormatWire(start)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionAppointmentEdited,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
