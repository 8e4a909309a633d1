package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CompleteAppointment struct {
	repo          domain.Repository
	audit         *audit.Dispatcher
	points        *cache.PointsCache
	defaultPoints int
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	points *cache.PointsCache,
	defaultPoints int,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:          repo,
		audit:         audit,
		points:        points,
		defaultPoints: defaultPoints,
	}
}

// Execute transitions scheduled -> completed and credits the owning user's
// loyalty points exactly once, in the repository transaction. A second call
// on the same appointment fails with invalid_transition.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	points := uc.defaultPoints
	if svc, err := uc.repo.GetService(ctx, ap.ServiceID); err == nil && svc.Points > 0 {
		points = svc.Points
	}

	if err := domain.Complete(ap, timezone.Now(), points); err != nil {
		return nil, err
	}

	if err := uc.repo.CompleteAndCredit(ctx, ap); err != nil {
		return nil, err
	}

	if uc.points != nil {
		uc.points.Invalidate(ctx, ap.UserID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &barberID,
		Action:   audit.ActionAppointmentCompleted,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if ap.PointsAwarded > 0 {
		uc.audit.Dispatch(audit.Event{
			UserID:   &ap.UserID,
			Action:   audit.ActionPointsCredited,
			Entity:   "loyalty_account",
			Metadata: map[string]any{"points": ap.PointsAwarded, "appointment_id": ap.ID},
		})
	}

	return ap, nil
}
