package loyalty

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	apdomain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RedeemFreeServiceInput struct {
	UserID    uint
	ServiceID uint
	BarberID  uint

	// Date of the redeemed slot, wire format.
	Date string
}

// ======================================================
// USE CASE
// ======================================================

type RedeemFreeService struct {
	repo    domain.Repository
	apRepo  apdomain.Repository
	audit   *audit.Dispatcher
	points  *cache.PointsCache
	cost    int
}

func NewRedeemFreeService(
	repo domain.Repository,
	apRepo apdomain.Repository,
	audit *audit.Dispatcher,
	points *cache.PointsCache,
	cost int,
) *RedeemFreeService {
	return &RedeemFreeService{
		repo:   repo,
		apRepo: apRepo,
		audit:  audit,
		points: points,
		cost:   cost,
	}
}

// Execute converts cost points into a free-service appointment. The redeemed
// booking still consumes a real slot, so it goes through the same
// availability gate as a paid one. The balance check here is advisory; the
// repository re-checks under lock so two concurrent redemptions cannot spend
// the same block of points.
func (uc *RedeemFreeService) Execute(
	ctx context.Context,
	in RedeemFreeServiceInput,
) (*models.Appointment, error) {

	start, err := timezone.ParseWire(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}

	if _, err := uc.apRepo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if _, err := uc.apRepo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	balance, err := uc.repo.Balance(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanRedeem(balance, uc.cost); err != nil {
		return nil, err
	}

	existing, err := uc.apRepo.ListDatesForBarber(ctx, in.BarberID, 0)
	if err != nil {
		return nil, err
	}

	if err := apdomain.CheckSlot(start, timezone.Now(), existing); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Reference: uuid.NewString(),
		UserID:    in.UserID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      timezone.FormatWire(start),
		Status:    string(apdomain.InitialStatus()),
		Redeemed:  true,
	}

	if err := uc.repo.RedeemAndBook(ctx, in.UserID, uc.cost, ap); err != nil {
		return nil, err
	}

	if uc.points != nil {
		uc.points.Invalidate(ctx, in.UserID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionPointsRedeemed,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"cost": uc.cost, "service_id": in.ServiceID},
	})

	return ap, nil
}
