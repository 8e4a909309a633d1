package loyalty

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Reasons recorded on loyalty transactions.
const (
	ReasonAppointmentCompleted = "appointment_completed"
	ReasonFreeServiceRedeemed  = "free_service_redeemed"
)

// FreeServicesAvailable is how many free redemptions a balance covers.
func FreeServicesAvailable(points, cost int) int {
	if cost <= 0 {
		return 0
	}
	return points / cost
}

// CanRedeem rejects redemptions the balance cannot cover.
func CanRedeem(points, cost int) error {
	if points < cost {
		return httperr.ErrBusiness(httperr.CodeInsufficientPoints)
	}
	return nil
}

type Repository interface {
	// Balance returns the current total, zero for users with no account.
	Balance(
		ctx context.Context,
		userID uint,
	) (int, error)

	// RedeemAndBook atomically debits cost points from the user and
	// inserts the redeemed appointment through the slot-conflict gate.
	// The debit and the insert succeed or fail together; concurrent
	// redemptions cannot spend the same points twice.
	RedeemAndBook(
		ctx context.Context,
		userID uint,
		cost int,
		ap *models.Appointment,
	) error
}
