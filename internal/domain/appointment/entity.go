package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Complete transitions an appointment to completed and records the points
// that will be credited to its owner. Redeemed (free) appointments award
// nothing.
func Complete(ap *models.Appointment, now time.Time, points int) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	if ap.Redeemed {
		points = 0
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.PointsAwarded = points
	return nil
}
