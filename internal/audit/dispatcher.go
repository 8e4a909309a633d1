package audit

import (
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/logging"
)

// Audit actions.
const (
	ActionUserRegistered       = "user_registered"
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentEdited    = "appointment_edited"
	ActionAppointmentDeleted   = "appointment_deleted"
	ActionAppointmentCompleted = "appointment_completed"
	ActionSlotConflict         = "slot_conflict"
	ActionPointsCredited       = "points_credited"
	ActionPointsRedeemed       = "points_redeemed"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher persists audit events off the request path. Events are dropped
// when the queue is full; auditing never breaks the API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logging.L().Warn("audit write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logging.L().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
