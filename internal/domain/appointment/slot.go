package appointment

import (
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	dayKeyFormat    = "2006-01-02"
	minuteKeyFormat = "15:04"
)

func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyFormat)
}

func MinuteKey(t time.Time) string {
	return t.UTC().Format(minuteKeyFormat)
}

// CheckSlot decides whether a candidate timestamp is bookable against a
// barber's stored appointment dates (wire-format strings).
//
// A candidate in the past is invalid_slot. A stored date matching the
// candidate exactly, or sharing both its day and minute-of-day keys, is
// slot_taken. Stored dates that fail to parse are skipped with a warning;
// one bad historical row must not block the whole availability check.
func CheckSlot(candidate time.Time, now time.Time, existing []string) error {
	if candidate.Before(now) {
		return httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}

	wire := timezone.FormatWire(candidate)
	day := DayKey(candidate)
	minute := MinuteKey(candidate)

	for _, raw := range existing {
		if raw == wire {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		t, err := timezone.ParseWire(raw)
		if err != nil {
			logging.L().Warn("skipping appointment with unparseable date",
				zap.String("date", raw),
				zap.Error(err),
			)
			continue
		}

		if DayKey(t) == day && MinuteKey(t) == minute {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	return nil
}
