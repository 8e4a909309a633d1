package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func futureSlot(hours int) string {
	return timezone.FormatWire(time.Now().UTC().Add(time.Duration(hours) * time.Hour))
}

func TestCreateAppointmentRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())
	date := futureSlot(48)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:    10,
		BarberID:  1,
		ServiceID: 1,
		Date:      date,
	})

	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, date, ap.Date)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.False(t, ap.Redeemed)

	list := NewListUserAppointments(repo)
	rows, err := list.Execute(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ap.ID, rows[0].ID)
	assert.Equal(t, date, rows[0].Date)
	assert.Equal(t, "Men's Haircut", rows[0].ServiceName)
	assert.Equal(t, "John Doe", rows[0].Barber)
	assert.Equal(t, 30.0, rows[0].ServiceValue)
}

func TestCreateAppointmentRejectsPastDate(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:    10,
		BarberID:  1,
		ServiceID: 1,
		Date:      timezone.FormatWire(time.Now().UTC().Add(-48 * time.Hour)),
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSlot))
}

func TestCreateAppointmentRejectsMalformedDate(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:    10,
		BarberID:  1,
		ServiceID: 1,
		Date:      "02/06/2025 14:30",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSlot))
}

func TestCreateAppointmentUnknownBarberAndService(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher())
	date := futureSlot(24)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 10, BarberID: 99, ServiceID: 1, Date: date,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 10, BarberID: 1, ServiceID: 99, Date: date,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())
	date := futureSlot(24)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 10, BarberID: 1, ServiceID: 1, Date: date,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 11, BarberID: 1, ServiceID: 2, Date: date,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	// The same instant with a different barber is a separate slot.
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 11, BarberID: 2, ServiceID: 2, Date: date,
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentSameMinuteTaken(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 10, BarberID: 1, ServiceID: 1,
		Date: timezone.FormatWire(base),
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		UserID: 11, BarberID: 1, ServiceID: 1,
		Date: timezone.FormatWire(base.Add(30 * time.Second)),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
}

func TestCreateAppointmentConcurrentSingleWinner(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())
	date := futureSlot(24)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), CreateAppointmentInput{
				UserID:    uint(100 + i),
				BarberID:  1,
				ServiceID: 1,
				Date:      date,
			})
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, conflicts)
	assert.Len(t, repo.appointments, 1)
}
