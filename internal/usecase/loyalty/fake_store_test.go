package loyalty

import (
	"context"
	"sync"

	apdomain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// fakeStore backs both the loyalty and the appointment repository with one
// lock, mirroring the single-transaction semantics of the real store: the
// debit and the booking land together or not at all.
type fakeStore struct {
	mu           sync.Mutex
	balances     map[uint]int
	barbers      map[uint]models.User
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	ledger       []models.LoyaltyTransaction
	nextID       uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		balances: make(map[uint]int),
		barbers: map[uint]models.User{
			1: {ID: 1, Fullname: "John Doe", Role: models.RoleBarber},
		},
		services: map[uint]models.Service{
			1: {ID: 1, Name: "Men's Haircut", DurationMin: 30, Value: 30, Points: 10},
		},
		appointments: make(map[uint]models.Appointment),
	}
}

// ======================================================
// loyalty repository
// ======================================================

func (f *fakeStore) Balance(_ context.Context, userID uint) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[userID], nil
}

func (f *fakeStore) RedeemAndBook(_ context.Context, userID uint, cost int, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.balances[userID] < cost {
		return httperr.ErrBusiness(httperr.CodeInsufficientPoints)
	}

	for _, existing := range f.appointments {
		if existing.BarberID == ap.BarberID && existing.Date == ap.Date {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	f.balances[userID] -= cost
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = *ap

	f.ledger = append(f.ledger, models.LoyaltyTransaction{
		UserID:        userID,
		Delta:         -cost,
		AppointmentID: &ap.ID,
		Reason:        domain.ReasonFreeServiceRedeemed,
	})
	return nil
}

// ======================================================
// appointment repository
// ======================================================

func (f *fakeStore) GetBarber(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &b, nil
}

func (f *fakeStore) ListBarbers(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.User, 0, len(f.barbers))
	for _, b := range f.barbers {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeStore) GetService(_ context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &s, nil
}

func (f *fakeStore) ListDatesForBarber(_ context.Context, barberID uint, excludeID uint) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var dates []string
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.ID != excludeID {
			dates = append(dates, ap.Date)
		}
	}
	return dates, nil
}

func (f *fakeStore) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeStore) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[appointmentID]
	if !ok || ap.BarberID != barberID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &ap, nil
}

func (f *fakeStore) GetAppointmentForUser(_ context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[appointmentID]
	if !ok || ap.UserID != userID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &ap, nil
}

func (f *fakeStore) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeStore) DeleteAppointment(_ context.Context, appointmentID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.appointments, appointmentID)
	return nil
}

func (f *fakeStore) CompleteAndCredit(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.appointments[ap.ID] = *ap
	if ap.PointsAwarded > 0 {
		f.balances[ap.UserID] += ap.PointsAwarded
	}
	return nil
}

func (f *fakeStore) ListForBarber(_ context.Context, barberID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeStore) ListForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

var (
	_ domain.Repository   = (*fakeStore)(nil)
	_ apdomain.Repository = (*fakeStore)(nil)
)
