package appointment

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// fakeRepo is an in-memory domain.Repository. It enforces the same
// (barber, date) uniqueness under its own lock, so races behave like the
// database-backed implementation.
type fakeRepo struct {
	mu           sync.Mutex
	barbers      map[uint]models.User
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	credits      map[uint][]int
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers: map[uint]models.User{
			1: {ID: 1, Fullname: "John Doe", Role: models.RoleBarber},
			2: {ID: 2, Fullname: "Michael Smith", Role: models.RoleBarber},
		},
		services: map[uint]models.Service{
			1: {ID: 1, Name: "Men's Haircut", DurationMin: 30, Value: 30, Points: 10},
			2: {ID: 2, Name: "Beard Trim", DurationMin: 30, Value: 20},
		},
		appointments: make(map[uint]models.Appointment),
		credits:      make(map[uint][]int),
	}
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &b, nil
}

func (f *fakeRepo) ListBarbers(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.User, 0, len(f.barbers))
	for _, b := range f.barbers {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &s, nil
}

func (f *fakeRepo) ListDatesForBarber(_ context.Context, barberID uint, excludeID uint) ([]string, error) {
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

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.appointments {
		if existing.BarberID == ap.BarberID && existing.Date == ap.Date {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[appointmentID]
	if !ok || ap.BarberID != barberID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &ap, nil
}

func (f *fakeRepo) GetAppointmentForUser(_ context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[appointmentID]
	if !ok || ap.UserID != userID {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.appointments {
		if existing.ID != ap.ID && existing.BarberID == ap.BarberID && existing.Date == ap.Date {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, appointmentID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.appointments, appointmentID)
	return nil
}

func (f *fakeRepo) CompleteAndCredit(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.appointments[ap.ID]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if stored.Status != string(domain.StatusScheduled) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	f.appointments[ap.ID] = *ap
	if ap.PointsAwarded > 0 {
		f.credits[ap.UserID] = append(f.credits[ap.UserID], ap.PointsAwarded)
	}
	return nil
}

func (f *fakeRepo) ListForBarber(_ context.Context, barberID uint) ([]models.Appointment, error) {
	return f.list(func(ap models.Appointment) bool { return ap.BarberID == barberID })
}

func (f *fakeRepo) ListForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	return f.list(func(ap models.Appointment) bool { return ap.UserID == userID })
}

func (f *fakeRepo) list(match func(models.Appointment) bool) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for id := uint(1); id <= f.nextID; id++ {
		ap, ok := f.appointments[id]
		if !ok || !match(ap) {
			continue
		}

		ap.Barber = f.barbers[ap.BarberID]
		ap.User = models.User{ID: ap.UserID, Fullname: "Test Client", Role: models.RoleUser}
		ap.Service = f.services[ap.ServiceID]
		out = append(out, ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
