package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// LIST BY BARBER
// ======================================================

type ListBarberAppointments struct {
	repo domain.Repository
}

func NewListBarberAppointments(repo domain.Repository) *ListBarberAppointments {
	return &ListBarberAppointments{repo: repo}
}

func (uc *ListBarberAppointments) Execute(
	ctx context.Context,
	barberID uint,
) ([]dto.BarberAppointmentDTO, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	appointments, err := uc.repo.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BarberAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.BarberAppointmentDTO{
			ID:              ap.ID,
			Reference:       ap.Reference,
			ServiceID:       ap.ServiceID,
			Date:            ap.Date,
			Status:          ap.Status,
			Redeemed:        ap.Redeemed,
			UserName:        fullnameOrUnknown(ap.User),
			ServiceName:     ap.Service.Name,
			ServiceValue:    serviceValue(ap),
			ServiceDuration: ap.Service.DurationMin,
		})
	}

	return out, nil
}

// ======================================================
// LIST BY USER
// ======================================================

type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(repo domain.Repository) *ListUserAppointments {
	return &ListUserAppointments{repo: repo}
}

func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.UserAppointmentDTO, error) {

	appointments, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.UserAppointmentDTO{
			ID:              ap.ID,
			Reference:       ap.Reference,
			ServiceID:       ap.ServiceID,
			ServiceName:     ap.Service.Name,
			ServiceDuration: ap.Service.DurationMin,
			ServiceValue:    serviceValue(ap),
			Barber:          fullnameOrUnknown(ap.Barber),
			Date:            ap.Date,
			Status:          ap.Status,
			Redeemed:        ap.Redeemed,
		})
	}

	return out, nil
}

// ======================================================
// HELPERS
// ======================================================

func fullnameOrUnknown(u models.User) string {
	if u.Fullname == "" {
		return "Unknown"
	}
	return u.Fullname
}

// Redeemed appointments are free; the catalog price stays informational.
func serviceValue(ap models.Appointment) float64 {
	if ap.Redeemed {
		return 0
	}
	return ap.Service.Value
}
