package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// SeedHandler backs the demo seeding endpoints. Both are idempotent:
// existing rows are left alone.
type SeedHandler struct {
	db *gorm.DB
}

func NewSeedHandler(db *gorm.DB) *SeedHandler {
	return &SeedHandler{db: db}
}

var seedServices = []models.Service{
	{Name: "Men's Haircut", DurationMin: 30, Value: 30, Points: 10},
	{Name: "Women's Haircut", DurationMin: 60, Value: 50, Points: 15},
	{Name: "Beard Trim", DurationMin: 30, Value: 20, Points: 5},
	{Name: "Cut and Beard", DurationMin: 60, Value: 40, Points: 12},
	{Name: "Eyebrow Design", DurationMin: 30, Value: 25, Points: 8},
	{Name: "Kids' Haircut", DurationMin: 30, Value: 35, Points: 10},
	{Name: "Blowout and Styling", DurationMin: 60, Value: 70, Points: 20},
	{Name: "Hair Treatment", DurationMin: 60, Value: 80, Points: 25},
	{Name: "Manicure and Pedicure", DurationMin: 60, Value: 45, Points: 15},
	{Name: "Waxing", DurationMin: 30, Value: 20, Points: 5},
}

var seedBarbers = []models.User{
	{Email: "john.doe@example.com", Fullname: "John Doe"},
	{Email: "michael.smith@example.com", Fullname: "Michael Smith"},
	{Email: "david.jones@example.com", Fullname: "David Jones"},
	{Email: "robert.johnson@example.com", Fullname: "Robert Johnson"},
	{Email: "william.brown@example.com", Fullname: "William Brown"},
	{Email: "charles.davis@example.com", Fullname: "Charles Davis"},
	{Email: "james.miller@example.com", Fullname: "James Miller"},
	{Email: "daniel.moore@example.com", Fullname: "Daniel Moore"},
	{Email: "matthew.wilson@example.com", Fullname: "Matthew Wilson"},
	{Email: "anthony.taylor@example.com", Fullname: "Anthony Taylor"},
}

const seedBarberPassword = "password123"

func (h *SeedHandler) RegisterServices(c *gin.Context) {
	for _, svc := range seedServices {
		var count int64
		h.db.Model(&models.Service{}).Where("name = ?", svc.Name).Count(&count)
		if count > 0 {
			continue
		}

		if err := h.db.Create(&svc).Error; err != nil {
			httperr.Internal(c, "failed_to_seed_services", "Could not register services")
			return
		}
	}

	httpresp.Msg(c, http.StatusOK, "10 Services registered successfully!")
}

func (h *SeedHandler) RegisterBarbers(c *gin.Context) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedBarberPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_seed_barbers", "Could not register barbers")
		return
	}

	for _, barber := range seedBarbers {
		var count int64
		h.db.Model(&models.User{}).Where("email = ?", barber.Email).Count(&count)
		if count > 0 {
			continue
		}

		barber.PasswordHash = string(hashed)
		barber.Role = models.RoleBarber

		if err := h.db.Create(&barber).Error; err != nil {
			httperr.Internal(c, "failed_to_seed_barbers", "Could not register barbers")
			return
		}
	}

	httpresp.Msg(c, http.StatusOK, "Barbers registered successfully!")
}
