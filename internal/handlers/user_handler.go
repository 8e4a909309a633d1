package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucLoyalty "github.com/BruksfildServices01/barber-booking/internal/usecase/loyalty"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	db *gorm.DB

	completeUC   *ucAppointment.CompleteAppointment
	listByBarber *ucAppointment.ListBarberAppointments
	listByUser   *ucAppointment.ListUserAppointments
	balanceUC    *ucLoyalty.GetBalance
	redeemUC     *ucLoyalty.RedeemFreeService
}

func NewUserHandler(
	db *gorm.DB,
	completeUC *ucAppointment.CompleteAppointment,
	listByBarber *ucAppointment.ListBarberAppointments,
	listByUser *ucAppointment.ListUserAppointments,
	balanceUC *ucLoyalty.GetBalance,
	redeemUC *ucLoyalty.RedeemFreeService,
) *UserHandler {
	return &UserHandler{
		db:           db,
		completeUC:   completeUC,
		listByBarber: listByBarber,
		listByUser:   listByUser,
		balanceUC:    balanceUC,
		redeemUC:     redeemUC,
	}
}

// ======================================================
// ROLE / BARBERS
// ======================================================

func (h *UserHandler) CheckRole(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	httpresp.OK(c, gin.H{"role": role})
}

func (h *UserHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers")
		return
	}

	out := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, gin.H{
			"id":       b.ID,
			"fullname": b.Fullname,
			"email":    b.Email,
			"role":     b.Role,
		})
	}

	c.JSON(http.StatusOK, gin.H{"barbers": out})
}

// ======================================================
// APPOINTMENT LISTS
// ======================================================

func (h *UserHandler) BarberAppointments(c *gin.Context) {
	barberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	appointments, err := h.listByBarber.Execute(c.Request.Context(), barberID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	if len(appointments) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"msg":          "No appointments found for this barber",
			"appointments": appointments,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (h *UserHandler) UserAppointments(c *gin.Context) {
	requestedID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Clients may only read their own bookings.
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	if requestedID != callerID {
		httperr.Forbidden(c, httperr.CodeUnauthorized, "Access forbidden: You can only view your own appointments")
		return
	}

	appointments, err := h.listByUser.Execute(c.Request.Context(), requestedID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	if len(appointments) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"msg":          "No appointments found for this user",
			"appointments": appointments,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// ======================================================
// COMPLETE + AWARD POINTS
// ======================================================

type CompleteAppointmentRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

func (h *UserHandler) CompleteAppointment(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "appointment_id required")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), barberID, req.AppointmentID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": ap.Status,
		"msg":    "Appointment completed and points awarded",
	})
}

// ======================================================
// LOYALTY
// ======================================================

func (h *UserHandler) Points(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	points, freeServices, err := h.balanceUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_points", "Could not fetch points")
		return
	}

	httpresp.OK(c, gin.H{
		"points":                  points,
		"free_services_available": freeServices,
	})
}

type RedeemFreeServiceRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

func (h *UserHandler) RedeemFreeService(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}

	var req RedeemFreeServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "barber_id and date required")
		return
	}

	ap, err := h.redeemUC.Execute(c.Request.Context(), ucLoyalty.RedeemFreeServiceInput{
		UserID:    userID,
		ServiceID: serviceID,
		BarberID:  req.BarberID,
		Date:      req.Date,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":         "Free service redeemed successfully!",
		"appointment": ap,
	})
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
