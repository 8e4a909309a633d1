package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterServiceRequest struct {
	Name     string  `json:"name" binding:"required"`
	Duration int     `json:"duration" binding:"required"`
	Value    float64 `json:"value" binding:"required"`
	Points   int     `json:"points"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Limit(10).Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services")
		return
	}

	out := make([]gin.H, 0, len(services))
	for _, s := range services {
		out = append(out, gin.H{
			"_id":      s.ID,
			"name":     s.Name,
			"duration": s.DurationMin,
			"value":    s.Value,
			"points":   s.Points,
		})
	}

	c.JSON(http.StatusOK, gin.H{"services": out})
}

func (h *ServiceHandler) Register(c *gin.Context) {
	var req RegisterServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, duration, value, and points are required")
		return
	}

	// Slots are laid out on a half-hour grid.
	if req.Duration != 30 && req.Duration != 60 {
		httperr.BadRequest(c, "invalid_duration", "Duration must be either 30 or 60 minutes")
		return
	}

	service := models.Service{
		Name:        req.Name,
		DurationMin: req.Duration,
		Value:       req.Value,
		Points:      req.Points,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not register service")
		return
	}

	httpresp.Msg(c, http.StatusCreated, "Service registered successfully!")
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Service{}, serviceID)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Service not found")
		return
	}

	httpresp.Msg(c, http.StatusOK, "Service deleted successfully!")
}
