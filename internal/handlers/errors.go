package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// mapBusinessError translates use-case errors into the HTTP envelope. All
// service errors surface as structured kind + message; nothing is swallowed
// here.
func mapBusinessError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeInvalidSlot:
		httperr.BadRequest(c, httperr.CodeInvalidSlot, "Slot date is invalid or in the past")
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, httperr.CodeSlotTaken, "This slot is already booked")
	case httperr.CodeInvalidTransition:
		httperr.BadRequest(c, httperr.CodeInvalidTransition, "Appointment cannot change to that status")
	case httperr.CodeInsufficientPoints:
		httperr.BadRequest(c, httperr.CodeInsufficientPoints, "Not enough points for a free service")
	case httperr.CodeNotFound:
		httperr.NotFound(c, httperr.CodeNotFound, "Resource not found")
	case httperr.CodeUnauthorized:
		httperr.Forbidden(c, httperr.CodeUnauthorized, "Access forbidden: Insufficient permissions")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error")
	}
}
