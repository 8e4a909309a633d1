// Package authz holds the operation -> allowed-roles policy table. Role
// checks live here, at the service boundary, instead of ad-hoc branching
// inside handlers.
package authz

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Operation string

const (
	OpListBarbers         Operation = "list_barbers"
	OpListServices        Operation = "list_services"
	OpRegisterService     Operation = "register_service"
	OpDeleteService       Operation = "delete_service"
	OpCreateAppointment   Operation = "create_appointment"
	OpEditAppointment     Operation = "edit_appointment"
	OpDeleteAppointment   Operation = "delete_appointment"
	OpCompleteAppointment Operation = "complete_appointment"
	OpListByBarber        Operation = "list_by_barber"
	OpListByUser          Operation = "list_by_user"
	OpGetPoints           Operation = "get_points"
	OpRedeemFreeService   Operation = "redeem_free_service"
)

var policy = map[Operation][]string{
	OpListBarbers:         {models.RoleUser},
	OpListServices:        {models.RoleUser, models.RoleBarber},
	OpRegisterService:     {models.RoleBarber},
	OpDeleteService:       {models.RoleBarber},
	OpCreateAppointment:   {models.RoleUser},
	OpEditAppointment:     {models.RoleUser},
	OpDeleteAppointment:   {models.RoleUser},
	OpCompleteAppointment: {models.RoleBarber},
	OpListByBarber:        {models.RoleUser, models.RoleBarber},
	OpListByUser:          {models.RoleUser},
	OpGetPoints:           {models.RoleUser},
	OpRedeemFreeService:   {models.RoleUser},
}

func Allowed(op Operation, role string) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}

// Require gates a route on the policy table. Must run after AuthMiddleware.
func Require(op Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.MustGet(middleware.ContextUserRole).(string)
		if !Allowed(op, role) {
			httperr.Forbidden(c, httperr.CodeUnauthorized, "Access forbidden: Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
