package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
	"ppdb/controller"
	"ppdb/dto"
	"ppdb/services"
)

func Dashboard(c *gin.Context, users *services.UserService, regs *services.RegistrationService) {
	ctx := c.Request.Context()
	totalUsers, err := users.CountAll(ctx)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	total, byStatus, err := regs.CountByStatus(ctx)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.DashboardResponse{
		TotalUsers:         totalUsers,
		TotalRegistrations: total,
		ByStatus:           byStatus,
	}})
}

func ListRegistrations(c *gin.Context, regs *services.RegistrationService) {
	list, err := regs.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.NewRegistrationResponses(list)})
}

func CreateRegistration(c *gin.Context, regs *services.RegistrationService) {
	var req dto.RegistrationRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	r, err := regs.Create(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": r.ID, "data": dto.NewRegistrationResponse(r)})
}

func UpdateRegistration(c *gin.Context, regs *services.RegistrationService) {
	var req dto.RegistrationRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	r, err := regs.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.NewRegistrationResponse(r)})
}

func UpdateRegistrationStatus(c *gin.Context, regs *services.RegistrationService) {
	var req dto.StatusRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	if err := regs.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}

func DeleteRegistration(c *gin.Context, regs *services.RegistrationService) {
	if err := regs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Registration deleted"})
}
