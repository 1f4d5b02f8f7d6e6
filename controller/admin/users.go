package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
	"ppdb/controller"
	"ppdb/dto"
	"ppdb/services"
)

// ListUsers returns the student accounts only; admins are not listed.
func ListUsers(c *gin.Context, users *services.UserService) {
	list, err := users.ListStudents(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.NewUserResponses(list)})
}

func CreateUser(c *gin.Context, users *services.UserService) {
	var req dto.UserRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	u, err := users.Create(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": u.ID, "data": dto.NewUserResponse(u)})
}

func UpdateUser(c *gin.Context, users *services.UserService) {
	var req dto.UserRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	u, err := users.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.NewUserResponse(u)})
}

func ChangeRole(c *gin.Context, users *services.UserService) {
	var req dto.RoleRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	if err := users.ChangeRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Role updated"})
}

func DeleteUser(c *gin.Context, users *services.UserService) {
	if err := users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
