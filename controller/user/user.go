package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
	"ppdb/controller"
	"ppdb/dto"
	"ppdb/middleware"
	"ppdb/services"
)

func UserController(router gin.IRouter, users *services.UserService) {
	routes := router.Group("/api/profile", middleware.RequireAuth())
	{
		routes.GET("", func(c *gin.Context) {
			GetProfile(c, users)
		})
		routes.PUT("", func(c *gin.Context) {
			UpdateProfile(c, users)
		})
		routes.PUT("/photo", func(c *gin.Context) {
			UpdatePhoto(c, users)
		})
	}
}

func GetProfile(c *gin.Context, users *services.UserService) {
	u, err := users.Get(c.Request.Context(), middleware.GetSession(c).UserID)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": dto.NewProfileResponse(u)})
}

func UpdateProfile(c *gin.Context, users *services.UserService) {
	var req dto.UpdateProfileRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	u, err := users.UpdateProfile(c.Request.Context(), middleware.GetSession(c).UserID, req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated", "user": dto.NewProfileResponse(u)})
}

func UpdatePhoto(c *gin.Context, users *services.UserService) {
	var req dto.UpdatePhotoRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}
	if err := users.UpdatePhoto(c.Request.Context(), middleware.GetSession(c).UserID, req.PhotoURL); err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Photo updated"})
}
