package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
	"ppdb/controller"
	"ppdb/dto"
	"ppdb/services"
)

const MsgRegisterSuccess = "Registration successful"

func SignUpController(router gin.IRouter, authSvc *services.AuthService) {
	router.POST("/api/auth/register", func(c *gin.Context) {
		Signup(c, authSvc)
	})
}

func Signup(c *gin.Context, authSvc *services.AuthService) {
	var req dto.RegisterRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}

	u, err := authSvc.Register(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		Message: MsgRegisterSuccess,
		UserID:  u.ID,
		Role:    u.Role,
	})
}
