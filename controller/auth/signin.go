package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
	"ppdb/controller"
	"ppdb/dto"
	"ppdb/middleware"
	"ppdb/services"
)

const (
	MsgLoginSuccess  = "Login successful"
	MsgLogoutSuccess = "Logged out"
)

func SignInController(router gin.IRouter, authSvc *services.AuthService, tokens *services.TokenService, users *services.UserService, cookies middleware.CookieOptions) {
	routes := router.Group("/api/auth")
	{
		routes.POST("/login", func(c *gin.Context) {
			Signin(c, authSvc, tokens, cookies)
		})
		routes.POST("/logout", func(c *gin.Context) {
			Signout(c, cookies)
		})
		routes.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
			Me(c, users)
		})
	}
}

func Signin(c *gin.Context, authSvc *services.AuthService, tokens *services.TokenService, cookies middleware.CookieOptions) {
	var req dto.LoginRequest
	if !controller.BindJSON(c, &req, "message") {
		return
	}

	u, err := authSvc.Login(c.Request.Context(), req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	token, err := tokens.CreateAccessToken(u)
	if err != nil {
		apierror.Respond(c, apierror.Internal("sign token", err))
		return
	}
	middleware.SetSessionCookies(c, cookies, token, u.Role)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: MsgLoginSuccess,
		User:    dto.NewUserProfile(u),
	})
}

func Signout(c *gin.Context, cookies middleware.CookieOptions) {
	middleware.ClearSessionCookies(c, cookies)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": MsgLogoutSuccess})
}

// Me re-reads the user so profile edits show up without a new login.
func Me(c *gin.Context, users *services.UserService) {
	sess := middleware.GetSession(c)
	u, err := users.Get(c.Request.Context(), sess.UserID)
	if err != nil {
		apierror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": dto.NewUserProfile(u)})
}
