// Package admin serves the back-office API. Every route requires a session
// whose stored role is admin.
package admin

import (
	"github.com/gin-gonic/gin"

	"ppdb/middleware"
	"ppdb/model"
	"ppdb/services"
)

func AdminController(router gin.IRouter, users *services.UserService, regs *services.RegistrationService) {
	routes := router.Group("/api/admin", middleware.RequireRole(model.RoleAdmin))
	{
		routes.GET("/dashboard", func(c *gin.Context) {
			Dashboard(c, users, regs)
		})

		routes.GET("/registrations", func(c *gin.Context) {
			ListRegistrations(c, regs)
		})
		routes.POST("/registrations", func(c *gin.Context) {
			CreateRegistration(c, regs)
		})
		routes.PUT("/registrations/:id", func(c *gin.Context) {
			UpdateRegistration(c, regs)
		})
		routes.PATCH("/registrations/:id/status", func(c *gin.Context) {
			UpdateRegistrationStatus(c, regs)
		})
		routes.DELETE("/registrations/:id", func(c *gin.Context) {
			DeleteRegistration(c, regs)
		})

		routes.GET("/users", func(c *gin.Context) {
			ListUsers(c, users)
		})
		routes.POST("/users", func(c *gin.Context) {
			CreateUser(c, users)
		})
		routes.PUT("/users/:id", func(c *gin.Context) {
			UpdateUser(c, users)
		})
		routes.PATCH("/users/:id/role", func(c *gin.Context) {
			ChangeRole(c, users)
		})
		routes.DELETE("/users/:id", func(c *gin.Context) {
			DeleteUser(c, users)
		})
	}
}
