// Package routes wires the HTTP handlers onto the gin engine.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appderecho/backend/internal/app/controllers"
	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/middleware"
)

// Controllers groups the handlers the router needs.
type Controllers struct {
	Auth         *controllers.AuthController
	Registration *controllers.RegistrationController
	Roster       *controllers.RosterController
	Intake       *controllers.IntakeController
}

// Register mounts every route of the API.
func Register(engine *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "Consultorio Jurídico API",
			"status": "ok",
		})
	})
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := engine.Group("/api")

	auth := api.Group("/auth")
	{
		// Public registration workflow
		auth.POST("/validar-codigo", ctrl.Registration.VerifyCode)
		auth.POST("/validar-datos-personales", ctrl.Registration.VerifyDocument)
		auth.POST("/registro-estudiante", ctrl.Registration.Register)

		// Sessions
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.Refresh)
		auth.POST("/forgot-password", ctrl.Auth.ForgotPassword)
		auth.POST("/reset-password", ctrl.Auth.ResetPassword)

		// Authenticated profile
		me := auth.Group("", authMW.JWTAuth())
		{
			me.GET("/me", ctrl.Auth.Me)
			me.PUT("/me", ctrl.Auth.UpdateProfile)
			me.POST("/change-password", ctrl.Auth.ChangePassword)
		}

		// Coordinator roster management
		coordinator := auth.Group("/coordinador",
			authMW.JWTAuth(), authMW.RoleRequired(models.RoleCoordinator))
		{
			coordinator.POST("/registrar-estudiante", ctrl.Roster.Create)
			coordinator.GET("/estudiantes", ctrl.Roster.List)
			coordinator.PUT("/estudiante/:id", ctrl.Roster.Update)
			coordinator.DELETE("/estudiante/:id", ctrl.Roster.Delete)
		}
	}

	intake := api.Group("/control-operativo", authMW.JWTAuth())
	{
		intake.POST("", ctrl.Intake.Create)
		intake.GET("", ctrl.Intake.List)
		intake.GET("/:id", ctrl.Intake.Get)
		intake.PUT("/:id", ctrl.Intake.Update)
		intake.DELETE("/:id", ctrl.Intake.Delete)
		intake.POST("/:id/reactivar", ctrl.Intake.Reactivate)
		intake.GET("/:id/pdf", ctrl.Intake.ExportPDF)
	}
}
