package routes

import (
	"net/http"
	"time"

	"kycdesk/handlers"
	"kycdesk/middleware"
	"kycdesk/models"
	"kycdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers the public client-facing flow: code
// validation, session slot management and the submission forms.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.DeviceIDMiddleware())
	{
		api.POST("/clients/validate", hb.ValidateClient)
		api.POST("/kyc/session", hb.StartSession)
		api.GET("/kyc/session", hb.GetSession)
		api.DELETE("/kyc/session", hb.CancelSession)
		api.POST("/kyc/submissions/natural", hb.SubmitNatural)
		api.POST("/kyc/submissions/legal", hb.SubmitLegal)
	}
}

// RegisterCompanyRoutes registers the staff surface behind JWT auth.
func RegisterCompanyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/company")
	{
		api.POST("/login", hb.Login)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthStaffMiddleware())
		protected.POST("/logout", hb.Logout)
		protected.GET("/dashboard", hb.Dashboard)
		protected.GET("/documents/expiring", hb.Expiring)
		protected.GET("/documents/:id", hb.ViewDocument)
		protected.GET("/documents/:id/route", hb.ResolveRoute)
		protected.POST("/documents/:id/review", hb.ReviewAction)

		admin := protected.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.POST("/clients", hb.CreateClient)
		admin.GET("/clients", hb.ListClients)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterClientRoutes(r, hb)
	RegisterCompanyRoutes(r, hb)
	RegisterHealthRoute(r)
}
