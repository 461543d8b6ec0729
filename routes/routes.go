package routes

import (
	"net/http"
	"time"

	"rockgrip/handlers"
	"rockgrip/middleware"
	"rockgrip/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the wired handlers for route registration.
type HandlerBundle struct {
	Lead      *handlers.LeadHandler
	Locations *handlers.LocationsHandler
	Catalog   *handlers.CatalogHandler
	Careers   *handlers.CareersHandler
	Admin     *handlers.AdminHandler
}

// RegisterLeadRoutes registers the public lead-capture endpoint.
func RegisterLeadRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.POST("/join", hb.Lead.SubmitJoinRequestHandler)
	}
}

// RegisterSiteDataRoutes registers the read-only dataset endpoints the
// marketing pages render.
func RegisterSiteDataRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/locations", hb.Locations.GetLocationsHandler)
		api.GET("/catalog/pricing", hb.Catalog.GetPricingHandler)
		api.GET("/catalog/freight", hb.Catalog.GetFreightHandler)
		api.GET("/careers/jobs", hb.Careers.GetOpeningsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.LoginHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("/leads", hb.Admin.ListLeadsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLeadRoutes(r, hb)
	RegisterSiteDataRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
