package routes

import (
	"net/http"
	"time"

	"linkup/handlers"
	"linkup/middleware"
	"linkup/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupCORS applies the cross-origin policy for browser clients.
func SetupCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
}

// RegisterNotificationRoutes registers the recipient-facing endpoints.
func RegisterNotificationRoutes(r *gin.Engine, nh *handlers.NotificationHandler, ph *handlers.PreferenceHandler) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", nh.ListHandler)
		api.GET("/unread-count", nh.UnreadCountHandler)
		api.PUT("/:id/read", nh.MarkAsReadHandler)
		api.PUT("/read-all", nh.MarkAllAsReadHandler)
		api.DELETE("/:id", nh.DeleteHandler)
		api.PUT("/pause", ph.PauseHandler)
		api.PUT("/resume", ph.ResumeHandler)
	}
}

// RegisterDeviceRoutes registers push-token management endpoints.
func RegisterDeviceRoutes(r *gin.Engine, ph *handlers.PreferenceHandler) {
	api := r.Group("/api/devices")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/push-token", ph.RegisterPushTokenHandler)
		api.DELETE("/push-token", ph.UnregisterPushTokenHandler)
	}
}

// RegisterInternalRoutes registers service-to-service endpoints. These are
// expected to be reachable only inside the private network, so they carry no
// user auth.
func RegisterInternalRoutes(r *gin.Engine, dh *handlers.DispatchHandler) {
	api := r.Group("/api/internal")
	{
		api.POST("/notifications/dispatch", dh.DispatchHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
