package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/SscSPs/corp_portal/internal/platform/config"
	"github.com/SscSPs/corp_portal/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if cfg.EnableMetrics {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Every v1 request acts as a resolved session user
	v1 := r.Group("/api/v1", middleware.ActingUserMiddleware(services.User, cfg.DefaultUserID, cfg.EnableRoleSwitcher))

	registerUserRoutes(v1, services.User)
	registerAnnouncementRoutes(v1, services.Announcement)
	registerDocumentRoutes(v1, services.Document)
	registerChatRoutes(v1, services.Chat)
	registerOfficerRoutes(v1, services.Officer)
	registerAnalyticsRoutes(v1, services.Analytics)
}
