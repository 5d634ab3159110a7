package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvc
}

// registerAnalyticsRoutes registers the read analytics route.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvc) {
	h := &analyticsHandler{analyticsService: analyticsService}
	rg.GET("/analytics", h.getReport)
}

// getReport godoc
// @Summary Read analytics
// @Description Per-item reads and audience with a summary (VP and above)
// @Tags analytics
// @Produce  json
// @Param   type query string false "Content type (all, announcement, document)" default(all)
// @Param   period query string false "Period (7days, 30days, 90days, all)" default(7days)
// @Success 200 {object} domain.AnalyticsReport
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security ActingUser
// @Router /analytics [get]
func (h *analyticsHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var params dto.AnalyticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for Analytics", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.analyticsService.Report(c.Request.Context(), user, params.ToFilter())
	if err != nil {
		respondError(c, logger, err, "Failed to build analytics report")
		return
	}
	c.JSON(http.StatusOK, report)
}
