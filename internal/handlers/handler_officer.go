package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// officerHandler handles the officer directory and the admin panel.
type officerHandler struct {
	officerService portssvc.OfficerSvcFacade
}

func newOfficerHandler(svc portssvc.OfficerSvcFacade) *officerHandler {
	return &officerHandler{officerService: svc}
}

// registerOfficerRoutes registers routes related to officers.
func registerOfficerRoutes(rg *gin.RouterGroup, officerService portssvc.OfficerSvcFacade) {
	h := newOfficerHandler(officerService)

	officers := rg.Group("/officers")
	{
		officers.GET("", h.listOfficers)
		officers.GET("/stats", h.getStats)
		officers.GET("/:id", h.getOfficer)
		officers.PUT("/:id/position", h.changePosition)
	}
}

// listOfficers godoc
// @Summary List officers
// @Description Searches the officer directory (VP and above)
// @Tags officers
// @Produce  json
// @Param   search query string false "Name, department, email or position"
// @Param   position query string false "Position filter" default(all)
// @Param   department query string false "Department filter" default(all)
// @Success 200 {object} dto.ListOfficersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security ActingUser
// @Router /officers [get]
func (h *officerHandler) listOfficers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var params dto.ListOfficersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListOfficers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	officers, err := h.officerService.ListOfficers(c.Request.Context(), user, params.ToFilter())
	if err != nil {
		respondError(c, logger, err, "Failed to list officers")
		return
	}
	c.JSON(http.StatusOK, dto.ListOfficersResponse{Officers: officers})
}

// getStats godoc
// @Summary Officer statistics
// @Description Counts officers per position and lists departments (VP and above)
// @Tags officers
// @Produce  json
// @Success 200 {object} dto.OfficerStatsResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security ActingUser
// @Router /officers/stats [get]
func (h *officerHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	stats, err := h.officerService.Stats(c.Request.Context(), user)
	if err != nil {
		respondError(c, logger, err, "Failed to compute officer stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfficerStatsResponse(*stats))
}

// getOfficer godoc
// @Summary Get an officer by ID
// @Description Retrieves one officer from the directory (VP and above)
// @Tags officers
// @Produce  json
// @Param   id path string true "Officer ID"
// @Success 200 {object} domain.Officer
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Officer not found"
// @Security ActingUser
// @Router /officers/{id} [get]
func (h *officerHandler) getOfficer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	officerID := c.Param("id")
	officer, err := h.officerService.GetOfficer(c.Request.Context(), user, officerID)
	if err != nil {
		respondError(c, logger.With(slog.String("officer_id", officerID)), err, "Failed to retrieve officer")
		return
	}
	c.JSON(http.StatusOK, officer)
}

// changePosition godoc
// @Summary Change an officer's position
// @Description Sets an officer's position from the admin panel (Admin only)
// @Tags officers
// @Accept  json
// @Produce  json
// @Param   id path string true "Officer ID"
// @Param   position body dto.ChangePositionRequest true "New position"
// @Success 200 {object} domain.Officer
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Officer not found"
// @Security ActingUser
// @Router /officers/{id}/position [put]
func (h *officerHandler) changePosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	officerID := c.Param("id")
	logger = logger.With(slog.String("officer_id", officerID))

	var req dto.ChangePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChangePosition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	officer, err := h.officerService.ChangePosition(c.Request.Context(), user, officerID, domain.Role(req.Position))
	if err != nil {
		respondError(c, logger, err, "Failed to change position")
		return
	}
	c.JSON(http.StatusOK, officer)
}
