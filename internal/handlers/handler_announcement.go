package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// announcementHandler handles HTTP requests for the announcement board.
type announcementHandler struct {
	announcementService portssvc.AnnouncementSvcFacade
}

func newAnnouncementHandler(as portssvc.AnnouncementSvcFacade) *announcementHandler {
	return &announcementHandler{announcementService: as}
}

// registerAnnouncementRoutes registers routes related to announcements.
func registerAnnouncementRoutes(rg *gin.RouterGroup, announcementService portssvc.AnnouncementSvcFacade) {
	h := newAnnouncementHandler(announcementService)

	announcements := rg.Group("/announcements")
	{
		announcements.GET("", h.listAnnouncements)
		announcements.POST("", h.createAnnouncement)
		announcements.GET("/unread-count", h.unreadCount)
		announcements.GET("/:id", h.getAnnouncement)
		announcements.PUT("/:id", h.updateAnnouncement)
		announcements.DELETE("/:id", h.deleteAnnouncement)
		announcements.POST("/:id/pin", h.togglePin)
		announcements.POST("/:id/read", h.toggleRead)
	}
}

// listAnnouncements godoc
// @Summary List announcements
// @Description Lists the announcements the acting user can see, pinned first then newest
// @Tags announcements
// @Produce  json
// @Param   priority query string false "Priority filter (all, high, medium, low)" default(all)
// @Param   department query string false "Department filter" default(all)
// @Success 200 {object} dto.ListAnnouncementsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Security ActingUser
// @Router /announcements [get]
func (h *announcementHandler) listAnnouncements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var params dto.ListAnnouncementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListAnnouncements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	items := h.announcementService.ListAnnouncements(c.Request.Context(), user, params.ToFilter())
	c.JSON(http.StatusOK, dto.ToListAnnouncementsResponse(items, user))
}

// unreadCount godoc
// @Summary Count unread announcements
// @Description Counts visible announcements the acting user has not marked as read
// @Tags announcements
// @Produce  json
// @Success 200 {object} dto.UnreadCountResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Security ActingUser
// @Router /announcements/unread-count [get]
func (h *announcementHandler) unreadCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{
		Unread: h.announcementService.UnreadCount(c.Request.Context(), user),
	})
}

// getAnnouncement godoc
// @Summary Get an announcement by ID
// @Description Retrieves one announcement if the acting user may view it
// @Tags announcements
// @Produce  json
// @Param   id path string true "Announcement ID"
// @Success 200 {object} dto.AnnouncementResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Announcement not found"
// @Security ActingUser
// @Router /announcements/{id} [get]
func (h *announcementHandler) getAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	announcementID := c.Param("id")
	a, err := h.announcementService.GetAnnouncement(c.Request.Context(), user, announcementID)
	if err != nil {
		respondError(c, logger.With(slog.String("announcement_id", announcementID)), err, "Failed to retrieve announcement")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(*a, user))
}

// createAnnouncement godoc
// @Summary Create an announcement
// @Description Posts a new announcement authored by the acting user (Officer and above)
// @Tags announcements
// @Accept  json
// @Produce  json
// @Param   announcement body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.AnnouncementResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Role not allowed to create announcements"
// @Failure 500 {object} map[string]string "Failed to create announcement"
// @Security ActingUser
// @Router /announcements [post]
func (h *announcementHandler) createAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAnnouncement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	a, err := h.announcementService.CreateAnnouncement(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create announcement")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAnnouncementResponse(*a, user))
}

// updateAnnouncement godoc
// @Summary Update an announcement
// @Description Edits an announcement; only its author or an Admin may do so
// @Tags announcements
// @Accept  json
// @Produce  json
// @Param   id path string true "Announcement ID"
// @Param   announcement body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} dto.AnnouncementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Announcement not found"
// @Security ActingUser
// @Router /announcements/{id} [put]
func (h *announcementHandler) updateAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	announcementID := c.Param("id")
	logger = logger.With(slog.String("announcement_id", announcementID))

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAnnouncement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	a, err := h.announcementService.UpdateAnnouncement(c.Request.Context(), user, announcementID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update announcement")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(*a, user))
}

// deleteAnnouncement godoc
// @Summary Delete an announcement
// @Description Removes an announcement; only its author or an Admin may do so
// @Tags announcements
// @Produce  json
// @Param   id path string true "Announcement ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Announcement not found"
// @Security ActingUser
// @Router /announcements/{id} [delete]
func (h *announcementHandler) deleteAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	announcementID := c.Param("id")
	if err := h.announcementService.DeleteAnnouncement(c.Request.Context(), user, announcementID); err != nil {
		respondError(c, logger.With(slog.String("announcement_id", announcementID)), err, "Failed to delete announcement")
		return
	}
	c.Status(http.StatusNoContent)
}

// togglePin godoc
// @Summary Pin or unpin an announcement
// @Description Flips the pinned flag (author, VP and above)
// @Tags announcements
// @Produce  json
// @Param   id path string true "Announcement ID"
// @Success 200 {object} dto.AnnouncementResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Announcement not found"
// @Security ActingUser
// @Router /announcements/{id}/pin [post]
func (h *announcementHandler) togglePin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	announcementID := c.Param("id")
	a, err := h.announcementService.TogglePin(c.Request.Context(), user, announcementID)
	if err != nil {
		respondError(c, logger.With(slog.String("announcement_id", announcementID)), err, "Failed to pin announcement")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(*a, user))
}

// toggleRead godoc
// @Summary Mark an announcement read or unread
// @Description Toggles the acting user in the read ledger; views only ever increase
// @Tags announcements
// @Produce  json
// @Param   id path string true "Announcement ID"
// @Success 200 {object} dto.AnnouncementResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Announcement not found"
// @Security ActingUser
// @Router /announcements/{id}/read [post]
func (h *announcementHandler) toggleRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	announcementID := c.Param("id")
	a, err := h.announcementService.ToggleRead(c.Request.Context(), user, announcementID)
	if err != nil {
		respondError(c, logger.With(slog.String("announcement_id", announcementID)), err, "Failed to update read state")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(*a, user))
}
