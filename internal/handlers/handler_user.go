package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/corp_portal/internal/core/policy"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests about the acting user.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers routes for the acting user's profile.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	me := rg.Group("/me")
	{
		me.GET("", h.getMe)
		me.PATCH("", h.updateMe)
		me.GET("/navigation", h.getNavigation)
	}
}

// getMe godoc
// @Summary Get the acting user
// @Description Returns the acting user and the sections they may open
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Security ActingUser
// @Router /me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateMe godoc
// @Summary Update the acting user's profile
// @Description Edits name, email, phone, avatar or status
// @Tags users
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 409 {object} map[string]string "Name already used by another user"
// @Security ActingUser
// @Router /me [patch]
func (h *userHandler) updateMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update profile")
		return
	}
	// The role switcher override stays in effect for the response.
	c.JSON(http.StatusOK, dto.ToUserResponse(updated.WithRole(user.Role)))
}

// getNavigation godoc
// @Summary Get navigation sections
// @Description Lists the portal sections the acting user may open
// @Tags users
// @Produce  json
// @Success 200 {object} dto.NavigationResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Security ActingUser
// @Router /me/navigation [get]
func (h *userHandler) getNavigation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NavigationResponse{
		Role:     user.Role,
		Sections: policy.VisibleSections(user),
	})
}
