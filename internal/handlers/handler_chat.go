package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chatHandler handles HTTP requests for chat channels.
type chatHandler struct {
	chatService portssvc.ChatSvcFacade
}

func newChatHandler(cs portssvc.ChatSvcFacade) *chatHandler {
	return &chatHandler{chatService: cs}
}

// registerChatRoutes registers routes related to chat channels and messages.
func registerChatRoutes(rg *gin.RouterGroup, chatService portssvc.ChatSvcFacade) {
	h := newChatHandler(chatService)

	channels := rg.Group("/channels")
	{
		channels.GET("", h.listChannels)
		channels.GET("/:id", h.getChannel)
		channels.PUT("/:id", h.editChannel)
		channels.POST("/:id/pin", h.togglePin)
		channels.GET("/:id/messages", h.listMessages)
		channels.POST("/:id/messages", h.sendMessage)
		channels.POST("/:id/members", h.addMembers)
	}
}

// listChannels godoc
// @Summary List chat channels
// @Description Lists the channels the acting user is admitted to, pinned first
// @Tags chat
// @Produce  json
// @Success 200 {object} dto.ListChannelsResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Security ActingUser
// @Router /channels [get]
func (h *chatHandler) listChannels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}
	views := h.chatService.ListChannels(c.Request.Context(), user)
	c.JSON(http.StatusOK, dto.ToListChannelsResponse(views, user))
}

// getChannel godoc
// @Summary Get a channel by ID
// @Description Retrieves one channel the acting user is admitted to
// @Tags chat
// @Produce  json
// @Param   id path string true "Channel ID"
// @Success 200 {object} dto.ChannelResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Channel not found"
// @Security ActingUser
// @Router /channels/{id} [get]
func (h *chatHandler) getChannel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	channelID := c.Param("id")
	view, err := h.chatService.GetChannel(c.Request.Context(), user, channelID)
	if err != nil {
		respondError(c, logger.With(slog.String("channel_id", channelID)), err, "Failed to retrieve channel")
		return
	}
	c.JSON(http.StatusOK, dto.ToChannelResponse(*view, user))
}

// editChannel godoc
// @Summary Edit a channel
// @Description Renames or retypes a channel and posts a system notice (VP and above)
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   id path string true "Channel ID"
// @Param   channel body dto.EditChannelRequest true "Channel name and type"
// @Success 200 {object} domain.ChatChannel
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Channel not found"
// @Security ActingUser
// @Router /channels/{id} [put]
func (h *chatHandler) editChannel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	channelID := c.Param("id")
	logger = logger.With(slog.String("channel_id", channelID))

	var req dto.EditChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EditChannel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	channel, err := h.chatService.EditChannel(c.Request.Context(), user, channelID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update channel")
		return
	}
	c.JSON(http.StatusOK, channel)
}

// togglePin godoc
// @Summary Pin or unpin a channel
// @Description Flips the channel in the acting user's pinned list
// @Tags chat
// @Produce  json
// @Param   id path string true "Channel ID"
// @Success 200 {object} dto.ChannelResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Channel not found"
// @Security ActingUser
// @Router /channels/{id}/pin [post]
func (h *chatHandler) togglePin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	channelID := c.Param("id")
	view, err := h.chatService.TogglePin(c.Request.Context(), user, channelID)
	if err != nil {
		respondError(c, logger.With(slog.String("channel_id", channelID)), err, "Failed to pin channel")
		return
	}
	c.JSON(http.StatusOK, dto.ToChannelResponse(*view, user))
}

// listMessages godoc
// @Summary List channel messages
// @Description Returns one page of a channel's history, oldest first
// @Tags chat
// @Produce  json
// @Param   id path string true "Channel ID"
// @Param   limit query int false "Page size (1-200); omit for the whole history"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListMessagesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Channel not found"
// @Security ActingUser
// @Router /channels/{id}/messages [get]
func (h *chatHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var params dto.ListMessagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListMessages", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	channelID := c.Param("id")
	msgs, nextToken, err := h.chatService.ListMessages(c.Request.Context(), user, channelID, params)
	if err != nil {
		respondError(c, logger.With(slog.String("channel_id", channelID)), err, "Failed to retrieve messages")
		return
	}
	c.JSON(http.StatusOK, dto.ListMessagesResponse{Messages: msgs, NextToken: nextToken})
}

// sendMessage godoc
// @Summary Send a message
// @Description Appends the acting user's message to the channel
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   id path string true "Channel ID"
// @Param   message body dto.SendMessageRequest true "Message text"
// @Success 201 {object} domain.ChatMessage
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Channel not found"
// @Security ActingUser
// @Router /channels/{id}/messages [post]
func (h *chatHandler) sendMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	channelID := c.Param("id")
	logger = logger.With(slog.String("channel_id", channelID))

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SendMessage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	msg, err := h.chatService.SendMessage(c.Request.Context(), user, channelID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// addMembers godoc
// @Summary Add members to a channel
// @Description Adds officers to the member count and posts one system notice
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   id path string true "Channel ID"
// @Param   members body dto.AddMembersRequest true "Officer IDs"
// @Success 200 {object} dto.AddMembersResponse
// @Failure 400 {object} map[string]string "No known officers selected"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Channel not found"
// @Security ActingUser
// @Router /channels/{id}/members [post]
func (h *chatHandler) addMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	channelID := c.Param("id")
	logger = logger.With(slog.String("channel_id", channelID))

	var req dto.AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMembers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	channel, notice, err := h.chatService.AddMembers(c.Request.Context(), user, channelID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to add members")
		return
	}
	c.JSON(http.StatusOK, dto.AddMembersResponse{Channel: *channel, SystemMessage: *notice})
}
