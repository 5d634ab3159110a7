package dto

import (
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
)

// SendMessageRequest carries a chat message.
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

// EditChannelRequest carries the channel settings form.
type EditChannelRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"required,oneof=public private department"`
}

// AddMembersRequest carries the officers selected in the add member dialog.
type AddMembersRequest struct {
	OfficerIDs []string `json:"officerIDs" binding:"required,min=1,dive,required"`
}

// ChannelResponse is a channel as listed for the acting user.
type ChannelResponse struct {
	domain.ChatChannel
	Pinned  bool `json:"pinned"`
	CanEdit bool `json:"canEdit"`
}

// ToChannelResponse converts a channel view for the acting user.
func ToChannelResponse(v domain.ChannelView, actor domain.User) ChannelResponse {
	return ChannelResponse{
		ChatChannel: v.ChatChannel,
		Pinned:      v.Pinned,
		CanEdit:     policy.CanEditChannel(actor, v.ChatChannel),
	}
}

// ListChannelsResponse is the chat sidebar payload.
type ListChannelsResponse struct {
	Channels []ChannelResponse `json:"channels"`
}

// ToListChannelsResponse converts the accessible channels for the acting user.
func ToListChannelsResponse(views []domain.ChannelView, actor domain.User) ListChannelsResponse {
	res := ListChannelsResponse{Channels: make([]ChannelResponse, len(views))}
	for i, v := range views {
		res.Channels[i] = ToChannelResponse(v, actor)
	}
	return res
}

// ListMessagesParams pages through a channel's history. A zero Limit
// returns everything after NextToken.
type ListMessagesParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListMessagesResponse is one page of a channel's history.
type ListMessagesResponse struct {
	Messages  []domain.ChatMessage `json:"messages"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// AddMembersResponse reports the updated channel and the notice posted.
type AddMembersResponse struct {
	Channel       domain.ChatChannel `json:"channel"`
	SystemMessage domain.ChatMessage `json:"systemMessage"`
}
