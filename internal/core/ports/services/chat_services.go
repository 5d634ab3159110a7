package services

import (
	"context"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/dto"
)

// ChannelReaderSvc defines read operations on chat channels. Channels the
// actor is not admitted to are reported as not found.
type ChannelReaderSvc interface {
	// ListChannels returns the channels actor is admitted to, the actor's
	// pinned channels first.
	ListChannels(ctx context.Context, actor domain.User) []domain.ChannelView

	// GetChannel retrieves one channel.
	GetChannel(ctx context.Context, actor domain.User, channelID string) (*domain.ChannelView, error)

	// ListMessages returns one page of a channel's history oldest first and
	// the token for the following page, nil when none remain.
	ListMessages(ctx context.Context, actor domain.User, channelID string, params dto.ListMessagesParams) ([]domain.ChatMessage, *string, error)
}

// ChannelWriterSvc defines write operations on chat channels.
type ChannelWriterSvc interface {
	// SendMessage appends actor's message to the channel.
	SendMessage(ctx context.Context, actor domain.User, channelID string, req dto.SendMessageRequest) (*domain.ChatMessage, error)

	// EditChannel renames or retypes a channel and posts a system notice.
	EditChannel(ctx context.Context, actor domain.User, channelID string, req dto.EditChannelRequest) (*domain.ChatChannel, error)

	// TogglePin flips the channel in actor's pinned list.
	TogglePin(ctx context.Context, actor domain.User, channelID string) (*domain.ChannelView, error)

	// AddMembers bumps the member count by the number of distinct known
	// officers selected and posts one system notice naming them.
	AddMembers(ctx context.Context, actor domain.User, channelID string, req dto.AddMembersRequest) (*domain.ChatChannel, *domain.ChatMessage, error)
}

// ChatSvcFacade combines all chat-related service interfaces.
type ChatSvcFacade interface {
	ChannelReaderSvc
	ChannelWriterSvc
}
