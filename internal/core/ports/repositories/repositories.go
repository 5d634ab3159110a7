package repositories

import (
	"context"

	"github.com/SscSPs/corp_portal/internal/core/domain"
)

// AnnouncementRepository lists pinned announcements first, then newest first.
type AnnouncementRepository interface {
	ContentStore[domain.Announcement]
}

// DocumentRepository lists documents newest upload first.
type DocumentRepository interface {
	ContentStore[domain.Document]
}

// OfficerRepository holds the officer directory in seed order.
type OfficerRepository interface {
	ContentStore[domain.Officer]
}

// OfficerReader is the read side of the officer directory.
type OfficerReader interface {
	ContentReader[domain.Officer]
}

// UserRepository holds the session user directory.
type UserRepository interface {
	ContentStore[domain.User]
}

// ChannelRepository holds chat channels in seed order.
type ChannelRepository interface {
	ContentStore[domain.ChatChannel]
}

// MessageLog is the append-only message history of every channel.
type MessageLog interface {
	// AppendMessage adds msg to the end of its channel's history.
	AppendMessage(ctx context.Context, msg domain.ChatMessage)

	// ListMessages returns a channel's history oldest first.
	ListMessages(ctx context.Context, channelID string) []domain.ChatMessage

	// ListMessagesPage returns up to limit messages after nextToken, oldest
	// first. A limit of zero returns the rest of the history. The returned
	// token is nil on the last page.
	ListMessagesPage(ctx context.Context, channelID string, limit int, nextToken *string) ([]domain.ChatMessage, *string, error)
}

// ChannelPinStore keeps each user's pinned channels.
type ChannelPinStore interface {
	// TogglePin flips the pin and reports whether the channel is now pinned.
	TogglePin(ctx context.Context, userID, channelID string) bool

	// PinnedChannels returns the user's pinned channel ids in pin order.
	PinnedChannels(ctx context.Context, userID string) []string
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	AnnouncementRepo AnnouncementRepository
	DocumentRepo     DocumentRepository
	OfficerRepo      OfficerRepository
	UserRepo         UserRepository
	ChannelRepo      ChannelRepository
	MessageLog       MessageLog
	ChannelPins      ChannelPinStore
}
