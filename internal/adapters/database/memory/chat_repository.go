package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
	"github.com/SscSPs/corp_portal/internal/utils/pagination"
)

// MessageLog keeps per-channel message history.
type MessageLog struct {
	mu       sync.RWMutex
	messages map[string][]domain.ChatMessage
}

var _ portsrepo.MessageLog = (*MessageLog)(nil)

// NewMessageLog creates a log holding seed, keyed by channel id.
func NewMessageLog(seed map[string][]domain.ChatMessage) *MessageLog {
	l := &MessageLog{messages: make(map[string][]domain.ChatMessage, len(seed))}
	for channelID, msgs := range seed {
		l.messages[channelID] = slices.Clone(msgs)
	}
	return l
}

// AppendMessage adds msg to the end of its channel's history.
func (l *MessageLog) AppendMessage(ctx context.Context, msg domain.ChatMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.messages[msg.ChannelID]
	next := make([]domain.ChatMessage, len(current), len(current)+1)
	copy(next, current)
	l.messages[msg.ChannelID] = append(next, msg)
}

// ListMessages returns a copy of a channel's history, oldest first.
func (l *MessageLog) ListMessages(ctx context.Context, channelID string) []domain.ChatMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()

	msgs := slices.Clone(l.messages[channelID])
	if msgs == nil {
		return []domain.ChatMessage{}
	}
	return msgs
}

// ListMessagesPage returns up to limit messages that follow the cursor,
// oldest first, and the cursor for the next page when more remain.
func (l *MessageLog) ListMessagesPage(ctx context.Context, channelID string, limit int, nextToken *string) ([]domain.ChatMessage, *string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := l.messages[channelID]
	start := 0
	if nextToken != nil && *nextToken != "" {
		sentAt, messageID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		idx := slices.IndexFunc(history, func(m domain.ChatMessage) bool {
			return m.MessageID == messageID && m.SentAt.Equal(sentAt)
		})
		if idx < 0 {
			return nil, nil, fmt.Errorf("%w: nextToken does not match channel %s", apperrors.ErrValidation, channelID)
		}
		start = idx + 1
	}

	end := len(history)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	page := slices.Clone(history[start:end])
	if page == nil {
		page = []domain.ChatMessage{}
	}

	var nextTokenVal *string
	if end < len(history) {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.SentAt, last.MessageID)
		nextTokenVal = &token
	}
	return page, nextTokenVal, nil
}

// ChannelPinStore keeps each user's pinned channels in pin order.
type ChannelPinStore struct {
	mu   sync.Mutex
	pins map[string][]string
}

var _ portsrepo.ChannelPinStore = (*ChannelPinStore)(nil)

// NewChannelPinStore creates an empty pin store.
func NewChannelPinStore() *ChannelPinStore {
	return &ChannelPinStore{pins: make(map[string][]string)}
}

// TogglePin flips the pin and reports whether the channel is now pinned.
func (p *ChannelPinStore) TogglePin(ctx context.Context, userID, channelID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	current := p.pins[userID]
	if slices.Contains(current, channelID) {
		p.pins[userID] = slices.DeleteFunc(slices.Clone(current), func(id string) bool { return id == channelID })
		return false
	}
	p.pins[userID] = append(slices.Clone(current), channelID)
	return true
}

// PinnedChannels returns the user's pinned channel ids.
func (p *ChannelPinStore) PinnedChannels(ctx context.Context, userID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.pins[userID])
}
