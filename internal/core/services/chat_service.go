package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/google/uuid"
)

const systemAvatar = "/api/placeholder/32/32"

// chatService implements the ChatSvcFacade interface
type chatService struct {
	BaseService
	channelRepo portsrepo.ChannelRepository
	messages    portsrepo.MessageLog
	pins        portsrepo.ChannelPinStore
	officerRepo portsrepo.OfficerReader
}

// NewChatService creates a new chat service. Officers are looked up when
// members are added to a channel.
func NewChatService(
	channelRepo portsrepo.ChannelRepository,
	messages portsrepo.MessageLog,
	pins portsrepo.ChannelPinStore,
	officerRepo portsrepo.OfficerReader,
	options ...ServiceOption,
) portssvc.ChatSvcFacade {
	return &chatService{
		BaseService: newBaseService(options...),
		channelRepo: channelRepo,
		messages:    messages,
		pins:        pins,
		officerRepo: officerRepo,
	}
}

var _ portssvc.ChatSvcFacade = (*chatService)(nil)

func (s *chatService) ListChannels(ctx context.Context, actor domain.User) []domain.ChannelView {
	pinned := s.pins.PinnedChannels(ctx, actor.UserID)
	views := make([]domain.ChannelView, 0)
	for _, ch := range s.channelRepo.List(ctx) {
		if policy.CanAccessChannel(actor, ch) {
			views = append(views, domain.ChannelView{ChatChannel: ch, Pinned: slices.Contains(pinned, ch.ChannelID)})
		}
	}
	slices.SortStableFunc(views, func(a, b domain.ChannelView) int {
		switch {
		case a.Pinned == b.Pinned:
			return 0
		case a.Pinned:
			return -1
		default:
			return 1
		}
	})
	return views
}

// findAdmitted returns the channel or ErrNotFound when actor is not admitted.
func (s *chatService) findAdmitted(ctx context.Context, actor domain.User, channelID string) (*domain.ChatChannel, error) {
	ch, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", channelID, err)
	}
	if !policy.CanAccessChannel(actor, *ch) {
		s.LogDebug(ctx, "Channel admission denied",
			slog.String("channel_id", channelID),
			slog.String("required_role", string(ch.RequiredRole)),
			slog.String("channel_department", ch.Department),
			slog.String("role", string(actor.Role)),
			slog.String("department", actor.Department))
		return nil, fmt.Errorf("channel %s: %w", channelID, apperrors.ErrNotFound)
	}
	return ch, nil
}

func (s *chatService) GetChannel(ctx context.Context, actor domain.User, channelID string) (*domain.ChannelView, error) {
	ch, err := s.findAdmitted(ctx, actor, channelID)
	if err != nil {
		return nil, err
	}
	pinned := slices.Contains(s.pins.PinnedChannels(ctx, actor.UserID), channelID)
	return &domain.ChannelView{ChatChannel: *ch, Pinned: pinned}, nil
}

func (s *chatService) ListMessages(ctx context.Context, actor domain.User, channelID string, params dto.ListMessagesParams) ([]domain.ChatMessage, *string, error) {
	if _, err := s.findAdmitted(ctx, actor, channelID); err != nil {
		return nil, nil, err
	}
	msgs, nextToken, err := s.messages.ListMessagesPage(ctx, channelID, params.Limit, params.NextToken)
	if err != nil {
		s.LogDebug(ctx, "Rejected message page request", slog.String("channel_id", channelID), slog.String("error", err.Error()))
		return nil, nil, err
	}
	return msgs, nextToken, nil
}

func (s *chatService) SendMessage(ctx context.Context, actor domain.User, channelID string, req dto.SendMessageRequest) (*domain.ChatMessage, error) {
	if _, err := s.findAdmitted(ctx, actor, channelID); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", apperrors.ErrValidation)
	}

	msg := domain.ChatMessage{
		MessageID:  uuid.NewString(),
		ChannelID:  channelID,
		Author:     actor.Name,
		AuthorRole: string(actor.Role),
		Text:       text,
		SentAt:     s.Now(),
		Avatar:     actor.Avatar,
	}
	s.messages.AppendMessage(ctx, msg)

	s.LogDebug(ctx, "Message sent",
		slog.String("channel_id", channelID),
		slog.String("message_id", msg.MessageID))
	return &msg, nil
}

func (s *chatService) EditChannel(ctx context.Context, actor domain.User, channelID string, req dto.EditChannelRequest) (*domain.ChatChannel, error) {
	ch, err := s.findAdmitted(ctx, actor, channelID)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, "channel.edit", policy.CanEditChannel(actor, *ch),
		slog.String("channel_id", channelID)); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	channelType := domain.ChannelType(req.Type)
	if name == "" {
		return nil, fmt.Errorf("%w: channel name is required", apperrors.ErrValidation)
	}
	if !channelType.IsValid() {
		return nil, fmt.Errorf("%w: unknown channel type %q", apperrors.ErrValidation, req.Type)
	}

	updated, ok := s.channelRepo.UpdateByID(ctx, channelID, func(c *domain.ChatChannel) {
		c.Name = name
		c.Type = channelType
	})
	if !ok {
		return nil, fmt.Errorf("channel %s: %w", channelID, apperrors.ErrNotFound)
	}
	s.postSystemMessage(ctx, channelID, fmt.Sprintf("Channel updated: %s (%s)", name, channelType))

	s.LogInfo(ctx, "Channel updated successfully",
		slog.String("channel_id", channelID),
		slog.String("type", string(channelType)))
	return &updated, nil
}

func (s *chatService) TogglePin(ctx context.Context, actor domain.User, channelID string) (*domain.ChannelView, error) {
	ch, err := s.findAdmitted(ctx, actor, channelID)
	if err != nil {
		return nil, err
	}
	pinned := s.pins.TogglePin(ctx, actor.UserID, channelID)
	return &domain.ChannelView{ChatChannel: *ch, Pinned: pinned}, nil
}

func (s *chatService) AddMembers(ctx context.Context, actor domain.User, channelID string, req dto.AddMembersRequest) (*domain.ChatChannel, *domain.ChatMessage, error) {
	ch, err := s.findAdmitted(ctx, actor, channelID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Authorize(ctx, actor, "channel.add_members", policy.CanCreate(actor, domain.ContentChannel),
		slog.String("channel_id", ch.ChannelID)); err != nil {
		return nil, nil, err
	}

	seen := make(map[string]struct{}, len(req.OfficerIDs))
	added := make([]string, 0, len(req.OfficerIDs))
	for _, id := range req.OfficerIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		officer, err := s.officerRepo.FindByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				s.LogDebug(ctx, "Ignoring unknown officer", slog.String("officer_id", id))
				continue
			}
			s.LogError(ctx, err, "Failed to look up officer", slog.String("officer_id", id))
			return nil, nil, fmt.Errorf("failed to add members: %w", err)
		}
		added = append(added, fmt.Sprintf("%s (%s)", officer.Name, officer.Position))
	}
	if len(added) == 0 {
		return nil, nil, fmt.Errorf("%w: no known officers selected", apperrors.ErrValidation)
	}

	updated, ok := s.channelRepo.UpdateByID(ctx, channelID, func(c *domain.ChatChannel) {
		c.Members += len(added)
	})
	if !ok {
		return nil, nil, fmt.Errorf("channel %s: %w", channelID, apperrors.ErrNotFound)
	}
	msg := s.postSystemMessage(ctx, channelID, "Member(s) added to channel: "+strings.Join(added, ", "))

	s.LogInfo(ctx, "Members added to channel",
		slog.String("channel_id", channelID),
		slog.Int("added", len(added)),
		slog.Int("members", updated.Members))
	return &updated, &msg, nil
}

func (s *chatService) postSystemMessage(ctx context.Context, channelID, text string) domain.ChatMessage {
	msg := domain.ChatMessage{
		MessageID:  uuid.NewString(),
		ChannelID:  channelID,
		Author:     domain.SystemAuthor,
		AuthorRole: domain.SystemAuthor,
		Text:       text,
		SentAt:     s.Now(),
		Avatar:     systemAvatar,
		IsSystem:   true,
	}
	s.messages.AppendMessage(ctx, msg)
	return msg
}
