package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/google/uuid"
)

// announcementService implements the AnnouncementSvcFacade interface
type announcementService struct {
	BaseService
	announcementRepo portsrepo.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service with the provided options
func NewAnnouncementService(repo portsrepo.AnnouncementRepository, options ...ServiceOption) portssvc.AnnouncementSvcFacade {
	return &announcementService{
		BaseService:      newBaseService(options...),
		announcementRepo: repo,
	}
}

var _ portssvc.AnnouncementSvcFacade = (*announcementService)(nil)

func (s *announcementService) ListAnnouncements(ctx context.Context, actor domain.User, filter domain.AnnouncementFilter) []domain.Announcement {
	all := s.announcementRepo.List(ctx)
	visible := make([]domain.Announcement, 0, len(all))
	for _, a := range all {
		if policy.CanViewAnnouncement(actor, a) && filter.Matches(a) {
			visible = append(visible, a)
		}
	}
	s.LogDebug(ctx, "Listed announcements",
		slog.Int("total", len(all)),
		slog.Int("visible", len(visible)))
	return visible
}

func (s *announcementService) UnreadCount(ctx context.Context, actor domain.User) int {
	unread := 0
	for _, a := range s.announcementRepo.List(ctx) {
		if policy.CanViewAnnouncement(actor, a) && !a.IsRead(actor.UserID) {
			unread++
		}
	}
	return unread
}

func (s *announcementService) GetAnnouncement(ctx context.Context, actor domain.User, announcementID string) (*domain.Announcement, error) {
	a, err := s.announcementRepo.FindByID(ctx, announcementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcement %s: %w", announcementID, err)
	}
	if !policy.CanViewAnnouncement(actor, *a) {
		// Hidden items are indistinguishable from missing ones.
		s.LogDebug(ctx, "Announcement hidden from user",
			slog.String("announcement_id", announcementID),
			slog.String("access_level", string(a.AccessLevel)),
			slog.String("role", string(actor.Role)))
		return nil, fmt.Errorf("announcement %s: %w", announcementID, apperrors.ErrNotFound)
	}
	return a, nil
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, actor domain.User, req dto.CreateAnnouncementRequest) (*domain.Announcement, error) {
	if err := s.Authorize(ctx, actor, "announcement.create", policy.CanCreate(actor, domain.ContentAnnouncement)); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", apperrors.ErrValidation)
	}

	accessLevel := domain.RoleEmployee
	if req.AccessLevel != "" {
		role, ok := domain.ParseRole(req.AccessLevel)
		if !ok {
			return nil, fmt.Errorf("%w: unknown access level %q", apperrors.ErrValidation, req.AccessLevel)
		}
		accessLevel = role
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
		if !priority.IsValid() {
			return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidation, req.Priority)
		}
	}

	announcement := domain.Announcement{
		AnnouncementID: uuid.NewString(),
		Title:          title,
		Content:        content,
		Author:         actor.Name,
		Departments:    domain.NewDepartmentSet(req.Departments...),
		AccessLevel:    accessLevel,
		Priority:       priority,
		CreatedAt:      s.Now(),
		Tags:           domain.NormalizeTags(req.Tags),
		ImageURL:       req.ImageURL,
		LinkURL:        req.LinkURL,
	}

	if err := s.announcementRepo.Insert(ctx, announcement); err != nil {
		s.LogError(ctx, err, "Failed to save announcement",
			slog.String("announcement_id", announcement.AnnouncementID))
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	s.LogInfo(ctx, "Announcement created successfully",
		slog.String("announcement_id", announcement.AnnouncementID),
		slog.String("access_level", string(accessLevel)))
	return &announcement, nil
}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, actor domain.User, announcementID string, req dto.UpdateAnnouncementRequest) (*domain.Announcement, error) {
	existing, err := s.GetAnnouncement(ctx, actor, announcementID)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, "announcement.edit", policy.CanEditOrDelete(actor, existing.Author),
		slog.String("announcement_id", announcementID)); err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	if (patch.Title != nil && *patch.Title == "") || (patch.Content != nil && *patch.Content == "") {
		return nil, fmt.Errorf("%w: title and content cannot be blank", apperrors.ErrValidation)
	}
	if patch.AccessLevel != nil && !patch.AccessLevel.IsValid() {
		return nil, fmt.Errorf("%w: unknown access level %q", apperrors.ErrValidation, *patch.AccessLevel)
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidation, *patch.Priority)
	}

	updated, ok := s.announcementRepo.UpdateByID(ctx, announcementID, patch.Apply)
	if !ok {
		return nil, fmt.Errorf("announcement %s: %w", announcementID, apperrors.ErrNotFound)
	}

	s.LogInfo(ctx, "Announcement updated successfully", slog.String("announcement_id", announcementID))
	return &updated, nil
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, actor domain.User, announcementID string) error {
	existing, err := s.GetAnnouncement(ctx, actor, announcementID)
	if err != nil {
		return err
	}
	if err := s.Authorize(ctx, actor, "announcement.delete", policy.CanEditOrDelete(actor, existing.Author),
		slog.String("announcement_id", announcementID)); err != nil {
		return err
	}

	if !s.announcementRepo.RemoveByID(ctx, announcementID) {
		s.LogDebug(ctx, "Announcement already removed", slog.String("announcement_id", announcementID))
	}
	s.LogInfo(ctx, "Announcement deleted successfully", slog.String("announcement_id", announcementID))
	return nil
}

func (s *announcementService) TogglePin(ctx context.Context, actor domain.User, announcementID string) (*domain.Announcement, error) {
	existing, err := s.GetAnnouncement(ctx, actor, announcementID)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, "announcement.pin", policy.CanPin(actor, existing.Author),
		slog.String("announcement_id", announcementID)); err != nil {
		return nil, err
	}

	updated, ok := s.announcementRepo.UpdateByID(ctx, announcementID, func(a *domain.Announcement) {
		a.Pinned = !a.Pinned
	})
	if !ok {
		return nil, fmt.Errorf("announcement %s: %w", announcementID, apperrors.ErrNotFound)
	}

	s.LogInfo(ctx, "Announcement pin toggled",
		slog.String("announcement_id", announcementID),
		slog.Bool("pinned", updated.Pinned))
	return &updated, nil
}

func (s *announcementService) ToggleRead(ctx context.Context, actor domain.User, announcementID string) (*domain.Announcement, error) {
	if _, err := s.GetAnnouncement(ctx, actor, announcementID); err != nil {
		return nil, err
	}

	now := s.Now()
	var marked bool
	updated, ok := s.announcementRepo.UpdateByID(ctx, announcementID, func(a *domain.Announcement) {
		marked = a.Toggle(actor, now)
		if marked {
			a.Views++
		}
	})
	if !ok {
		return nil, fmt.Errorf("announcement %s: %w", announcementID, apperrors.ErrNotFound)
	}

	s.LogDebug(ctx, "Announcement read state toggled",
		slog.String("announcement_id", announcementID),
		slog.Bool("read", marked))
	return &updated, nil
}
