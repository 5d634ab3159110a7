package services

import (
	"context"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/dto"
)

// AnnouncementReaderSvc defines read operations on the announcement board.
// Announcements the actor may not view are reported as not found.
type AnnouncementReaderSvc interface {
	// ListAnnouncements returns the visible announcements matching filter,
	// pinned first then newest first.
	ListAnnouncements(ctx context.Context, actor domain.User, filter domain.AnnouncementFilter) []domain.Announcement

	// UnreadCount counts the visible announcements actor has not read.
	UnreadCount(ctx context.Context, actor domain.User) int

	// GetAnnouncement retrieves one visible announcement.
	GetAnnouncement(ctx context.Context, actor domain.User, announcementID string) (*domain.Announcement, error)
}

// AnnouncementWriterSvc defines write operations on the announcement board.
type AnnouncementWriterSvc interface {
	// CreateAnnouncement posts a new announcement authored by actor.
	CreateAnnouncement(ctx context.Context, actor domain.User, req dto.CreateAnnouncementRequest) (*domain.Announcement, error)

	// UpdateAnnouncement edits an announcement. Author or Admin only.
	UpdateAnnouncement(ctx context.Context, actor domain.User, announcementID string, req dto.UpdateAnnouncementRequest) (*domain.Announcement, error)

	// DeleteAnnouncement removes an announcement. Author or Admin only.
	DeleteAnnouncement(ctx context.Context, actor domain.User, announcementID string) error

	// TogglePin flips the pinned flag. Author or VP and above.
	TogglePin(ctx context.Context, actor domain.User, announcementID string) (*domain.Announcement, error)
}

// ReadTrackerSvc defines the read ledger operations.
type ReadTrackerSvc interface {
	// ToggleRead marks the announcement read for actor, or unmarks it if it
	// already was. The view counter only ever grows.
	ToggleRead(ctx context.Context, actor domain.User, announcementID string) (*domain.Announcement, error)
}

// AnnouncementSvcFacade combines all announcement-related service interfaces.
type AnnouncementSvcFacade interface {
	AnnouncementReaderSvc
	AnnouncementWriterSvc
	ReadTrackerSvc
}
