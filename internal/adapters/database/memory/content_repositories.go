package memory

import (
	"github.com/SscSPs/corp_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
)

// AnnouncementRepository orders the board: pinned first, then newest first.
type AnnouncementRepository struct {
	*Store[domain.Announcement]
}

var _ portsrepo.AnnouncementRepository = (*AnnouncementRepository)(nil)

// NewAnnouncementRepository creates the announcement store holding seed.
func NewAnnouncementRepository(seed ...domain.Announcement) *AnnouncementRepository {
	return &AnnouncementRepository{
		Store: NewStore(WithOrder(announcementLess), WithSeed(seed...)),
	}
}

func announcementLess(a, b domain.Announcement) bool {
	if a.Pinned != b.Pinned {
		return a.Pinned
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// DocumentRepository lists the newest uploads first.
type DocumentRepository struct {
	*Store[domain.Document]
}

var _ portsrepo.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates the document store holding seed.
func NewDocumentRepository(seed ...domain.Document) *DocumentRepository {
	return &DocumentRepository{
		Store: NewStore(WithOrder(func(a, b domain.Document) bool {
			return a.UploadedAt.After(b.UploadedAt)
		}), WithSeed(seed...)),
	}
}

// OfficerRepository keeps the directory in seed order.
type OfficerRepository struct {
	*Store[domain.Officer]
}

var _ portsrepo.OfficerRepository = (*OfficerRepository)(nil)

// NewOfficerRepository creates the officer store holding seed.
func NewOfficerRepository(seed ...domain.Officer) *OfficerRepository {
	return &OfficerRepository{Store: NewStore(WithSeed(seed...))}
}

// UserRepository keeps the session user directory in seed order.
type UserRepository struct {
	*Store[domain.User]
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates the user store holding seed.
func NewUserRepository(seed ...domain.User) *UserRepository {
	return &UserRepository{Store: NewStore(WithSeed(seed...))}
}

// ChannelRepository keeps chat channels in seed order.
type ChannelRepository struct {
	*Store[domain.ChatChannel]
}

var _ portsrepo.ChannelRepository = (*ChannelRepository)(nil)

// NewChannelRepository creates the channel store holding seed.
func NewChannelRepository(seed ...domain.ChatChannel) *ChannelRepository {
	return &ChannelRepository{Store: NewStore(WithSeed(seed...))}
}
