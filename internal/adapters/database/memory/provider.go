package memory

import (
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
	"github.com/SscSPs/corp_portal/internal/seed"
)

// NewRepositoryProvider wires every in-memory repository, preloaded with data.
func NewRepositoryProvider(data seed.Data) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AnnouncementRepo: NewAnnouncementRepository(data.Announcements...),
		DocumentRepo:     NewDocumentRepository(data.Documents...),
		OfficerRepo:      NewOfficerRepository(data.Officers...),
		UserRepo:         NewUserRepository(data.Users...),
		ChannelRepo:      NewChannelRepository(data.Channels...),
		MessageLog:       NewMessageLog(data.Messages),
		ChannelPins:      NewChannelPinStore(),
	}
}
