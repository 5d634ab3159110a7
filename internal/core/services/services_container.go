package services

import (
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo, options...),
		Announcement: NewAnnouncementService(repos.AnnouncementRepo, options...),
		Document:     NewDocumentService(repos.DocumentRepo, options...),
		Chat:         NewChatService(repos.ChannelRepo, repos.MessageLog, repos.ChannelPins, repos.OfficerRepo, options...),
		Officer:      NewOfficerService(repos.OfficerRepo, options...),
		Analytics:    NewAnalyticsService(repos.AnnouncementRepo, repos.DocumentRepo, repos.UserRepo, options...),
	}
}
