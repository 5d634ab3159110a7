package services

import (
	"context"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/dto"
)

// UserReaderSvc defines read operations for the session user directory.
type UserReaderSvc interface {
	// GetUser retrieves a session user by id.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns the whole directory.
	ListUsers(ctx context.Context) []domain.User
}

// UserWriterSvc defines write operations for user profiles.
type UserWriterSvc interface {
	// UpdateProfile edits the acting user's own profile. Role and department
	// are not profile fields. A name held by another user is rejected.
	UpdateProfile(ctx context.Context, actor domain.User, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
