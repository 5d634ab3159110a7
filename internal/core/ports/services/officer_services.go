package services

import (
	"context"

	"github.com/SscSPs/corp_portal/internal/core/domain"
)

// OfficerReaderSvc defines read operations on the officer directory. The
// directory is open to VP and above.
type OfficerReaderSvc interface {
	// ListOfficers returns matching officers by rank descending, then name.
	ListOfficers(ctx context.Context, actor domain.User, filter domain.OfficerFilter) ([]domain.Officer, error)

	// GetOfficer retrieves one officer.
	GetOfficer(ctx context.Context, actor domain.User, officerID string) (*domain.Officer, error)

	// Stats summarises the directory by position and department.
	Stats(ctx context.Context, actor domain.User) (*domain.OfficerStats, error)
}

// OfficerAdminSvc defines the admin panel operations.
type OfficerAdminSvc interface {
	// ChangePosition sets an officer's position. Admin only.
	ChangePosition(ctx context.Context, actor domain.User, officerID string, position domain.Role) (*domain.Officer, error)
}

// OfficerSvcFacade combines all officer-related service interfaces.
type OfficerSvcFacade interface {
	OfficerReaderSvc
	OfficerAdminSvc
}
