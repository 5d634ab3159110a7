package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user directory service
func NewUserService(userRepo portsrepo.UserRepository, options ...ServiceOption) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(options...),
		userRepo:    userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) []domain.User {
	return s.userRepo.List(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, actor domain.User, req dto.UpdateProfileRequest) (*domain.User, error) {
	patch := req.ToPatch()
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
		}
		for _, other := range s.userRepo.List(ctx) {
			if other.UserID != actor.UserID && strings.EqualFold(other.Name, name) {
				s.LogDebug(ctx, "Rejected profile rename", slog.String("user_id", actor.UserID), slog.String("taken_by", other.UserID))
				return nil, fmt.Errorf("%w: name %q is already used by another user", apperrors.ErrDuplicate, name)
			}
		}
		patch.Name = &name
	}
	if patch.Status != nil {
		switch *patch.Status {
		case domain.StatusActive, domain.StatusInactive, domain.StatusOnLeave:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *patch.Status)
		}
	}

	updated, ok := s.userRepo.UpdateByID(ctx, actor.UserID, patch.Apply)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", actor.UserID, apperrors.ErrNotFound)
	}

	s.LogInfo(ctx, "Profile updated", slog.String("user_id", actor.UserID))
	return &updated, nil
}
