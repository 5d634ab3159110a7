package services

import (
	"cmp"
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
)

// officerService implements the OfficerSvcFacade interface
type officerService struct {
	BaseService
	officerRepo portsrepo.OfficerRepository
}

// NewOfficerService creates a new officer directory service
func NewOfficerService(repo portsrepo.OfficerRepository, options ...ServiceOption) portssvc.OfficerSvcFacade {
	return &officerService{
		BaseService: newBaseService(options...),
		officerRepo: repo,
	}
}

var _ portssvc.OfficerSvcFacade = (*officerService)(nil)

func (s *officerService) authorizeDirectory(ctx context.Context, actor domain.User) error {
	return s.Authorize(ctx, actor, "officer.view", policy.CanAccessSection(actor, domain.SectionOfficers))
}

func (s *officerService) ListOfficers(ctx context.Context, actor domain.User, filter domain.OfficerFilter) ([]domain.Officer, error) {
	if err := s.authorizeDirectory(ctx, actor); err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	officers := slices.DeleteFunc(s.officerRepo.List(ctx), func(o domain.Officer) bool {
		if filter.Position != "" && o.Position != filter.Position {
			return true
		}
		if filter.Department != "" && o.Department != filter.Department {
			return true
		}
		return search != "" && !matchesSearch(o, search)
	})

	slices.SortStableFunc(officers, func(a, b domain.Officer) int {
		if c := cmp.Compare(b.Position.Rank(), a.Position.Rank()); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return officers, nil
}

func matchesSearch(o domain.Officer, search string) bool {
	for _, field := range []string{o.Name, o.Department, o.Email, string(o.Position)} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (s *officerService) GetOfficer(ctx context.Context, actor domain.User, officerID string) (*domain.Officer, error) {
	if err := s.authorizeDirectory(ctx, actor); err != nil {
		return nil, err
	}
	o, err := s.officerRepo.FindByID(ctx, officerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get officer %s: %w", officerID, err)
	}
	return o, nil
}

func (s *officerService) Stats(ctx context.Context, actor domain.User) (*domain.OfficerStats, error) {
	if err := s.authorizeDirectory(ctx, actor); err != nil {
		return nil, err
	}

	officers := s.officerRepo.List(ctx)
	stats := domain.OfficerStats{
		Total:          len(officers),
		PositionCounts: make(map[domain.Role]int, len(domain.Roles)),
		Departments:    make([]string, 0),
	}
	for _, o := range officers {
		stats.PositionCounts[o.Position]++
		if !slices.Contains(stats.Departments, o.Department) {
			stats.Departments = append(stats.Departments, o.Department)
		}
	}
	slices.Sort(stats.Departments)
	return &stats, nil
}

func (s *officerService) ChangePosition(ctx context.Context, actor domain.User, officerID string, position domain.Role) (*domain.Officer, error) {
	if err := s.Authorize(ctx, actor, "officer.change_position", policy.CanChangeRoles(actor),
		slog.String("officer_id", officerID)); err != nil {
		return nil, err
	}
	if !position.IsValid() {
		return nil, fmt.Errorf("%w: unknown position %q", apperrors.ErrValidation, position)
	}

	updated, ok := s.officerRepo.UpdateByID(ctx, officerID, func(o *domain.Officer) {
		o.Position = position
	})
	if !ok {
		return nil, fmt.Errorf("officer %s: %w", officerID, apperrors.ErrNotFound)
	}

	s.LogInfo(ctx, "Officer position changed",
		slog.String("officer_id", officerID),
		slog.String("position", string(position)))
	return &updated, nil
}
