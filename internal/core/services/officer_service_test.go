package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/corp_portal/internal/adapters/database/memory"
	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type OfficerServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service portssvc.OfficerSvcFacade
}

func (s *OfficerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	repo := memory.NewOfficerRepository(
		domain.Officer{OfficerID: "o-1", Name: "Lisa Moreno", Position: domain.RoleOfficer, Department: "HR", Email: "lisa@company.com"},
		domain.Officer{OfficerID: "o-2", Name: "David Park", Position: domain.RoleVP, Department: "Engineering", Email: "david@company.com"},
		domain.Officer{OfficerID: "o-3", Name: "Amy Stone", Position: domain.RoleOfficer, Department: "Sales", Email: "amy@company.com"},
		domain.Officer{OfficerID: "o-4", Name: "Robert Hayes", Position: domain.RoleAdmin, Department: "Management", Email: "robert@company.com"},
	)
	s.service = services.NewOfficerService(repo)
}

func TestOfficerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OfficerServiceTestSuite))
}

func officerNames(officers []domain.Officer) []string {
	out := make([]string, len(officers))
	for i, o := range officers {
		out[i] = o.Name
	}
	return out
}

func (s *OfficerServiceTestSuite) TestDirectoryRequiresVP() {
	_, err := s.service.ListOfficers(s.ctx, jane, domain.OfficerFilter{})
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = s.service.Stats(s.ctx, eve)
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = s.service.GetOfficer(s.ctx, eve, "o-1")
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *OfficerServiceTestSuite) TestList_SortedByRankThenName() {
	officers, err := s.service.ListOfficers(s.ctx, vic, domain.OfficerFilter{})
	s.Require().NoError(err)
	s.Equal([]string{"Robert Hayes", "David Park", "Amy Stone", "Lisa Moreno"}, officerNames(officers))
}

func (s *OfficerServiceTestSuite) TestList_SearchAndFilter() {
	officers, err := s.service.ListOfficers(s.ctx, vic, domain.OfficerFilter{Search: "ENGINEER"})
	s.Require().NoError(err)
	s.Equal([]string{"David Park"}, officerNames(officers))

	officers, err = s.service.ListOfficers(s.ctx, vic, domain.OfficerFilter{Position: domain.RoleOfficer, Department: "Sales"})
	s.Require().NoError(err)
	s.Equal([]string{"Amy Stone"}, officerNames(officers))
}

func (s *OfficerServiceTestSuite) TestStats() {
	stats, err := s.service.Stats(s.ctx, sam)
	s.Require().NoError(err)
	s.Equal(4, stats.Total)
	s.Equal(2, stats.PositionCounts[domain.RoleOfficer])
	s.Equal(0, stats.PositionCounts[domain.RoleSVP])
	s.Equal([]string{"Engineering", "HR", "Management", "Sales"}, stats.Departments)
}

func (s *OfficerServiceTestSuite) TestChangePosition() {
	_, err := s.service.ChangePosition(s.ctx, sam, "o-1", domain.RoleVP)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.service.ChangePosition(s.ctx, root, "o-1", domain.Role("Manager"))
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.ChangePosition(s.ctx, root, "missing", domain.RoleVP)
	s.ErrorIs(err, apperrors.ErrNotFound)

	updated, err := s.service.ChangePosition(s.ctx, root, "o-1", domain.RoleSVP)
	s.Require().NoError(err)
	s.Equal(domain.RoleSVP, updated.Position)

	officers, err := s.service.ListOfficers(s.ctx, root, domain.OfficerFilter{})
	s.Require().NoError(err)
	s.Equal("Lisa Moreno", officers[1].Name)
}
