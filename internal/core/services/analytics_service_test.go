package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/corp_portal/internal/adapters/database/memory"
	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service portssvc.AnalyticsSvc
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	announcements := memory.NewAnnouncementRepository(
		domain.Announcement{AnnouncementID: "recent", Title: "Recent", AccessLevel: domain.RoleEmployee, CreatedAt: fixedNow.AddDate(0, 0, -1), Views: 1},
		domain.Announcement{AnnouncementID: "old", Title: "Old", AccessLevel: domain.RoleEmployee, CreatedAt: fixedNow.AddDate(0, 0, -100), Views: 4},
		domain.Announcement{AnnouncementID: "secret", Title: "Secret", AccessLevel: domain.RoleAdmin, CreatedAt: fixedNow.AddDate(0, 0, -2), Views: 1},
	)
	documents := memory.NewDocumentRepository(
		domain.Document{DocumentID: "budget", Name: "Budget", AccessLevel: domain.RoleVP, UploadedAt: fixedNow.AddDate(0, 0, -20), Views: 1, Downloads: 5},
	)
	users := memory.NewUserRepository(eve, jane, vic, root)
	s.service = services.NewAnalyticsService(announcements, documents, users, services.WithClock(fixedClock))
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func recordIDs(records []domain.ViewAnalyticsRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ItemID
	}
	return out
}

func (s *AnalyticsServiceTestSuite) TestRequiresVP() {
	_, err := s.service.Report(s.ctx, jane, domain.AnalyticsFilter{Period: domain.PeriodAll})
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AnalyticsServiceTestSuite) TestReport_AllTime() {
	report, err := s.service.Report(s.ctx, vic, domain.AnalyticsFilter{Period: domain.PeriodAll})
	s.Require().NoError(err)
	s.Equal([]string{"recent", "budget", "old"}, recordIDs(report.Records))

	s.Equal(4, report.Records[0].Audience)
	s.Equal(2, report.Records[1].Audience)
	s.Equal(5, report.Records[1].Downloads)
	s.Equal(domain.ContentDocument, report.Records[1].Type)

	s.Equal(6, report.Summary.TotalReads)
	s.Equal(10, report.Summary.TotalAudience)
	s.Equal(5, report.Summary.TotalDownloads)
	s.Equal(3+1+0, report.Summary.TotalUnread)
	s.True(decimal.NewFromInt(60).Equal(report.Summary.ReadRate), report.Summary.ReadRate.String())
}

func (s *AnalyticsServiceTestSuite) TestReport_PeriodAndType() {
	report, err := s.service.Report(s.ctx, vic, domain.AnalyticsFilter{Period: domain.Period30Days})
	s.Require().NoError(err)
	s.Equal([]string{"recent", "budget"}, recordIDs(report.Records))
	s.Equal("33.3", report.Summary.ReadRate.String())

	report, err = s.service.Report(s.ctx, vic, domain.AnalyticsFilter{Type: domain.ContentDocument, Period: domain.Period7Days})
	s.Require().NoError(err)
	s.Empty(report.Records)
	s.True(report.Summary.ReadRate.IsZero())

	report, err = s.service.Report(s.ctx, root, domain.AnalyticsFilter{Type: domain.ContentAnnouncement, Period: domain.Period7Days})
	s.Require().NoError(err)
	s.Equal([]string{"recent", "secret"}, recordIDs(report.Records))
	s.Equal(1, report.Records[1].Audience)
}
