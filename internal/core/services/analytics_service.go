package services

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// analyticsService derives read analytics; it never writes to the stores.
type analyticsService struct {
	BaseService
	announcementRepo portsrepo.ContentReader[domain.Announcement]
	documentRepo     portsrepo.ContentReader[domain.Document]
	userRepo         portsrepo.ContentReader[domain.User]
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	announcementRepo portsrepo.ContentReader[domain.Announcement],
	documentRepo portsrepo.ContentReader[domain.Document],
	userRepo portsrepo.ContentReader[domain.User],
	options ...ServiceOption,
) portssvc.AnalyticsSvc {
	return &analyticsService{
		BaseService:      newBaseService(options...),
		announcementRepo: announcementRepo,
		documentRepo:     documentRepo,
		userRepo:         userRepo,
	}
}

var _ portssvc.AnalyticsSvc = (*analyticsService)(nil)

var hundred = decimal.NewFromInt(100)

func (s *analyticsService) Report(ctx context.Context, actor domain.User, filter domain.AnalyticsFilter) (*domain.AnalyticsReport, error) {
	if err := s.Authorize(ctx, actor, "analytics.view", policy.CanAccessSection(actor, domain.SectionAnalytics)); err != nil {
		return nil, err
	}

	users := s.userRepo.List(ctx)
	audience := func(level domain.Role) int {
		n := 0
		for _, u := range users {
			if policy.CanViewLevel(u, level) {
				n++
			}
		}
		return n
	}

	var cutoff time.Time
	if days := filter.Period.MaxAgeDays(); days >= 0 {
		cutoff = s.Now().AddDate(0, 0, -days)
	}
	inPeriod := func(t time.Time) bool { return cutoff.IsZero() || !t.Before(cutoff) }

	records := make([]domain.ViewAnalyticsRecord, 0)
	if filter.Type == "" || filter.Type == domain.ContentAnnouncement {
		for _, a := range s.announcementRepo.List(ctx) {
			if !policy.CanViewAnnouncement(actor, a) || !inPeriod(a.CreatedAt) {
				continue
			}
			records = append(records, domain.ViewAnalyticsRecord{
				ItemID:      a.AnnouncementID,
				Title:       a.Title,
				Type:        domain.ContentAnnouncement,
				Reads:       a.Views,
				Audience:    audience(a.AccessLevel),
				Departments: a.Departments,
				CreatedAt:   a.CreatedAt,
				Viewers:     a.Viewers,
			})
		}
	}
	if filter.Type == "" || filter.Type == domain.ContentDocument {
		for _, d := range s.documentRepo.List(ctx) {
			if !policy.CanViewDocument(actor, d) || !inPeriod(d.UploadedAt) {
				continue
			}
			records = append(records, domain.ViewAnalyticsRecord{
				ItemID:      d.DocumentID,
				Title:       d.Name,
				Type:        domain.ContentDocument,
				Reads:       d.Views,
				Audience:    audience(d.AccessLevel),
				Downloads:   d.Downloads,
				Departments: d.Departments,
				CreatedAt:   d.UploadedAt,
				Viewers:     []domain.ViewerRecord{},
			})
		}
	}

	slices.SortStableFunc(records, func(a, b domain.ViewAnalyticsRecord) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	report := &domain.AnalyticsReport{Records: records, Summary: summarize(records)}
	s.LogDebug(ctx, "Analytics report built")
	return report, nil
}

func summarize(records []domain.ViewAnalyticsRecord) domain.AnalyticsSummary {
	var sum domain.AnalyticsSummary
	for _, r := range records {
		sum.TotalReads += r.Reads
		sum.TotalDownloads += r.Downloads
		sum.TotalAudience += r.Audience
		sum.TotalUnread += max(0, r.Audience-r.Reads)
	}
	sum.ReadRate = decimal.Zero
	if sum.TotalAudience > 0 {
		sum.ReadRate = decimal.NewFromInt(int64(sum.TotalReads)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(sum.TotalAudience))).
			Round(1)
	}
	return sum
}
