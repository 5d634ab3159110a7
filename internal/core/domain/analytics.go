package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContentType names the kinds of content the portal holds.
type ContentType string

const (
	ContentAnnouncement ContentType = "announcement"
	ContentDocument     ContentType = "document"
	ContentChannel      ContentType = "channel"
)

// AnalyticsPeriod bounds an analytics query by item age.
type AnalyticsPeriod string

const (
	Period7Days  AnalyticsPeriod = "7days"
	Period30Days AnalyticsPeriod = "30days"
	Period90Days AnalyticsPeriod = "90days"
	PeriodAll    AnalyticsPeriod = "all"
)

// MaxAgeDays returns the inclusive age limit in days, or -1 for no limit.
func (p AnalyticsPeriod) MaxAgeDays() int {
	switch p {
	case Period7Days:
		return 7
	case Period30Days:
		return 30
	case Period90Days:
		return 90
	default:
		return -1
	}
}

// ViewAnalyticsRecord is derived from announcements and documents on every
// request and never stored.
type ViewAnalyticsRecord struct {
	ItemID      string         `json:"itemID"`
	Title       string         `json:"title"`
	Type        ContentType    `json:"type"`
	Reads       int            `json:"reads"`
	Audience    int            `json:"audience"`
	Downloads   int            `json:"downloads,omitempty"`
	Departments DepartmentSet  `json:"departments"`
	CreatedAt   time.Time      `json:"createdAt"`
	Viewers     []ViewerRecord `json:"viewers"`
}

// AnalyticsSummary aggregates a set of records.
type AnalyticsSummary struct {
	TotalReads     int             `json:"totalReads"`
	TotalUnread    int             `json:"totalUnread"`
	TotalDownloads int             `json:"totalDownloads"`
	TotalAudience  int             `json:"totalAudience"`
	ReadRate       decimal.Decimal `json:"readRate"`
}

// AnalyticsReport is the analytics screen payload.
type AnalyticsReport struct {
	Records []ViewAnalyticsRecord `json:"records"`
	Summary AnalyticsSummary      `json:"summary"`
}

// AnalyticsFilter narrows the report.
type AnalyticsFilter struct {
	Type   ContentType
	Period AnalyticsPeriod
}
