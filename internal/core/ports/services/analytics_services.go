package services

import (
	"context"

	"github.com/SscSPs/corp_portal/internal/core/domain"
)

// AnalyticsSvc derives view analytics from the content stores.
type AnalyticsSvc interface {
	// Report builds the per-item records and summary. VP and above.
	Report(ctx context.Context, actor domain.User, filter domain.AnalyticsFilter) (*domain.AnalyticsReport, error)
}
