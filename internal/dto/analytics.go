package dto

import "github.com/SscSPs/corp_portal/internal/core/domain"

// AnalyticsParams defines query parameters for the analytics screen.
type AnalyticsParams struct {
	Type   string `form:"type,default=all" binding:"omitempty,oneof=all announcement document"`
	Period string `form:"period,default=7days" binding:"omitempty,oneof=7days 30days 90days all"`
}

// ToFilter converts the query parameters into a domain filter.
func (p AnalyticsParams) ToFilter() domain.AnalyticsFilter {
	f := domain.AnalyticsFilter{Period: domain.AnalyticsPeriod(p.Period)}
	if p.Type != "all" {
		f.Type = domain.ContentType(p.Type)
	}
	return f
}
