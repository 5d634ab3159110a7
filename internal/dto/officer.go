package dto

import "github.com/SscSPs/corp_portal/internal/core/domain"

// ListOfficersParams defines query parameters for the officer directory.
type ListOfficersParams struct {
	Search     string `form:"search"`
	Position   string `form:"position,default=all"`
	Department string `form:"department,default=all"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListOfficersParams) ToFilter() domain.OfficerFilter {
	f := domain.OfficerFilter{Search: p.Search}
	if p.Position != "all" {
		f.Position = domain.Role(p.Position)
	}
	if p.Department != "all" {
		f.Department = p.Department
	}
	return f
}

// ChangePositionRequest carries the admin panel's role change.
type ChangePositionRequest struct {
	Position string `json:"position" binding:"required,portalrole"`
}

// ListOfficersResponse is the directory payload.
type ListOfficersResponse struct {
	Officers []domain.Officer `json:"officers"`
}

// RoleSummary describes one role for the admin panel.
type RoleSummary struct {
	Role        domain.Role `json:"role"`
	Rank        int         `json:"rank"`
	Description string      `json:"description"`
	Count       int         `json:"count"`
}

// OfficerStatsResponse is the directory and admin panel summary.
type OfficerStatsResponse struct {
	Total       int           `json:"total"`
	Roles       []RoleSummary `json:"roles"`
	Departments []string      `json:"departments"`
}

// ToOfficerStatsResponse lists roles from highest to lowest rank.
func ToOfficerStatsResponse(stats domain.OfficerStats) OfficerStatsResponse {
	res := OfficerStatsResponse{
		Total:       stats.Total,
		Roles:       make([]RoleSummary, 0, len(domain.Roles)),
		Departments: nonNil(stats.Departments),
	}
	for i := len(domain.Roles) - 1; i >= 0; i-- {
		role := domain.Roles[i]
		res.Roles = append(res.Roles, RoleSummary{
			Role:        role,
			Rank:        role.Rank(),
			Description: role.Description(),
			Count:       stats.PositionCounts[role],
		})
	}
	return res
}
