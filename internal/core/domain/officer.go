package domain

import "time"

// Officer is a directory record. ReportingTo is a display name only.
type Officer struct {
	OfficerID     string       `json:"officerID"`
	Name          string       `json:"name"`
	Position      Role         `json:"position"`
	Department    string       `json:"department"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Avatar        string       `json:"avatar"`
	JoinDate      time.Time    `json:"joinDate"`
	ReportingTo   string       `json:"reportingTo,omitempty"`
	DirectReports int          `json:"directReports"`
	Status        MemberStatus `json:"status"`
}

// GetID implements the store identity contract.
func (o Officer) GetID() string { return o.OfficerID }

// OfficerFilter narrows a directory listing. Empty fields match everything.
type OfficerFilter struct {
	Search     string
	Position   Role
	Department string
}

// OfficerStats summarises the directory for the admin and directory screens.
type OfficerStats struct {
	Total          int          `json:"total"`
	PositionCounts map[Role]int `json:"positionCounts"`
	Departments    []string     `json:"departments"`
}
