package domain

import (
	"strings"
	"time"
)

// Priority orders announcements by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Announcement is a role-gated notice on the announcement board.
// AccessLevel is the minimum role needed to view it.
type Announcement struct {
	AnnouncementID string        `json:"announcementID"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	Author         string        `json:"author"`
	Departments    DepartmentSet `json:"departments"`
	AccessLevel    Role          `json:"accessLevel"`
	Priority       Priority      `json:"priority"`
	Pinned         bool          `json:"pinned"`
	CreatedAt      time.Time     `json:"createdAt"`
	Views          int           `json:"views"`
	Likes          int           `json:"likes"`
	Comments       int           `json:"comments"`
	Tags           []string      `json:"tags"`
	ImageURL       string        `json:"imageUrl,omitempty"`
	LinkURL        string        `json:"linkUrl,omitempty"`
	ReadLedger
}

// GetID implements the store identity contract.
func (a Announcement) GetID() string { return a.AnnouncementID }

// Clone returns a deep copy so snapshots never share slices.
func (a Announcement) Clone() Announcement {
	a.Departments = append(DepartmentSet(nil), a.Departments...)
	a.Tags = append([]string(nil), a.Tags...)
	a.ReadLedger = a.ReadLedger.Clone()
	return a
}

// AnnouncementFilter narrows the board. "all" or empty matches everything.
type AnnouncementFilter struct {
	Priority   string
	Department string
}

// Matches reports whether a passes the filter.
func (f AnnouncementFilter) Matches(a Announcement) bool {
	if f.Priority != "" && f.Priority != "all" && string(a.Priority) != f.Priority {
		return false
	}
	if f.Department != "" && f.Department != "all" && !a.Departments.Contains(f.Department) {
		return false
	}
	return true
}

// AnnouncementPatch carries the editable fields. Nil fields are untouched.
type AnnouncementPatch struct {
	Title       *string
	Content     *string
	Priority    *Priority
	AccessLevel *Role
	Departments *DepartmentSet
	Tags        *[]string
	ImageURL    *string
	LinkURL     *string
}

// Apply writes the non-nil fields of p onto a.
func (p AnnouncementPatch) Apply(a *Announcement) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.AccessLevel != nil {
		a.AccessLevel = *p.AccessLevel
	}
	if p.Departments != nil {
		a.Departments = append(DepartmentSet(nil), (*p.Departments)...)
	}
	if p.Tags != nil {
		a.Tags = NormalizeTags(*p.Tags)
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.LinkURL != nil {
		a.LinkURL = *p.LinkURL
	}
}

// NormalizeTags trims every tag and drops empty ones. It also accepts a single
// comma separated entry, e.g. "maintenance, system".
func NormalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, tag := range strings.Split(entry, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
