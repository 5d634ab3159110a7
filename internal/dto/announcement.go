package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
)

// CreateAnnouncementRequest defines the data needed to post an announcement.
type CreateAnnouncementRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Content     string   `json:"content" binding:"required"`
	Departments []string `json:"departments" binding:"omitempty,dive,department"`
	AccessLevel string   `json:"accessLevel" binding:"omitempty,portalrole"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=high medium low"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl" binding:"omitempty,url"`
	LinkURL     string   `json:"linkUrl" binding:"omitempty,url"`
}

// UpdateAnnouncementRequest defines the editable fields of an announcement.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAnnouncementRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Content     *string   `json:"content" binding:"omitempty,min=1"`
	Departments *[]string `json:"departments" binding:"omitempty,dive,department"`
	AccessLevel *string   `json:"accessLevel" binding:"omitempty,portalrole"`
	Priority    *string   `json:"priority" binding:"omitempty,oneof=high medium low"`
	Tags        *[]string `json:"tags"`
	ImageURL    *string   `json:"imageUrl" binding:"omitempty,url"`
	LinkURL     *string   `json:"linkUrl" binding:"omitempty,url"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateAnnouncementRequest) ToPatch() domain.AnnouncementPatch {
	patch := domain.AnnouncementPatch{
		Tags:     r.Tags,
		ImageURL: r.ImageURL,
		LinkURL:  r.LinkURL,
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		patch.Title = &title
	}
	if r.Content != nil {
		content := strings.TrimSpace(*r.Content)
		patch.Content = &content
	}
	if r.Departments != nil {
		set := domain.NewDepartmentSet(*r.Departments...)
		patch.Departments = &set
	}
	if r.AccessLevel != nil {
		role := domain.Role(*r.AccessLevel)
		patch.AccessLevel = &role
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		patch.Priority = &p
	}
	return patch
}

// ListAnnouncementsParams defines query parameters for the announcement board.
type ListAnnouncementsParams struct {
	Priority   string `form:"priority,default=all" binding:"omitempty,oneof=all high medium low"`
	Department string `form:"department,default=all"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListAnnouncementsParams) ToFilter() domain.AnnouncementFilter {
	return domain.AnnouncementFilter{Priority: p.Priority, Department: p.Department}
}

// AnnouncementResponse is an announcement as seen by the acting user, with
// the flags the UI needs to decide which controls to show.
type AnnouncementResponse struct {
	AnnouncementID string                `json:"announcementID"`
	Title          string                `json:"title"`
	Content        string                `json:"content"`
	Author         string                `json:"author"`
	Departments    []string              `json:"departments"`
	AccessLevel    domain.Role           `json:"accessLevel"`
	Priority       domain.Priority       `json:"priority"`
	Pinned         bool                  `json:"pinned"`
	CreatedAt      time.Time             `json:"createdAt"`
	Views          int                   `json:"views"`
	Likes          int                   `json:"likes"`
	Comments       int                   `json:"comments"`
	Tags           []string              `json:"tags"`
	ImageURL       string                `json:"imageUrl,omitempty"`
	LinkURL        string                `json:"linkUrl,omitempty"`
	Viewers        []domain.ViewerRecord `json:"viewers"`
	IsRead         bool                  `json:"isRead"`
	CanEdit        bool                  `json:"canEdit"`
	CanPin         bool                  `json:"canPin"`
}

// ToAnnouncementResponse converts a domain.Announcement for the acting user.
func ToAnnouncementResponse(a domain.Announcement, actor domain.User) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID: a.AnnouncementID,
		Title:          a.Title,
		Content:        a.Content,
		Author:         a.Author,
		Departments:    nonNil([]string(a.Departments)),
		AccessLevel:    a.AccessLevel,
		Priority:       a.Priority,
		Pinned:         a.Pinned,
		CreatedAt:      a.CreatedAt,
		Views:          a.Views,
		Likes:          a.Likes,
		Comments:       a.Comments,
		Tags:           nonNil(a.Tags),
		ImageURL:       a.ImageURL,
		LinkURL:        a.LinkURL,
		Viewers:        nonNil(a.Viewers),
		IsRead:         a.IsRead(actor.UserID),
		CanEdit:        policy.CanEditOrDelete(actor, a.Author),
		CanPin:         policy.CanPin(actor, a.Author),
	}
}

// ListAnnouncementsResponse is the board payload.
type ListAnnouncementsResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	UnreadCount   int                    `json:"unreadCount"`
	CanCreate     bool                   `json:"canCreate"`
}

// ToListAnnouncementsResponse converts a visible slice for the acting user.
func ToListAnnouncementsResponse(items []domain.Announcement, actor domain.User) ListAnnouncementsResponse {
	res := ListAnnouncementsResponse{
		Announcements: make([]AnnouncementResponse, len(items)),
		CanCreate:     policy.CanCreate(actor, domain.ContentAnnouncement),
	}
	for i, a := range items {
		res.Announcements[i] = ToAnnouncementResponse(a, actor)
		if !res.Announcements[i].IsRead {
			res.UnreadCount++
		}
	}
	return res
}

// UnreadCountResponse carries the board badge count.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
