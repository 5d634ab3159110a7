package domain

import (
	"slices"
	"time"
)

// ViewerRecord is one entry of the read log.
type ViewerRecord struct {
	UserID     string    `json:"userID"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	ReadAt     time.Time `json:"readAt"`
	Department string    `json:"department"`
	Role       Role      `json:"role"`
}

// ReadLedger records who has read an item and when.
// A user id is in ReadBy exactly when Viewers holds a record for it.
type ReadLedger struct {
	ReadBy  []string       `json:"readBy"`
	Viewers []ViewerRecord `json:"viewers"`
}

// IsRead reports whether userID has marked the item as read.
func (l ReadLedger) IsRead(userID string) bool {
	return slices.Contains(l.ReadBy, userID)
}

// Clone returns a copy that shares no backing arrays with l.
func (l ReadLedger) Clone() ReadLedger {
	return ReadLedger{
		ReadBy:  append([]string(nil), l.ReadBy...),
		Viewers: append([]ViewerRecord(nil), l.Viewers...),
	}
}

// Toggle flips the read state of u. It returns true when the item is now read,
// in which case the caller bumps the view counter. Unmarking never lowers it.
func (l *ReadLedger) Toggle(u User, now time.Time) bool {
	if l.IsRead(u.UserID) {
		l.ReadBy = slices.DeleteFunc(l.ReadBy, func(id string) bool { return id == u.UserID })
		l.Viewers = slices.DeleteFunc(l.Viewers, func(v ViewerRecord) bool { return v.UserID == u.UserID })
		return false
	}
	l.ReadBy = append(l.ReadBy, u.UserID)
	l.Viewers = append(l.Viewers, ViewerRecord{
		UserID:     u.UserID,
		Name:       u.Name,
		Avatar:     u.Avatar,
		ReadAt:     now,
		Department: u.Department,
		Role:       u.Role,
	})
	return true
}
