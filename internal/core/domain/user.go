package domain

import "time"

// MemberStatus is the employment status shown for users and officers.
type MemberStatus string

const (
	StatusActive   MemberStatus = "active"
	StatusInactive MemberStatus = "inactive"
	StatusOnLeave  MemberStatus = "on-leave"
)

// User is the acting identity every policy decision is made for.
type User struct {
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Role       Role         `json:"role"`
	Department string       `json:"department"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Avatar     string       `json:"avatar"`
	JoinDate   time.Time    `json:"joinDate"`
	Status     MemberStatus `json:"status"`
}

// WithRole returns a copy of u acting under role r. It backs the role switcher.
func (u User) WithRole(r Role) User {
	u.Role = r
	return u
}

// ProfilePatch carries the profile fields a user may change about themselves.
// Nil fields are left untouched.
type ProfilePatch struct {
	Name   *string
	Email  *string
	Phone  *string
	Avatar *string
	Status *MemberStatus
}

// Apply writes the non-nil fields of p onto u.
func (p ProfilePatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}

// GetID implements the store identity contract.
func (u User) GetID() string { return u.UserID }
