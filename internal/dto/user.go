package dto

import (
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
)

// UpdateProfileRequest defines the profile fields a user may edit.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProfileRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Phone  *string `json:"phone" binding:"omitempty,max=32"`
	Avatar *string `json:"avatar"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive on-leave"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateProfileRequest) ToPatch() domain.ProfilePatch {
	patch := domain.ProfilePatch{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Avatar: r.Avatar,
	}
	if r.Status != nil {
		s := domain.MemberStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

// UserResponse is the acting user and what they may open.
type UserResponse struct {
	domain.User
	Sections []domain.Section `json:"sections"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{User: u, Sections: policy.VisibleSections(u)}
}

// NavigationResponse lists the sections open to the acting user.
type NavigationResponse struct {
	Role     domain.Role      `json:"role"`
	Sections []domain.Section `json:"sections"`
}
