// Package policy decides what a user may see and do in the portal.
//
// Every function is pure: the acting user is passed in explicitly and no
// function reads or writes shared state. Roles outside the hierarchy rank
// below Employee and are never granted anything; items whose access level is
// outside the hierarchy require Admin.
package policy

import "github.com/SscSPs/corp_portal/internal/core/domain"

// CanViewLevel reports whether user meets an item's access level.
func CanViewLevel(user domain.User, accessLevel domain.Role) bool {
	rank := user.Role.Rank()
	return rank != domain.RankUnknown && rank >= accessLevel.RequiredRank()
}

// CanViewAnnouncement reports whether the announcement is visible to user.
func CanViewAnnouncement(user domain.User, a domain.Announcement) bool {
	return CanViewLevel(user, a.AccessLevel)
}

// CanViewDocument reports whether the document is visible to user.
func CanViewDocument(user domain.User, d domain.Document) bool {
	return CanViewLevel(user, d.AccessLevel)
}

// CanAccessChannel reports whether user may view and join the channel: the
// role requirement must be met and, for department channels, the department
// must match.
func CanAccessChannel(user domain.User, c domain.ChatChannel) bool {
	if !CanViewLevel(user, c.RequiredRole) {
		return false
	}
	return c.Department == "" || c.Department == user.Department
}

// CanEditChannel reports whether user may rename or retype the channel.
func CanEditChannel(user domain.User, c domain.ChatChannel) bool {
	return CanAccessChannel(user, c) && user.Role.AtLeast(domain.RoleVP)
}

// CanCreate reports whether user may create content of the given type.
func CanCreate(user domain.User, ct domain.ContentType) bool {
	switch ct {
	case domain.ContentAnnouncement:
		return user.Role.AtLeast(domain.RoleOfficer)
	case domain.ContentDocument:
		return CanUpload(user)
	case domain.ContentChannel:
		// Membership changes need nothing beyond channel access.
		return user.Role.IsValid()
	default:
		return false
	}
}

// CanEditOrDelete reports whether user may change or remove an item by author.
func CanEditOrDelete(user domain.User, author string) bool {
	return isAuthor(user, author) || user.Role == domain.RoleAdmin
}

// CanPin reports whether user may pin or unpin an item by author.
func CanPin(user domain.User, author string) bool {
	return user.Role.AtLeast(domain.RoleVP) || isAuthor(user, author)
}

func isAuthor(user domain.User, author string) bool {
	return user.Name != "" && user.Name == author
}

// CanUpload reports whether user may upload documents.
func CanUpload(user domain.User) bool {
	return user.Role.IsValid()
}

// CanDeleteDocument reports whether user may delete documents.
func CanDeleteDocument(user domain.User) bool {
	return user.Role.AtLeast(domain.RoleVP)
}

// CanAccessSection reports whether the navigation section is open to user.
func CanAccessSection(user domain.User, s domain.Section) bool {
	return user.Role.AtLeast(s.MinimumRole())
}

// CanChangeRoles reports whether user may change officer positions.
func CanChangeRoles(user domain.User) bool {
	return user.Role == domain.RoleAdmin
}

// VisibleSections lists the sections open to user in navigation order.
func VisibleSections(user domain.User) []domain.Section {
	out := make([]domain.Section, 0, len(domain.Sections))
	for _, s := range domain.Sections {
		if CanAccessSection(user, s) {
			out = append(out, s)
		}
	}
	return out
}
