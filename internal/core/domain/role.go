package domain

// Role is a rank in the portal privilege hierarchy.
type Role string

const (
	RoleEmployee Role = "Employee"
	RoleOfficer  Role = "Officer"
	RoleVP       Role = "VP"
	RoleSVP      Role = "SVP"
	RoleAdmin    Role = "Admin"
)

// RankUnknown is returned for any role string outside the hierarchy.
// It sits below RoleEmployee so it never satisfies a role requirement.
const RankUnknown = 0

// Roles lists the hierarchy from lowest to highest privilege.
var Roles = []Role{RoleEmployee, RoleOfficer, RoleVP, RoleSVP, RoleAdmin}

// Rank returns the position of r in the hierarchy, 1 for Employee up to 5 for
// Admin, and RankUnknown for anything else.
func (r Role) Rank() int {
	switch r {
	case RoleEmployee:
		return 1
	case RoleOfficer:
		return 2
	case RoleVP:
		return 3
	case RoleSVP:
		return 4
	case RoleAdmin:
		return 5
	default:
		return RankUnknown
	}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r.Rank() != RankUnknown
}

// AtLeast reports whether r is ranked at or above other. An unknown r never is.
func (r Role) AtLeast(other Role) bool {
	rank := r.Rank()
	return rank != RankUnknown && rank >= other.Rank()
}

// RequiredRank is the rank a user must hold to see an item gated by r.
// Unknown or missing access levels require the top rank.
func (r Role) RequiredRank() int {
	if !r.IsValid() {
		return RoleAdmin.Rank()
	}
	return r.Rank()
}

// Description is the human readable summary shown in the admin panel.
func (r Role) Description() string {
	switch r {
	case RoleAdmin:
		return "Administrator - Full system access and leadership"
	case RoleSVP:
		return "Senior Vice President - Strategic oversight"
	case RoleVP:
		return "Vice President - Departmental leadership"
	case RoleOfficer:
		return "Officer - Team management and operations"
	case RoleEmployee:
		return "Standard employee access"
	default:
		return "Unrecognized role"
	}
}

// ParseRole maps s onto the hierarchy. The second return value is false when
// s is not a known role; the returned Role then carries the raw value and
// ranks as RankUnknown.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
