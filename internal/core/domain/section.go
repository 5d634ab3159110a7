package domain

// Section is a top level area of the portal navigation.
type Section string

const (
	SectionDashboard     Section = "dashboard"
	SectionAnnouncements Section = "announcements"
	SectionDocuments     Section = "documents"
	SectionChat          Section = "chat"
	SectionCalendar      Section = "calendar"
	SectionOfficers      Section = "officer"
	SectionAnalytics     Section = "analytics"
	SectionAdmin         Section = "admin"
	SectionSettings      Section = "settings"
)

// Sections lists the navigation in display order.
var Sections = []Section{
	SectionDashboard,
	SectionAnnouncements,
	SectionDocuments,
	SectionChat,
	SectionCalendar,
	SectionOfficers,
	SectionAnalytics,
	SectionAdmin,
	SectionSettings,
}

// MinimumRole is the lowest role allowed into s. Unknown sections require Admin.
func (s Section) MinimumRole() Role {
	switch s {
	case SectionDashboard, SectionAnnouncements, SectionDocuments,
		SectionChat, SectionCalendar, SectionSettings:
		return RoleEmployee
	case SectionOfficers, SectionAnalytics:
		return RoleVP
	case SectionAdmin:
		return RoleAdmin
	default:
		return RoleAdmin
	}
}
