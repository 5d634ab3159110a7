// Package seed holds the demo data the portal starts with. Every restart
// resets the stores to these values.
package seed

import (
	"time"

	"github.com/SscSPs/corp_portal/internal/core/domain"
)

const placeholderAvatar = "/api/placeholder/32/32"

// Data is one complete set of startup content.
type Data struct {
	Users         []domain.User
	Officers      []domain.Officer
	Announcements []domain.Announcement
	Documents     []domain.Document
	Channels      []domain.ChatChannel
	Messages      map[string][]domain.ChatMessage
}

// Load returns a fresh copy of the demo data.
func Load() Data {
	return Data{
		Users:         users(),
		Officers:      officers(),
		Announcements: announcements(),
		Documents:     documents(),
		Channels:      channels(),
		Messages:      messages(),
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, time.UTC)
}

func users() []domain.User {
	return []domain.User{
		{
			UserID:     "u-1",
			Name:       "John Doe",
			Role:       domain.RoleVP,
			Department: "Sales",
			Email:      "john.doe@company.com",
			Phone:      "+1 (555) 123-4567",
			Avatar:     "/avatar.jpeg",
			JoinDate:   day(2020, time.April, 15),
			Status:     domain.StatusActive,
		},
		{
			UserID:     "u-2",
			Name:       "Sarah Johnson",
			Role:       domain.RoleOfficer,
			Department: "Marketing",
			Email:      "sarah.johnson@company.com",
			Phone:      "+1 (555) 234-5678",
			Avatar:     placeholderAvatar,
			JoinDate:   day(2024, time.March, 11),
			Status:     domain.StatusActive,
		},
		{
			UserID:     "u-3",
			Name:       "Mike Wilson",
			Role:       domain.RoleEmployee,
			Department: "Sales",
			Email:      "mike.wilson@company.com",
			Phone:      "+1 (555) 345-6789",
			Avatar:     placeholderAvatar,
			JoinDate:   day(2022, time.January, 10),
			Status:     domain.StatusActive,
		},
		{
			UserID:     "u-4",
			Name:       "Emily Chen",
			Role:       domain.RoleSVP,
			Department: "Finance",
			Email:      "emily.chen@company.com",
			Phone:      "+1 (555) 456-7890",
			Avatar:     placeholderAvatar,
			JoinDate:   day(2017, time.September, 1),
			Status:     domain.StatusActive,
		},
		{
			UserID:     "u-5",
			Name:       "System Admin",
			Role:       domain.RoleAdmin,
			Department: "IT",
			Email:      "admin@company.com",
			Phone:      "+1 (555) 000-0001",
			Avatar:     placeholderAvatar,
			JoinDate:   day(2015, time.June, 1),
			Status:     domain.StatusActive,
		},
	}
}

func officers() []domain.Officer {
	return []domain.Officer{
		{
			OfficerID:     "o-1",
			Name:          "Robert Hayes",
			Position:      domain.RoleAdmin,
			Department:    "Management",
			Email:         "robert.hayes@company.com",
			Phone:         "+1 (555) 100-0001",
			Avatar:        placeholderAvatar,
			JoinDate:      day(2012, time.February, 1),
			DirectReports: 6,
			Status:        domain.StatusActive,
		},
		{
			OfficerID:     "o-2",
			Name:          "Emily Chen",
			Position:      domain.RoleSVP,
			Department:    "Finance",
			Email:         "emily.chen@company.com",
			Phone:         "+1 (555) 456-7890",
			Avatar:        placeholderAvatar,
			JoinDate:      day(2017, time.September, 1),
			ReportingTo:   "Robert Hayes",
			DirectReports: 4,
			Status:        domain.StatusActive,
		},
		{
			OfficerID:     "o-3",
			Name:          "John Doe",
			Position:      domain.RoleVP,
			Department:    "Sales",
			Email:         "john.doe@company.com",
			Phone:         "+1 (555) 123-4567",
			Avatar:        "/avatar.jpeg",
			JoinDate:      day(2020, time.April, 15),
			ReportingTo:   "Emily Chen",
			DirectReports: 8,
			Status:        domain.StatusActive,
		},
		{
			OfficerID:     "o-4",
			Name:          "David Park",
			Position:      domain.RoleVP,
			Department:    "Engineering",
			Email:         "david.park@company.com",
			Phone:         "+1 (555) 567-8901",
			Avatar:        placeholderAvatar,
			JoinDate:      day(2019, time.July, 22),
			ReportingTo:   "Emily Chen",
			DirectReports: 12,
			Status:        domain.StatusOnLeave,
		},
		{
			OfficerID:     "o-5",
			Name:          "Sarah Johnson",
			Position:      domain.RoleOfficer,
			Department:    "Marketing",
			Email:         "sarah.johnson@company.com",
			Phone:         "+1 (555) 234-5678",
			Avatar:        placeholderAvatar,
			JoinDate:      day(2024, time.March, 11),
			ReportingTo:   "John Doe",
			DirectReports: 2,
			Status:        domain.StatusActive,
		},
		{
			OfficerID:     "o-6",
			Name:          "Lisa Moreno",
			Position:      domain.RoleOfficer,
			Department:    "HR",
			Email:         "lisa.moreno@company.com",
			Phone:         "+1 (555) 678-9012",
			Avatar:        placeholderAvatar,
			JoinDate:      day(2021, time.November, 3),
			ReportingTo:   "Emily Chen",
			DirectReports: 3,
			Status:        domain.StatusActive,
		},
		{
			OfficerID:   "o-7",
			Name:        "Tom Becker",
			Position:    domain.RoleEmployee,
			Department:  "IT",
			Email:       "tom.becker@company.com",
			Phone:       "+1 (555) 789-0123",
			Avatar:      placeholderAvatar,
			JoinDate:    day(2023, time.May, 8),
			ReportingTo: "David Park",
			Status:      domain.StatusInactive,
		},
	}
}

func announcements() []domain.Announcement {
	return []domain.Announcement{
		{
			AnnouncementID: "a-1",
			Title:          "System Maintenance Scheduled",
			Content:        "We will be performing system maintenance on Sunday, March 10th from 2:00 AM to 4:00 AM. During this time, the system will be unavailable.",
			Author:         "IT Department",
			Departments:    domain.NewDepartmentSet("IT"),
			AccessLevel:    domain.RoleEmployee,
			Priority:       domain.PriorityHigh,
			Pinned:         true,
			CreatedAt:      day(2024, time.March, 8),
			Views:          145,
			Likes:          12,
			Comments:       3,
			Tags:           []string{"maintenance", "system"},
			ReadLedger: domain.ReadLedger{
				ReadBy: []string{"u-1", "u-2"},
				Viewers: []domain.ViewerRecord{
					{UserID: "u-1", Name: "John Doe", Avatar: placeholderAvatar, ReadAt: at(2024, time.March, 8, 9, 15), Department: "Sales", Role: domain.RoleVP},
					{UserID: "u-2", Name: "Sarah Johnson", Avatar: placeholderAvatar, ReadAt: at(2024, time.March, 8, 9, 30), Department: "Marketing", Role: domain.RoleOfficer},
				},
			},
		},
		{
			AnnouncementID: "a-2",
			Title:          "New Employee Welcome",
			Content:        "Please join us in welcoming Sarah Johnson to the Marketing team. She will be starting as a Marketing Specialist on Monday.",
			Author:         "HR Department",
			Departments:    domain.NewDepartmentSet("HR"),
			AccessLevel:    domain.RoleEmployee,
			Priority:       domain.PriorityMedium,
			CreatedAt:      day(2024, time.March, 7),
			Views:          89,
			Likes:          25,
			Comments:       8,
			Tags:           []string{"welcome", "team"},
			ReadLedger: domain.ReadLedger{
				ReadBy: []string{"u-1"},
				Viewers: []domain.ViewerRecord{
					{UserID: "u-1", Name: "John Doe", Avatar: placeholderAvatar, ReadAt: at(2024, time.March, 7, 10, 15), Department: "Sales", Role: domain.RoleVP},
				},
			},
		},
		{
			AnnouncementID: "a-3",
			Title:          "Q1 Company Meeting",
			Content:        "The quarterly company meeting is scheduled for March 15th at 10:00 AM in the main conference room. Attendance is mandatory for all employees.",
			Author:         "Management",
			Departments:    domain.NewDepartmentSet("Management"),
			AccessLevel:    domain.RoleEmployee,
			Priority:       domain.PriorityHigh,
			Pinned:         true,
			CreatedAt:      day(2024, time.March, 6),
			Views:          203,
			Likes:          18,
			Comments:       5,
			Tags:           []string{"meeting", "quarterly"},
			ReadLedger: domain.ReadLedger{
				ReadBy: []string{"u-1"},
				Viewers: []domain.ViewerRecord{
					{UserID: "u-1", Name: "John Doe", Avatar: placeholderAvatar, ReadAt: at(2024, time.March, 6, 11, 0), Department: "Sales", Role: domain.RoleVP},
				},
			},
		},
		{
			AnnouncementID: "a-4",
			Title:          "Office Lunch Event",
			Content:        "Join us for a catered lunch event next Friday at 12:00 PM. Please RSVP by Wednesday to help us plan accordingly.",
			Author:         "Social Committee",
			Departments:    domain.NewDepartmentSet("General"),
			AccessLevel:    domain.RoleEmployee,
			Priority:       domain.PriorityLow,
			CreatedAt:      day(2024, time.March, 5),
			Views:          156,
			Likes:          45,
			Comments:       12,
			Tags:           []string{"social", "lunch"},
		},
		{
			AnnouncementID: "a-5",
			Title:          "Leadership Offsite Agenda",
			Content:        "The agenda for the April leadership offsite is now final. Please review the strategy sessions before arrival.",
			Author:         "Emily Chen",
			Departments:    domain.NewDepartmentSet("Management", "Finance"),
			AccessLevel:    domain.RoleVP,
			Priority:       domain.PriorityMedium,
			CreatedAt:      day(2024, time.March, 4),
			Views:          14,
			Likes:          2,
			Tags:           []string{"leadership", "offsite"},
		},
	}
}

func documents() []domain.Document {
	return []domain.Document{
		{
			DocumentID:  "d-1",
			Name:        "Employee Handbook 2024.pdf",
			Type:        domain.DocumentPDF,
			Size:        "2.5 MB",
			UploadedBy:  "HR Department",
			UploadedAt:  day(2024, time.March, 1),
			AccessLevel: domain.RoleEmployee,
			Departments: domain.NewDepartmentSet("HR"),
			Downloads:   234,
			Views:       456,
			Shared:      true,
		},
		{
			DocumentID:  "d-2",
			Name:        "Q1 Sales Report.xlsx",
			Type:        domain.DocumentSpreadsheet,
			Size:        "1.2 MB",
			UploadedBy:  "John Doe",
			UploadedAt:  day(2024, time.March, 5),
			AccessLevel: domain.RoleOfficer,
			Departments: domain.NewDepartmentSet("Sales"),
			Downloads:   45,
			Views:       89,
		},
		{
			DocumentID:  "d-3",
			Name:        "Budget Forecast FY24.xlsx",
			Type:        domain.DocumentSpreadsheet,
			Size:        "0.8 MB",
			UploadedBy:  "Emily Chen",
			UploadedAt:  day(2024, time.March, 3),
			AccessLevel: domain.RoleVP,
			Departments: domain.NewDepartmentSet("Finance", "Management"),
			Downloads:   12,
			Views:       30,
		},
		{
			DocumentID:  "d-4",
			Name:        "Brand Guidelines.pdf",
			Type:        domain.DocumentPDF,
			Size:        "5.1 MB",
			UploadedBy:  "Sarah Johnson",
			UploadedAt:  day(2024, time.February, 20),
			AccessLevel: domain.RoleEmployee,
			Departments: domain.NewDepartmentSet("Marketing"),
			Downloads:   78,
			Views:       120,
			Shared:      true,
		},
		{
			// Legacy access level outside the hierarchy; only Admin sees it.
			DocumentID:  "d-5",
			Name:        "Board Minutes.docx",
			Type:        domain.DocumentText,
			Size:        "0.3 MB",
			UploadedBy:  "Robert Hayes",
			UploadedAt:  day(2024, time.February, 28),
			AccessLevel: domain.Role("Administrator"),
			Departments: domain.NewDepartmentSet("Management"),
			Downloads:   4,
			Views:       9,
		},
	}
}

func channels() []domain.ChatChannel {
	return []domain.ChatChannel{
		{ChannelID: "general", Name: "General", Type: domain.ChannelPublic, Members: 156, RequiredRole: domain.RoleEmployee},
		{ChannelID: "it-support", Name: "IT Support", Type: domain.ChannelPublic, Members: 45, Unread: 1, RequiredRole: domain.RoleEmployee},
		{ChannelID: "management", Name: "Management", Type: domain.ChannelPrivate, Members: 12, RequiredRole: domain.RoleOfficer},
		{ChannelID: "admin", Name: "Admin Only", Type: domain.ChannelPrivate, Members: 3, RequiredRole: domain.RoleAdmin},
		{ChannelID: "sales-team", Name: "Sales Team", Type: domain.ChannelDepartment, Members: 25, Unread: 2, RequiredRole: domain.RoleEmployee, Department: "Sales"},
		{ChannelID: "marketing-team", Name: "Marketing Team", Type: domain.ChannelDepartment, Members: 18, RequiredRole: domain.RoleEmployee, Department: "Marketing"},
	}
}

func messages() map[string][]domain.ChatMessage {
	return map[string][]domain.ChatMessage{
		"general": {
			{
				MessageID:  "m-1",
				ChannelID:  "general",
				Author:     "Sarah Johnson",
				AuthorRole: string(domain.RoleVP),
				Text:       "Good morning everyone! Hope you all have a productive day.",
				SentAt:     at(2024, time.March, 8, 9, 15),
				Avatar:     placeholderAvatar,
			},
			{
				MessageID:  "m-2",
				ChannelID:  "general",
				Author:     "Mike Wilson",
				AuthorRole: string(domain.RoleEmployee),
				Text:       "Thanks Sarah! Looking forward to the team meeting later.",
				SentAt:     at(2024, time.March, 8, 9, 18),
				Avatar:     placeholderAvatar,
			},
			{
				MessageID:  "m-3",
				ChannelID:  "general",
				Author:     "IT Department",
				AuthorRole: string(domain.RoleAdmin),
				Text:       "Reminder: System maintenance tonight from 11 PM to 1 AM.",
				SentAt:     at(2024, time.March, 8, 10, 30),
				Avatar:     placeholderAvatar,
				IsSystem:   true,
			},
		},
	}
}
