package policy_test

import (
	"testing"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
	"github.com/stretchr/testify/assert"
)

func userWith(name string, role domain.Role, dept string) domain.User {
	return domain.User{UserID: name, Name: name, Role: role, Department: dept}
}

func TestCanViewLevel_Monotonic(t *testing.T) {
	for _, level := range domain.Roles {
		granted := false
		for _, role := range domain.Roles {
			got := policy.CanViewLevel(userWith("u", role, "Sales"), level)
			if granted {
				assert.True(t, got, "role %s lost access to level %s granted to a lower role", role, level)
			}
			granted = granted || got
			assert.Equal(t, role.Rank() >= level.Rank(), got, "role %s level %s", role, level)
		}
	}
}

func TestCanViewLevel_FailClosed(t *testing.T) {
	tests := []struct {
		name  string
		role  domain.Role
		level domain.Role
		want  bool
	}{
		{name: "unknown role never sees employee content", role: "Manager", level: domain.RoleEmployee, want: false},
		{name: "empty role never sees employee content", role: "", level: domain.RoleEmployee, want: false},
		{name: "unknown level hidden from SVP", role: domain.RoleSVP, level: "Administrator", want: false},
		{name: "unknown level visible to Admin", role: domain.RoleAdmin, level: "Administrator", want: true},
		{name: "missing level hidden from VP", role: domain.RoleVP, level: "", want: false},
		{name: "missing level visible to Admin", role: domain.RoleAdmin, level: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanViewLevel(userWith("u", tt.role, "Sales"), tt.level))
		})
	}
}

func TestCanViewDocument(t *testing.T) {
	doc := domain.Document{DocumentID: "d1", AccessLevel: domain.RoleVP}

	assert.False(t, policy.CanViewDocument(userWith("o", domain.RoleOfficer, "IT"), doc))
	assert.True(t, policy.CanViewDocument(userWith("s", domain.RoleSVP, "IT"), doc))
}

func TestCanAccessChannel(t *testing.T) {
	management := domain.ChatChannel{ChannelID: "management", RequiredRole: domain.RoleOfficer}
	sales := domain.ChatChannel{ChannelID: "sales-team", RequiredRole: domain.RoleEmployee, Department: "Sales"}

	tests := []struct {
		name    string
		user    domain.User
		channel domain.ChatChannel
		want    bool
	}{
		{name: "employee below required role", user: userWith("e", domain.RoleEmployee, "Sales"), channel: management, want: false},
		{name: "officer meets required role", user: userWith("o", domain.RoleOfficer, "IT"), channel: management, want: true},
		{name: "department match", user: userWith("e", domain.RoleEmployee, "Sales"), channel: sales, want: true},
		{name: "department mismatch even for admin", user: userWith("a", domain.RoleAdmin, "IT"), channel: sales, want: false},
		{name: "unknown role", user: userWith("x", "Guest", "Sales"), channel: sales, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanAccessChannel(tt.user, tt.channel))
		})
	}
}

func TestCanAccessChannel_MonotonicWithDepartmentFixed(t *testing.T) {
	channel := domain.ChatChannel{ChannelID: "c", RequiredRole: domain.RoleVP, Department: "Finance"}
	granted := false
	for _, role := range domain.Roles {
		got := policy.CanAccessChannel(userWith("u", role, "Finance"), channel)
		if granted {
			assert.True(t, got, "role %s lost access", role)
		}
		granted = granted || got
	}
	assert.True(t, granted)
}

func TestCanEditOrDelete(t *testing.T) {
	jane := userWith("Jane", domain.RoleOfficer, "HR")
	bob := userWith("Bob", domain.RoleOfficer, "HR")
	root := userWith("Root", domain.RoleAdmin, "IT")

	assert.True(t, policy.CanEditOrDelete(jane, "Jane"))
	assert.False(t, policy.CanEditOrDelete(bob, "Jane"))
	assert.True(t, policy.CanEditOrDelete(root, "Jane"))
	assert.False(t, policy.CanEditOrDelete(userWith("", domain.RoleOfficer, "HR"), ""))
}

func TestCanPin(t *testing.T) {
	tests := []struct {
		name   string
		user   domain.User
		author string
		want   bool
	}{
		{name: "author officer", user: userWith("Jane", domain.RoleOfficer, "HR"), author: "Jane", want: true},
		{name: "other officer", user: userWith("Bob", domain.RoleOfficer, "HR"), author: "Jane", want: false},
		{name: "vp", user: userWith("Vic", domain.RoleVP, "HR"), author: "Jane", want: true},
		{name: "svp", user: userWith("Sue", domain.RoleSVP, "HR"), author: "Jane", want: true},
		{name: "employee", user: userWith("Ed", domain.RoleEmployee, "HR"), author: "Jane", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanPin(tt.user, tt.author))
		})
	}
}

func TestCanCreate(t *testing.T) {
	tests := []struct {
		role         domain.Role
		announcement bool
		document     bool
	}{
		{role: domain.RoleEmployee, announcement: false, document: true},
		{role: domain.RoleOfficer, announcement: true, document: true},
		{role: domain.RoleVP, announcement: true, document: true},
		{role: domain.RoleSVP, announcement: true, document: true},
		{role: domain.RoleAdmin, announcement: true, document: true},
		{role: "Manager", announcement: false, document: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			u := userWith("u", tt.role, "IT")
			assert.Equal(t, tt.announcement, policy.CanCreate(u, domain.ContentAnnouncement))
			assert.Equal(t, tt.document, policy.CanCreate(u, domain.ContentDocument))
			assert.Equal(t, tt.document, policy.CanUpload(u))
		})
	}
	assert.False(t, policy.CanCreate(userWith("a", domain.RoleAdmin, "IT"), "poll"))
}

func TestCanDeleteDocument(t *testing.T) {
	want := map[domain.Role]bool{
		domain.RoleEmployee: false,
		domain.RoleOfficer:  false,
		domain.RoleVP:       true,
		domain.RoleSVP:      true,
		domain.RoleAdmin:    true,
	}
	for role, allow := range want {
		assert.Equal(t, allow, policy.CanDeleteDocument(userWith("u", role, "IT")), string(role))
	}
}

func TestCanEditChannel(t *testing.T) {
	general := domain.ChatChannel{ChannelID: "general", RequiredRole: domain.RoleEmployee}
	sales := domain.ChatChannel{ChannelID: "sales", RequiredRole: domain.RoleEmployee, Department: "Sales"}

	assert.False(t, policy.CanEditChannel(userWith("o", domain.RoleOfficer, "IT"), general))
	assert.True(t, policy.CanEditChannel(userWith("v", domain.RoleVP, "IT"), general))
	assert.False(t, policy.CanEditChannel(userWith("v", domain.RoleVP, "IT"), sales))
}

func TestVisibleSections(t *testing.T) {
	employee := policy.VisibleSections(userWith("e", domain.RoleEmployee, "IT"))
	assert.NotContains(t, employee, domain.SectionOfficers)
	assert.NotContains(t, employee, domain.SectionAnalytics)
	assert.NotContains(t, employee, domain.SectionAdmin)
	assert.Contains(t, employee, domain.SectionChat)

	vp := policy.VisibleSections(userWith("v", domain.RoleVP, "IT"))
	assert.Contains(t, vp, domain.SectionOfficers)
	assert.Contains(t, vp, domain.SectionAnalytics)
	assert.NotContains(t, vp, domain.SectionAdmin)

	assert.Equal(t, domain.Sections, policy.VisibleSections(userWith("a", domain.RoleAdmin, "IT")))
	assert.Empty(t, policy.VisibleSections(userWith("x", "Intern", "IT")))
	assert.True(t, policy.CanChangeRoles(userWith("a", domain.RoleAdmin, "IT")))
	assert.False(t, policy.CanChangeRoles(userWith("s", domain.RoleSVP, "IT")))
}
