package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLedger_ToggleLaw(t *testing.T) {
	ledger := domain.ReadLedger{
		ReadBy:  []string{"u2"},
		Viewers: []domain.ViewerRecord{{UserID: "u2", Name: "Sarah"}},
	}
	before := ledger.Clone()
	user := domain.User{UserID: "u1", Name: "John", Role: domain.RoleVP, Department: "Sales"}
	now := time.Date(2024, 3, 8, 9, 15, 0, 0, time.UTC)

	require.True(t, ledger.Toggle(user, now))
	assert.True(t, ledger.IsRead("u1"))
	assert.Equal(t, []string{"u2", "u1"}, ledger.ReadBy)
	require.Len(t, ledger.Viewers, 2)
	assert.Equal(t, now, ledger.Viewers[1].ReadAt)
	assert.Equal(t, domain.RoleVP, ledger.Viewers[1].Role)
	assert.Equal(t, "Sales", ledger.Viewers[1].Department)

	require.False(t, ledger.Toggle(user, now.Add(time.Minute)))
	assert.False(t, ledger.IsRead("u1"))
	assert.Equal(t, before, ledger)
}

func TestReadLedger_LockstepAndClone(t *testing.T) {
	var ledger domain.ReadLedger
	users := []domain.User{{UserID: "a"}, {UserID: "b"}, {UserID: "c"}}
	now := time.Now()
	for _, u := range users {
		ledger.Toggle(u, now)
	}
	ledger.Toggle(users[1], now)

	clone := ledger.Clone()
	clone.ReadBy[0] = "z"

	assert.Equal(t, []string{"a", "c"}, ledger.ReadBy)
	require.Len(t, ledger.Viewers, len(ledger.ReadBy))
	for i, v := range ledger.Viewers {
		assert.Equal(t, ledger.ReadBy[i], v.UserID)
	}
}

func TestAnnouncementFilter(t *testing.T) {
	a := domain.Announcement{
		Priority:    domain.PriorityHigh,
		Departments: domain.NewDepartmentSet("IT", "HR"),
	}

	assert.True(t, domain.AnnouncementFilter{}.Matches(a))
	assert.True(t, domain.AnnouncementFilter{Priority: "all", Department: "all"}.Matches(a))
	assert.True(t, domain.AnnouncementFilter{Priority: "high", Department: "HR"}.Matches(a))
	assert.False(t, domain.AnnouncementFilter{Priority: "low"}.Matches(a))
	assert.False(t, domain.AnnouncementFilter{Department: "Sales"}.Matches(a))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"maintenance", "system", "ops"},
		domain.NormalizeTags([]string{" maintenance, system ,", "", "ops"}))
	assert.Empty(t, domain.NormalizeTags(nil))
}

func TestDetectDocumentType(t *testing.T) {
	tests := map[string]domain.DocumentType{
		"image/png":       domain.DocumentImage,
		"application/pdf": domain.DocumentPDF,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": domain.DocumentSpreadsheet,
		"application/msword": domain.DocumentText,
		"":                   domain.DocumentText,
	}
	for mime, want := range tests {
		assert.Equal(t, want, domain.DetectDocumentType(mime), mime)
	}
	assert.Equal(t, "2.5 MB", domain.FormatSize(2621440))
}
