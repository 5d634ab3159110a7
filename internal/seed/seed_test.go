package seed_test

import (
	"testing"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LedgersInLockstep(t *testing.T) {
	data := seed.Load()
	for _, a := range data.Announcements {
		require.Len(t, a.Viewers, len(a.ReadBy), a.AnnouncementID)
		for i, v := range a.Viewers {
			assert.Equal(t, a.ReadBy[i], v.UserID)
		}
	}
}

func TestLoad_ReferencesResolve(t *testing.T) {
	data := seed.Load()
	channelIDs := make(map[string]bool, len(data.Channels))
	for _, c := range data.Channels {
		channelIDs[c.ChannelID] = true
		assert.True(t, c.RequiredRole.IsValid(), c.ChannelID)
		assert.True(t, c.Type.IsValid(), c.ChannelID)
	}
	for channelID, msgs := range data.Messages {
		assert.True(t, channelIDs[channelID], channelID)
		for _, m := range msgs {
			assert.Equal(t, channelID, m.ChannelID)
		}
	}
	for _, u := range data.Users {
		assert.True(t, u.Role.IsValid(), u.UserID)
	}
	for _, o := range data.Officers {
		assert.True(t, o.Position.IsValid(), o.OfficerID)
	}
}

func TestLoad_ReturnsIndependentCopies(t *testing.T) {
	first := seed.Load()
	first.Announcements[0].Tags[0] = "changed"
	first.Users[0].Role = domain.RoleAdmin

	second := seed.Load()
	assert.Equal(t, "maintenance", second.Announcements[0].Tags[0])
	assert.Equal(t, domain.RoleVP, second.Users[0].Role)
}
