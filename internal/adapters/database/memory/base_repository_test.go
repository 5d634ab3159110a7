package memory_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/corp_portal/internal/adapters/database/memory"
	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/seed"
	"github.com/SscSPs/corp_portal/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func announcement(id string, pinned bool, createdAt time.Time) domain.Announcement {
	return domain.Announcement{
		AnnouncementID: id,
		Title:          "title " + id,
		Pinned:         pinned,
		CreatedAt:      createdAt,
		AccessLevel:    domain.RoleEmployee,
		Tags:           []string{"tag"},
	}
}

func TestStore_RemoveByIDIsIdempotent(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := memory.NewAnnouncementRepository(
		announcement("a1", false, base),
		announcement("a2", false, base.Add(time.Hour)),
	)

	assert.True(t, repo.RemoveByID(ctx, "a1"))
	after := repo.List(ctx)

	assert.False(t, repo.RemoveByID(ctx, "a1"))
	assert.Equal(t, after, repo.List(ctx))
	assert.Equal(t, 1, repo.Len())
}

func TestStore_UpdateMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAnnouncementRepository(announcement("a1", false, time.Now()))
	before := repo.List(ctx)

	_, ok := repo.UpdateByID(ctx, "missing", func(a *domain.Announcement) { a.Title = "changed" })

	assert.False(t, ok)
	assert.Equal(t, before, repo.List(ctx))
}

func TestStore_UpdateCannotChangeID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAnnouncementRepository(announcement("a1", false, time.Now()))

	_, ok := repo.UpdateByID(ctx, "a1", func(a *domain.Announcement) { a.AnnouncementID = "a2" })

	assert.False(t, ok)
	_, err := repo.FindByID(ctx, "a1")
	assert.NoError(t, err)
}

func TestStore_FindAndInsert(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAnnouncementRepository()

	_, err := repo.FindByID(ctx, "a1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.Insert(ctx, announcement("a1", false, time.Now())))
	assert.ErrorIs(t, repo.Insert(ctx, announcement("a1", true, time.Now())), apperrors.ErrDuplicate)

	found, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, found.Pinned)
}

func TestStore_ReturnedItemsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAnnouncementRepository(announcement("a1", false, time.Now()))

	listed := repo.List(ctx)
	listed[0].Tags[0] = "mutated"
	listed[0].ReadBy = append(listed[0].ReadBy, "u1")

	found, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	found.Title = "mutated"

	again := repo.List(ctx)
	assert.Equal(t, []string{"tag"}, again[0].Tags)
	assert.Empty(t, again[0].ReadBy)
	assert.Equal(t, "title a1", again[0].Title)
}

func TestStore_ReturnedDocumentsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDocumentRepository(domain.Document{
		DocumentID:  "d1",
		Name:        "Handbook.pdf",
		Departments: domain.NewDepartmentSet("Sales"),
	})

	listed := repo.List(ctx)
	listed[0].Departments[0] = "Marketing"

	found, err := repo.FindByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.DepartmentSet{"Sales"}, found.Departments)

	found.Departments[0] = "Finance"
	again := repo.List(ctx)
	assert.Equal(t, domain.DepartmentSet{"Sales"}, again[0].Departments)
}

func TestAnnouncementRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var seed []domain.Announcement
	for i := 0; i < 50; i++ {
		// Few distinct dates so ties are common.
		created := base.AddDate(0, 0, rng.Intn(5))
		seed = append(seed, announcement(fmt.Sprintf("a%02d", i), rng.Intn(3) == 0, created))
	}
	repo := memory.NewAnnouncementRepository(seed...)

	listed := repo.List(ctx)
	require.Len(t, listed, len(seed))

	insertion := make(map[string]int, len(seed))
	for i, a := range seed {
		insertion[a.AnnouncementID] = i
	}

	seenUnpinned := false
	for i, a := range listed {
		if !a.Pinned {
			seenUnpinned = true
		}
		assert.False(t, seenUnpinned && a.Pinned, "pinned item %s after an unpinned one", a.AnnouncementID)
		if i == 0 || listed[i-1].Pinned != a.Pinned {
			continue
		}
		prev := listed[i-1]
		assert.False(t, a.CreatedAt.After(prev.CreatedAt), "dates must be non-increasing within a group")
		if a.CreatedAt.Equal(prev.CreatedAt) {
			assert.Less(t, insertion[prev.AnnouncementID], insertion[a.AnnouncementID], "ties keep insertion order")
		}
	}
}

func TestDocumentRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := memory.NewDocumentRepository(
		domain.Document{DocumentID: "d1", UploadedAt: base},
		domain.Document{DocumentID: "d2", UploadedAt: base.AddDate(0, 0, 2)},
	)
	require.NoError(t, repo.Insert(ctx, domain.Document{DocumentID: "d3", UploadedAt: base.AddDate(0, 0, 1)}))

	var ids []string
	for _, d := range repo.List(ctx) {
		ids = append(ids, d.DocumentID)
	}
	assert.Equal(t, []string{"d2", "d3", "d1"}, ids)
}

func TestMessageLog(t *testing.T) {
	ctx := context.Background()
	log := memory.NewMessageLog(map[string][]domain.ChatMessage{
		"general": {{MessageID: "m1", ChannelID: "general", Text: "hello"}},
	})

	log.AppendMessage(ctx, domain.ChatMessage{MessageID: "m2", ChannelID: "general", Text: "again"})
	log.AppendMessage(ctx, domain.ChatMessage{MessageID: "m3", ChannelID: "it-support", Text: "help"})

	general := log.ListMessages(ctx, "general")
	require.Len(t, general, 2)
	assert.Equal(t, "again", general[1].Text)
	assert.Len(t, log.ListMessages(ctx, "it-support"), 1)
	assert.NotNil(t, log.ListMessages(ctx, "unknown"))
	assert.Empty(t, log.ListMessages(ctx, "unknown"))
}

func TestMessageLog_ListMessagesPage(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	var seeded []domain.ChatMessage
	for i := 0; i < 5; i++ {
		seeded = append(seeded, domain.ChatMessage{
			MessageID: fmt.Sprintf("m%d", i+1),
			ChannelID: "general",
			SentAt:    base.Add(time.Duration(i) * time.Minute),
		})
	}
	log := memory.NewMessageLog(map[string][]domain.ChatMessage{"general": seeded})

	page, next, err := log.ListMessagesPage(ctx, "general", 2, nil)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "m1", page[0].MessageID)
	assert.Equal(t, "m2", page[1].MessageID)

	page, next, err = log.ListMessagesPage(ctx, "general", 2, next)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "m3", page[0].MessageID)

	page, next, err = log.ListMessagesPage(ctx, "general", 2, next)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, page, 1)
	assert.Equal(t, "m5", page[0].MessageID)

	all, next, err := log.ListMessagesPage(ctx, "general", 0, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Len(t, all, 5)

	empty, next, err := log.ListMessagesPage(ctx, "unknown", 10, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	foreign := pagination.EncodeToken(base, "m1")
	_, _, err = log.ListMessagesPage(ctx, "it-support", 2, &foreign)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestChannelPinStore(t *testing.T) {
	ctx := context.Background()
	pins := memory.NewChannelPinStore()

	assert.True(t, pins.TogglePin(ctx, "u1", "general"))
	assert.True(t, pins.TogglePin(ctx, "u1", "sales-team"))
	assert.Equal(t, []string{"general", "sales-team"}, pins.PinnedChannels(ctx, "u1"))
	assert.Empty(t, pins.PinnedChannels(ctx, "u2"))

	assert.False(t, pins.TogglePin(ctx, "u1", "general"))
	assert.Equal(t, []string{"sales-team"}, pins.PinnedChannels(ctx, "u1"))
}

func TestNewRepositoryProvider(t *testing.T) {
	ctx := context.Background()
	data := seed.Load()
	repos := memory.NewRepositoryProvider(data)

	assert.Len(t, repos.UserRepo.List(ctx), len(data.Users))
	assert.Len(t, repos.OfficerRepo.List(ctx), len(data.Officers))
	assert.Len(t, repos.ChannelRepo.List(ctx), len(data.Channels))
	assert.Len(t, repos.MessageLog.ListMessages(ctx, "general"), len(data.Messages["general"]))
	assert.Empty(t, repos.ChannelPins.PinnedChannels(ctx, "u-1"))

	// Each provider owns its copy of the seed.
	assert.True(t, repos.UserRepo.RemoveByID(ctx, "u-1"))
	other := memory.NewRepositoryProvider(seed.Load())
	assert.Len(t, other.UserRepo.List(ctx), len(data.Users))
}
