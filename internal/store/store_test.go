package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketflowhq/marketflow/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campaigns.json")
	return New(NewFileSnapshot(path), log.NewNopLogger())
}

func testCampaign(id, name string) models.Campaign {
	return models.Campaign{
		ID:        id,
		Name:      name,
		Date:      "March 1, 2026",
		Platforms: []string{models.PlatformInstagramReels},
		Status:    models.StatusComplete,
		Tone:      "Bold",
		Brief: models.Brief{
			Goal:     "Goal",
			Audience: "Audience",
		},
	}
}

func TestStore_Insert_MostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, testCampaign("c1", "First"))
	s.Insert(ctx, testCampaign("c2", "Second"))
	s.Insert(ctx, testCampaign("c3", "Third"))

	list := s.List(ctx)
	require.Len(t, list, 3)
	assert.Equal(t, "c3", list[0].ID)
	assert.Equal(t, "c2", list[1].ID)
	assert.Equal(t, "c1", list[2].ID)
}

func TestStore_UpdateVisuals_TouchesOnlyVisuals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	campaign := testCampaign("c1", "Campaign")
	campaign.Content = &models.CampaignContent{CampaignSummary: "Summary"}
	s.Insert(ctx, campaign)

	visuals := models.CampaignVisuals{
		Data:   &models.VisualConcepts{MoodBoardDescription: "Warm"},
		Images: []models.VisualImage{{FileURL: "https://cdn.example.com/a.png"}},
	}
	ok := s.UpdateVisuals(ctx, "c1", visuals)
	require.True(t, ok)

	list := s.List(ctx)
	require.Len(t, list, 1)
	updated := list[0]
	assert.Equal(t, "Campaign", updated.Name)
	assert.Equal(t, models.StatusComplete, updated.Status)
	require.NotNil(t, updated.Content)
	assert.Equal(t, "Summary", updated.Content.CampaignSummary)
	require.NotNil(t, updated.Visuals)
	assert.Equal(t, "Warm", updated.Visuals.Data.MoodBoardDescription)
	require.Len(t, updated.Visuals.Images, 1)
}

func TestStore_UpdateVisuals_UnknownID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok := s.UpdateVisuals(ctx, "missing", models.CampaignVisuals{})
	assert.False(t, ok)

	// Sample ids are never in the persisted collection
	ok = s.UpdateVisuals(ctx, SampleCampaignID1, models.CampaignVisuals{})
	assert.False(t, ok)
}

func TestStore_DeleteByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, testCampaign("c1", "First"))
	s.Insert(ctx, testCampaign("c2", "Second"))

	assert.True(t, s.DeleteByID(ctx, "c1"))
	assert.False(t, s.DeleteByID(ctx, "c1"))
	assert.False(t, s.DeleteByID(ctx, SampleCampaignID2))

	list := s.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)
}

func TestStore_MergedView(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, testCampaign("c1", "Persisted"))

	t.Run("with samples", func(t *testing.T) {
		merged := s.MergedView(ctx, true)
		require.Len(t, merged, 3)
		// Persisted campaigns come first, samples after
		assert.Equal(t, "c1", merged[0].ID)
		assert.Equal(t, SampleCampaignID1, merged[1].ID)
		assert.Equal(t, SampleCampaignID2, merged[2].ID)
	})

	t.Run("without samples", func(t *testing.T) {
		merged := s.MergedView(ctx, false)
		require.Len(t, merged, 1)
		assert.Equal(t, "c1", merged[0].ID)
	})
}

func TestStore_MergedView_SamplesNeverPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.json")
	s := New(NewFileSnapshot(path), log.NewNopLogger())
	ctx := context.Background()

	s.Insert(ctx, testCampaign("c1", "Persisted"))
	s.MergedView(ctx, true)

	reloaded := New(NewFileSnapshot(path), log.NewNopLogger())
	list := reloaded.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)
}

func TestStore_PersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.json")
	ctx := context.Background()

	s := New(NewFileSnapshot(path), log.NewNopLogger())
	campaign := testCampaign("c1", "Durable")
	campaign.Content = &models.CampaignContent{
		CampaignSummary: "Summary",
		ReelsScript:     &models.ReelsScript{Hook: "Hook"},
	}
	s.Insert(ctx, campaign)

	reloaded := New(NewFileSnapshot(path), log.NewNopLogger())
	list := reloaded.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, campaign, list[0])
}

func TestStore_CorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o644))

	s := New(NewFileSnapshot(path), log.NewNopLogger())
	assert.Empty(t, s.List(context.Background()))
}

func TestSampleCampaigns_FreshCopies(t *testing.T) {
	first := SampleCampaigns()
	require.Len(t, first, 2)

	first[0].Name = "mutated"
	first[0].Content.CampaignSummary = "mutated"

	second := SampleCampaigns()
	assert.Equal(t, "Summer Wellness Launch", second[0].Name)
	assert.NotEqual(t, "mutated", second[0].Content.CampaignSummary)

	// Sample 2 deliberately has no reels script
	assert.Nil(t, second[1].Content.ReelsScript)
	assert.Equal(t, "Tech Product Pre-Launch", second[1].Name)
}
