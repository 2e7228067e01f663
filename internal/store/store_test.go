package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildSnapshotRow creates a metric snapshot row for tests
func buildSnapshotRow(period domain.Period, entityID string, count int64) schema.MetricSnapshot {
	return schema.MetricSnapshot{
		Period:      period,
		EntityID:    entityID,
		Name:        fmt.Sprintf("name-%s", entityID),
		Title:       fmt.Sprintf("title-%s", entityID),
		MetricCount: count,
		OwnerID:     "owner-1",
	}
}

// buildRankRow creates a rank snapshot row for tests
func buildRankRow(period domain.Period, entityID string, rank int, tier domain.Tier) schema.RankSnapshot {
	return schema.RankSnapshot{
		Period:   period,
		EntityID: entityID,
		Rank:     rank,
		Tier:     tier,
	}
}

// buildEntityRecord creates a static entity record for tests
func buildEntityRecord(entityID, name string, fetchedAt time.Time) schema.EntityStaticRecord {
	return schema.EntityStaticRecord{
		EntityID:  entityID,
		Name:      name,
		Title:     fmt.Sprintf("title-%s", entityID),
		AvatarURL: fmt.Sprintf("https://cdn.example.com/%s.png", entityID),
		FetchedAt: fetchedAt,
	}
}

func testTime() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// =============================================================================
// Metric snapshots
// =============================================================================

func testReplacePeriod(t *testing.T, store Store) {
	ctx := context.Background()
	period := domain.Period("2025-03-01")

	t.Run("insert and read back", func(t *testing.T) {
		rows := []schema.MetricSnapshot{
			buildSnapshotRow(period, "bot-a", 100),
			buildSnapshotRow(period, "bot-b", 200),
		}
		require.NoError(t, store.ReplacePeriod(ctx, period, rows))

		ids, err := store.GetEntityIDsForPeriod(ctx, period)
		require.NoError(t, err)
		assert.Equal(t, []string{"bot-a", "bot-b"}, ids)
	})

	t.Run("re-ingest replaces the whole period", func(t *testing.T) {
		rows := []schema.MetricSnapshot{
			buildSnapshotRow(period, "bot-b", 250),
			buildSnapshotRow(period, "bot-c", 10),
		}
		require.NoError(t, store.ReplacePeriod(ctx, period, rows))

		ids, err := store.GetEntityIDsForPeriod(ctx, period)
		require.NoError(t, err)
		assert.Equal(t, []string{"bot-b", "bot-c"}, ids)

		history, err := store.LoadHistory(ctx)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, int64(250), history[0].MetricCount)
	})

	t.Run("other periods are untouched", func(t *testing.T) {
		other := domain.Period("2025-03-02")
		require.NoError(t, store.ReplacePeriod(ctx, other, []schema.MetricSnapshot{
			buildSnapshotRow(other, "bot-a", 300),
		}))
		require.NoError(t, store.ReplacePeriod(ctx, period, []schema.MetricSnapshot{
			buildSnapshotRow(period, "bot-a", 110),
		}))

		ids, err := store.GetEntityIDsForPeriod(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, []string{"bot-a"}, ids)
	})

	t.Run("empty rows clears the period", func(t *testing.T) {
		require.NoError(t, store.ReplacePeriod(ctx, period, nil))

		ids, err := store.GetEntityIDsForPeriod(ctx, period)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func testLoadHistory(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.ReplacePeriod(ctx, "2025-03-02", []schema.MetricSnapshot{
		buildSnapshotRow("2025-03-02", "bot-b", 20),
		buildSnapshotRow("2025-03-02", "bot-a", 15),
	}))
	require.NoError(t, store.ReplacePeriod(ctx, "2025-03-01", []schema.MetricSnapshot{
		buildSnapshotRow("2025-03-01", "bot-a", 10),
	}))

	history, err := store.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Ordered by (entity_id, period)
	assert.Equal(t, "bot-a", history[0].EntityID)
	assert.Equal(t, domain.Period("2025-03-01"), history[0].Period)
	assert.Equal(t, "bot-a", history[1].EntityID)
	assert.Equal(t, domain.Period("2025-03-02"), history[1].Period)
	assert.Equal(t, "bot-b", history[2].EntityID)
}

func testGetLatestPeriod(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("empty store returns empty period", func(t *testing.T) {
		period, err := store.GetLatestPeriod(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Period(""), period)
	})

	t.Run("returns the most recent period", func(t *testing.T) {
		require.NoError(t, store.ReplacePeriod(ctx, "2025-03-05", []schema.MetricSnapshot{
			buildSnapshotRow("2025-03-05", "bot-a", 10),
		}))
		require.NoError(t, store.ReplacePeriod(ctx, "2025-03-01", []schema.MetricSnapshot{
			buildSnapshotRow("2025-03-01", "bot-a", 5),
		}))

		period, err := store.GetLatestPeriod(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Period("2025-03-05"), period)
	})
}

// =============================================================================
// Rank snapshots and tier counts
// =============================================================================

func testRankSnapshots(t *testing.T, store Store) {
	ctx := context.Background()
	period := domain.Period("2025-03-01")

	t.Run("empty store returns empty rank period", func(t *testing.T) {
		p, err := store.GetLatestRankPeriod(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Period(""), p)
	})

	t.Run("ranks read back ordered by rank", func(t *testing.T) {
		rows := []schema.RankSnapshot{
			buildRankRow(period, "bot-c", 3, domain.TierTop240),
			buildRankRow(period, "bot-a", 1, domain.TierTop240),
			buildRankRow(period, "bot-b", 2, domain.TierTop240),
		}
		require.NoError(t, store.ReplaceRanksForPeriod(ctx, period, rows))

		got, err := store.GetRanksForPeriod(ctx, period)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "bot-a", got[0].EntityID)
		assert.Equal(t, 1, got[0].Rank)
		assert.Equal(t, "bot-c", got[2].EntityID)
	})

	t.Run("refresh replaces the whole listing", func(t *testing.T) {
		rows := []schema.RankSnapshot{
			buildRankRow(period, "bot-d", 1, domain.TierTop240),
		}
		require.NoError(t, store.ReplaceRanksForPeriod(ctx, period, rows))

		got, err := store.GetRanksForPeriod(ctx, period)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "bot-d", got[0].EntityID)
	})

	t.Run("rank for entity", func(t *testing.T) {
		row, err := store.GetRankForEntity(ctx, period, "bot-d")
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, 1, row.Rank)
		assert.Equal(t, domain.TierTop240, row.Tier)
	})

	t.Run("unranked entity returns nil", func(t *testing.T) {
		row, err := store.GetRankForEntity(ctx, period, "bot-z")
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("latest rank period", func(t *testing.T) {
		require.NoError(t, store.ReplaceRanksForPeriod(ctx, "2025-03-03", []schema.RankSnapshot{
			buildRankRow("2025-03-03", "bot-a", 1, domain.TierTop240),
		}))

		p, err := store.GetLatestRankPeriod(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Period("2025-03-03"), p)
	})
}

func testTierCounts(t *testing.T, store Store) {
	ctx := context.Background()
	period := domain.Period("2025-03-01")

	rows := []schema.TierCount{
		{Period: period, Tier: domain.TierTop240, Count: 12},
		{Period: period, Tier: domain.TierTop480, Count: 7},
		{Period: period, Tier: domain.TierUnranked, Count: 3},
	}
	require.NoError(t, store.ReplaceTierCountsForPeriod(ctx, period, rows))

	got, err := store.GetTierCounts(ctx, period)
	require.NoError(t, err)
	require.Len(t, got, 3)

	byTier := make(map[domain.Tier]int64, len(got))
	for _, tc := range got {
		byTier[tc.Tier] = tc.Count
	}
	assert.Equal(t, int64(12), byTier[domain.TierTop240])
	assert.Equal(t, int64(7), byTier[domain.TierTop480])
	assert.Equal(t, int64(3), byTier[domain.TierUnranked])

	t.Run("refresh replaces the aggregates", func(t *testing.T) {
		require.NoError(t, store.ReplaceTierCountsForPeriod(ctx, period, []schema.TierCount{
			{Period: period, Tier: domain.TierTop240, Count: 20},
		}))

		got, err := store.GetTierCounts(ctx, period)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(20), got[0].Count)
	})
}

// =============================================================================
// Attribute caches
// =============================================================================

func testTagCache(t *testing.T, store Store) {
	ctx := context.Background()
	now := testTime()

	t.Run("upsert and read back", func(t *testing.T) {
		err := store.UpsertTags(ctx, map[string][]string{
			"bot-a": {"anime", "fantasy"},
			"bot-b": nil,
		}, now)
		require.NoError(t, err)

		tags, err := store.GetTags(ctx, []string{"bot-a", "bot-b"})
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, []string{"anime", "fantasy"}, tags["bot-a"])
		assert.Empty(t, tags["bot-b"])
	})

	t.Run("unknown ids are omitted", func(t *testing.T) {
		tags, err := store.GetTags(ctx, []string{"bot-a", "bot-missing"})
		require.NoError(t, err)
		require.Len(t, tags, 1)
		_, ok := tags["bot-missing"]
		assert.False(t, ok)
	})

	t.Run("refresh overwrites the tag list", func(t *testing.T) {
		err := store.UpsertTags(ctx, map[string][]string{
			"bot-a": {"sci-fi"},
		}, now.Add(time.Hour))
		require.NoError(t, err)

		tags, err := store.GetTags(ctx, []string{"bot-a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"sci-fi"}, tags["bot-a"])
	})

	t.Run("empty entity ids are dropped", func(t *testing.T) {
		err := store.UpsertTags(ctx, map[string][]string{
			"": {"ghost"},
		}, now)
		require.NoError(t, err)
	})
}

func testRatingCache(t *testing.T, store Store) {
	ctx := context.Background()
	now := testTime()
	rating := 4.5

	t.Run("upsert and read back", func(t *testing.T) {
		err := store.UpsertRatings(ctx, map[string]*float64{
			"bot-a": &rating,
			"bot-b": nil,
		}, now)
		require.NoError(t, err)

		ratings, err := store.GetRatings(ctx, []string{"bot-a", "bot-b", "bot-missing"})
		require.NoError(t, err)
		require.Len(t, ratings, 2)
		require.NotNil(t, ratings["bot-a"])
		assert.Equal(t, 4.5, *ratings["bot-a"])
		assert.Nil(t, ratings["bot-b"])
	})

	t.Run("refresh overwrites the rating", func(t *testing.T) {
		updated := 3.2
		err := store.UpsertRatings(ctx, map[string]*float64{
			"bot-a": &updated,
		}, now.Add(time.Hour))
		require.NoError(t, err)

		ratings, err := store.GetRatings(ctx, []string{"bot-a"})
		require.NoError(t, err)
		require.NotNil(t, ratings["bot-a"])
		assert.Equal(t, 3.2, *ratings["bot-a"])
	})
}

func testRatingHistory(t *testing.T, store Store) {
	ctx := context.Background()
	period := domain.Period("2025-03-01")
	rating := 4.1

	rows := []schema.RatingHistory{
		{Period: period, EntityID: "bot-a", Rating: &rating},
		{Period: period, EntityID: "bot-b", Rating: nil},
	}
	require.NoError(t, store.ReplaceRatingHistoryForPeriod(ctx, period, rows))

	// Re-running the same period must replace, not conflict on the unique index
	require.NoError(t, store.ReplaceRatingHistoryForPeriod(ctx, period, rows))

	t.Run("empty rows clears the period", func(t *testing.T) {
		require.NoError(t, store.ReplaceRatingHistoryForPeriod(ctx, period, nil))
		require.NoError(t, store.ReplaceRatingHistoryForPeriod(ctx, period, rows))
	})
}

// =============================================================================
// Tracked categories and memberships
// =============================================================================

func testTrackedCategories(t *testing.T, store Store) {
	ctx := context.Background()
	now := testTime()

	t.Run("add and list", func(t *testing.T) {
		require.NoError(t, store.AddTrackedCategory(ctx, "fantasy", now))
		require.NoError(t, store.AddTrackedCategory(ctx, "anime", now))

		categories, err := store.ListTrackedCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "anime", categories[0].Category)
		assert.Equal(t, "fantasy", categories[1].Category)
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		require.NoError(t, store.AddTrackedCategory(ctx, "anime", now.Add(time.Hour)))

		categories, err := store.ListTrackedCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, now, categories[0].AddedAt.UTC())
	})

	t.Run("remove deletes memberships too", func(t *testing.T) {
		require.NoError(t, store.UpsertMembershipsLastSeen(ctx, "anime", []string{"bot-a", "bot-b"}, now))

		require.NoError(t, store.RemoveTrackedCategory(ctx, "anime"))

		categories, err := store.ListTrackedCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 1)

		ids, err := store.GetMembershipEntityIDs(ctx, "anime")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func testMemberships(t *testing.T, store Store) {
	ctx := context.Background()
	baseline := testTime()
	category := "anime"

	t.Run("new memberships get null first_seen_at", func(t *testing.T) {
		require.NoError(t, store.UpsertMembershipsLastSeen(ctx, category, []string{"bot-a", "bot-b"}, baseline))

		entities, err := store.GetCategoryEntities(ctx, category)
		require.NoError(t, err)
		require.Len(t, entities, 2)
		for _, e := range entities {
			assert.Nil(t, e.Membership.FirstSeenAt)
			assert.Equal(t, baseline, e.Membership.LastSeenAt.UTC())
		}
	})

	t.Run("re-upsert only refreshes last_seen_at", func(t *testing.T) {
		later := baseline.Add(time.Hour)
		require.NoError(t, store.UpsertMembershipsLastSeen(ctx, category, []string{"bot-a", "bot-c"}, later))

		entities, err := store.GetCategoryEntities(ctx, category)
		require.NoError(t, err)
		require.Len(t, entities, 3)

		byID := make(map[string]schema.CategoryMembership, len(entities))
		for _, e := range entities {
			byID[e.Membership.EntityID] = e.Membership
		}
		assert.Equal(t, later, byID["bot-a"].LastSeenAt.UTC())
		assert.Nil(t, byID["bot-a"].FirstSeenAt)
		// bot-b was not in this poll, its last_seen_at stays put
		assert.Equal(t, baseline, byID["bot-b"].LastSeenAt.UTC())
	})

	t.Run("set first_seen_at only where still null", func(t *testing.T) {
		discovered := baseline.Add(time.Hour)
		require.NoError(t, store.SetFirstSeen(ctx, category, []string{"bot-c"}, discovered))

		// A second stamp must not move the original discovery time
		require.NoError(t, store.SetFirstSeen(ctx, category, []string{"bot-c"}, discovered.Add(time.Hour)))

		entities, err := store.GetCategoryEntities(ctx, category)
		require.NoError(t, err)
		byID := make(map[string]schema.CategoryMembership, len(entities))
		for _, e := range entities {
			byID[e.Membership.EntityID] = e.Membership
		}
		require.NotNil(t, byID["bot-c"].FirstSeenAt)
		assert.Equal(t, discovered, byID["bot-c"].FirstSeenAt.UTC())
		assert.Nil(t, byID["bot-a"].FirstSeenAt)
	})

	t.Run("unseen counts discovered unacknowledged members", func(t *testing.T) {
		count, err := store.CountUnseen(ctx, category)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("acknowledge entity clears it from the unseen count", func(t *testing.T) {
		require.NoError(t, store.AcknowledgeEntity(ctx, "bot-c", baseline.Add(2*time.Hour)))

		count, err := store.CountUnseen(ctx, category)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("acknowledge does not overwrite earlier acknowledgements", func(t *testing.T) {
		acked := baseline.Add(2 * time.Hour)
		require.NoError(t, store.AcknowledgeCategory(ctx, category, acked.Add(time.Hour)))

		entities, err := store.GetCategoryEntities(ctx, category)
		require.NoError(t, err)
		byID := make(map[string]schema.CategoryMembership, len(entities))
		for _, e := range entities {
			byID[e.Membership.EntityID] = e.Membership
		}
		require.NotNil(t, byID["bot-c"].AcknowledgedAt)
		assert.Equal(t, acked, byID["bot-c"].AcknowledgedAt.UTC())
		require.NotNil(t, byID["bot-a"].AcknowledgedAt)
		assert.Equal(t, acked.Add(time.Hour), byID["bot-a"].AcknowledgedAt.UTC())
	})

	t.Run("membership ids", func(t *testing.T) {
		ids, err := store.GetMembershipEntityIDs(ctx, category)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"bot-a", "bot-b", "bot-c"}, ids)
	})
}

func testGetCategoryEntities(t *testing.T, store Store) {
	ctx := context.Background()
	now := testTime()
	category := "fantasy"

	require.NoError(t, store.UpsertMembershipsLastSeen(ctx, category, []string{"bot-a", "bot-b"}, now))
	require.NoError(t, store.InsertEntityRecords(ctx, []schema.EntityStaticRecord{
		buildEntityRecord("bot-a", "Alpha", now),
	}))

	entities, err := store.GetCategoryEntities(ctx, category)
	require.NoError(t, err)
	require.Len(t, entities, 2)

	// Ordered by entity id; records attached where present
	assert.Equal(t, "bot-a", entities[0].Membership.EntityID)
	require.NotNil(t, entities[0].Record)
	assert.Equal(t, "Alpha", entities[0].Record.Name)

	assert.Equal(t, "bot-b", entities[1].Membership.EntityID)
	assert.Nil(t, entities[1].Record)

	t.Run("unknown category returns empty", func(t *testing.T) {
		entities, err := store.GetCategoryEntities(ctx, "unknown")
		require.NoError(t, err)
		assert.Empty(t, entities)
	})
}

// =============================================================================
// Entity static records
// =============================================================================

func testEntityRecords(t *testing.T, store Store) {
	ctx := context.Background()
	now := testTime()

	t.Run("missing ids before any insert", func(t *testing.T) {
		missing, err := store.GetMissingEntityRecordIDs(ctx, []string{"bot-a", "bot-b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"bot-a", "bot-b"}, missing)
	})

	t.Run("insert and read back", func(t *testing.T) {
		require.NoError(t, store.InsertEntityRecords(ctx, []schema.EntityStaticRecord{
			buildEntityRecord("bot-a", "Alpha", now),
		}))

		records, err := store.GetEntityRecords(ctx, []string{"bot-a", "bot-b"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Alpha", records[0].Name)
	})

	t.Run("existing records are never overwritten", func(t *testing.T) {
		require.NoError(t, store.InsertEntityRecords(ctx, []schema.EntityStaticRecord{
			buildEntityRecord("bot-a", "Renamed", now.Add(time.Hour)),
			buildEntityRecord("bot-b", "Beta", now.Add(time.Hour)),
		}))

		records, err := store.GetEntityRecords(ctx, []string{"bot-a", "bot-b"})
		require.NoError(t, err)
		require.Len(t, records, 2)

		byID := make(map[string]schema.EntityStaticRecord, len(records))
		for _, r := range records {
			byID[r.EntityID] = r
		}
		assert.Equal(t, "Alpha", byID["bot-a"].Name)
		assert.Equal(t, "Beta", byID["bot-b"].Name)
	})

	t.Run("missing ids after insert", func(t *testing.T) {
		missing, err := store.GetMissingEntityRecordIDs(ctx, []string{"bot-a", "bot-b", "bot-c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"bot-c"}, missing)
	})

	t.Run("empty id list", func(t *testing.T) {
		missing, err := store.GetMissingEntityRecordIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, missing)

		records, err := store.GetEntityRecords(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

// =============================================================================
// Key-value store
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "ingestion_paused", "true"))

		value, err := store.GetKeyValue(ctx, "ingestion_paused")
		require.NoError(t, err)
		assert.Equal(t, "true", value)
	})

	t.Run("update existing key", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "ingestion_paused", "false"))

		value, err := store.GetKeyValue(ctx, "ingestion_paused")
		require.NoError(t, err)
		assert.Equal(t, "false", value)
	})

	t.Run("missing key returns empty string", func(t *testing.T) {
		value, err := store.GetKeyValue(ctx, "never_set")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs the behavior suite against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ReplacePeriod", testReplacePeriod},
		{"LoadHistory", testLoadHistory},
		{"GetLatestPeriod", testGetLatestPeriod},
		{"RankSnapshots", testRankSnapshots},
		{"TierCounts", testTierCounts},
		{"TagCache", testTagCache},
		{"RatingCache", testRatingCache},
		{"RatingHistory", testRatingHistory},
		{"TrackedCategories", testTrackedCategories},
		{"Memberships", testMemberships},
		{"GetCategoryEntities", testGetCategoryEntities},
		{"EntityRecords", testEntityRecords},
		{"KeyValueStore", testKeyValueStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
