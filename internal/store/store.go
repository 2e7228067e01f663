package store

import (
	"context"
	"time"

	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/store/schema"
)

// CategoryEntity is a category membership joined with the entity's static record
type CategoryEntity struct {
	Membership schema.CategoryMembership
	Record     *schema.EntityStaticRecord
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ReplacePeriod atomically removes all metric snapshot rows for the period and
	// inserts rows in their place
	ReplacePeriod(ctx context.Context, period domain.Period, rows []schema.MetricSnapshot) error
	// LoadHistory returns all metric snapshot rows ordered by (entity_id, period)
	LoadHistory(ctx context.Context) ([]schema.MetricSnapshot, error)
	// GetLatestPeriod returns the most recent period with snapshot rows ("" when empty)
	GetLatestPeriod(ctx context.Context) (domain.Period, error)
	// GetEntityIDsForPeriod returns the tracked entity ids snapshotted in the period
	GetEntityIDsForPeriod(ctx context.Context, period domain.Period) ([]string, error)

	// ReplaceRanksForPeriod removes all rank rows for the period and inserts rows
	ReplaceRanksForPeriod(ctx context.Context, period domain.Period, rows []schema.RankSnapshot) error
	// GetRanksForPeriod returns the period's rank rows ordered by rank ascending
	GetRanksForPeriod(ctx context.Context, period domain.Period) ([]schema.RankSnapshot, error)
	// GetLatestRankPeriod returns the most recent period with rank rows ("" when empty)
	GetLatestRankPeriod(ctx context.Context) (domain.Period, error)
	// GetRankForEntity returns the entity's rank row for the period, nil when unranked
	GetRankForEntity(ctx context.Context, period domain.Period, entityID string) (*schema.RankSnapshot, error)
	// ReplaceTierCountsForPeriod removes the period's tier counts and inserts rows
	ReplaceTierCountsForPeriod(ctx context.Context, period domain.Period, rows []schema.TierCount) error
	// GetTierCounts returns the period's tier counts
	GetTierCounts(ctx context.Context, period domain.Period) ([]schema.TierCount, error)

	// GetTags returns the cached tag lists for ids; unknown ids are omitted
	GetTags(ctx context.Context, ids []string) (map[string][]string, error)
	// UpsertTags replaces-or-inserts each entity's tag list independently
	UpsertTags(ctx context.Context, tags map[string][]string, refreshedAt time.Time) error
	// GetRatings returns the cached rating scores for ids; unknown ids are omitted
	GetRatings(ctx context.Context, ids []string) (map[string]*float64, error)
	// UpsertRatings replaces-or-inserts each entity's rating independently
	UpsertRatings(ctx context.Context, ratings map[string]*float64, refreshedAt time.Time) error
	// ReplaceRatingHistoryForPeriod removes the period's rating history and inserts rows
	ReplaceRatingHistoryForPeriod(ctx context.Context, period domain.Period, rows []schema.RatingHistory) error

	// AddTrackedCategory starts tracking a category
	AddTrackedCategory(ctx context.Context, category string, addedAt time.Time) error
	// RemoveTrackedCategory stops tracking a category and deletes its memberships
	RemoveTrackedCategory(ctx context.Context, category string) error
	// ListTrackedCategories returns all tracked categories ordered by name
	ListTrackedCategories(ctx context.Context) ([]schema.TrackedCategory, error)
	// GetMembershipEntityIDs returns the entity ids already known for the category
	GetMembershipEntityIDs(ctx context.Context, category string) ([]string, error)
	// UpsertMembershipsLastSeen inserts missing memberships (first_seen_at null) and
	// refreshes last_seen_at on existing ones
	UpsertMembershipsLastSeen(ctx context.Context, category string, entityIDs []string, seenAt time.Time) error
	// SetFirstSeen stamps first_seen_at for the given memberships where still null
	SetFirstSeen(ctx context.Context, category string, entityIDs []string, firstSeenAt time.Time) error
	// GetCategoryEntities returns the category's memberships joined with static records
	GetCategoryEntities(ctx context.Context, category string) ([]CategoryEntity, error)
	// CountUnseen returns how many of the category's memberships are discovered but unacknowledged
	CountUnseen(ctx context.Context, category string) (int64, error)
	// AcknowledgeEntity sets acknowledged_at for the entity's memberships where still null
	AcknowledgeEntity(ctx context.Context, entityID string, ackedAt time.Time) error
	// AcknowledgeCategory sets acknowledged_at for all of the category's unacknowledged memberships
	AcknowledgeCategory(ctx context.Context, category string, ackedAt time.Time) error

	// GetMissingEntityRecordIDs returns the subset of ids with no static record yet
	GetMissingEntityRecordIDs(ctx context.Context, ids []string) ([]string, error)
	// InsertEntityRecords inserts static records, skipping ids already populated
	InsertEntityRecords(ctx context.Context, rows []schema.EntityStaticRecord) error
	// GetEntityRecords returns the static records for ids; missing ids are omitted
	GetEntityRecords(ctx context.Context, ids []string) ([]schema.EntityStaticRecord, error)

	// SetKeyValue stores a key-value pair
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key ("" when absent)
	GetKeyValue(ctx context.Context, key string) (string, error)
}
