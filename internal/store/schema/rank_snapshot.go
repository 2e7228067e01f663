package schema

import (
	"time"

	"github.com/trackforge/bottrack/internal/domain"
)

// RankSnapshot represents the rank_snapshots table - one row per (period, entity)
// for entities present in the external ranked listing. Rank order is only
// meaningful as a complete listing, so a period's rows are deleted and reinserted
// on every refresh.
type RankSnapshot struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Period is the polling interval this ranking belongs to
	Period domain.Period `gorm:"column:period;not null;type:text;uniqueIndex:idx_rank_snapshots_period_entity,priority:1"`
	// EntityID identifies the ranked entity
	EntityID string `gorm:"column:entity_id;not null;type:text;uniqueIndex:idx_rank_snapshots_period_entity,priority:2"`
	// Rank is the 1-based position within the flattened external listing
	Rank int `gorm:"column:rank;not null"`
	// Tier is the band derived from Rank by the configured thresholds
	Tier domain.Tier `gorm:"column:tier;not null;type:text"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RankSnapshot model
func (RankSnapshot) TableName() string {
	return "rank_snapshots"
}

// TierCount represents the tier_counts table - per-period aggregate of how many
// tracked entities landed in each tier.
type TierCount struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Period is the polling interval the aggregate belongs to
	Period domain.Period `gorm:"column:period;not null;type:text;uniqueIndex:idx_tier_counts_period_tier,priority:1"`
	// Tier is the band being counted
	Tier domain.Tier `gorm:"column:tier;not null;type:text;uniqueIndex:idx_tier_counts_period_tier,priority:2"`
	// Count is the number of tracked entities in the tier for the period
	Count int64 `gorm:"column:count;not null"`
}

// TableName specifies the table name for the TierCount model
func (TierCount) TableName() string {
	return "tier_counts"
}
