package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/trackforge/bottrack/internal/domain"
)

// TagCacheEntry represents the tag_cache table - the current tag list per entity,
// refreshed independently of the metric snapshots. Reads for unknown ids return
// nothing rather than failing.
type TagCacheEntry struct {
	// EntityID identifies the entity the tags belong to
	EntityID string `gorm:"column:entity_id;primaryKey;type:text"`
	// Tags is the entity's tag list as a JSON array
	Tags datatypes.JSON `gorm:"column:tags;type:jsonb"`
	// RefreshedAt is the timestamp of the last upsert for this entry
	RefreshedAt time.Time `gorm:"column:refreshed_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the TagCacheEntry model
func (TagCacheEntry) TableName() string {
	return "tag_cache"
}

// RatingCacheEntry represents the rating_cache table - the current rating score per
// entity, same contract shape as the tag cache.
type RatingCacheEntry struct {
	// EntityID identifies the rated entity
	EntityID string `gorm:"column:entity_id;primaryKey;type:text"`
	// Rating is the entity's rating score; nil when the source reported none
	Rating *float64 `gorm:"column:rating"`
	// RefreshedAt is the timestamp of the last upsert for this entry
	RefreshedAt time.Time `gorm:"column:refreshed_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the RatingCacheEntry model
func (RatingCacheEntry) TableName() string {
	return "rating_cache"
}

// RatingHistory represents the rating_history table - per-period rating snapshots,
// written with the same full-replace-per-period discipline as rank snapshots.
type RatingHistory struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Period is the polling interval this rating belongs to
	Period domain.Period `gorm:"column:period;not null;type:text;uniqueIndex:idx_rating_history_period_entity,priority:1"`
	// EntityID identifies the rated entity
	EntityID string `gorm:"column:entity_id;not null;type:text;uniqueIndex:idx_rating_history_period_entity,priority:2"`
	// Rating is the rating score observed for the period
	Rating *float64 `gorm:"column:rating"`
}

// TableName specifies the table name for the RatingHistory model
func (RatingHistory) TableName() string {
	return "rating_history"
}
