package schema

import (
	"time"

	"gorm.io/datatypes"
)

// EntityStaticRecord represents the entity_records table - static per-entity
// attributes fetched once on first discovery and cached indefinitely. This is an
// immutable cache, not a time series: rows are never refetched once populated.
type EntityStaticRecord struct {
	// EntityID identifies the entity
	EntityID string `gorm:"column:entity_id;primaryKey;type:text"`
	// Name is the entity's display name at fetch time
	Name string `gorm:"column:name;type:text"`
	// Title is the entity's display title at fetch time
	Title string `gorm:"column:title;type:text"`
	// Tags is the entity's tag list as a JSON array
	Tags datatypes.JSON `gorm:"column:tags;type:jsonb"`
	// AvatarURL references the entity's avatar image
	AvatarURL string `gorm:"column:avatar_url;type:text"`
	// EntityCreatedAt is the entity's creation time as reported by the source
	EntityCreatedAt *time.Time `gorm:"column:entity_created_at;type:timestamptz"`
	// FetchedAt is the timestamp when the record was populated
	FetchedAt time.Time `gorm:"column:fetched_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the EntityStaticRecord model
func (EntityStaticRecord) TableName() string {
	return "entity_records"
}
