package schema

import (
	"time"
)

// TrackedCategory represents the tracked_categories table - the set of categories
// the discovery engine polls.
type TrackedCategory struct {
	// Category is the external category identifier
	Category string `gorm:"column:category;primaryKey;type:text"`
	// AddedAt is the timestamp when tracking started
	AddedAt time.Time `gorm:"column:added_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the TrackedCategory model
func (TrackedCategory) TableName() string {
	return "tracked_categories"
}

// CategoryMembership represents the category_memberships table - one row per
// (category, entity) the discovery engine has ever observed.
//
// FirstSeenAt is null for entities present at the category's baseline poll; a
// non-null FirstSeenAt with a null AcknowledgedAt marks an unseen discovery.
type CategoryMembership struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Category is the tracked category the entity belongs to
	Category string `gorm:"column:category;not null;type:text;uniqueIndex:idx_category_memberships_category_entity,priority:1"`
	// EntityID identifies the member entity
	EntityID string `gorm:"column:entity_id;not null;type:text;uniqueIndex:idx_category_memberships_category_entity,priority:2;index:idx_category_memberships_entity"`
	// FirstSeenAt is when the entity was first discovered; null means it was part
	// of the category's baseline and never counts as a discovery event
	FirstSeenAt *time.Time `gorm:"column:first_seen_at;type:timestamptz"`
	// LastSeenAt is refreshed on every poll that includes the entity
	LastSeenAt time.Time `gorm:"column:last_seen_at;not null;type:timestamptz"`
	// AcknowledgedAt is set once a user marks the discovery as seen; independent of FirstSeenAt
	AcknowledgedAt *time.Time `gorm:"column:acknowledged_at;type:timestamptz"`
}

// TableName specifies the table name for the CategoryMembership model
func (CategoryMembership) TableName() string {
	return "category_memberships"
}

// IsUnseen reports whether the membership counts toward the category's unseen total
func (m *CategoryMembership) IsUnseen() bool {
	return m.FirstSeenAt != nil && m.AcknowledgedAt == nil
}
