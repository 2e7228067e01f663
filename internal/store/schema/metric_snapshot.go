package schema

import (
	"time"

	"github.com/trackforge/bottrack/internal/domain"
)

// MetricSnapshot represents the metric_snapshots table - one point-in-time row per
// (period, entity). A period's rows are replaced wholesale on re-ingest so a
// period always reflects exactly the last successful fetch.
type MetricSnapshot struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Period is the polling interval this row belongs to (date string)
	Period domain.Period `gorm:"column:period;not null;type:text;uniqueIndex:idx_metric_snapshots_period_entity,priority:1"`
	// EntityID identifies the tracked entity
	EntityID string `gorm:"column:entity_id;not null;type:text;uniqueIndex:idx_metric_snapshots_period_entity,priority:2;index:idx_metric_snapshots_entity"`
	// Name is the entity's display name at snapshot time
	Name string `gorm:"column:name;type:text"`
	// Title is the entity's display title at snapshot time
	Title string `gorm:"column:title;type:text"`
	// MetricCount is the cumulative counter value observed at snapshot time
	MetricCount int64 `gorm:"column:metric_count;not null"`
	// OwnerID is the external id of the entity's owner
	OwnerID string `gorm:"column:owner_id;type:text"`
	// EntityCreatedAt is the entity's creation time as reported by the source
	EntityCreatedAt *time.Time `gorm:"column:entity_created_at;type:timestamptz"`
	// AvatarURL references the entity's avatar image
	AvatarURL string `gorm:"column:avatar_url;type:text"`
	// CreatedAt is the timestamp when this row was ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MetricSnapshot model
func (MetricSnapshot) TableName() string {
	return "metric_snapshots"
}
