package rest

import (
	"time"

	"github.com/trackforge/bottrack/internal/domain"
)

// StatusResponse reports whether ingestion is paused and what data is current
type StatusResponse struct {
	Paused          bool           `json:"paused"`
	LastSuccessTime *time.Time     `json:"last_success_time,omitempty"`
	LatestPeriod    domain.Period  `json:"latest_period,omitempty"`
	UnseenByCat     map[string]int64 `json:"unseen_by_category,omitempty"`
}

// TrendEntry is one entity's gains over the requested window
type TrendEntry struct {
	EntityID  string        `json:"entity_id"`
	Name      string        `json:"name,omitempty"`
	Title     string        `json:"title,omitempty"`
	AvatarURL string        `json:"avatar_url,omitempty"`
	Latest    int64         `json:"latest_count"`
	TotalGain int64         `json:"total_gain"`
	Rank      int           `json:"rank,omitempty"`
	Tier      domain.Tier   `json:"tier,omitempty"`
	Rating    *float64      `json:"rating,omitempty"`
	Tags      []string      `json:"tags,omitempty"`
	Points    []TrendPoint  `json:"points"`
}

// TrendPoint is one (period, count, delta) sample
type TrendPoint struct {
	Period domain.Period `json:"period"`
	Count  int64         `json:"count"`
	Delta  int64         `json:"delta"`
}

// TrendsResponse is the trends listing
type TrendsResponse struct {
	Window  string       `json:"window"`
	Entries []TrendEntry `json:"entries"`
}

// TotalsResponse is the per-period summed gains
type TotalsResponse struct {
	Window string        `json:"window"`
	Totals []PeriodTotal `json:"totals"`
}

// PeriodTotal is the summed delta for one period
type PeriodTotal struct {
	Period domain.Period `json:"period"`
	Total  int64         `json:"total"`
}

// RankEntry is one entity's position in a period's ranked listing
type RankEntry struct {
	EntityID string        `json:"entity_id"`
	Rank     int           `json:"rank"`
	Tier     domain.Tier   `json:"tier"`
}

// TierCountEntry is how many tracked entities landed in one band
type TierCountEntry struct {
	Tier  domain.Tier `json:"tier"`
	Count int64       `json:"count"`
}

// RanksResponse is a period's rank snapshot plus its tier counts
type RanksResponse struct {
	Period     domain.Period    `json:"period"`
	Ranks      []RankEntry      `json:"ranks"`
	TierCounts []TierCountEntry `json:"tier_counts"`
}

// CategoryEntry is one tracked category
type CategoryEntry struct {
	Category string    `json:"category"`
	AddedAt  time.Time `json:"added_at"`
	Unseen   int64     `json:"unseen"`
}

// CategoriesResponse lists the tracked categories
type CategoriesResponse struct {
	Categories []CategoryEntry `json:"categories"`
}

// CreateCategoryRequest adds a category to the tracked set
type CreateCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// CategoryEntityEntry is one category member with its discovery state
type CategoryEntityEntry struct {
	EntityID       string     `json:"entity_id"`
	Name           string     `json:"name,omitempty"`
	Title          string     `json:"title,omitempty"`
	AvatarURL      string     `json:"avatar_url,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	FirstSeenAt    *time.Time `json:"first_seen_at"`
	LastSeenAt     time.Time  `json:"last_seen_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	Unseen         bool       `json:"unseen"`
}

// CategoryEntitiesResponse lists a category's members
type CategoryEntitiesResponse struct {
	Category string                `json:"category"`
	Entities []CategoryEntityEntry `json:"entities"`
}
