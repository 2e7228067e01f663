package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Period identifies one polling interval as a date string in PERIOD_LAYOUT format (e.g., "2025-01-02")
type Period string

// PERIOD_LAYOUT is the time layout used for Period values
const PERIOD_LAYOUT = "2006-01-02"

var periodPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// PeriodOf returns the period containing the given instant
func PeriodOf(t time.Time) Period {
	return Period(t.Format(PERIOD_LAYOUT))
}

// IsValidPeriod checks if a period string is well formed
func IsValidPeriod(p Period) bool {
	if !periodPattern.MatchString(string(p)) {
		return false
	}
	_, err := time.Parse(PERIOD_LAYOUT, string(p))
	return err == nil
}

// Time returns the start of the period in UTC
func (p Period) Time() (time.Time, error) {
	t, err := time.Parse(PERIOD_LAYOUT, string(p))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period %q: %w", p, err)
	}
	return t, nil
}

// Tier represents a coarse rank band derived from an entity's position in the external ranked listing
type Tier string

const (
	// TierTop240 covers ranks 1 through the first threshold
	TierTop240 Tier = "top240"
	// TierTop480 covers ranks above the first threshold up to the second
	TierTop480 Tier = "top480"
	// TierUnranked marks entities outside the ranked listing
	TierUnranked Tier = "unranked"
)

// EntityRecord is the normalized shape of one tracked entity as returned by the fetch collaborator.
// All fallback-key tolerance lives in the collaborator's mapping function; by the time a record
// reaches the engine it has exactly this shape.
type EntityRecord struct {
	EntityID    string     `json:"entity_id"`
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	MetricCount int64      `json:"metric_count"`
	OwnerID     string     `json:"owner_id"`
	CreatedAt   *time.Time `json:"created_at"`
	AvatarURL   string     `json:"avatar_url"`
}

// RankedHit is one position in the external ranked listing, in listing order
type RankedHit struct {
	EntityID  string   `json:"entity_id"`
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
	AvatarURL string   `json:"avatar_url"`
}

// EntityDetail holds the static per-entity attributes returned by the chunked detail lookup
type EntityDetail struct {
	EntityID  string     `json:"entity_id"`
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Tags      []string   `json:"tags"`
	AvatarURL string     `json:"avatar_url"`
	Rating    *float64   `json:"rating,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// StageName identifies one fault-isolated stage of a snapshot cycle
type StageName string

const (
	StageFetch     StageName = "fetch"
	StageIngest    StageName = "ingest"
	StageRank      StageName = "rank"
	StageTags      StageName = "tags"
	StageRatings   StageName = "ratings"
	StageDiscovery StageName = "discovery"
)

// DiscoveryEvent is published to the message broker when a genuinely new entity
// appears in a tracked category
type DiscoveryEvent struct {
	Category    string    `json:"category"`
	EntityID    string    `json:"entity_id"`
	FirstSeenAt time.Time `json:"first_seen_at"`
}

// CycleEvent is published after a cycle finishes (successfully or paused)
type CycleEvent struct {
	CycleID    string    `json:"cycle_id"`
	Period     Period    `json:"period"`
	Paused     bool      `json:"paused"`
	EntityRows int       `json:"entity_rows"`
	Discovered int       `json:"discovered"`
	FinishedAt time.Time `json:"finished_at"`
}
