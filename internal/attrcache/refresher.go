package attrcache

import (
	"context"
	"fmt"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/store"
	"github.com/trackforge/bottrack/internal/store/schema"
	"github.com/trackforge/bottrack/internal/types"
)

// DetailSource resolves static attributes for a batch of entity ids.
//
//go:generate mockgen -source=refresher.go -destination=../mocks/attrcache.go -package=mocks -mock_names=DetailSource=MockAttrDetailSource
type DetailSource interface {
	EntityDetailsByIDs(ctx context.Context, ids []string) ([]domain.EntityDetail, error)
}

// Refresher keeps the tag and rating caches current. Refreshes upsert by
// entity id, so an entity that disappears from a lookup keeps its last known
// attributes. Reads through the store simply omit ids that were never cached.
type Refresher struct {
	store   store.Store
	details DetailSource
	clock   adapter.Clock
}

func NewRefresher(s store.Store, details DetailSource, clock adapter.Clock) *Refresher {
	return &Refresher{store: s, details: details, clock: clock}
}

// FetchDetails resolves attribute details for the given ids.
func (r *Refresher) FetchDetails(ctx context.Context, ids []string) ([]domain.EntityDetail, error) {
	ids = types.Dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	details, err := r.details.EntityDetailsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entity details: %w", err)
	}
	return details, nil
}

// RefreshTags upserts the tag cache from fetched details.
func (r *Refresher) RefreshTags(ctx context.Context, details []domain.EntityDetail) (int, error) {
	tags := make(map[string][]string, len(details))
	for _, d := range details {
		if d.EntityID == "" {
			continue
		}
		tags[d.EntityID] = d.Tags
	}
	if err := r.store.UpsertTags(ctx, tags, r.clock.Now()); err != nil {
		return 0, fmt.Errorf("failed to upsert tag cache: %w", err)
	}
	return len(tags), nil
}

// RefreshRatings upserts the rating cache from fetched details and replaces
// the period's rating history rows.
func (r *Refresher) RefreshRatings(ctx context.Context, period domain.Period, details []domain.EntityDetail) (int, error) {
	ratings := make(map[string]*float64, len(details))
	history := make([]schema.RatingHistory, 0, len(details))
	for _, d := range details {
		if d.EntityID == "" {
			continue
		}
		ratings[d.EntityID] = d.Rating
		history = append(history, schema.RatingHistory{
			Period:   period,
			EntityID: d.EntityID,
			Rating:   d.Rating,
		})
	}
	if err := r.store.UpsertRatings(ctx, ratings, r.clock.Now()); err != nil {
		return 0, fmt.Errorf("failed to upsert rating cache: %w", err)
	}
	if err := r.store.ReplaceRatingHistoryForPeriod(ctx, period, history); err != nil {
		return 0, fmt.Errorf("failed to replace rating history: %w", err)
	}
	return len(ratings), nil
}
