package discovery

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/messaging"
	"github.com/trackforge/bottrack/internal/store"
	"github.com/trackforge/bottrack/internal/store/schema"
	"github.com/trackforge/bottrack/internal/types"
)

// CategorySource lists the entity ids currently belonging to a category on
// the external service.
//
//go:generate mockgen -source=engine.go -destination=../mocks/discovery.go -package=mocks -mock_names=CategorySource=MockCategorySource,DetailSource=MockDetailSource
type CategorySource interface {
	EntityIDsByCategory(ctx context.Context, category string) ([]string, error)
}

// DetailSource resolves static attributes for a batch of entity ids.
type DetailSource interface {
	EntityDetailsByIDs(ctx context.Context, ids []string) ([]domain.EntityDetail, error)
}

// CategoryResult summarizes one category sync.
type CategoryResult struct {
	Category   string
	Baseline   bool
	Seen       int
	Discovered []string
}

// Engine diffs category membership against previously known sets and records
// genuinely new entities. The first sync of a category is a baseline: every
// member is recorded with a null first-seen time so pre-existing entities are
// never reported as discoveries.
type Engine struct {
	store     store.Store
	source    CategorySource
	details   DetailSource
	publisher messaging.Publisher
	clock     adapter.Clock
}

func NewEngine(s store.Store, source CategorySource, details DetailSource, publisher messaging.Publisher, clock adapter.Clock) *Engine {
	return &Engine{
		store:     s,
		source:    source,
		details:   details,
		publisher: publisher,
		clock:     clock,
	}
}

// SyncAll syncs every tracked category. A failing category does not stop the
// others; the first failure is returned after all categories were attempted.
func (e *Engine) SyncAll(ctx context.Context) ([]CategoryResult, error) {
	categories, err := e.store.ListTrackedCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked categories: %w", err)
	}

	var firstErr error
	results := make([]CategoryResult, 0, len(categories))
	for _, c := range categories {
		result, err := e.SyncCategory(ctx, c.Category)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("category", c.Category))
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to sync category %s: %w", c.Category, err)
			}
			continue
		}
		results = append(results, result)
	}
	return results, firstErr
}

// SyncCategory fetches the category's current member set and diffs it against
// the known membership.
func (e *Engine) SyncCategory(ctx context.Context, category string) (CategoryResult, error) {
	currentIDs, err := e.source.EntityIDsByCategory(ctx, category)
	if err != nil {
		return CategoryResult{}, fmt.Errorf("failed to fetch members of category %s: %w", category, err)
	}
	currentIDs = types.Dedupe(currentIDs)

	knownIDs, err := e.store.GetMembershipEntityIDs(ctx, category)
	if err != nil {
		return CategoryResult{}, fmt.Errorf("failed to load known members of category %s: %w", category, err)
	}

	now := e.clock.Now()
	result := CategoryResult{Category: category, Seen: len(currentIDs)}

	if len(knownIDs) == 0 {
		// Baseline sync: record everything, report nothing
		result.Baseline = true
		if err := e.store.UpsertMembershipsLastSeen(ctx, category, currentIDs, now); err != nil {
			return CategoryResult{}, err
		}
		if err := e.backfillRecords(ctx, currentIDs); err != nil {
			logger.WarnCtx(ctx, "static record backfill failed",
				zap.String("category", category),
				zap.Error(err))
		}
		logger.InfoCtx(ctx, "category baseline recorded",
			zap.String("category", category),
			zap.Int("members", len(currentIDs)))
		return result, nil
	}

	known := make(map[string]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = struct{}{}
	}
	var newIDs []string
	for _, id := range currentIDs {
		if _, ok := known[id]; !ok {
			newIDs = append(newIDs, id)
		}
	}

	if err := e.store.UpsertMembershipsLastSeen(ctx, category, currentIDs, now); err != nil {
		return CategoryResult{}, err
	}
	if err := e.store.SetFirstSeen(ctx, category, newIDs, now); err != nil {
		return CategoryResult{}, err
	}
	result.Discovered = newIDs

	if len(newIDs) > 0 {
		if err := e.backfillRecords(ctx, newIDs); err != nil {
			logger.WarnCtx(ctx, "static record backfill failed",
				zap.String("category", category),
				zap.Error(err))
		}
		e.publishDiscoveries(ctx, category, newIDs, now)
		logger.InfoCtx(ctx, "new entities discovered",
			zap.String("category", category),
			zap.Int("discovered", len(newIDs)))
	}

	return result, nil
}

// backfillRecords resolves static attributes for ids that have no record yet.
// The record cache is append-only: existing entries are never touched.
func (e *Engine) backfillRecords(ctx context.Context, ids []string) error {
	missing, err := e.store.GetMissingEntityRecordIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	details, err := e.details.EntityDetailsByIDs(ctx, missing)
	if err != nil {
		return fmt.Errorf("failed to fetch entity details: %w", err)
	}

	now := e.clock.Now()
	rows := make([]schema.EntityStaticRecord, 0, len(details))
	for _, d := range details {
		if d.EntityID == "" {
			continue
		}
		tags, err := types.MarshalStringList(d.Tags)
		if err != nil {
			logger.WarnCtx(ctx, "failed to encode tags for static record",
				zap.String("entityID", d.EntityID),
				zap.Error(err))
			tags = nil
		}
		rows = append(rows, schema.EntityStaticRecord{
			EntityID:        d.EntityID,
			Name:            d.Name,
			Title:           d.Title,
			Tags:            datatypes.JSON(tags),
			AvatarURL:       d.AvatarURL,
			EntityCreatedAt: d.CreatedAt,
			FetchedAt:       now,
		})
	}
	return e.store.InsertEntityRecords(ctx, rows)
}

// publishDiscoveries emits one event per new entity. Publishing is best
// effort; a broker outage never fails the sync.
func (e *Engine) publishDiscoveries(ctx context.Context, category string, ids []string, firstSeenAt time.Time) {
	if e.publisher == nil {
		return
	}
	for _, id := range ids {
		event := &domain.DiscoveryEvent{
			Category:    category,
			EntityID:    id,
			FirstSeenAt: firstSeenAt,
		}
		if err := e.publisher.PublishDiscoveryEvent(ctx, event); err != nil {
			logger.WarnCtx(ctx, "failed to publish discovery event",
				zap.String("category", category),
				zap.String("entityID", id),
				zap.Error(err))
		}
	}
}

// UnseenCounts returns, per tracked category, how many discovered entities
// have not been acknowledged yet.
func (e *Engine) UnseenCounts(ctx context.Context) (map[string]int64, error) {
	categories, err := e.store.ListTrackedCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked categories: %w", err)
	}
	out := make(map[string]int64, len(categories))
	for _, c := range categories {
		count, err := e.store.CountUnseen(ctx, c.Category)
		if err != nil {
			return nil, err
		}
		out[c.Category] = count
	}
	return out, nil
}

// AcknowledgeCategory marks every unacknowledged discovery in the category as
// seen. Unknown categories are rejected.
func (e *Engine) AcknowledgeCategory(ctx context.Context, category string) error {
	tracked, err := e.store.ListTrackedCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tracked categories: %w", err)
	}
	found := false
	for _, c := range tracked {
		if c.Category == category {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrCategoryNotFound
	}
	return e.store.AcknowledgeCategory(ctx, category, e.clock.Now())
}

// AcknowledgeEntity marks the entity as seen across all categories it was
// discovered in.
func (e *Engine) AcknowledgeEntity(ctx context.Context, entityID string) error {
	return e.store.AcknowledgeEntity(ctx, entityID, e.clock.Now())
}
