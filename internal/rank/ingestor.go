package rank

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/store"
	"github.com/trackforge/bottrack/internal/store/schema"
)

const (
	DefaultFirstTierSize  = 240
	DefaultSecondTierSize = 480
)

// Ingestor converts a ranked listing into persisted rank snapshots and tier
// counts for the tracked set.
type Ingestor struct {
	store          store.Store
	firstTierSize  int
	secondTierSize int
}

func NewIngestor(s store.Store, firstTierSize, secondTierSize int) *Ingestor {
	if firstTierSize <= 0 {
		firstTierSize = DefaultFirstTierSize
	}
	if secondTierSize <= firstTierSize {
		secondTierSize = DefaultSecondTierSize
	}
	return &Ingestor{
		store:          s,
		firstTierSize:  firstTierSize,
		secondTierSize: secondTierSize,
	}
}

// TierFor maps a 1-based rank position to its tier band.
func (g *Ingestor) TierFor(rank int) domain.Tier {
	switch {
	case rank >= 1 && rank <= g.firstTierSize:
		return domain.TierTop240
	case rank > g.firstTierSize && rank <= g.secondTierSize:
		return domain.TierTop480
	default:
		return domain.TierUnranked
	}
}

// IngestRanks replaces the period's rank snapshot with the given listing.
// Positions are 1-based in listing order; duplicate entity ids keep their
// first (best) position. Tier counts are recomputed against the tracked set,
// the entity ids present in the period's metric snapshot.
func (g *Ingestor) IngestRanks(ctx context.Context, period domain.Period, hits []domain.RankedHit) (int, error) {
	rows := make([]schema.RankSnapshot, 0, len(hits))
	seen := make(map[string]struct{}, len(hits))
	position := 0
	for _, hit := range hits {
		if hit.EntityID == "" {
			continue
		}
		if _, dup := seen[hit.EntityID]; dup {
			logger.Warn("duplicate entity in ranked listing",
				zap.String("entityID", hit.EntityID),
				zap.String("period", string(period)))
			continue
		}
		seen[hit.EntityID] = struct{}{}
		position++
		rows = append(rows, schema.RankSnapshot{
			Period:   period,
			EntityID: hit.EntityID,
			Rank:     position,
			Tier:     g.TierFor(position),
		})
	}

	if err := g.store.ReplaceRanksForPeriod(ctx, period, rows); err != nil {
		return 0, fmt.Errorf("failed to replace ranks for period %s: %w", period, err)
	}

	if err := g.persistTierCounts(ctx, period, rows); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// persistTierCounts counts how many tracked entities land in each band for the
// period. Tracked entities absent from the listing count as unranked.
func (g *Ingestor) persistTierCounts(ctx context.Context, period domain.Period, rows []schema.RankSnapshot) error {
	trackedIDs, err := g.store.GetEntityIDsForPeriod(ctx, period)
	if err != nil {
		return fmt.Errorf("failed to load tracked set for period %s: %w", period, err)
	}

	tierByID := make(map[string]domain.Tier, len(rows))
	for _, r := range rows {
		tierByID[r.EntityID] = r.Tier
	}

	counts := map[domain.Tier]int64{
		domain.TierTop240:   0,
		domain.TierTop480:   0,
		domain.TierUnranked: 0,
	}
	for _, id := range trackedIDs {
		tier, ok := tierByID[id]
		if !ok {
			tier = domain.TierUnranked
		}
		counts[tier]++
	}

	tierRows := []schema.TierCount{
		{Period: period, Tier: domain.TierTop240, Count: counts[domain.TierTop240]},
		{Period: period, Tier: domain.TierTop480, Count: counts[domain.TierTop480]},
		{Period: period, Tier: domain.TierUnranked, Count: counts[domain.TierUnranked]},
	}
	if err := g.store.ReplaceTierCountsForPeriod(ctx, period, tierRows); err != nil {
		return fmt.Errorf("failed to replace tier counts for period %s: %w", period, err)
	}
	return nil
}
