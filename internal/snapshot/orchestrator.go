package snapshot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/attrcache"
	"github.com/trackforge/bottrack/internal/discovery"
	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/messaging"
	"github.com/trackforge/bottrack/internal/providers/vendors/spicechat"
	"github.com/trackforge/bottrack/internal/providers/vendors/typesense"
	"github.com/trackforge/bottrack/internal/rank"
	"github.com/trackforge/bottrack/internal/store"
	"github.com/trackforge/bottrack/internal/store/schema"
)

const (
	// KeyIngestionPaused marks ingestion as paused after an auth failure
	KeyIngestionPaused = "ingestion_paused"
	// KeyLastSuccessTime records when the last successful cycle finished
	KeyLastSuccessTime = "last_success_time"
)

// Orchestrator runs snapshot cycles. One cycle fetches the tracked entities,
// replaces the period's metric snapshot, refreshes ranks and attribute caches
// and syncs category discovery. Stages after the fetch are fault isolated: a
// failing stage is recorded on the report and the remaining stages still run.
type Orchestrator struct {
	store     store.Store
	fetcher   spicechat.Client
	search    typesense.SearchClient
	ranks     *rank.Ingestor
	attrs     *attrcache.Refresher
	discovery *discovery.Engine
	publisher messaging.Publisher
	clock     adapter.Clock

	running atomic.Bool
}

func NewOrchestrator(
	s store.Store,
	fetcher spicechat.Client,
	search typesense.SearchClient,
	ranks *rank.Ingestor,
	attrs *attrcache.Refresher,
	discoveryEngine *discovery.Engine,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Orchestrator {
	return &Orchestrator{
		store:     s,
		fetcher:   fetcher,
		search:    search,
		ranks:     ranks,
		attrs:     attrs,
		discovery: discoveryEngine,
		publisher: publisher,
		clock:     clock,
	}
}

// Status reads the persisted ingestion state.
func (o *Orchestrator) Status(ctx context.Context) (domain.IngestionStatus, error) {
	status := domain.IngestionStatus{}

	paused, err := o.store.GetKeyValue(ctx, KeyIngestionPaused)
	if err != nil {
		return status, fmt.Errorf("failed to read paused flag: %w", err)
	}
	status.Paused = paused == "true"

	last, err := o.store.GetKeyValue(ctx, KeyLastSuccessTime)
	if err != nil {
		return status, fmt.Errorf("failed to read last success time: %w", err)
	}
	if last != "" {
		t, err := time.Parse(time.RFC3339, last)
		if err == nil {
			status.LastSuccessTime = &t
		}
	}

	return status, nil
}

// Resume clears the paused flag so the next cycle attempts a fetch again.
func (o *Orchestrator) Resume(ctx context.Context) error {
	return o.store.SetKeyValue(ctx, KeyIngestionPaused, "false")
}

// RunCycle runs one snapshot cycle for the period containing now. Only one
// cycle runs at a time; a second caller gets domain.ErrCycleInProgress.
func (o *Orchestrator) RunCycle(ctx context.Context) (*domain.CycleReport, error) {
	if !o.running.CompareAndSwap(false, true) {
		return nil, domain.ErrCycleInProgress
	}
	defer o.running.Store(false)

	now := o.clock.Now()
	report := &domain.CycleReport{
		CycleID:   ulid.MustNewDefault(now).String(),
		Period:    domain.PeriodOf(now),
		StartedAt: now,
	}
	log := logger.Default().With(
		zap.String("cycleID", report.CycleID),
		zap.String("period", string(report.Period)))
	log.Info("starting snapshot cycle")

	// Stage: fetch. Any fetch failure is fatal to the cycle: rejected
	// credentials, an empty payload and a malformed payload all pause
	// ingestion and abort before any store mutation.
	entities, err := o.fetcher.FetchEntities(ctx)
	if err != nil {
		report.AddStage(domain.StageFetch, 0, err)
		report.Paused = true
		report.PauseReason = err.Error()
		if kvErr := o.store.SetKeyValue(ctx, KeyIngestionPaused, "true"); kvErr != nil {
			log.Error("failed to persist paused flag", zap.Error(kvErr))
		}
		log.Warn("cycle paused, fetch failed", zap.Error(err))
		o.finish(ctx, report, 0, 0)
		return report, nil
	}
	report.AddStage(domain.StageFetch, len(entities), nil)
	if err := o.store.SetKeyValue(ctx, KeyIngestionPaused, "false"); err != nil {
		log.Error("failed to clear paused flag", zap.Error(err))
	}

	// Stage: ingest.
	entityRows := 0
	if len(entities) > 0 {
		rows := snapshotRows(report.Period, entities, now)
		if err := o.store.ReplacePeriod(ctx, report.Period, rows); err != nil {
			report.AddStage(domain.StageIngest, 0, err)
			log.Error("ingest failed", zap.Error(err))
		} else {
			entityRows = len(rows)
			report.AddStage(domain.StageIngest, entityRows, nil)
		}
	}

	// Stage: rank.
	if hits, err := o.search.TopRanked(ctx); err != nil {
		report.AddStage(domain.StageRank, 0, err)
		log.Error("rank stage failed", zap.Error(err))
	} else if count, err := o.ranks.IngestRanks(ctx, report.Period, hits); err != nil {
		report.AddStage(domain.StageRank, 0, err)
		log.Error("rank stage failed", zap.Error(err))
	} else {
		report.AddStage(domain.StageRank, count, nil)
	}

	// Stages: tags and ratings share one detail lookup over the tracked set.
	o.runAttributeStages(ctx, report, log)

	// Stage: discovery.
	discovered := 0
	if results, err := o.discovery.SyncAll(ctx); err != nil {
		report.AddStage(domain.StageDiscovery, 0, err)
		log.Error("discovery stage failed", zap.Error(err))
	} else {
		for _, r := range results {
			discovered += len(r.Discovered)
		}
		report.AddStage(domain.StageDiscovery, discovered, nil)
	}

	if entityRows > 0 {
		if err := o.store.SetKeyValue(ctx, KeyLastSuccessTime, now.Format(time.RFC3339)); err != nil {
			log.Error("failed to persist last success time", zap.Error(err))
		}
	}

	o.finish(ctx, report, entityRows, discovered)
	log.Info("snapshot cycle finished",
		zap.Int("entityRows", entityRows),
		zap.Int("discovered", discovered))
	return report, nil
}

func (o *Orchestrator) runAttributeStages(ctx context.Context, report *domain.CycleReport, log *zap.Logger) {
	trackedIDs, err := o.store.GetEntityIDsForPeriod(ctx, report.Period)
	if err == nil && len(trackedIDs) == 0 {
		// Fall back to the latest ingested period when this period has no rows
		var latest domain.Period
		latest, err = o.store.GetLatestPeriod(ctx)
		if err == nil && latest != "" {
			trackedIDs, err = o.store.GetEntityIDsForPeriod(ctx, latest)
		}
	}
	if err != nil {
		report.AddStage(domain.StageTags, 0, err)
		report.AddStage(domain.StageRatings, 0, err)
		log.Error("failed to load tracked set for attribute refresh", zap.Error(err))
		return
	}
	if len(trackedIDs) == 0 {
		report.AddStage(domain.StageTags, 0, nil)
		report.AddStage(domain.StageRatings, 0, nil)
		return
	}

	details, err := o.attrs.FetchDetails(ctx, trackedIDs)
	if err != nil {
		report.AddStage(domain.StageTags, 0, err)
		report.AddStage(domain.StageRatings, 0, err)
		log.Error("detail lookup failed", zap.Error(err))
		return
	}

	if count, err := o.attrs.RefreshTags(ctx, details); err != nil {
		report.AddStage(domain.StageTags, 0, err)
		log.Error("tag refresh failed", zap.Error(err))
	} else {
		report.AddStage(domain.StageTags, count, nil)
	}

	if count, err := o.attrs.RefreshRatings(ctx, report.Period, details); err != nil {
		report.AddStage(domain.StageRatings, 0, err)
		log.Error("rating refresh failed", zap.Error(err))
	} else {
		report.AddStage(domain.StageRatings, count, nil)
	}
}

// finish stamps the report and publishes the cycle event best effort.
func (o *Orchestrator) finish(ctx context.Context, report *domain.CycleReport, entityRows, discovered int) {
	report.FinishedAt = o.clock.Now()
	if o.publisher == nil {
		return
	}
	event := &domain.CycleEvent{
		CycleID:    report.CycleID,
		Period:     report.Period,
		Paused:     report.Paused,
		EntityRows: entityRows,
		Discovered: discovered,
		FinishedAt: report.FinishedAt,
	}
	if err := o.publisher.PublishCycleEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish cycle event",
			zap.String("cycleID", report.CycleID),
			zap.Error(err))
	}
}

func snapshotRows(period domain.Period, entities []domain.EntityRecord, now time.Time) []schema.MetricSnapshot {
	rows := make([]schema.MetricSnapshot, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, schema.MetricSnapshot{
			Period:          period,
			EntityID:        e.EntityID,
			Name:            e.Name,
			Title:           e.Title,
			MetricCount:     e.MetricCount,
			OwnerID:         e.OwnerID,
			EntityCreatedAt: e.CreatedAt,
			AvatarURL:       e.AvatarURL,
			CreatedAt:       now,
		})
	}
	return rows
}
