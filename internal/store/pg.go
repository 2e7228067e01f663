package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates all tables used by the store
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.MetricSnapshot{},
		&schema.RankSnapshot{},
		&schema.TierCount{},
		&schema.TagCacheEntry{},
		&schema.RatingCacheEntry{},
		&schema.RatingHistory{},
		&schema.TrackedCategory{},
		&schema.CategoryMembership{},
		&schema.EntityStaticRecord{},
		&schema.KeyValueStore{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection
// If any of the pool settings are 0, reasonable defaults are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

const insertBatchSize = 500

// =============================================================================
// Metric snapshots
// =============================================================================

func (s *pgStore) ReplacePeriod(ctx context.Context, period domain.Period, rows []schema.MetricSnapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period = ?", period).Delete(&schema.MetricSnapshot{}).Error; err != nil {
			return fmt.Errorf("failed to delete snapshot rows for period %s: %w", period, err)
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].Period = period
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert snapshot rows for period %s: %w", period, err)
		}
		return nil
	})
}

func (s *pgStore) LoadHistory(ctx context.Context) ([]schema.MetricSnapshot, error) {
	var rows []schema.MetricSnapshot
	err := s.db.WithContext(ctx).
		Order("entity_id ASC").
		Order("period ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load metric history: %w", err)
	}
	return rows, nil
}

func (s *pgStore) GetLatestPeriod(ctx context.Context) (domain.Period, error) {
	var row schema.MetricSnapshot
	err := s.db.WithContext(ctx).Order("period DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get latest period: %w", err)
	}
	return row.Period, nil
}

func (s *pgStore) GetEntityIDsForPeriod(ctx context.Context, period domain.Period) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.MetricSnapshot{}).
		Where("period = ?", period).
		Order("entity_id ASC").
		Pluck("entity_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get entity ids for period %s: %w", period, err)
	}
	return ids, nil
}

// =============================================================================
// Rank snapshots and tier counts
// =============================================================================

func (s *pgStore) ReplaceRanksForPeriod(ctx context.Context, period domain.Period, rows []schema.RankSnapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period = ?", period).Delete(&schema.RankSnapshot{}).Error; err != nil {
			return fmt.Errorf("failed to delete rank rows for period %s: %w", period, err)
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].Period = period
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert rank rows for period %s: %w", period, err)
		}
		return nil
	})
}

func (s *pgStore) GetRanksForPeriod(ctx context.Context, period domain.Period) ([]schema.RankSnapshot, error) {
	var rows []schema.RankSnapshot
	err := s.db.WithContext(ctx).
		Where("period = ?", period).
		Order("rank ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ranks for period %s: %w", period, err)
	}
	return rows, nil
}

func (s *pgStore) GetLatestRankPeriod(ctx context.Context) (domain.Period, error) {
	var row schema.RankSnapshot
	err := s.db.WithContext(ctx).Order("period DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get latest rank period: %w", err)
	}
	return row.Period, nil
}

func (s *pgStore) GetRankForEntity(ctx context.Context, period domain.Period, entityID string) (*schema.RankSnapshot, error) {
	var row schema.RankSnapshot
	err := s.db.WithContext(ctx).
		Where("period = ? AND entity_id = ?", period, entityID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rank for entity %s: %w", entityID, err)
	}
	return &row, nil
}

func (s *pgStore) ReplaceTierCountsForPeriod(ctx context.Context, period domain.Period, rows []schema.TierCount) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period = ?", period).Delete(&schema.TierCount{}).Error; err != nil {
			return fmt.Errorf("failed to delete tier counts for period %s: %w", period, err)
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].Period = period
		}
		if err := tx.Create(rows).Error; err != nil {
			return fmt.Errorf("failed to insert tier counts for period %s: %w", period, err)
		}
		return nil
	})
}

func (s *pgStore) GetTierCounts(ctx context.Context, period domain.Period) ([]schema.TierCount, error) {
	var rows []schema.TierCount
	err := s.db.WithContext(ctx).
		Where("period = ?", period).
		Order("tier ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tier counts for period %s: %w", period, err)
	}
	return rows, nil
}

// =============================================================================
// Attribute caches (tags, ratings)
//
// Both caches share the same contract: upsert-on-refresh keyed by entity id,
// reads omit unknown ids. The generic helpers below are the single
// implementation; the exported methods only adapt value types.
// =============================================================================

type attributeRow interface {
	schema.TagCacheEntry | schema.RatingCacheEntry
}

func upsertAttributeRows[R attributeRow](ctx context.Context, db *gorm.DB, rows []R) error {
	if len(rows) == 0 {
		return nil
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entity_id"}},
		UpdateAll: true,
	}).CreateInBatches(rows, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert attribute cache rows: %w", err)
	}
	return nil
}

func loadAttributeRows[R attributeRow](ctx context.Context, db *gorm.DB, ids []string) ([]R, error) {
	var rows []R
	q := db.WithContext(ctx)
	if len(ids) > 0 {
		q = q.Where("entity_id IN ?", ids)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load attribute cache rows: %w", err)
	}
	return rows, nil
}

func (s *pgStore) GetTags(ctx context.Context, ids []string) (map[string][]string, error) {
	rows, err := loadAttributeRows[schema.TagCacheEntry](ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(rows))
	for _, r := range rows {
		var tags []string
		if len(r.Tags) > 0 {
			if err := json.Unmarshal(r.Tags, &tags); err != nil {
				// A malformed cache entry degrades to empty, it never fails a read
				tags = nil
			}
		}
		out[r.EntityID] = tags
	}
	return out, nil
}

func (s *pgStore) UpsertTags(ctx context.Context, tags map[string][]string, refreshedAt time.Time) error {
	rows := make([]schema.TagCacheEntry, 0, len(tags))
	for id, list := range tags {
		if id == "" {
			continue
		}
		if list == nil {
			list = []string{}
		}
		raw, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("failed to marshal tags for entity %s: %w", id, err)
		}
		rows = append(rows, schema.TagCacheEntry{
			EntityID:    id,
			Tags:        datatypes.JSON(raw),
			RefreshedAt: refreshedAt,
		})
	}
	return upsertAttributeRows(ctx, s.db, rows)
}

func (s *pgStore) GetRatings(ctx context.Context, ids []string) (map[string]*float64, error) {
	rows, err := loadAttributeRows[schema.RatingCacheEntry](ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*float64, len(rows))
	for _, r := range rows {
		out[r.EntityID] = r.Rating
	}
	return out, nil
}

func (s *pgStore) UpsertRatings(ctx context.Context, ratings map[string]*float64, refreshedAt time.Time) error {
	rows := make([]schema.RatingCacheEntry, 0, len(ratings))
	for id, rating := range ratings {
		if id == "" {
			continue
		}
		rows = append(rows, schema.RatingCacheEntry{
			EntityID:    id,
			Rating:      rating,
			RefreshedAt: refreshedAt,
		})
	}
	return upsertAttributeRows(ctx, s.db, rows)
}

func (s *pgStore) ReplaceRatingHistoryForPeriod(ctx context.Context, period domain.Period, rows []schema.RatingHistory) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period = ?", period).Delete(&schema.RatingHistory{}).Error; err != nil {
			return fmt.Errorf("failed to delete rating history for period %s: %w", period, err)
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].Period = period
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert rating history for period %s: %w", period, err)
		}
		return nil
	})
}

// =============================================================================
// Tracked categories and memberships
// =============================================================================

func (s *pgStore) AddTrackedCategory(ctx context.Context, category string, addedAt time.Time) error {
	row := schema.TrackedCategory{Category: category, AddedAt: addedAt}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to add tracked category %s: %w", category, err)
	}
	return nil
}

func (s *pgStore) RemoveTrackedCategory(ctx context.Context, category string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category = ?", category).Delete(&schema.CategoryMembership{}).Error; err != nil {
			return fmt.Errorf("failed to delete memberships for category %s: %w", category, err)
		}
		if err := tx.Where("category = ?", category).Delete(&schema.TrackedCategory{}).Error; err != nil {
			return fmt.Errorf("failed to delete tracked category %s: %w", category, err)
		}
		return nil
	})
}

func (s *pgStore) ListTrackedCategories(ctx context.Context) ([]schema.TrackedCategory, error) {
	var rows []schema.TrackedCategory
	err := s.db.WithContext(ctx).Order("category ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked categories: %w", err)
	}
	return rows, nil
}

func (s *pgStore) GetMembershipEntityIDs(ctx context.Context, category string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.CategoryMembership{}).
		Where("category = ?", category).
		Pluck("entity_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get membership ids for category %s: %w", category, err)
	}
	return ids, nil
}

func (s *pgStore) UpsertMembershipsLastSeen(ctx context.Context, category string, entityIDs []string, seenAt time.Time) error {
	if len(entityIDs) == 0 {
		return nil
	}
	rows := make([]schema.CategoryMembership, 0, len(entityIDs))
	for _, id := range entityIDs {
		if id == "" {
			continue
		}
		rows = append(rows, schema.CategoryMembership{
			Category:   category,
			EntityID:   id,
			LastSeenAt: seenAt,
		})
	}
	// New rows get first_seen_at NULL; existing rows only refresh last_seen_at
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "entity_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_seen_at"}),
	}).CreateInBatches(rows, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert memberships for category %s: %w", category, err)
	}
	return nil
}

func (s *pgStore) SetFirstSeen(ctx context.Context, category string, entityIDs []string, firstSeenAt time.Time) error {
	if len(entityIDs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Model(&schema.CategoryMembership{}).
		Where("category = ? AND entity_id IN ? AND first_seen_at IS NULL", category, entityIDs).
		Update("first_seen_at", firstSeenAt).Error
	if err != nil {
		return fmt.Errorf("failed to set first_seen_at for category %s: %w", category, err)
	}
	return nil
}

func (s *pgStore) GetCategoryEntities(ctx context.Context, category string) ([]CategoryEntity, error) {
	var memberships []schema.CategoryMembership
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("entity_id ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships for category %s: %w", category, err)
	}
	if len(memberships) == 0 {
		return []CategoryEntity{}, nil
	}

	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.EntityID)
	}
	records, err := s.GetEntityRecords(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]schema.EntityStaticRecord, len(records))
	for _, r := range records {
		byID[r.EntityID] = r
	}

	out := make([]CategoryEntity, 0, len(memberships))
	for _, m := range memberships {
		entry := CategoryEntity{Membership: m}
		if r, ok := byID[m.EntityID]; ok {
			rec := r
			entry.Record = &rec
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *pgStore) CountUnseen(ctx context.Context, category string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.CategoryMembership{}).
		Where("category = ? AND first_seen_at IS NOT NULL AND acknowledged_at IS NULL", category).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unseen for category %s: %w", category, err)
	}
	return count, nil
}

func (s *pgStore) AcknowledgeEntity(ctx context.Context, entityID string, ackedAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.CategoryMembership{}).
		Where("entity_id = ? AND acknowledged_at IS NULL", entityID).
		Update("acknowledged_at", ackedAt).Error
	if err != nil {
		return fmt.Errorf("failed to acknowledge entity %s: %w", entityID, err)
	}
	return nil
}

func (s *pgStore) AcknowledgeCategory(ctx context.Context, category string, ackedAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.CategoryMembership{}).
		Where("category = ? AND acknowledged_at IS NULL", category).
		Update("acknowledged_at", ackedAt).Error
	if err != nil {
		return fmt.Errorf("failed to acknowledge category %s: %w", category, err)
	}
	return nil
}

// =============================================================================
// Entity static records
// =============================================================================

func (s *pgStore) GetMissingEntityRecordIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var existing []string
	err := s.db.WithContext(ctx).
		Model(&schema.EntityStaticRecord{}).
		Where("entity_id IN ?", ids).
		Pluck("entity_id", &existing).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check existing entity records: %w", err)
	}
	have := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		have[id] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (s *pgStore) InsertEntityRecords(ctx context.Context, rows []schema.EntityStaticRecord) error {
	if len(rows) == 0 {
		return nil
	}
	// Immutable cache: ids already populated are left untouched
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entity_id"}},
		DoNothing: true,
	}).CreateInBatches(rows, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to insert entity records: %w", err)
	}
	return nil
}

func (s *pgStore) GetEntityRecords(ctx context.Context, ids []string) ([]schema.EntityStaticRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []schema.EntityStaticRecord
	err := s.db.WithContext(ctx).Where("entity_id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get entity records: %w", err)
	}
	return rows, nil
}

// =============================================================================
// Key-value store
// =============================================================================

func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}
	return nil
}

func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}
	return kv.Value, nil
}
