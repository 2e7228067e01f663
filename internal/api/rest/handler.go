package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/discovery"
	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/snapshot"
	"github.com/trackforge/bottrack/internal/store"
	"github.com/trackforge/bottrack/internal/store/schema"
	"github.com/trackforge/bottrack/internal/trends"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GetStatus reports the ingestion state and latest ingested period
	// GET /api/v1/status
	GetStatus(c *gin.Context)

	// GetTrends lists per-entity gains for a window
	// GET /api/v1/trends?window=<all|7day|30day|current_month>&limit=<limit>
	GetTrends(c *gin.Context)

	// GetTrendTotals lists per-period summed gains for a window
	// GET /api/v1/trends/totals?window=<all|7day|30day|current_month>
	GetTrendTotals(c *gin.Context)

	// GetRanks returns a period's rank snapshot and tier counts
	// GET /api/v1/ranks?period=<YYYY-MM-DD> (defaults to the latest period)
	GetRanks(c *gin.Context)

	// ListCategories lists the tracked categories with unseen counts
	// GET /api/v1/categories
	ListCategories(c *gin.Context)

	// CreateCategory adds a category to the tracked set (requires authentication)
	// POST /api/v1/categories
	CreateCategory(c *gin.Context)

	// DeleteCategory removes a category and its memberships (requires authentication)
	// DELETE /api/v1/categories/:category
	DeleteCategory(c *gin.Context)

	// GetCategoryEntities lists a category's members with discovery state
	// GET /api/v1/categories/:category/entities
	GetCategoryEntities(c *gin.Context)

	// AcknowledgeCategory marks a category's discoveries as seen (requires authentication)
	// POST /api/v1/categories/:category/ack
	AcknowledgeCategory(c *gin.Context)

	// AcknowledgeEntity marks one entity's discoveries as seen (requires authentication)
	// POST /api/v1/entities/:id/ack
	AcknowledgeEntity(c *gin.Context)

	// TriggerCycle runs one snapshot cycle (requires authentication)
	// POST /api/v1/cycles
	TriggerCycle(c *gin.Context)

	// ResumeIngestion clears the paused flag (requires authentication)
	// POST /api/v1/ingestion/resume
	ResumeIngestion(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store        store.Store
	trends       *trends.Engine
	discovery    *discovery.Engine
	orchestrator *snapshot.Orchestrator
	clock        adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(
	s store.Store,
	trendsEngine *trends.Engine,
	discoveryEngine *discovery.Engine,
	orchestrator *snapshot.Orchestrator,
	clock adapter.Clock,
) Handler {
	return &handler{
		store:        s,
		trends:       trendsEngine,
		discovery:    discoveryEngine,
		orchestrator: orchestrator,
		clock:        clock,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetStatus reports the ingestion state and latest ingested period
func (h *handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	status, err := h.orchestrator.Status(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to read ingestion status")
		return
	}

	latest, err := h.store.GetLatestPeriod(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to read latest period")
		return
	}

	unseen, err := h.discovery.UnseenCounts(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to count unseen entities")
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Paused:          status.Paused,
		LastSuccessTime: status.LastSuccessTime,
		LatestPeriod:    latest,
		UnseenByCat:     unseen,
	})
}

// parseWindow resolves the window query parameter, defaulting to the full history
func parseWindow(c *gin.Context) (trends.Window, bool) {
	window := trends.Window(c.DefaultQuery("window", string(trends.WindowAll)))
	if !trends.IsValidWindow(window) {
		respondBadRequest(c, "Invalid window", "window must be one of all, 7day, 30day, current_month")
		return "", false
	}
	return window, true
}

// loadHistory reads the full metric history once per request
func (h *handler) loadHistory(c *gin.Context) ([]schema.MetricSnapshot, bool) {
	rows, err := h.store.LoadHistory(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to load metric history")
		return nil, false
	}
	return rows, true
}

func toObservations(rows []schema.MetricSnapshot) []trends.Observation {
	obs := make([]trends.Observation, 0, len(rows))
	for _, r := range rows {
		obs = append(obs, trends.Observation{
			EntityID: r.EntityID,
			Period:   r.Period,
			Count:    r.MetricCount,
		})
	}
	return obs
}

// latestNamesByID indexes display fields by entity for the newest period in rows
func latestNamesByID(rows []schema.MetricSnapshot) map[string][3]string {
	var latest domain.Period
	for _, r := range rows {
		if r.Period > latest {
			latest = r.Period
		}
	}
	names := make(map[string][3]string, len(rows))
	for _, r := range rows {
		if r.Period == latest {
			names[r.EntityID] = [3]string{r.Name, r.Title, r.AvatarURL}
		}
	}
	return names
}

// GetTrends lists per-entity gains for a window
func (h *handler) GetTrends(c *gin.Context) {
	window, ok := parseWindow(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "Invalid limit", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	rows, ok := h.loadHistory(c)
	if !ok {
		return
	}

	points, anomalies := h.trends.DeltasForWindow(toObservations(rows), window, h.clock.Now())
	trends.LogAnomalies(anomalies)
	summaries := h.trends.Summarize(points)
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	entries, err := h.buildTrendEntries(c, summaries, latestNamesByID(rows))
	if err != nil {
		respondInternalError(c, err, "Failed to enrich trend entries")
		return
	}

	c.JSON(http.StatusOK, TrendsResponse{
		Window:  string(window),
		Entries: entries,
	})
}

// buildTrendEntries joins engine summaries with rank, attribute cache and
// name data
func (h *handler) buildTrendEntries(c *gin.Context, summaries []trends.EntitySummary, nameByID map[string][3]string) ([]TrendEntry, error) {
	ctx := c.Request.Context()

	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.EntityID)
	}

	tags, err := h.store.GetTags(ctx, ids)
	if err != nil {
		return nil, err
	}
	ratings, err := h.store.GetRatings(ctx, ids)
	if err != nil {
		return nil, err
	}

	rankByID := make(map[string]RankEntry)
	rankPeriod, err := h.store.GetLatestRankPeriod(ctx)
	if err != nil {
		return nil, err
	}
	if rankPeriod != "" {
		ranks, err := h.store.GetRanksForPeriod(ctx, rankPeriod)
		if err != nil {
			return nil, err
		}
		for _, r := range ranks {
			rankByID[r.EntityID] = RankEntry{EntityID: r.EntityID, Rank: r.Rank, Tier: r.Tier}
		}
	}

	entries := make([]TrendEntry, 0, len(summaries))
	for _, s := range summaries {
		entry := TrendEntry{
			EntityID:  s.EntityID,
			Latest:    s.Latest,
			TotalGain: s.TotalGain,
			Rating:    ratings[s.EntityID],
			Tags:      tags[s.EntityID],
		}
		if names, ok := nameByID[s.EntityID]; ok {
			entry.Name, entry.Title, entry.AvatarURL = names[0], names[1], names[2]
		}
		if r, ok := rankByID[s.EntityID]; ok {
			entry.Rank = r.Rank
			entry.Tier = r.Tier
		} else {
			entry.Tier = domain.TierUnranked
		}
		for _, p := range s.Points {
			entry.Points = append(entry.Points, TrendPoint{
				Period: p.Period,
				Count:  p.Count,
				Delta:  p.Delta,
			})
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetTrendTotals lists per-period summed gains for a window
func (h *handler) GetTrendTotals(c *gin.Context) {
	window, ok := parseWindow(c)
	if !ok {
		return
	}

	rows, ok := h.loadHistory(c)
	if !ok {
		return
	}

	points, anomalies := h.trends.DeltasForWindow(toObservations(rows), window, h.clock.Now())
	trends.LogAnomalies(anomalies)

	totals := h.trends.Totals(points)
	out := make([]PeriodTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, PeriodTotal{Period: t.Period, Total: t.Total})
	}

	c.JSON(http.StatusOK, TotalsResponse{
		Window: string(window),
		Totals: out,
	})
}

// GetRanks returns a period's rank snapshot and tier counts
func (h *handler) GetRanks(c *gin.Context) {
	ctx := c.Request.Context()

	period := domain.Period(c.Query("period"))
	if period == "" {
		latest, err := h.store.GetLatestRankPeriod(ctx)
		if err != nil {
			respondInternalError(c, err, "Failed to read latest rank period")
			return
		}
		if latest == "" {
			// No rank snapshot recorded yet; an empty listing, not an error
			c.JSON(http.StatusOK, RanksResponse{
				Ranks:      []RankEntry{},
				TierCounts: []TierCountEntry{},
			})
			return
		}
		period = latest
	} else if !domain.IsValidPeriod(period) {
		respondBadRequest(c, "Invalid period", "period must be formatted as YYYY-MM-DD")
		return
	}

	ranks, err := h.store.GetRanksForPeriod(ctx, period)
	if err != nil {
		respondInternalError(c, err, "Failed to read ranks")
		return
	}
	tierCounts, err := h.store.GetTierCounts(ctx, period)
	if err != nil {
		respondInternalError(c, err, "Failed to read tier counts")
		return
	}

	resp := RanksResponse{
		Period:     period,
		Ranks:      []RankEntry{},
		TierCounts: []TierCountEntry{},
	}
	for _, r := range ranks {
		resp.Ranks = append(resp.Ranks, RankEntry{EntityID: r.EntityID, Rank: r.Rank, Tier: r.Tier})
	}
	for _, t := range tierCounts {
		resp.TierCounts = append(resp.TierCounts, TierCountEntry{Tier: t.Tier, Count: t.Count})
	}

	c.JSON(http.StatusOK, resp)
}

// ListCategories lists the tracked categories with unseen counts
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.store.ListTrackedCategories(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to list categories")
		return
	}

	resp := CategoriesResponse{Categories: make([]CategoryEntry, 0, len(categories))}
	for _, cat := range categories {
		unseen, err := h.store.CountUnseen(ctx, cat.Category)
		if err != nil {
			respondInternalError(c, err, "Failed to count unseen entities")
			return
		}
		resp.Categories = append(resp.Categories, CategoryEntry{
			Category: cat.Category,
			AddedAt:  cat.AddedAt,
			Unseen:   unseen,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// CreateCategory adds a category to the tracked set
func (h *handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.store.AddTrackedCategory(c.Request.Context(), req.Category, h.clock.Now()); err != nil {
		respondInternalError(c, err, "Failed to add category", zap.String("category", req.Category))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": req.Category})
}

// DeleteCategory removes a category and its memberships
func (h *handler) DeleteCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		respondBadRequest(c, "Category is required")
		return
	}

	if err := h.store.RemoveTrackedCategory(c.Request.Context(), category); err != nil {
		respondInternalError(c, err, "Failed to remove category", zap.String("category", category))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCategoryEntities lists a category's members with discovery state
func (h *handler) GetCategoryEntities(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		respondBadRequest(c, "Category is required")
		return
	}

	entities, err := h.store.GetCategoryEntities(c.Request.Context(), category)
	if err != nil {
		respondInternalError(c, err, "Failed to list category entities", zap.String("category", category))
		return
	}

	resp := CategoryEntitiesResponse{
		Category: category,
		Entities: make([]CategoryEntityEntry, 0, len(entities)),
	}
	for _, e := range entities {
		entry := CategoryEntityEntry{
			EntityID:       e.Membership.EntityID,
			FirstSeenAt:    e.Membership.FirstSeenAt,
			LastSeenAt:     e.Membership.LastSeenAt,
			AcknowledgedAt: e.Membership.AcknowledgedAt,
			Unseen:         e.Membership.IsUnseen(),
		}
		if e.Record != nil {
			entry.Name = e.Record.Name
			entry.Title = e.Record.Title
			entry.AvatarURL = e.Record.AvatarURL
			if len(e.Record.Tags) > 0 {
				var tags []string
				if err := json.Unmarshal(e.Record.Tags, &tags); err == nil {
					entry.Tags = tags
				}
			}
		}
		resp.Entities = append(resp.Entities, entry)
	}

	c.JSON(http.StatusOK, resp)
}

// AcknowledgeCategory marks a category's discoveries as seen
func (h *handler) AcknowledgeCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		respondBadRequest(c, "Category is required")
		return
	}

	if err := h.discovery.AcknowledgeCategory(c.Request.Context(), category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			respondNotFound(c, "Category is not tracked", category)
			return
		}
		respondInternalError(c, err, "Failed to acknowledge category", zap.String("category", category))
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category, "acknowledged": true})
}

// AcknowledgeEntity marks one entity's discoveries as seen
func (h *handler) AcknowledgeEntity(c *gin.Context) {
	entityID := c.Param("id")
	if entityID == "" {
		respondBadRequest(c, "Entity id is required")
		return
	}

	if err := h.discovery.AcknowledgeEntity(c.Request.Context(), entityID); err != nil {
		respondInternalError(c, err, "Failed to acknowledge entity", zap.String("entityID", entityID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"entity_id": entityID, "acknowledged": true})
}

// TriggerCycle runs one snapshot cycle
func (h *handler) TriggerCycle(c *gin.Context) {
	report, err := h.orchestrator.RunCycle(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrCycleInProgress) {
			respondConflict(c, "A snapshot cycle is already running")
			return
		}
		respondInternalError(c, err, "Failed to run snapshot cycle")
		return
	}

	c.JSON(http.StatusOK, report)
}

// ResumeIngestion clears the paused flag
func (h *handler) ResumeIngestion(c *gin.Context) {
	if err := h.orchestrator.Resume(c.Request.Context()); err != nil {
		respondInternalError(c, err, "Failed to resume ingestion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"paused": false})
}
