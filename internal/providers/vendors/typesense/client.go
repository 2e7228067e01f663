package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/types"
)

const (
	// DEFAULT_COLLECTION is the public search collection exposed by the service
	DEFAULT_COLLECTION = "public_characters_alias"

	// DefaultPerPage is how many hits one listing page requests
	DefaultPerPage = 48

	// DefaultMaxPages bounds a full ranked-listing walk
	DefaultMaxPages = 10

	// DefaultChunkSize bounds how many ids one filter_by clause carries
	DefaultChunkSize = 80

	// DefaultMaxWorkers bounds concurrent chunked lookups
	DefaultMaxWorkers = 4
)

// Config holds the Typesense connection and paging settings
type Config struct {
	URL        string
	APIKey     string
	Collection string
	// BaseFilter is ANDed into every listing query
	BaseFilter string
	PerPage    int
	MaxPages   int
	ChunkSize  int
	MaxWorkers int
}

func (c *Config) applyDefaults() {
	if c.Collection == "" {
		c.Collection = DEFAULT_COLLECTION
	}
	if c.PerPage <= 0 {
		c.PerPage = DefaultPerPage
	}
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = DefaultMaxWorkers
	}
}

// SearchClient defines the interface for Typesense search operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/typesense_client.go -package=mocks -mock_names=SearchClient=MockSearchClient
type SearchClient interface {
	// TopRanked walks the ranked listing in order until the listing is
	// exhausted or the page budget runs out
	TopRanked(ctx context.Context) ([]domain.RankedHit, error)
	// EntityIDsByCategory lists the ids currently carrying the category tag
	EntityIDsByCategory(ctx context.Context, category string) ([]string, error)
	// EntityDetailsByIDs resolves attribute details for the given ids in chunks
	EntityDetailsByIDs(ctx context.Context, ids []string) ([]domain.EntityDetail, error)
}

type searchRequest struct {
	Collection    string `json:"collection"`
	Q             string `json:"q"`
	QueryBy       string `json:"query_by"`
	FilterBy      string `json:"filter_by,omitempty"`
	IncludeFields string `json:"include_fields,omitempty"`
	SortBy        string `json:"sort_by,omitempty"`
	Page          int    `json:"page,omitempty"`
	PerPage       int    `json:"per_page,omitempty"`
}

type multiSearchPayload struct {
	Searches []searchRequest `json:"searches"`
}

type document struct {
	CharacterID string   `json:"character_id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	AvatarURL   string   `json:"avatar_url"`
	RatingScore *float64 `json:"rating_score"`
	CreatedAt   *int64   `json:"created_at"`
}

type hit struct {
	Document *document `json:"document"`
}

type searchResult struct {
	Hits []hit `json:"hits"`
}

type multiSearchResponse struct {
	Results []searchResult `json:"results"`
}

// TypesenseClient implements SearchClient against the multi_search endpoint
type TypesenseClient struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	config     Config
	pool       pond.ResultPool[[]domain.EntityDetail]
}

// NewClient creates a new Typesense search client
func NewClient(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, cfg Config) SearchClient {
	cfg.applyDefaults()
	return &TypesenseClient{
		httpClient: httpClient,
		json:       jsonAdapter,
		config:     cfg,
		pool:       pond.NewResultPool[[]domain.EntityDetail](cfg.MaxWorkers),
	}
}

// multiSearch issues one multi_search call and returns the first result set's hits
func (c *TypesenseClient) multiSearch(ctx context.Context, req searchRequest) ([]hit, error) {
	body, err := c.json.Marshal(multiSearchPayload{Searches: []searchRequest{req}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search payload: %w", err)
	}

	headers := map[string]string{
		"X-TYPESENSE-API-KEY": c.config.APIKey,
	}
	url := c.config.URL + "/multi_search"
	respBody, err := c.httpClient.Post(ctx, url, "application/json", headers, body)
	if err != nil {
		return nil, fmt.Errorf("failed to call Typesense: %w", err)
	}

	var resp multiSearchResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode Typesense response: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return resp.Results[0].Hits, nil
}

// TopRanked walks the ranked listing in listing order. A short or empty page
// ends the walk; MaxPages caps it either way.
func (c *TypesenseClient) TopRanked(ctx context.Context) ([]domain.RankedHit, error) {
	var out []domain.RankedHit
	for page := 1; page <= c.config.MaxPages; page++ {
		hits, err := c.multiSearch(ctx, searchRequest{
			Collection:    c.config.Collection,
			Q:             "*",
			QueryBy:       "name,title,tags,creator_username,character_id,type",
			FilterBy:      c.config.BaseFilter,
			IncludeFields: "character_id,name,title,tags,avatar_url",
			SortBy:        "num_messages_24h:desc",
			Page:          page,
			PerPage:       c.config.PerPage,
		})
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 {
			break
		}
		for _, h := range hits {
			if h.Document == nil || h.Document.CharacterID == "" {
				logger.WarnCtx(ctx, "skipping malformed listing hit", zap.Int("page", page))
				continue
			}
			out = append(out, domain.RankedHit{
				EntityID:  h.Document.CharacterID,
				Name:      h.Document.Name,
				Title:     h.Document.Title,
				Tags:      h.Document.Tags,
				AvatarURL: h.Document.AvatarURL,
			})
		}
		if len(hits) < c.config.PerPage {
			break
		}
	}
	return out, nil
}

// EntityIDsByCategory lists the ids currently carrying the category tag.
func (c *TypesenseClient) EntityIDsByCategory(ctx context.Context, category string) ([]string, error) {
	filter := fmt.Sprintf("tags:[%q]", category)
	if c.config.BaseFilter != "" {
		filter = c.config.BaseFilter + " && " + filter
	}

	var out []string
	for page := 1; page <= c.config.MaxPages; page++ {
		hits, err := c.multiSearch(ctx, searchRequest{
			Collection:    c.config.Collection,
			Q:             "*",
			QueryBy:       "name,title,tags,character_id",
			FilterBy:      filter,
			IncludeFields: "character_id",
			Page:          page,
			PerPage:       c.config.PerPage,
		})
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 {
			break
		}
		for _, h := range hits {
			if h.Document == nil || h.Document.CharacterID == "" {
				continue
			}
			out = append(out, h.Document.CharacterID)
		}
		if len(hits) < c.config.PerPage {
			break
		}
	}
	return types.Dedupe(out), nil
}

// EntityDetailsByIDs resolves attribute details for the given ids. Ids are
// split into chunks to keep filter_by clauses bounded and the chunks run on
// the worker pool.
func (c *TypesenseClient) EntityDetailsByIDs(ctx context.Context, ids []string) ([]domain.EntityDetail, error) {
	ids = types.Dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	group := c.pool.NewGroupContext(ctx)
	for _, chunk := range types.Chunk(ids, c.config.ChunkSize) {
		chunk := chunk
		group.SubmitErr(func() ([]domain.EntityDetail, error) {
			return c.fetchDetailChunk(ctx, chunk)
		})
	}

	chunks, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch detail chunks: %w", err)
	}

	var out []domain.EntityDetail
	for _, details := range chunks {
		out = append(out, details...)
	}
	return out, nil
}

func (c *TypesenseClient) fetchDetailChunk(ctx context.Context, ids []string) ([]domain.EntityDetail, error) {
	idsJSON, err := c.json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal id filter: %w", err)
	}

	hits, err := c.multiSearch(ctx, searchRequest{
		Collection:    c.config.Collection,
		Q:             "*",
		QueryBy:       "name,title,tags,character_id",
		FilterBy:      fmt.Sprintf("character_id:=%s", string(idsJSON)),
		IncludeFields: "character_id,name,title,tags,avatar_url,rating_score,created_at",
		Page:          1,
		PerPage:       len(ids),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.EntityDetail, 0, len(hits))
	for _, h := range hits {
		if h.Document == nil || h.Document.CharacterID == "" {
			continue
		}
		var createdAt *time.Time
		if h.Document.CreatedAt != nil {
			t := time.Unix(*h.Document.CreatedAt, 0).UTC()
			createdAt = &t
		}
		out = append(out, domain.EntityDetail{
			EntityID:  h.Document.CharacterID,
			Name:      h.Document.Name,
			Title:     h.Document.Title,
			Tags:      h.Document.Tags,
			AvatarURL: h.Document.AvatarURL,
			Rating:    h.Document.RatingScore,
			CreatedAt: createdAt,
		})
	}
	return out, nil
}
