package spicechat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/domain"
)

const (
	// API_ENDPOINT is the base URL for the SpiceChat backend API
	API_ENDPOINT = "https://prod.nd-api.com/v2"

	// AVATAR_CDN is the base URL for avatar assets
	AVATAR_CDN = "https://cdn.nd-api.com/avatars"

	// LISTING_PATH is the authenticated endpoint returning the caller's entities
	LISTING_PATH = "/users/characters?switch=T1"
)

// Credentials holds the bearer token and guest id required by the API
type Credentials struct {
	BearerToken string
	GuestUserID string
}

// CredentialSource supplies fresh credentials for each fetch
//
//go:generate mockgen -source=client.go -destination=../../../mocks/spicechat_client.go -package=mocks -mock_names=Client=MockSpiceChatClient,CredentialSource=MockCredentialSource
type CredentialSource interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// Client defines the interface for SpiceChat client operations to enable mocking
type Client interface {
	// FetchEntities fetches the caller's tracked entities from the SpiceChat API
	FetchEntities(ctx context.Context) ([]domain.EntityRecord, error)
}

// SpiceChatClient implements the SpiceChat client
type SpiceChatClient struct {
	httpClient  adapter.HTTPClient
	credentials CredentialSource
	apiBaseURL  string
}

// NewClient creates a new SpiceChat client
func NewClient(httpClient adapter.HTTPClient, credentials CredentialSource, apiBaseURL string) Client {
	if apiBaseURL == "" {
		apiBaseURL = API_ENDPOINT
	}
	return &SpiceChatClient{
		httpClient:  httpClient,
		credentials: credentials,
		apiBaseURL:  apiBaseURL,
	}
}

// FetchEntities fetches the caller's tracked entities from the SpiceChat API.
// A rejected or missing credential maps to domain.ErrAuthRequired; a payload
// with no usable records maps to domain.ErrEmptyPayload.
func (c *SpiceChatClient) FetchEntities(ctx context.Context) ([]domain.EntityRecord, error) {
	creds, err := c.credentials.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAuthRequired, err.Error())
	}
	if creds.BearerToken == "" || creds.GuestUserID == "" {
		return nil, domain.ErrAuthRequired
	}

	headers := map[string]string{
		"Authorization":  "Bearer " + creds.BearerToken,
		"Accept":         "application/json, text/plain, */*",
		"x-app-id":       "spicychat",
		"x-guest-userid": creds.GuestUserID,
	}

	var payload json.RawMessage
	url := c.apiBaseURL + LISTING_PATH
	if err := c.httpClient.Get(ctx, url, headers, &payload); err != nil {
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: status %d", domain.ErrAuthRequired, statusErr.StatusCode)
		}
		return nil, fmt.Errorf("failed to call SpiceChat API: %w", err)
	}

	records := parsePayload(payload)
	if len(records) == 0 {
		return nil, domain.ErrEmptyPayload
	}
	return records, nil
}

// parsePayload extracts entity records from an API payload of unknown shape.
// The endpoint has shipped both a bare list and a {"data": [...]} wrapper, and
// item keys have drifted across releases, so candidate objects are collected
// recursively and mapped through fallback keys.
func parsePayload(payload json.RawMessage) []domain.EntityRecord {
	var root interface{}
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil
	}

	var items []map[string]interface{}
	flattenItems(root, &items)

	records := make([]domain.EntityRecord, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		record, ok := normalizeRecord(item)
		if !ok {
			continue
		}
		if _, dup := seen[record.EntityID]; dup {
			continue
		}
		seen[record.EntityID] = struct{}{}
		records = append(records, record)
	}
	return records
}

// flattenItems collects every nested object that looks like an entity payload
func flattenItems(node interface{}, out *[]map[string]interface{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for _, key := range []string{"name", "title", "characterName", "displayName", "botTitle"} {
			if _, ok := v[key]; ok {
				*out = append(*out, v)
				break
			}
		}
		for _, child := range v {
			flattenItems(child, out)
		}
	case []interface{}:
		for _, child := range v {
			flattenItems(child, out)
		}
	}
}

// normalizeRecord maps one raw item to the canonical record shape. Items
// without a usable id or metric count are dropped.
func normalizeRecord(item map[string]interface{}) (domain.EntityRecord, bool) {
	id := pickString(item, "id", "slug", "uuid", "characterId", "_id")
	count, countOK := pickCount(item)
	if id == "" || !countOK {
		return domain.EntityRecord{}, false
	}

	return domain.EntityRecord{
		EntityID:    id,
		Name:        pickString(item, "name", "characterName", "displayName", "botTitle"),
		Title:       pickString(item, "title", "botTitle", "description"),
		MetricCount: count,
		OwnerID:     pickString(item, "creator_user_id", "creatorUserId"),
		CreatedAt:   pickTime(item, "createdAt", "created_at"),
		AvatarURL:   NormalizeAvatarURL(pickString(item, "avatarUrl", "avatar_url")),
	}, true
}

func pickString(item map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key]; ok && v != nil {
			if s, ok := v.(string); ok {
				return s
			}
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

func pickTime(item map[string]interface{}, keys ...string) *time.Time {
	raw := pickString(item, keys...)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

var digitsPattern = regexp.MustCompile(`\d+`)

// coerceCount parses a count out of numbers and number-bearing strings
func coerceCount(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case string:
		m := digitsPattern.FindString(strings.ReplaceAll(n, ",", ""))
		if m == "" {
			return 0, false
		}
		parsed, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// pickCount resolves the metric count through flat fallback keys, then
// through known nested stat locations
func pickCount(item map[string]interface{}) (int64, bool) {
	for _, key := range []string{"num_messages", "messageCount", "message_count", "messages", "interactions", "numMessages"} {
		if v, ok := item[key]; ok && v != nil {
			return coerceCount(v)
		}
	}
	for _, path := range [][2]string{
		{"stats", "messageCount"},
		{"stats", "messages"},
		{"usage", "messages"},
		{"metrics", "messages"},
		{"analytics", "messages"},
	} {
		nested, ok := item[path[0]].(map[string]interface{})
		if !ok {
			continue
		}
		if v, ok := nested[path[1]]; ok && v != nil {
			return coerceCount(v)
		}
	}
	return 0, false
}

// NormalizeAvatarURL converts relative avatar paths to absolute CDN URLs
func NormalizeAvatarURL(url string) string {
	switch {
	case url == "":
		return ""
	case strings.HasPrefix(url, "/avatars/"):
		return AVATAR_CDN + "/" + strings.TrimPrefix(url, "/avatars/")
	case strings.HasPrefix(url, "avatars/"):
		return AVATAR_CDN + "/" + strings.TrimPrefix(url, "avatars/")
	default:
		return url
	}
}
