package ratelimit_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/bottrack/internal/mocks"
	"github.com/trackforge/bottrack/internal/ratelimit"
)

func TestHTTPClient_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockHTTPClient(ctrl)
	p, err := ratelimit.NewProxy(testConfig())
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	client := ratelimit.NewHTTPClient(inner, p, ratelimit.ProviderSpiceChat)

	headers := map[string]string{"Authorization": "Bearer token"}
	var result struct{ Value string }
	inner.EXPECT().
		Get(gomock.Any(), "https://api.example.com/items", headers, &result).
		DoAndReturn(func(ctx context.Context, url string, headers map[string]string, out interface{}) error {
			out.(*struct{ Value string }).Value = "hit"
			return nil
		})

	require.NoError(t, client.Get(context.Background(), "https://api.example.com/items", headers, &result))
	assert.Equal(t, "hit", result.Value)
}

func TestHTTPClient_Post(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockHTTPClient(ctrl)
	p, err := ratelimit.NewProxy(testConfig())
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	client := ratelimit.NewHTTPClient(inner, p, ratelimit.ProviderSpiceChat)

	body := []byte(`{"searches":[]}`)
	inner.EXPECT().
		Post(gomock.Any(), "https://search.example.com/multi_search", "application/json", gomock.Nil(), body).
		Return([]byte(`{"results":[]}`), nil)

	resp, err := client.Post(context.Background(), "https://search.example.com/multi_search", "application/json", nil, body)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"results":[]}`), resp)
}

func TestNewHTTPClient_NilProxyPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockHTTPClient(ctrl)
	client := ratelimit.NewHTTPClient(inner, nil, ratelimit.ProviderTypesense)
	assert.Equal(t, inner, client)
}
