package ratelimit

import (
	"context"

	"github.com/trackforge/bottrack/internal/adapter"
)

// httpClient decorates an adapter.HTTPClient so every call first acquires a
// rate limit token for the named provider.
type httpClient struct {
	inner    adapter.HTTPClient
	proxy    Proxy
	provider string
}

// NewHTTPClient wraps client with rate limiting keyed by provider.
// A nil proxy returns the client unwrapped.
func NewHTTPClient(client adapter.HTTPClient, proxy Proxy, provider string) adapter.HTTPClient {
	if proxy == nil {
		return client
	}
	return &httpClient{
		inner:    client,
		proxy:    proxy,
		provider: provider,
	}
}

func (c *httpClient) Get(ctx context.Context, url string, headers map[string]string, result interface{}) error {
	_, err := c.proxy.Request(ctx, c.provider, func(ctx context.Context) (interface{}, error) {
		return nil, c.inner.Get(ctx, url, headers, result)
	})
	return err
}

func (c *httpClient) Post(ctx context.Context, url string, contentType string, headers map[string]string, body []byte) ([]byte, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) ([]byte, error) {
		return c.inner.Post(ctx, url, contentType, headers, body)
	})
}
