package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/bottrack/internal/config"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/ratelimit"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func testConfig() config.RateLimiterConfig {
	return config.RateLimiterConfig{
		MaxWorkers:   4,
		MaxQueueSize: 100,
		Providers: map[string]config.RateLimitConfig{
			ratelimit.ProviderSpiceChat: {
				RequestsPerSecond: 100,
				Burst:             100,
				MaxQueueTime:      time.Second,
			},
		},
	}
}

func TestNewProxy_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.RateLimiterConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     testConfig(),
			wantErr: false,
		},
		{
			name:    "no providers",
			cfg:     config.RateLimiterConfig{},
			wantErr: true,
		},
		{
			name: "non-positive rate",
			cfg: config.RateLimiterConfig{
				Providers: map[string]config.RateLimitConfig{
					"spicechat": {RequestsPerSecond: 0},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ratelimit.NewProxy(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, p.Close())
		})
	}
}

func TestProxy_Request(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig())
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	result, err := p.Request(context.Background(), ratelimit.ProviderSpiceChat, func(ctx context.Context) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestProxy_RequestError(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig())
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	wantErr := errors.New("upstream failed")
	result, err := p.Request(context.Background(), ratelimit.ProviderSpiceChat, func(ctx context.Context) (interface{}, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, result)
}

func TestProxy_UnknownProvider(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig())
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	_, err = p.Request(context.Background(), "unknown", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorContains(t, err, "not configured")
}

func TestProxy_ClosedProxyRejectsRequests(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig())
	require.NoError(t, err)
	require.NoError(t, p.Close())

	_, err = p.Request(context.Background(), ratelimit.ProviderSpiceChat, func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorContains(t, err, "closed")
}

func TestProxy_QueueTimeExceeded(t *testing.T) {
	cfg := config.RateLimiterConfig{
		MaxWorkers:   2,
		MaxQueueSize: 10,
		Providers: map[string]config.RateLimitConfig{
			ratelimit.ProviderSpiceChat: {
				RequestsPerSecond: 1,
				Burst:             1,
				MaxQueueTime:      50 * time.Millisecond,
			},
		},
	}
	p, err := ratelimit.NewProxy(cfg)
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	// First request consumes the only available token
	_, err = p.Request(context.Background(), ratelimit.ProviderSpiceChat, func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, err)

	// The next token arrives after 1s, well past the 50ms queue budget
	_, err = p.Request(context.Background(), ratelimit.ProviderSpiceChat, func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.Error(t, err)
}

func TestProxy_CanceledContext(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig())
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Request(ctx, ratelimit.ProviderSpiceChat, func(ctx context.Context) (interface{}, error) {
		return "never", nil
	})
	assert.Error(t, err)
}

func TestRequest_Generic(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig())
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	t.Run("typed result", func(t *testing.T) {
		got, err := ratelimit.Request(context.Background(), p, ratelimit.ProviderSpiceChat, func(ctx context.Context) ([]string, error) {
			return []string{"bot-a"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"bot-a"}, got)
	})

	t.Run("nil proxy executes directly", func(t *testing.T) {
		got, err := ratelimit.Request(context.Background(), nil, "anything", func(ctx context.Context) (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})
}
