package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/api/middleware"
	"github.com/trackforge/bottrack/internal/api/server"
	"github.com/trackforge/bottrack/internal/attrcache"
	"github.com/trackforge/bottrack/internal/config"
	"github.com/trackforge/bottrack/internal/discovery"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/messaging"
	"github.com/trackforge/bottrack/internal/providers/jetstream"
	"github.com/trackforge/bottrack/internal/providers/vendors/spicechat"
	"github.com/trackforge/bottrack/internal/providers/vendors/typesense"
	"github.com/trackforge/bottrack/internal/rank"
	"github.com/trackforge/bottrack/internal/ratelimit"
	"github.com/trackforge/bottrack/internal/snapshot"
	"github.com/trackforge/bottrack/internal/store"
	"github.com/trackforge/bottrack/internal/trends"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "starting bottrack API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "failed to configure connection pool", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.FatalCtx(ctx, "failed to migrate database", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.SpiceChat.HTTPTimeout, adapter.RetryConfig{
		InitialInterval: cfg.Retry.InitialInterval,
		MaxInterval:     cfg.Retry.MaxInterval,
		MaxElapsedTime:  cfg.Retry.MaxElapsedTime,
	})

	// Rate limit calls to the upstream APIs
	limiter, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		logger.FatalCtx(ctx, "failed to initialize rate limiter", zap.Error(err))
	}
	defer func() {
		if err := limiter.Close(); err != nil {
			logger.Warn("failed to close rate limiter", zap.Error(err))
		}
	}()

	// Connect to NATS (optional: events are best effort)
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
	}

	// Build collaborators for manually triggered cycles
	var credentials spicechat.CredentialSource
	if cfg.SpiceChat.CredentialsFile != "" {
		credentials = spicechat.NewFileCredentialSource(cfg.SpiceChat.CredentialsFile, jsonAdapter)
	} else {
		credentials = spicechat.NewStaticCredentialSource(cfg.SpiceChat.BearerToken, cfg.SpiceChat.GuestUserID)
	}
	fetcher := spicechat.NewClient(
		ratelimit.NewHTTPClient(httpClient, limiter, ratelimit.ProviderSpiceChat),
		credentials, cfg.SpiceChat.APIURL)
	search := typesense.NewClient(
		ratelimit.NewHTTPClient(httpClient, limiter, ratelimit.ProviderTypesense),
		jsonAdapter,
		typesense.Config{
			URL:        cfg.Typesense.URL,
			APIKey:     cfg.Typesense.APIKey,
			Collection: cfg.Typesense.Collection,
			BaseFilter: cfg.Typesense.BaseFilter,
			PerPage:    cfg.Typesense.PerPage,
			MaxPages:   cfg.Typesense.MaxPages,
			ChunkSize:  cfg.Typesense.ChunkSize,
			MaxWorkers: cfg.Typesense.MaxWorkers,
		})

	trendsEngine := trends.NewEngine()
	rankIngestor := rank.NewIngestor(dataStore, cfg.Rank.FirstTierSize, cfg.Rank.SecondTierSize)
	refresher := attrcache.NewRefresher(dataStore, search, clock)
	discoveryEngine := discovery.NewEngine(dataStore, search, search, publisher, clock)
	orchestrator := snapshot.NewOrchestrator(dataStore, fetcher, search, rankIngestor, refresher, discoveryEngine, publisher, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, trendsEngine, discoveryEngine, orchestrator, clock)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
