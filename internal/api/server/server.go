package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/trackforge/bottrack/internal/adapter"
	"github.com/trackforge/bottrack/internal/api/middleware"
	"github.com/trackforge/bottrack/internal/api/rest"
	"github.com/trackforge/bottrack/internal/discovery"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/snapshot"
	"github.com/trackforge/bottrack/internal/store"
	"github.com/trackforge/bottrack/internal/trends"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config       Config
	store        store.Store
	trends       *trends.Engine
	discovery    *discovery.Engine
	orchestrator *snapshot.Orchestrator
	clock        adapter.Clock
	httpServer   *http.Server
}

// New creates a new API server
func New(
	cfg Config,
	s store.Store,
	trendsEngine *trends.Engine,
	discoveryEngine *discovery.Engine,
	orchestrator *snapshot.Orchestrator,
	clock adapter.Clock,
) *Server {
	return &Server{
		config:       cfg,
		store:        s,
		trends:       trendsEngine,
		discovery:    discoveryEngine,
		orchestrator: orchestrator,
		clock:        clock,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create REST handler
	restHandler := rest.NewHandler(s.store, s.trends, s.discovery, s.orchestrator, s.clock)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
