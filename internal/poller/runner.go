package poller

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/snapshot"
)

// Runner defines the interface for the background polling loop
//
//go:generate mockgen -source=runner.go -destination=../mocks/poller.go -package=mocks -mock_names=Runner=MockRunner
type Runner interface {
	// Start begins the polling loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the runner
	// This should wait for any in-progress cycle to complete
	Stop(ctx context.Context) error

	// Name returns the runner's name for logging and identification
	Name() string
}

// Config holds configuration for the interval runner
type Config struct {
	Interval time.Duration // Time between snapshot cycles
	// RunOnStart triggers one cycle immediately instead of waiting a full interval
	RunOnStart bool
}

// intervalRunner runs snapshot cycles on a fixed interval
type intervalRunner struct {
	config       Config
	orchestrator *snapshot.Orchestrator
	running      atomic.Bool
	stopChan     chan struct{}
	stoppedCh    chan struct{}
}

// NewRunner creates a new interval runner
func NewRunner(config Config, orchestrator *snapshot.Orchestrator) Runner {
	if config.Interval <= 0 {
		config.Interval = time.Hour
	}
	return &intervalRunner{
		config:       config,
		orchestrator: orchestrator,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
	}
}

// Name returns the runner's name
func (r *intervalRunner) Name() string {
	return "snapshot-poller"
}

// Start begins the polling loop
func (r *intervalRunner) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("runner already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "starting snapshot poller",
		zap.Duration("interval", r.config.Interval),
		zap.Bool("run_on_start", r.config.RunOnStart),
	)

	if r.config.RunOnStart {
		r.runOnce(ctx)
	}

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "snapshot poller stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-r.stopChan:
			logger.InfoCtx(ctx, "snapshot poller stop requested")
			return nil
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *intervalRunner) runOnce(ctx context.Context) {
	report, err := r.orchestrator.RunCycle(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCycleInProgress) {
			logger.WarnCtx(ctx, "skipping cycle, previous cycle still running")
			return
		}
		if !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err, zap.String("component", "orchestrator"))
		}
		return
	}
	if report.Paused {
		logger.WarnCtx(ctx, "ingestion paused until credentials are refreshed",
			zap.String("cycleID", report.CycleID),
			zap.String("reason", report.PauseReason))
	}
}

// Stop gracefully stops the runner with timeout support
func (r *intervalRunner) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "stopping snapshot poller")

	// Signal stop to the main loop
	close(r.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "snapshot poller stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "snapshot poller stop interrupted by context timeout")
		return ctx.Err()
	}
}
