package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/services/ride"
)

// DefaultRefreshInterval is how often the ride is republished while updates run
const DefaultRefreshInterval = time.Second

// Coordinator feeds location samples into the ride and periodically
// republishes it so time based values stay current for observers.
type Coordinator struct {
	tracker  ride.RideTracker
	source   ride.LocationSource
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	scope  context.Context
	wg     sync.WaitGroup
}

// NewCoordinator creates a stopped coordinator. A non positive interval uses DefaultRefreshInterval.
func NewCoordinator(tracker ride.RideTracker, source ride.LocationSource, interval time.Duration) *Coordinator {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Coordinator{
		tracker:  tracker,
		source:   source,
		interval: interval,
	}
}

var _ ride.RideUpdater = (*Coordinator)(nil)

// StartRideUpdates launches location ingestion and periodic refresh.
// A running pair of tasks is torn down first, so restarting never duplicates them.
// The tasks outlive ctx cancellation; only StopRideUpdates ends them.
func (c *Coordinator) StartRideUpdates(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		logger.InfoCtx(ctx, "Restarting ride updates")
		c.stopLocked()
	}

	scope, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.scope = scope
	c.cancel = cancel

	c.wg.Add(2)
	go c.runTask(scope, "location_ingestion", c.ingestLocations)
	go c.runTask(scope, "periodic_refresh", c.refreshPeriodically)

	logger.InfoCtx(ctx, "Ride updates started", logger.Duration("refresh_interval", c.interval))
}

// StopRideUpdates cancels both tasks and waits for them to return. Safe to call at any time.
func (c *Coordinator) StopRideUpdates() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel == nil {
		return
	}
	c.stopLocked()
	logger.Info("Ride updates stopped")
}

// IsRunning reports whether updates were started and not stopped since
func (c *Coordinator) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scope != nil && c.scope.Err() == nil
}

// stopLocked must be called with c.mu held
func (c *Coordinator) stopLocked() {
	c.cancel()
	c.wg.Wait()
	c.cancel = nil
	c.scope = nil
}

// runTask isolates a task: a panic is logged and ends only that task
func (c *Coordinator) runTask(ctx context.Context, name string, task func(context.Context)) {
	defer c.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, "Ride update task panicked",
				logger.String("task", name),
				logger.Any("panic", r))
		}
	}()

	task(ctx)
	logger.DebugCtx(ctx, "Ride update task finished", logger.String("task", name))
}

func (c *Coordinator) ingestLocations(ctx context.Context) {
	updates, err := c.source.LocationUpdates(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to subscribe to location updates", logger.Err(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case location, ok := <-updates:
			if !ok {
				logger.InfoCtx(ctx, "Location updates completed")
				return
			}
			if err := c.tracker.AddLocationPoint(ctx, location); err != nil {
				logger.ErrorCtx(ctx, "Failed to add location point", logger.Err(err))
				return
			}
		}
	}
}

func (c *Coordinator) refreshPeriodically(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.tracker.RefreshRideState(ctx); err != nil {
				logger.ErrorCtx(ctx, "Failed to refresh ride state", logger.Err(err))
				return
			}
		}
	}
}
