package gateway

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/services/ride"
)

// simulatedSource walks a route from a start point, one sample per interval
type simulatedSource struct {
	cfg models.LocationConfig

	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// SimulatedOption customizes the simulated source
type SimulatedOption func(*simulatedSource)

// WithRand sets the random source used for jitter
func WithRand(r *rand.Rand) SimulatedOption {
	return func(s *simulatedSource) { s.rnd = r }
}

// WithSampleClock sets the clock stamping each sample
func WithSampleClock(now func() time.Time) SimulatedOption {
	return func(s *simulatedSource) { s.now = now }
}

// NewSimulatedSource creates a location source emitting cfg.Points samples.
// Zero points means the walk never ends on its own.
func NewSimulatedSource(cfg models.LocationConfig, opts ...SimulatedOption) ride.LocationSource {
	s := &simulatedSource{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: models.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.Interval <= 0 {
		s.cfg.Interval = time.Second
	}
	return s
}

func (s *simulatedSource) LocationUpdates(ctx context.Context) (<-chan models.Location, error) {
	out := make(chan models.Location)

	go func() {
		defer close(out)

		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()

		lat, lon := s.cfg.StartLatitude, s.cfg.StartLongitude
		for i := 0; s.cfg.Points <= 0 || i < s.cfg.Points; i++ {
			if i > 0 {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
				lat += s.cfg.Step + s.jitter()
				lon += s.cfg.Step + s.jitter()
			}

			loc := models.Location{Latitude: lat, Longitude: lon, Timestamp: s.now()}
			select {
			case <-ctx.Done():
				return
			case out <- loc:
			}
		}
		logger.Info("Simulated route finished", logger.Int("points", s.cfg.Points))
	}()

	return out, nil
}

// jitter returns a random offset in [-Jitter, Jitter)
func (s *simulatedSource) jitter() float64 {
	if s.cfg.Jitter == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return (s.rnd.Float64()*2 - 1) * s.cfg.Jitter
}
