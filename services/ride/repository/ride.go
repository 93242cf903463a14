package repository

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/services/ride"
)

// Option configures the ride repository
type Option func(*rideRepo)

// WithClock replaces the clock used to stamp start, end and update times
func WithClock(now func() time.Time) Option {
	return func(r *rideRepo) {
		r.now = now
	}
}

type rideRepo struct {
	mu          sync.Mutex
	current     *models.Ride
	now         func() time.Time
	subscribers map[uint64]*subscriber
	nextSubID   uint64
}

// NewRideRepository creates the in-memory store for the ride in progress
func NewRideRepository(opts ...Option) ride.RideRepo {
	r := &rideRepo{
		now:         models.Now,
		subscribers: make(map[uint64]*subscriber),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StartRide replaces whatever ride is stored with a fresh one
func (r *rideRepo) StartRide(priceConfiguration models.PriceConfiguration, supplements []models.Supplement) *models.Ride {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current.IsActive() {
		logger.Warn("Starting a new ride discards the ride in progress",
			logger.Time("discarded_start_time", r.current.StartTime),
			logger.Int("discarded_route_points", len(r.current.Route)))
	}

	now := r.now()
	next := &models.Ride{
		Route:              []models.Location{},
		StartTime:          now,
		Supplements:        append([]models.Supplement{}, supplements...),
		Status:             models.RideStatusStarted,
		PriceConfiguration: priceConfiguration,
		UpdatedAt:          now,
	}
	r.set(next)
	return next
}

// AddLocationPoint appends to the route of an active ride.
// It reports false when there is no ride or the ride has ended.
func (r *rideRepo) AddLocationPoint(location models.Location) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.current.IsActive() {
		return false
	}

	next := r.current.Clone()
	next.Route = append(next.Route, location)
	next.UpdatedAt = r.now()
	r.set(next)
	return true
}

// UpdateRideSupplements replaces the supplement list, also after the ride ended
func (r *rideRepo) UpdateRideSupplements(supplements []models.Supplement) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}

	next := r.current.Clone()
	next.Supplements = append([]models.Supplement{}, supplements...)
	next.UpdatedAt = r.now()
	r.set(next)
	return true
}

// EndRide moves an active ride to Ended. Ending twice keeps the first end time.
func (r *rideRepo) EndRide() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.current.IsActive() {
		return false
	}

	now := r.now()
	next := r.current.Clone()
	next.Status = models.RideStatusEnded
	next.EndTime = &now
	next.UpdatedAt = now
	r.set(next)
	return true
}

// RefreshRideState stores the given snapshot as the current ride
func (r *rideRepo) RefreshRideState(snapshot *models.Ride) {
	if snapshot == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(snapshot.Clone())
}

// TouchRide re-stamps UpdatedAt so observers recompute time based values
func (r *rideRepo) TouchRide() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}

	next := r.current.Clone()
	next.UpdatedAt = r.now()
	r.set(next)
	return true
}

// CurrentRide returns the latest snapshot, nil when no ride was started
func (r *rideRepo) CurrentRide() *models.Ride {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Subscribe registers a new observer of the ride
func (r *rideRepo) Subscribe(ctx context.Context) <-chan *models.Ride {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSubID
	r.nextSubID++

	sub := newSubscriber(r.current)
	r.subscribers[id] = sub

	go func() {
		sub.run(ctx)
		r.unsubscribe(id)
	}()

	return sub.out
}

func (r *rideRepo) unsubscribe(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subscribers, id)
}

// set must be called with r.mu held
func (r *rideRepo) set(next *models.Ride) {
	r.current = next
	for _, sub := range r.subscribers {
		sub.push(next)
	}
}

// subscriber buffers snapshots without bound so a slow reader never stalls
// writers and never misses an update.
type subscriber struct {
	mu     sync.Mutex
	queue  []*models.Ride
	notify chan struct{}
	out    chan *models.Ride
}

func newSubscriber(initial *models.Ride) *subscriber {
	s := &subscriber{
		queue:  []*models.Ride{initial},
		notify: make(chan struct{}, 1),
		out:    make(chan *models.Ride),
	}
	return s
}

func (s *subscriber) push(snapshot *models.Ride) {
	s.mu.Lock()
	s.queue = append(s.queue, snapshot)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscriber) pop() (*models.Ride, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil, false
	}
	next := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return next, true
}

func (s *subscriber) run(ctx context.Context) {
	defer close(s.out)

	for {
		snapshot, ok := s.pop()
		if !ok {
			select {
			case <-s.notify:
				continue
			case <-ctx.Done():
				return
			}
		}

		select {
		case s.out <- snapshot:
		case <-ctx.Done():
			return
		}
	}
}
