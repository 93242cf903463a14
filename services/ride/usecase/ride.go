package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/taximeter/internal/pkg/fare"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/internal/utils"
	"github.com/piresc/taximeter/services/ride"
)

const defaultGeohashPrecision uint = 7

// Option configures the ride use case
type Option func(*rideUC)

// WithClock replaces the clock used to evaluate time based fares
func WithClock(now func() time.Time) Option {
	return func(uc *rideUC) {
		uc.now = now
	}
}

type rideUC struct {
	cfg            *models.Config
	rideRepo       ride.RideRepo
	supplementRepo ride.SupplementRepo
	priceGW        ride.PriceGW
	now            func() time.Time
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo ride.RideRepo,
	supplementRepo ride.SupplementRepo,
	priceGW ride.PriceGW,
	opts ...Option,
) ride.RideUC {
	uc := &rideUC{
		cfg:            cfg,
		rideRepo:       rideRepo,
		supplementRepo: supplementRepo,
		priceGW:        priceGW,
		now:            models.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// recoverAsError turns a panic in a command into an error for the caller
func recoverAsError(ctx context.Context, operation string, err *error) {
	if r := recover(); r != nil {
		logger.ErrorCtx(ctx, "Recovered from panic",
			logger.String("operation", operation),
			logger.Any("panic", r),
			logger.String("stack", string(debug.Stack())))
		*err = fmt.Errorf("%s: unexpected failure: %v", operation, r)
	}
}

// StartRide fetches the current rates and starts a new ride with the selected supplements
func (uc *rideUC) StartRide(ctx context.Context, supplementIDs []uuid.UUID) (view *models.RideView, err error) {
	defer recoverAsError(ctx, "start ride", &err)

	supplements, err := uc.supplementRepo.ResolveSupplements(ctx, supplementIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve supplements: %w", err)
	}

	priceConfiguration := uc.priceGW.GetPriceConfiguration(ctx)
	started := uc.rideRepo.StartRide(priceConfiguration, supplements)

	logger.InfoCtx(ctx, "Ride started",
		logger.Float64("price_per_km", priceConfiguration.PricePerKm),
		logger.Float64("price_per_second", priceConfiguration.PricePerSecond),
		logger.Int("supplements", len(supplements)))

	return uc.buildView(ctx, started)
}

// UpdateSupplements replaces the supplements of the current ride, if any
func (uc *rideUC) UpdateSupplements(ctx context.Context, supplementIDs []uuid.UUID) (view *models.RideView, err error) {
	defer recoverAsError(ctx, "update supplements", &err)

	supplements, err := uc.supplementRepo.ResolveSupplements(ctx, supplementIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve supplements: %w", err)
	}

	if !uc.rideRepo.UpdateRideSupplements(supplements) {
		logger.DebugCtx(ctx, "No ride to update supplements on")
	}

	return uc.buildView(ctx, uc.rideRepo.CurrentRide())
}

// EndRide stops the meter of the current ride
func (uc *rideUC) EndRide(ctx context.Context) error {
	if uc.rideRepo.EndRide() {
		logger.InfoCtx(ctx, "Ride ended")
	}
	return nil
}

// GetFareSummary returns the fare breakdown of the current ride
func (uc *rideUC) GetFareSummary(ctx context.Context) (*models.FareSummary, error) {
	current := uc.rideRepo.CurrentRide()
	if current == nil {
		return nil, ride.ErrNoRideInProgress
	}

	summary := fare.Summary(current, uc.now())
	return &summary, nil
}

// GetCurrentRide returns the view of the current ride; an inactive zero view when there is none
func (uc *rideUC) GetCurrentRide(ctx context.Context) (*models.RideView, error) {
	return uc.buildView(ctx, uc.rideRepo.CurrentRide())
}

// GetSupplements returns the supplement catalog
func (uc *rideUC) GetSupplements(ctx context.Context) ([]models.Supplement, error) {
	return uc.supplementRepo.GetSupplements(ctx)
}

// SubscribeRideUpdates streams a view for every change of the ride until ctx is done
func (uc *rideUC) SubscribeRideUpdates(ctx context.Context) <-chan *models.RideView {
	rides := uc.rideRepo.Subscribe(ctx)
	views := make(chan *models.RideView)

	go func() {
		defer close(views)
		for r := range rides {
			view, err := uc.buildView(ctx, r)
			if err != nil {
				logger.WarnCtx(ctx, "Skipping ride update", logger.Err(err))
				continue
			}
			select {
			case views <- view:
			case <-ctx.Done():
				return
			}
		}
	}()

	return views
}

// AddLocationPoint appends a sample to the ride route
func (uc *rideUC) AddLocationPoint(ctx context.Context, location models.Location) (err error) {
	defer recoverAsError(ctx, "add location point", &err)

	if !uc.rideRepo.AddLocationPoint(location) {
		logger.DebugCtx(ctx, "Location sample dropped, no active ride",
			logger.Float64("latitude", location.Latitude),
			logger.Float64("longitude", location.Longitude))
	}
	return nil
}

// RefreshRideState republishes the ride so elapsed time and time fare move forward
func (uc *rideUC) RefreshRideState(ctx context.Context) (err error) {
	defer recoverAsError(ctx, "refresh ride state", &err)

	uc.rideRepo.TouchRide()
	return nil
}

func (uc *rideUC) geohashPrecision() uint {
	if uc.cfg == nil || uc.cfg.Ride.GeohashPrecision == 0 {
		return defaultGeohashPrecision
	}
	return uc.cfg.Ride.GeohashPrecision
}

// buildView projects a ride snapshot at the current instant
func (uc *rideUC) buildView(ctx context.Context, r *models.Ride) (*models.RideView, error) {
	catalog, err := uc.supplementRepo.GetSupplements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplements: %w", err)
	}

	breakdown := fare.Calculate(r, uc.now())
	summary := breakdown.Summary()

	view := &models.RideView{
		Fare:        summary,
		Supplements: countSupplements(catalog, r),
	}
	if r == nil {
		return view, nil
	}

	startTime := r.StartTime
	updatedAt := r.UpdatedAt
	view.Active = r.IsActive()
	view.Status = r.Status
	view.StartTime = &startTime
	view.EndTime = r.EndTime
	view.ElapsedSeconds = breakdown.Seconds
	view.DistanceKm = breakdown.DistanceKm
	view.TotalPrice = summary.Total()
	view.RoutePoints = len(r.Route)
	view.UpdatedAt = &updatedAt
	if last := r.LastLocation(); last != nil {
		view.LastLocation = last
		view.LastGeohash = utils.EncodeLocation(*last, uc.geohashPrecision())
	}

	return view, nil
}

// countSupplements counts how often each catalog entry is attached to the ride
func countSupplements(catalog []models.Supplement, r *models.Ride) []models.SupplementCount {
	counts := make(map[uuid.UUID]int)
	if r != nil {
		for _, s := range r.Supplements {
			counts[s.ID]++
		}
	}

	result := make([]models.SupplementCount, 0, len(catalog))
	for _, s := range catalog {
		result = append(result, models.SupplementCount{Supplement: s, Count: counts[s.ID]})
	}
	return result
}
