package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/internal/utils"
	"github.com/piresc/taximeter/services/ride"
	"github.com/piresc/taximeter/services/ride/mocks"
	"github.com/piresc/taximeter/services/ride/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0        = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rates     = models.PriceConfiguration{PricePerKm: 0.1, PricePerSecond: 0.027}
	baggage   = models.Supplement{ID: uuid.New(), Name: "Extra baggage", Price: 5.0}
	catalog   = []models.Supplement{baggage}
	testCfg   = &models.Config{Ride: models.RideConfig{GeohashPrecision: 6}}
	sfCentre  = models.Location{Latitude: 37.7749, Longitude: -122.4194}
	sfNearby  = models.Location{Latitude: 37.7849, Longitude: -122.4094}
	fixedTime = func(at time.Time) func() time.Time { return func() time.Time { return at } }
)

func TestStartRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockSupplements := mocks.NewMockSupplementRepo(ctrl)
	mockPriceGW := mocks.NewMockPriceGW(ctrl)

	uc := NewRideUC(testCfg, mockRepo, mockSupplements, mockPriceGW, WithClock(fixedTime(t0)))

	started := &models.Ride{
		Route:              []models.Location{},
		StartTime:          t0,
		Supplements:        []models.Supplement{baggage},
		Status:             models.RideStatusStarted,
		PriceConfiguration: rates,
		UpdatedAt:          t0,
	}

	unknown := uuid.New()
	mockSupplements.EXPECT().
		ResolveSupplements(gomock.Any(), []uuid.UUID{baggage.ID, unknown}).
		Return([]models.Supplement{baggage}, nil)
	mockPriceGW.EXPECT().GetPriceConfiguration(gomock.Any()).Return(rates)
	mockRepo.EXPECT().StartRide(rates, []models.Supplement{baggage}).Return(started)
	mockSupplements.EXPECT().GetSupplements(gomock.Any()).Return(catalog, nil)

	view, err := uc.StartRide(context.Background(), []uuid.UUID{baggage.ID, unknown})

	require.NoError(t, err)
	assert.True(t, view.Active)
	assert.Equal(t, models.RideStatusStarted, view.Status)
	assert.Equal(t, 5.0, view.TotalPrice)
	assert.Equal(t, int64(0), view.ElapsedSeconds)
	require.Len(t, view.Supplements, 1)
	assert.Equal(t, 1, view.Supplements[0].Count)
}

func TestStartRide_ResolveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplements := mocks.NewMockSupplementRepo(ctrl)
	uc := NewRideUC(testCfg, mocks.NewMockRideRepo(ctrl), mockSupplements, mocks.NewMockPriceGW(ctrl))

	mockSupplements.EXPECT().ResolveSupplements(gomock.Any(), gomock.Any()).Return(nil, errors.New("catalog offline"))

	view, err := uc.StartRide(context.Background(), nil)

	assert.Nil(t, view)
	assert.ErrorContains(t, err, "catalog offline")
}

func TestStartRide_PanicBecomesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplements := mocks.NewMockSupplementRepo(ctrl)
	mockPriceGW := mocks.NewMockPriceGW(ctrl)
	uc := NewRideUC(testCfg, mocks.NewMockRideRepo(ctrl), mockSupplements, mockPriceGW)

	mockSupplements.EXPECT().ResolveSupplements(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockPriceGW.EXPECT().
		GetPriceConfiguration(gomock.Any()).
		DoAndReturn(func(_ context.Context) models.PriceConfiguration {
			panic("pricing exploded")
		})

	var view *models.RideView
	var err error
	assert.NotPanics(t, func() {
		view, err = uc.StartRide(context.Background(), nil)
	})
	assert.Nil(t, view)
	assert.ErrorContains(t, err, "pricing exploded")
}

func TestUpdateSupplements_NoRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockSupplements := mocks.NewMockSupplementRepo(ctrl)
	uc := NewRideUC(testCfg, mockRepo, mockSupplements, mocks.NewMockPriceGW(ctrl))

	mockSupplements.EXPECT().ResolveSupplements(gomock.Any(), []uuid.UUID{baggage.ID}).Return([]models.Supplement{baggage}, nil)
	mockRepo.EXPECT().UpdateRideSupplements([]models.Supplement{baggage}).Return(false)
	mockRepo.EXPECT().CurrentRide().Return(nil)
	mockSupplements.EXPECT().GetSupplements(gomock.Any()).Return(catalog, nil)

	view, err := uc.UpdateSupplements(context.Background(), []uuid.UUID{baggage.ID})

	require.NoError(t, err)
	assert.False(t, view.Active)
	assert.Equal(t, 0, view.Supplements[0].Count)
}

func TestGetFareSummary_NoRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRideRepo(ctrl)
	uc := NewRideUC(testCfg, mockRepo, mocks.NewMockSupplementRepo(ctrl), mocks.NewMockPriceGW(ctrl))

	mockRepo.EXPECT().CurrentRide().Return(nil)

	summary, err := uc.GetFareSummary(context.Background())

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ride.ErrNoRideInProgress)
	assert.EqualError(t, err, "no ride in progress")
}

func TestRideLifecycle_FareScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := t0
	clock := func() time.Time { return now }

	mockPriceGW := mocks.NewMockPriceGW(ctrl)
	mockPriceGW.EXPECT().GetPriceConfiguration(gomock.Any()).Return(rates)

	repo := repository.NewRideRepository(repository.WithClock(clock))
	uc := NewRideUC(testCfg, repo, repository.NewSupplementRepository(catalog), mockPriceGW, WithClock(clock))
	ctx := context.Background()

	_, err := uc.StartRide(ctx, []uuid.UUID{baggage.ID})
	require.NoError(t, err)
	require.NoError(t, uc.AddLocationPoint(ctx, sfCentre))
	require.NoError(t, uc.AddLocationPoint(ctx, sfNearby))

	now = t0.Add(300 * time.Second)
	require.NoError(t, uc.RefreshRideState(ctx))
	require.NoError(t, uc.EndRide(ctx))

	// the meter stops at the end time
	now = t0.Add(time.Hour)
	summary, err := uc.GetFareSummary(ctx)
	require.NoError(t, err)

	distance := utils.DistanceKm(sfCentre, sfNearby)
	require.Len(t, summary.Concepts, 3)
	assert.InDelta(t, distance*0.1, summary.Concepts[0].Price, 1e-12)
	assert.InDelta(t, 8.1, summary.Concepts[1].Price, 1e-9)
	assert.Equal(t, 5.0, summary.Concepts[2].Price)

	view, err := uc.GetCurrentRide(ctx)
	require.NoError(t, err)
	assert.False(t, view.Active)
	assert.Equal(t, models.RideStatusEnded, view.Status)
	assert.Equal(t, int64(300), view.ElapsedSeconds)
	assert.Equal(t, summary.Total(), view.TotalPrice)
	assert.Equal(t, 2, view.RoutePoints)
	assert.Equal(t, sfNearby, *view.LastLocation)
	assert.Equal(t, utils.EncodeLocation(sfNearby, 6), view.LastGeohash)
}

func TestGetCurrentRide_NoRideIsZeroView(t *testing.T) {
	uc := NewRideUC(testCfg, repository.NewRideRepository(), repository.NewSupplementRepository(catalog), nil)

	view, err := uc.GetCurrentRide(context.Background())

	require.NoError(t, err)
	assert.False(t, view.Active)
	assert.Nil(t, view.StartTime)
	assert.Equal(t, 0.0, view.TotalPrice)
	assert.Equal(t, 0.0, view.Fare.Total())
	require.Len(t, view.Supplements, 1)
	assert.Equal(t, baggage.ID, view.Supplements[0].ID)
	assert.Equal(t, 0, view.Supplements[0].Count)
}

func TestUpdateSupplements_CountsDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPriceGW := mocks.NewMockPriceGW(ctrl)
	mockPriceGW.EXPECT().GetPriceConfiguration(gomock.Any()).Return(rates)

	uc := NewRideUC(testCfg, repository.NewRideRepository(), repository.NewSupplementRepository(catalog), mockPriceGW, WithClock(fixedTime(t0)))
	ctx := context.Background()

	_, err := uc.StartRide(ctx, nil)
	require.NoError(t, err)

	view, err := uc.UpdateSupplements(ctx, []uuid.UUID{baggage.ID, baggage.ID, uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, 2, view.Supplements[0].Count)
	assert.Equal(t, 10.0, view.Fare.Concepts[2].Price)
}

func TestSubscribeRideUpdates_StreamsViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPriceGW := mocks.NewMockPriceGW(ctrl)
	mockPriceGW.EXPECT().GetPriceConfiguration(gomock.Any()).Return(rates)

	uc := NewRideUC(testCfg, repository.NewRideRepository(), repository.NewSupplementRepository(catalog), mockPriceGW)
	ctx, cancel := context.WithCancel(context.Background())

	views := uc.SubscribeRideUpdates(ctx)

	next := func() *models.RideView {
		select {
		case v := <-views:
			return v
		case <-time.After(2 * time.Second):
			t.Fatal("Did not receive ride view")
			return nil
		}
	}

	assert.False(t, next().Active)

	_, err := uc.StartRide(ctx, nil)
	require.NoError(t, err)
	assert.True(t, next().Active)

	require.NoError(t, uc.AddLocationPoint(ctx, sfCentre))
	assert.Equal(t, 1, next().RoutePoints)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-views:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestCoordinator_DrivesRideState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPriceGW := mocks.NewMockPriceGW(ctrl)
	mockSource := mocks.NewMockLocationSource(ctrl)

	mockPriceGW.EXPECT().GetPriceConfiguration(gomock.Any()).Return(rates)
	mockSource.EXPECT().
		LocationUpdates(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (<-chan models.Location, error) {
			return feedUntilDone(ctx, sfCentre, sfNearby), nil
		})

	repo := repository.NewRideRepository()
	uc := NewRideUC(testCfg, repo, repository.NewSupplementRepository(catalog), mockPriceGW)
	coordinator := NewCoordinator(uc, mockSource, testInterval)
	ctx := context.Background()

	_, err := uc.StartRide(ctx, nil)
	require.NoError(t, err)
	startedAt := repo.CurrentRide().UpdatedAt

	coordinator.StartRideUpdates(ctx)
	assert.Eventually(t, func() bool {
		current := repo.CurrentRide()
		return len(current.Route) == 2 && current.UpdatedAt.After(startedAt)
	}, time.Second, 5*time.Millisecond)

	coordinator.StopRideUpdates()
	require.NoError(t, uc.EndRide(ctx))

	assert.Equal(t, []models.Location{sfCentre, sfNearby}, repo.CurrentRide().Route)
	assert.False(t, coordinator.IsRunning())
}
