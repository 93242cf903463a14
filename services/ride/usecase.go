package ride

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piresc/taximeter/internal/pkg/models"
)

// ErrNoRideInProgress is returned by queries that need a ride when there is none
var ErrNoRideInProgress = errors.New("no ride in progress")

// RideUC defines the ride business logic
type RideUC interface {
	// Commands
	StartRide(ctx context.Context, supplementIDs []uuid.UUID) (*models.RideView, error)
	UpdateSupplements(ctx context.Context, supplementIDs []uuid.UUID) (*models.RideView, error)
	EndRide(ctx context.Context) error

	// Queries
	GetFareSummary(ctx context.Context) (*models.FareSummary, error)
	GetCurrentRide(ctx context.Context) (*models.RideView, error)
	GetSupplements(ctx context.Context) ([]models.Supplement, error)
	SubscribeRideUpdates(ctx context.Context) <-chan *models.RideView

	RideTracker
}

// RideTracker is what the background ride updates drive
type RideTracker interface {
	AddLocationPoint(ctx context.Context, location models.Location) error
	RefreshRideState(ctx context.Context) error
}

// RideUpdater runs location ingestion and periodic refresh while a ride is in progress
type RideUpdater interface {
	StartRideUpdates(ctx context.Context)
	StopRideUpdates()
	IsRunning() bool
}
