package ride

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/taximeter/internal/pkg/models"
)

// RideRepo is the single-slot store holding the ride in progress.
// Every mutation replaces the stored snapshot atomically and is broadcast to subscribers.
type RideRepo interface {
	StartRide(priceConfiguration models.PriceConfiguration, supplements []models.Supplement) *models.Ride
	AddLocationPoint(location models.Location) bool
	UpdateRideSupplements(supplements []models.Supplement) bool
	EndRide() bool
	RefreshRideState(ride *models.Ride)
	// TouchRide re-stamps UpdatedAt of the current ride without any other change
	TouchRide() bool
	CurrentRide() *models.Ride
	// Subscribe delivers the current ride (nil when there is none) followed by
	// every later mutation, in order, until ctx is done.
	Subscribe(ctx context.Context) <-chan *models.Ride
}

// SupplementRepo exposes the catalog of supplements a ride can carry
type SupplementRepo interface {
	GetSupplements(ctx context.Context) ([]models.Supplement, error)
	// ResolveSupplements maps ids to catalog entries, dropping unknown ids and keeping duplicates
	ResolveSupplements(ctx context.Context, ids []uuid.UUID) ([]models.Supplement, error)
}
