package ride

import (
	"context"

	"github.com/piresc/taximeter/internal/pkg/models"
)

// PriceGW fetches the rates for a new ride. It never fails: callers get fallback rates instead.
type PriceGW interface {
	GetPriceConfiguration(ctx context.Context) models.PriceConfiguration
}

// LocationSource produces the location samples of the device in order.
// The returned channel is closed when ctx is done or the feed ends.
type LocationSource interface {
	LocationUpdates(ctx context.Context) (<-chan models.Location, error)
}

// RideFeedGW mirrors ride views to an external consumer
type RideFeedGW interface {
	PublishRideUpdate(ctx context.Context, view *models.RideView) error
}
