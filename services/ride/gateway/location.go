package gateway

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/piresc/taximeter/internal/pkg/models"
)

// decodeLocationUpdate parses a location message published by the device feed.
// Samples without their own timestamp take the message creation time.
func decodeLocationUpdate(data []byte) (models.Location, error) {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return models.Location{}, fmt.Errorf("failed to unmarshal location update: %w", err)
	}

	loc := update.Location
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) ||
		loc.Latitude < -90 || loc.Latitude > 90 ||
		loc.Longitude < -180 || loc.Longitude > 180 {
		return models.Location{}, fmt.Errorf("location out of range: %v,%v", loc.Latitude, loc.Longitude)
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = update.CreatedAt
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = models.Now()
	}
	return loc, nil
}
