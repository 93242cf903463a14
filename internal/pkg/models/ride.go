package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusStarted RideStatus = "started"
	RideStatusEnded   RideStatus = "ended"
)

// Supplement is a fixed-price extra a passenger can attach to a ride
type Supplement struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// PriceConfiguration holds the rates applied to a ride for its whole lifetime
type PriceConfiguration struct {
	PricePerKm     float64 `json:"price_per_km"`
	PricePerSecond float64 `json:"price_per_second"`
}

// Ride is an immutable snapshot of the ride in progress.
// Snapshots are replaced, never modified, once handed out by the store.
type Ride struct {
	Route              []Location         `json:"route"`
	StartTime          time.Time          `json:"start_time"`
	EndTime            *time.Time         `json:"end_time,omitempty"`
	Supplements        []Supplement       `json:"supplements"`
	Status             RideStatus         `json:"status"`
	PriceConfiguration PriceConfiguration `json:"price_configuration"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// IsActive reports whether the ride is still accruing time
func (r *Ride) IsActive() bool {
	return r != nil && r.Status == RideStatusStarted
}

// LastLocation returns the most recent route point, or nil for an empty route
func (r *Ride) LastLocation() *Location {
	if r == nil || len(r.Route) == 0 {
		return nil
	}
	last := r.Route[len(r.Route)-1]
	return &last
}

// Clone returns a copy of the ride that shares no slices with the receiver
func (r *Ride) Clone() *Ride {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Route = append(make([]Location, 0, len(r.Route)), r.Route...)
	clone.Supplements = append(make([]Supplement, 0, len(r.Supplements)), r.Supplements...)
	if r.EndTime != nil {
		end := *r.EndTime
		clone.EndTime = &end
	}
	return &clone
}

// RideStartRequest represents the payload to start a ride
type RideStartRequest struct {
	Supplements []uuid.UUID `json:"supplements"`
}

// SupplementsUpdateRequest represents the payload to replace the supplements of the current ride
type SupplementsUpdateRequest struct {
	Supplements []uuid.UUID `json:"supplements"`
}

// SupplementCount is the number of times a catalog supplement is attached to the ride
type SupplementCount struct {
	Supplement
	Count int `json:"count"`
}

// RideView is the observable projection of the ride at a given instant
type RideView struct {
	Active         bool              `json:"active"`
	Status         RideStatus        `json:"status,omitempty"`
	StartTime      *time.Time        `json:"start_time,omitempty"`
	EndTime        *time.Time        `json:"end_time,omitempty"`
	ElapsedSeconds int64             `json:"elapsed_seconds"`
	DistanceKm     float64           `json:"distance_km"`
	TotalPrice     float64           `json:"total_price"`
	Fare           FareSummary       `json:"fare"`
	Supplements    []SupplementCount `json:"supplements"`
	RoutePoints    int               `json:"route_points"`
	LastLocation   *Location         `json:"last_location,omitempty"`
	LastGeohash    string            `json:"last_geohash,omitempty"`
	UpdatedAt      *time.Time        `json:"updated_at,omitempty"`
}

// RideStopResponse is returned when a ride is stopped
type RideStopResponse struct {
	Ride *RideView   `json:"ride"`
	Fare FareSummary `json:"fare"`
}
