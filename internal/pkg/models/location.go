package models

import "time"

// Location represents a geographical sample with latitude and longitude in degrees
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// LocationUpdate represents a location update event received from a device feed
type LocationUpdate struct {
	RideID    string    `json:"ride_id,omitempty"`
	DriverID  string    `json:"driver_id,omitempty"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
