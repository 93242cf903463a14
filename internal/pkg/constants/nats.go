package constants

// NATS Subjects
const (
	// Location samples published by the device feed
	SubjectLocationUpdate = "location.update"

	// Ride views mirrored on every ride change
	SubjectRideUpdated = "ride.updated"
)
