package constants

// WebSocket event types
const (
	EventError       = "error"
	EventRideUpdate  = "ride_update"
	EventRideCleared = "ride_cleared"
)

// ErrorSeverity classifies errors sent to WebSocket clients
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
)

// WebSocket error codes
const (
	ErrorCodeInternal    = "internal_error"
	ErrorCodeUnsupported = "unsupported_message"
)
