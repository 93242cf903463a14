package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	wspkg "github.com/piresc/taximeter/internal/pkg/websocket"
	"github.com/piresc/taximeter/services/ride"
	httpHandler "github.com/piresc/taximeter/services/ride/handler/http"
	wsHandler "github.com/piresc/taximeter/services/ride/handler/websocket"
)

// Handler combines all handlers for the taximeter
type Handler struct {
	rideHTTP   *httpHandler.RideHandler
	rideStream *wsHandler.RideStreamHandler
}

// NewHandler creates a new combined handler. WebSocket streams end when ctx is done.
func NewHandler(ctx context.Context, rideUC ride.RideUC, updater ride.RideUpdater, wsManager *wspkg.Manager) *Handler {
	return &Handler{
		rideHTTP:   httpHandler.NewRideHandler(rideUC, updater),
		rideStream: wsHandler.NewRideStreamHandler(ctx, rideUC, wsManager),
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/supplements", h.rideHTTP.GetSupplements)

	rides := api.Group("/rides")
	rides.POST("", h.rideHTTP.StartRide)
	rides.GET("/current", h.rideHTTP.GetCurrentRide)
	rides.GET("/current/fare", h.rideHTTP.GetFareSummary)
	rides.PUT("/current/supplements", h.rideHTTP.UpdateSupplements)
	rides.POST("/current/stop", h.rideHTTP.StopRide)

	e.GET("/ws/ride", h.rideStream.HandleRideStream)
}
