package websocket

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/constants"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
	wspkg "github.com/piresc/taximeter/internal/pkg/websocket"
	"github.com/piresc/taximeter/services/ride"
)

var errReadOnlyStream = errors.New("ride stream does not accept messages")

// RideStreamHandler pushes a ride view to WebSocket clients on every ride change
type RideStreamHandler struct {
	ctx     context.Context
	rideUC  ride.RideUC
	manager *wspkg.Manager
}

// NewRideStreamHandler creates a stream handler. Open streams end when ctx is done.
func NewRideStreamHandler(ctx context.Context, rideUC ride.RideUC, manager *wspkg.Manager) *RideStreamHandler {
	return &RideStreamHandler{
		ctx:     ctx,
		rideUC:  rideUC,
		manager: manager,
	}
}

// HandleRideStream upgrades the connection and streams ride views until the client leaves
func (h *RideStreamHandler) HandleRideStream(c echo.Context) error {
	return h.manager.HandleConnection(c, h.stream)
}

func (h *RideStreamHandler) stream(client *wspkg.Client) error {
	ctx, cancel := context.WithCancel(h.ctx)
	defer cancel()

	go h.readLoop(client, cancel)

	for view := range h.rideUC.SubscribeRideUpdates(ctx) {
		if err := h.manager.SendMessage(client, eventFor(view), view); err != nil {
			logger.Debug("WebSocket client gone",
				logger.String("client_id", client.ID),
				logger.Err(err))
			return nil
		}
	}
	return nil
}

// readLoop discards client messages and cancels the stream once the connection fails
func (h *RideStreamHandler) readLoop(client *wspkg.Client, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
		if err := h.manager.SendCategorizedError(client, errReadOnlyStream, constants.ErrorCodeUnsupported, constants.ErrorSeverityClient); err != nil {
			return
		}
	}
}

func eventFor(view *models.RideView) string {
	if view.Status == "" {
		return constants.EventRideCleared
	}
	return constants.EventRideUpdate
}
