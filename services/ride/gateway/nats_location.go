package gateway

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
	natspkg "github.com/piresc/taximeter/internal/pkg/nats"
	"github.com/piresc/taximeter/services/ride"
)

type natsLocationSource struct {
	client     *natspkg.Client
	subject    string
	bufferSize int
}

// NewNATSLocationSource creates a location source fed by location updates published on subject
func NewNATSLocationSource(client *natspkg.Client, subject string, bufferSize int) ride.LocationSource {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &natsLocationSource{
		client:     client,
		subject:    subject,
		bufferSize: bufferSize,
	}
}

func (s *natsLocationSource) LocationUpdates(ctx context.Context) (<-chan models.Location, error) {
	msgs := make(chan *nats.Msg, s.bufferSize)
	sub, err := s.client.GetConn().ChanSubscribe(s.subject, msgs)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", s.subject, err)
	}
	logger.Info("Subscribed to location updates", logger.String("subject", s.subject))

	out := make(chan models.Location)
	go func() {
		defer close(out)
		defer func() {
			if err := sub.Unsubscribe(); err != nil {
				logger.Warn("Failed to unsubscribe from location updates", logger.Err(err))
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.client.Closed():
				logger.Warn("Location updates ended, NATS connection closed",
					logger.String("subject", s.subject))
				return
			case msg := <-msgs:
				loc, err := decodeLocationUpdate(msg.Data)
				if err != nil {
					logger.Warn("Dropping location update",
						logger.String("subject", msg.Subject),
						logger.Err(err))
					continue
				}
				select {
				case <-ctx.Done():
					return
				case out <- loc:
				}
			}
		}
	}()

	return out, nil
}
