package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/taximeter/internal/pkg/models"
	nsqpkg "github.com/piresc/taximeter/internal/pkg/nsq"
	"github.com/piresc/taximeter/services/ride"
)

type nsqLocationSource struct {
	cfg     models.NSQConfig
	topic   string
	channel string
}

// NewNSQLocationSource creates a location source consuming topic on channel
func NewNSQLocationSource(cfg models.NSQConfig, topic, channel string) ride.LocationSource {
	return &nsqLocationSource{cfg: cfg, topic: topic, channel: channel}
}

func (s *nsqLocationSource) LocationUpdates(ctx context.Context) (<-chan models.Location, error) {
	out := make(chan models.Location)

	consumer, err := nsqpkg.NewConsumer(s.topic, s.channel, s.cfg, locationHandler(ctx, out))
	if err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		// Stop waits for in-flight handlers, which give up once ctx is done
		consumer.Stop()
		close(out)
	}()

	return out, nil
}

// locationHandler forwards decoded samples to out until ctx is done
func locationHandler(ctx context.Context, out chan<- models.Location) nsqpkg.MessageHandler {
	return func(body []byte) error {
		loc, err := decodeLocationUpdate(body)
		if err != nil {
			return fmt.Errorf("%w: %v", nsqpkg.ErrSkipMessage, err)
		}
		select {
		case out <- loc:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
