package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/services/ride"
)

const feedPublishTimeout = 5 * time.Second

// FeedPublisher mirrors every ride view to the configured feeds
type FeedPublisher struct {
	uc    ride.RideUC
	feeds []ride.RideFeedGW

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewFeedPublisher creates a publisher for feeds. Feeds may be empty.
func NewFeedPublisher(uc ride.RideUC, feeds ...ride.RideFeedGW) *FeedPublisher {
	return &FeedPublisher{uc: uc, feeds: feeds}
}

// Start subscribes to ride updates and publishes them until Stop is called or ctx is done
func (p *FeedPublisher) Start(ctx context.Context) {
	if len(p.feeds) == 0 {
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)
	views := p.uc.SubscribeRideUpdates(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for view := range views {
			for _, feed := range p.feeds {
				pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), feedPublishTimeout)
				if err := feed.PublishRideUpdate(pubCtx, view); err != nil {
					logger.WarnCtx(ctx, "Failed to publish ride update", logger.Err(err))
				}
				cancel()
			}
		}
	}()
}

// Stop ends the subscription and waits for the in-flight publish
func (p *FeedPublisher) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}
