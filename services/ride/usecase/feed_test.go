package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/services/ride/mocks"
	"github.com/stretchr/testify/assert"
)

func TestFeedPublisher_FansOutViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	first := mocks.NewMockRideFeedGW(ctrl)
	second := mocks.NewMockRideFeedGW(ctrl)

	views := make(chan *models.RideView, 2)
	idle := &models.RideView{}
	running := &models.RideView{Active: true, Status: models.RideStatusStarted}
	views <- idle
	views <- running
	close(views)

	mockUC.EXPECT().SubscribeRideUpdates(gomock.Any()).Return((<-chan *models.RideView)(views))
	gomock.InOrder(
		first.EXPECT().PublishRideUpdate(gomock.Any(), idle).Return(errors.New("nats down")),
		first.EXPECT().PublishRideUpdate(gomock.Any(), running).Return(nil),
	)
	gomock.InOrder(
		second.EXPECT().PublishRideUpdate(gomock.Any(), idle).Return(nil),
		second.EXPECT().PublishRideUpdate(gomock.Any(), running).Return(nil),
	)

	p := NewFeedPublisher(mockUC, first, second)
	p.Start(context.Background())
	p.Stop()
}

func TestFeedPublisher_NoFeedsDoesNotSubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewFeedPublisher(mocks.NewMockRideUC(ctrl))
	p.Start(context.Background())
	p.Stop()
}

func TestFeedPublisher_StopEndsSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	feed := mocks.NewMockRideFeedGW(ctrl)

	subscribed := make(chan context.Context, 1)
	views := make(chan *models.RideView)
	mockUC.EXPECT().SubscribeRideUpdates(gomock.Any()).DoAndReturn(func(ctx context.Context) <-chan *models.RideView {
		subscribed <- ctx
		go func() {
			<-ctx.Done()
			close(views)
		}()
		return views
	})

	p := NewFeedPublisher(mockUC, feed)
	p.Start(context.Background())

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	assert.Error(t, (<-subscribed).Err())
}
