package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/constants"
	"github.com/piresc/taximeter/internal/pkg/models"
	wspkg "github.com/piresc/taximeter/internal/pkg/websocket"
	"github.com/piresc/taximeter/services/ride/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, h *RideStreamHandler) *websocket.Conn {
	t.Helper()
	e := echo.New()
	e.GET("/ws/ride", h.HandleRideStream)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/ride"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) models.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

// subscribeWith serves views to the stream and records the subscription context
func subscribeWith(views chan *models.RideView, subscribed chan<- context.Context) func(context.Context) <-chan *models.RideView {
	return func(ctx context.Context) <-chan *models.RideView {
		subscribed <- ctx
		out := make(chan *models.RideView)
		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case v := <-views:
					select {
					case out <- v:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
		return out
	}
}

func TestRideStream_SendsViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	views := make(chan *models.RideView, 2)
	subscribed := make(chan context.Context, 1)
	mockRideUC.EXPECT().SubscribeRideUpdates(gomock.Any()).DoAndReturn(subscribeWith(views, subscribed))

	h := NewRideStreamHandler(context.Background(), mockRideUC, wspkg.NewManager())
	conn := dial(t, h)

	views <- &models.RideView{}
	views <- &models.RideView{Active: true, Status: models.RideStatusStarted, RoutePoints: 2}

	cleared := read(t, conn)
	assert.Equal(t, constants.EventRideCleared, cleared.Event)

	update := read(t, conn)
	assert.Equal(t, constants.EventRideUpdate, update.Event)
	var view models.RideView
	require.NoError(t, json.Unmarshal(update.Data, &view))
	assert.Equal(t, 2, view.RoutePoints)
}

func TestRideStream_RejectsClientMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	subscribed := make(chan context.Context, 1)
	mockRideUC.EXPECT().SubscribeRideUpdates(gomock.Any()).DoAndReturn(subscribeWith(make(chan *models.RideView), subscribed))

	h := NewRideStreamHandler(context.Background(), mockRideUC, wspkg.NewManager())
	conn := dial(t, h)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"start"}`)))

	msg := read(t, conn)
	require.Equal(t, constants.EventError, msg.Event)
	var payload models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, constants.ErrorCodeUnsupported, payload.Code)
}

func TestRideStream_ClientDisconnectEndsSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	subscribed := make(chan context.Context, 1)
	mockRideUC.EXPECT().SubscribeRideUpdates(gomock.Any()).DoAndReturn(subscribeWith(make(chan *models.RideView), subscribed))

	h := NewRideStreamHandler(context.Background(), mockRideUC, wspkg.NewManager())
	conn := dial(t, h)

	var ctx context.Context
	select {
	case ctx = <-subscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not subscribe")
	}

	conn.Close()

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription outlived the client")
	}
}

func TestRideStream_ShutdownClosesStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	subscribed := make(chan context.Context, 1)
	mockRideUC.EXPECT().SubscribeRideUpdates(gomock.Any()).DoAndReturn(subscribeWith(make(chan *models.RideView), subscribed))

	root, shutdown := context.WithCancel(context.Background())
	h := NewRideStreamHandler(root, mockRideUC, wspkg.NewManager())
	conn := dial(t, h)
	<-subscribed

	shutdown()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	var netErr net.Error
	assert.False(t, errors.As(err, &netErr) && netErr.Timeout(), "stream was not closed")
}
