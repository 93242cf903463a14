package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestGracefulServer_StartAndShutdownOnCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	addr := freeAddr(t)
	gs := NewGracefulServer(e, logger.NewNopLogger(), addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGracefulServer_StartListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, logger.NewNopLogger(), l.Addr().String())

	assert.Error(t, gs.Start(context.Background()))
}

func TestShutdownManager_RunsInReverseOrder(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())

	var order []string
	for _, name := range []string{"redis", "nats", "ride updates"} {
		name := name
		sm.Register(name, func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"ride updates", "nats", "redis"}, order)
}

func TestShutdownManager_ContinuesAfterErrors(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	first := errors.New("close redis")
	second := errors.New("drain nats")

	called := 0
	sm.Register("redis", func(ctx context.Context) error { called++; return first })
	sm.Register("nats", func(ctx context.Context) error { called++; return second })

	err := sm.Shutdown(context.Background())

	assert.Equal(t, 2, called)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestShutdownManager_ShutdownRunsOnce(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	called := 0
	sm.Register("nats", func(ctx context.Context) error { called++; return nil })

	require.NoError(t, sm.Shutdown(context.Background()))
	require.NoError(t, sm.Shutdown(context.Background()))

	assert.Equal(t, 1, called)
}

func TestShutdownManager_ConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sm.Register(fmt.Sprintf("component-%d", i), func(ctx context.Context) error { return nil })
		}(i)
	}
	wg.Wait()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	assert.Len(t, sm.components, 20)
}
