package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/database"
	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	t.Setenv("GIT_COMMIT", "abc123")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewPingHandler("taximeter")(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "taximeter", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.False(t, info.ServerTime.IsZero())
}

func TestHealthService_CheckAllHealth(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return nil }))
	svc.AddChecker("nats", CheckerFunc(func(ctx context.Context) error { return errors.New("NATS not connected") }))
	svc.AddDetail("ride_updates_running", func() interface{} { return true })

	resp := svc.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, DependencyInfo{Status: "healthy"}, resp.Dependencies["redis"])
	assert.Equal(t, DependencyInfo{Status: "unhealthy", Error: "NATS not connected"}, resp.Dependencies["nats"])
	assert.Equal(t, true, resp.Details["ride_updates_running"])
}

func TestRedisHealthChecker(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	client, err := database.NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	defer client.Close()

	checker := NewRedisHealthChecker(client)
	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))
}

func TestNilCheckersAreHealthy(t *testing.T) {
	assert.NoError(t, NewRedisHealthChecker(nil).CheckHealth(context.Background()))
	assert.NoError(t, NewNATSHealthChecker(nil).CheckHealth(context.Background()))
}

func TestRegisterHealthEndpoints(t *testing.T) {
	healthy := true
	svc := NewHealthService()
	svc.AddChecker("redis", CheckerFunc(func(ctx context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("connection refused")
	}))

	e := echo.New()
	RegisterHealthEndpoints(e, "taximeter", "1.0.0", svc)

	tests := []struct {
		name       string
		path       string
		healthy    bool
		wantStatus int
		wantBody   string
	}{
		{name: "ping", path: "/ping", healthy: true, wantStatus: http.StatusOK, wantBody: `"service_name":"taximeter"`},
		{name: "health", path: "/health", healthy: false, wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "live", path: "/health/live", healthy: false, wantStatus: http.StatusOK, wantBody: `"status":"alive"`},
		{name: "ready", path: "/health/ready", healthy: true, wantStatus: http.StatusOK, wantBody: `"status":"ready"`},
		{name: "not ready", path: "/health/ready", healthy: false, wantStatus: http.StatusServiceUnavailable, wantBody: `"connection refused"`},
		{name: "detailed", path: "/health/detailed", healthy: true, wantStatus: http.StatusOK, wantBody: `"version":"1.0.0"`},
		{name: "detailed unhealthy", path: "/health/detailed", healthy: false, wantStatus: http.StatusServiceUnavailable, wantBody: `"status":"unhealthy"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			healthy = tt.healthy
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
