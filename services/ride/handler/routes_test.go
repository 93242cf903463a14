package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/models"
	wspkg "github.com/piresc/taximeter/internal/pkg/websocket"
	"github.com/piresc/taximeter/services/ride"
	"github.com/piresc/taximeter/services/ride/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := echo.New()
	h := NewHandler(context.Background(), mocks.NewMockRideUC(ctrl), mocks.NewMockRideUpdater(ctrl), wspkg.NewManager())
	h.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /api/v1/supplements",
		"POST /api/v1/rides",
		"GET /api/v1/rides/current",
		"GET /api/v1/rides/current/fare",
		"PUT /api/v1/rides/current/supplements",
		"POST /api/v1/rides/current/stop",
		"GET /ws/ride",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestRoutes_FareNotFoundWithoutRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideUC := mocks.NewMockRideUC(ctrl)
	mockRideUC.EXPECT().GetFareSummary(gomock.Any()).Return((*models.FareSummary)(nil), ride.ErrNoRideInProgress)

	e := echo.New()
	NewHandler(context.Background(), mockRideUC, mocks.NewMockRideUpdater(ctrl), wspkg.NewManager()).RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rides/current/fare", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no ride in progress")
}
