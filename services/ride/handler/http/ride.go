package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/logger"
	"github.com/piresc/taximeter/internal/pkg/models"
	nrpkg "github.com/piresc/taximeter/internal/pkg/newrelic"
	"github.com/piresc/taximeter/internal/utils"
	"github.com/piresc/taximeter/services/ride"
)

// RideHandler handles HTTP requests for the taximeter
type RideHandler struct {
	rideUC  ride.RideUC
	updater ride.RideUpdater
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC ride.RideUC, updater ride.RideUpdater) *RideHandler {
	return &RideHandler{
		rideUC:  rideUC,
		updater: updater,
	}
}

// GetSupplements lists the supplements a ride can carry
func (h *RideHandler) GetSupplements(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ride.GetSupplements")

	supplements, err := h.rideUC.GetSupplements(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to get supplements: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Supplements retrieved successfully", supplements)
}

// StartRide starts a new ride and its background updates
func (h *RideHandler) StartRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ride.StartRide")

	var req models.RideStartRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ctx := c.Request().Context()
	view, err := h.rideUC.StartRide(ctx, req.Supplements)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to start ride", logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to start ride: "+err.Error())
	}

	// The updates outlive the request
	h.updater.StartRideUpdates(context.WithoutCancel(ctx))

	nrpkg.AddTransactionAttribute(txn, "ride.supplements", len(req.Supplements))
	return utils.SuccessResponse(c, http.StatusCreated, "Ride started successfully", view)
}

// UpdateSupplements replaces the supplements of the current ride
func (h *RideHandler) UpdateSupplements(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ride.UpdateSupplements")

	var req models.SupplementsUpdateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	view, err := h.rideUC.UpdateSupplements(c.Request().Context(), req.Supplements)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to update supplements: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Supplements updated successfully", view)
}

// StopRide stops the background updates, ends the ride and returns the final fare
func (h *RideHandler) StopRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ride.StopRide")
	ctx := c.Request().Context()

	h.updater.StopRideUpdates()

	if err := h.rideUC.EndRide(ctx); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to end ride: "+err.Error())
	}

	summary, err := h.rideUC.GetFareSummary(ctx)
	if err != nil {
		return h.fareError(c, err)
	}

	view, err := h.rideUC.GetCurrentRide(ctx)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to get ride: "+err.Error())
	}

	logger.InfoCtx(ctx, "Ride stopped",
		logger.Float64("total_price", summary.Total()),
		logger.Float64("distance_km", view.DistanceKm),
		logger.Int64("elapsed_seconds", view.ElapsedSeconds))

	return utils.SuccessResponse(c, http.StatusOK, "Ride stopped successfully", models.RideStopResponse{
		Ride: view,
		Fare: *summary,
	})
}

// GetCurrentRide returns the current ride view, inactive when there is no ride
func (h *RideHandler) GetCurrentRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ride.GetCurrentRide")

	view, err := h.rideUC.GetCurrentRide(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to get ride: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", view)
}

// GetFareSummary returns the fare breakdown of the current ride
func (h *RideHandler) GetFareSummary(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ride.GetFareSummary")

	summary, err := h.rideUC.GetFareSummary(c.Request().Context())
	if err != nil {
		return h.fareError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare summary retrieved successfully", summary)
}

func (h *RideHandler) fareError(c echo.Context, err error) error {
	if errors.Is(err, ride.ErrNoRideInProgress) {
		return utils.NotFoundResponse(c, err.Error())
	}
	nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
	return utils.InternalServerErrorResponse(c, "Failed to get fare summary: "+err.Error())
}
