package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/taximeter/internal/pkg/requestcontext"
)

// Response is the envelope of every successful taximeter API reply
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorResponse is the envelope of every failed taximeter API reply
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// SuccessResponse sends data wrapped in the success envelope
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestcontext.GetRequestID(c.Request().Context()),
	})
}

func errorResponse(c echo.Context, statusCode int, errorMessage, fallback string) error {
	if errorMessage == "" {
		errorMessage = fallback
	}
	return c.JSON(statusCode, ErrorResponse{
		Error:     errorMessage,
		Code:      statusCode,
		RequestID: requestcontext.GetRequestID(c.Request().Context()),
	})
}

// BadRequestResponse sends a 400, typically for an unreadable request body
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return errorResponse(c, http.StatusBadRequest, errorMessage, "Bad request")
}

// NotFoundResponse sends a 404, used when no ride is in progress
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return errorResponse(c, http.StatusNotFound, errorMessage, "Resource not found")
}

// InternalServerErrorResponse sends a 500
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return errorResponse(c, http.StatusInternalServerError, errorMessage, "Internal server error")
}
