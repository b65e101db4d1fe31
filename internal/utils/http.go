package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope for successful API responses
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for error responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse writes a success envelope with the given status code
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler writes an error envelope with the given status code
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
	})
}

// BadRequestResponse writes a 400 error envelope
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse writes a 401 error envelope
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse writes a 403 error envelope
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse writes a 404 error envelope
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse writes a 500 error envelope
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// BadGatewayResponse writes a 502 error envelope, used when the payment
// gateway is unreachable or rejects a request
func BadGatewayResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadGateway, errorMessage)
}
