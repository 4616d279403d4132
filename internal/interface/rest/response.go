package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"todo-service/internal/domain/entities"
)

// Response represents a standard API error response format
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

func errorResponse(status int, message string) Response {
	return Response{
		Status:  "error",
		Message: message,
		Code:    status,
	}
}

// NewHTTPErrorHandler maps domain errors to status codes. Anything unrecognised is
// logged and reported as a generic 500.
func NewHTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorResponse(status, message))
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}

func statusFor(err error) (int, string) {
	var domainErr *entities.DomainError
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(domainErr, entities.ErrAlreadyExists):
			return http.StatusConflict, domainErr.Message
		case errors.Is(domainErr, entities.ErrNotFound):
			return http.StatusNotFound, domainErr.Message
		case errors.Is(domainErr, entities.ErrAuthenticationFailed):
			return http.StatusUnauthorized, domainErr.Message
		case errors.Is(domainErr, entities.ErrTooManyAttempts):
			return http.StatusTooManyRequests, domainErr.Message
		case errors.Is(domainErr, entities.ErrInvalidInput):
			return http.StatusBadRequest, domainErr.Message
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func isFormRequest(c echo.Context) bool {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(contentType, echo.MIMEApplicationForm) ||
		strings.HasPrefix(contentType, echo.MIMEMultipartForm)
}

func acceptsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
