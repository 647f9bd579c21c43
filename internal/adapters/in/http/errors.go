package http

import (
	"errors"
	"net/http"

	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// errorHandler renders the errs taxonomy. Fatal and unknown errors are
// logged; their details never reach the client. A fatal inconsistency is a
// 500 whatever cause it wraps.
func errorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := toError(err)
		if status == http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Warn("failed to write error response", "error", err)
		}
	}
}

func toError(err error) (int, Error) {
	var (
		httpErr       *echo.HTTPError
		validationErr *errs.ValidationError
		conflictErr   *errs.ConflictError
	)

	switch {
	case errors.Is(err, errs.ErrFatalInconsistency):
		return http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		}
	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		return httpErr.Code, Error{Code: httpErr.Code, Message: message}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "validation failed",
			Errors:  validationErr.Messages,
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.As(err, &conflictErr):
		return http.StatusConflict, Error{Code: http.StatusConflict, Message: conflictErr.Reason}
	case errors.Is(err, ports.ErrInvalidToken):
		return http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "missing or invalid token"}
	default:
		return http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		}
	}
}
