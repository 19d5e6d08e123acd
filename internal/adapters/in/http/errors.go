package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/generated/servers"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail writes the error response for a use case error.
// Storage failures are logged with their cause and reported without it.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrNoPendingOrder):
		return writeError(ctx, http.StatusNotFound, "No pending order")
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, invalidValueMessage(err))
	case errors.Is(err, errs.ErrStorageUnavailable):
		s.logger.ErrorContext(ctx.Request().Context(), "storage unavailable",
			slog.String("path", ctx.Path()), slog.Any("err", err))
		return writeError(ctx, http.StatusInternalServerError, "Storage unavailable")
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("path", ctx.Path()), slog.Any("err", err))
		return writeError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

// invalidValueMessage words a value error for API clients. Rejected values and
// causes stay out of the response.
func invalidValueMessage(err error) string {
	var (
		rangeErr    *errs.ValueIsOutOfRangeError
		requiredErr *errs.ValueIsRequiredError
	)
	switch {
	case errors.Is(err, order.ErrClaimStatusIsPending):
		return "Claim status must not be pending"
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("Value out of range: %s must be between %v and %v", rangeErr.ParamName, rangeErr.Min, rangeErr.Max)
	case errors.As(err, &requiredErr):
		return fmt.Sprintf("Missing required value: %s", requiredErr.ParamName)
	default:
		return "Invalid request value"
	}
}

func badRequest(ctx echo.Context, message string) error {
	return writeError(ctx, http.StatusBadRequest, message)
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code), //nolint:gosec // HTTP status codes fit in int32
		Message: message,
	})
}

// ErrorHandler renders errors returned by middleware and routing, such as
// unknown routes or failed request validation, in the API error format.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", slog.Any("err", err))
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = writeError(ctx, code, message)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", slog.Any("err", writeErr))
		}
	}
}
