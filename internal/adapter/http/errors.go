package http

import (
	"errors"
	"net/http"

	"loan-origination-backend/internal/domain/errs"
	"loan-origination-backend/internal/domain/loan"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor is the single mapping from error kinds to HTTP codes.
func statusFor(err error) int {
	if isTooLarge(err) {
		return http.StatusRequestEntityTooLarge
	}
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindValidation:
		return http.StatusUnprocessableEntity
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindUpstreamDelivery:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// isTooLarge compares by identity: errors.Is on an *errs.Error matches any
// error of the same kind.
func isTooLarge(err error) bool {
	for err != nil {
		if err == loan.ErrFileTooLarge {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

func writeError(c echo.Context, log *zap.Logger, err error) error {
	code := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}
	var e *errs.Error
	if errors.As(err, &e) {
		if e.Message != "" {
			resp.Error = e.Message
		}
		if e.Kind == errs.KindValidation && e.Field != "" {
			resp.Error = "validation failed"
			resp.Details = []FieldError{{Field: e.Field, Message: e.Message}}
		}
	}
	if code == http.StatusInternalServerError {
		log.Error("request failed", zap.String("method", c.Request().Method), zap.String("path", c.Path()), zap.Error(err))
		resp = ErrorResponse{Error: "internal server error"}
	}
	return c.JSON(code, resp)
}

// NewHTTPErrorHandler renders echo errors (404 routes, 405, bind failures
// escaping a handler) in the same ErrorResponse shape.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok {
				msg = s
			}
			_ = c.JSON(he.Code, ErrorResponse{Error: msg})
			return
		}
		_ = writeError(c, log, err)
	}
}

// bindAndValidate answers 400 for unreadable bodies and 422 for rule
// violations. ok is false when a response has already been written.
func bindAndValidate(c echo.Context, dst any) (ok bool, err error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(dst); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
