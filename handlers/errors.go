package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/speedtip/contest"
)

type envelope map[string]any

func ok(c echo.Context, status int, body envelope) error {
	if body == nil {
		body = envelope{}
	}
	body["success"] = true
	return c.JSON(status, body)
}

func statusFor(k contest.Kind) int {
	switch k {
	case contest.KindUnauthorized:
		return http.StatusUnauthorized
	case contest.KindSubmissionsClosed:
		return http.StatusConflict
	case contest.KindValidationFailed:
		return http.StatusBadRequest
	case contest.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// ErrorHandler renders every error as {"success":false,"error":...,"kind":...}.
// Store causes are logged and never sent to the client.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := http.StatusText(status)
		kind := contest.KindOf(err)

		var ce *contest.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ce):
			status, msg = statusFor(kind), ce.Message
			if ce.Cause != nil {
				log.Error("contest operation failed",
					zap.String("kind", kind.String()),
					zap.String("uri", c.Request().RequestURI),
					zap.Error(ce.Cause))
			}
		case errors.As(err, &he):
			status, msg = he.Code, fmt.Sprint(he.Message)
			if status == http.StatusBadRequest {
				kind = contest.KindValidationFailed
			}
		default:
			log.Error("unhandled error", zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, envelope{"success": false, "error": msg, "kind": kind.String()})
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}
