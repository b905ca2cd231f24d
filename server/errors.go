package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crocdb/gateway/catalog"
	"github.com/labstack/echo/v4"
)

const tooManyRequestsMessage = "Too Many Requests"

// httpErrorHandler is the single boundary every unhandled failure crosses.
// Validation and malformed-body errors never reach it; handlers answer those
// locally. Everything else is mapped to its declared status, or 500, with
// the standard phrase for that status as the body.
func (s *server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError

	var he *echo.HTTPError
	var se *catalog.StatusError
	if errors.As(err, &he) {
		code = he.Code
	} else if errors.As(err, &se) {
		code = se.Code
	}

	// rate limit rejections keep their fixed message no matter what
	if code == http.StatusTooManyRequests {
		if werr := respondError(c, code, tooManyRequestsMessage); werr != nil {
			slog.Error("error response write failed", "err", werr)
		}
		return
	}

	if code == http.StatusInternalServerError {
		if s.debug {
			// development never masks defects
			if werr := respondError(c, code, err.Error()); werr != nil {
				slog.Error("error response write failed", "err", werr)
			}
			return
		}
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"err", err)
	}

	if werr := respondError(c, code, http.StatusText(code)); werr != nil {
		slog.Error("error response write failed", "err", werr)
	}
}
