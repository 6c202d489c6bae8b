package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "eduportal/internal/errors"
)

// unhandledResponse is the catch-all 500 body. Message is only filled in development.
type unhandledResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ErrorHandler serialises errors that reach echo. Handler-built error bodies
// pass through unchanged; unmatched routes get a 404 and anything else a
// generic 500.
func ErrorHandler(logger *logrus.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolve(err, development)
		if status == http.StatusInternalServerError {
			if _, handled := body.(apperrors.ErrorResponse); !handled {
				logger.WithFields(logrus.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"method":     c.Request().Method,
					"uri":        c.Request().RequestURI,
				}).WithError(err).Error("unhandled error")
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.WithError(err).Error("failed to write error response")
		}
	}
}

func resolve(err error, development bool) (int, interface{}) {
	if errors.Is(err, echo.ErrNotFound) {
		return http.StatusNotFound, apperrors.ErrorResponse{Error: "Route not found"}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch m := he.Message.(type) {
		case apperrors.ErrorResponse:
			return he.Code, m
		case string:
			if he.Code < http.StatusInternalServerError {
				return he.Code, apperrors.ErrorResponse{Error: m}
			}
		default:
			if he.Code < http.StatusInternalServerError {
				return he.Code, apperrors.ErrorResponse{Error: http.StatusText(he.Code)}
			}
		}
	}

	body := unhandledResponse{Error: "Something went wrong!"}
	if development {
		body.Message = err.Error()
	}
	return http.StatusInternalServerError, body
}
