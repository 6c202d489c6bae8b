package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "eduportal/internal/errors"
	"eduportal/internal/repository"
)

// Envelope is the response shape of every public route.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// MessageResponse is the admin acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned by admin create routes.
type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func okPage(c echo.Context, data, pagination interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Pagination: pagination})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Error: message})
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// logFailure records a store failure with request context. Clients only see a
// generic message.
func logFailure(logger *logrus.Logger, c echo.Context, op string, err error) {
	logger.WithFields(logrus.Fields{
		"request_id": requestID(c),
		"op":         op,
	}).WithError(err).Error("request failed")
}

// publicError writes err as a failed envelope. notFound replaces the generic
// not-found text.
func publicError(c echo.Context, logger *logrus.Logger, op string, err error, notFound string) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	switch {
	case httpErr.StatusCode == http.StatusInternalServerError:
		logFailure(logger, c, op, err)
	case errors.Is(err, apperrors.ErrNotFound) && notFound != "":
		httpErr.Message = notFound
	}
	return fail(c, httpErr.StatusCode, httpErr.Message)
}

// adminError converts err into the bare {error} admin body.
func adminError(c echo.Context, logger *logrus.Logger, op string, err error) error {
	if apperrors.IsStoreError(err) {
		logFailure(logger, c, op, err)
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Error: message})
}

// bindError maps a binder failure. Bodies cut off by the size limit stay 413.
func bindError(err error) *echo.HTTPError {
	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, apperrors.ErrorResponse{Error: "Upload too large"})
	}
	return badRequest("Invalid request body")
}

// queryPage reads page and limit, falling back to the defaults for missing or
// malformed values.
func queryPage(c echo.Context) repository.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return repository.NewPage(page, limit)
}

// queryCategory parses an optional category id query parameter.
func queryCategory(c echo.Context) (*uint, error) {
	raw := c.QueryParam("category")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, apperrors.NewValidationError("Invalid category")
	}
	v := uint(id)
	return &v, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
