package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postwire/postwire/entities"
)

// httpError maps domain validation failures to status codes. Anything
// unrecognized is a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, entities.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrPostNotFound),
		errors.Is(err, entities.ErrCommentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrInvalidPost),
		errors.Is(err, entities.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
