package main

import (
	"errors"
	"net/http"
	"strconv"

	"UserHubAPI/internal/repository"
	"UserHubAPI/internal/response"
	"UserHubAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// fail maps an error onto the envelope with the matching HTTP status.
// Unclassified errors (including repository.ErrConnection) report as 500;
// nothing is swallowed.
func fail(c echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, services.ErrInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
	}
	return c.JSON(code, response.Error(code, err.Error()))
}

func ok(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, response.Success(code, message, data))
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, message))
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, message))
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
