package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/zeeshankeerio/texstock/internal/models"
)

// parseUUID validates a path or query UUID parameter.
func parseUUID(idStr string) (uuid.UUID, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid UUID: empty string")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid UUID format")
	}
	return id, nil
}

// parsePagination reads limit/offset query params with sane defaults.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = 50
	offset = 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 && l <= 200 {
			limit = l
		}
	}
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if o, err := strconv.Atoi(offsetParam); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}

// optionalUUIDParam reads an optional UUID query parameter.
func optionalUUIDParam(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := parseUUID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// httpError maps service sentinel errors onto HTTP statuses. Unknown errors
// become 500s.
func httpError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrHasTransactions),
		errors.Is(err, models.ErrHasDependents),
		errors.Is(err, models.ErrAlreadyApplied):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
