package handler

import (
	"strconv"

	"bazaar/internal/delivery/api/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses the named path parameter as a UUID. Malformed ids cannot name
// a stored record, so they render as not found.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrNotFound, "parse %s %q", name, c.Param(name))
	}

	return id, nil
}

// queryID parses an optional UUID query parameter.
func queryID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewFieldError(name, "Must be a valid UUID.")
	}

	return &id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.NewFieldError(name, "A valid integer is required.")
	}

	return &value, nil
}

func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Caller missing from token")
}

// forbidden renders the role rejection a use case would return, for handlers
// that must refuse before reading the body.
func forbidden(c echo.Context, reason string) error {
	return response.HandleAppError(c, errors.Wrap(domainerrors.ErrForbidden, reason))
}
