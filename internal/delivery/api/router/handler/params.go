package handler

import (
	"strconv"

	"blog/internal/delivery/api/response"
	"blog/internal/delivery/api/validator"
	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// parseID reads the :id path parameter.
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	return id, err == nil
}

func invalidID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid id")
}

// bindAndValidate fills req from the body and checks required fields. When it
// returns false the error response has already been written (or err is set).
func bindAndValidate(c echo.Context, req any, what string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid "+what+" input")
	}

	if err := c.Validate(req); err != nil {
		return false, response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err)))
	}

	return true, nil
}
