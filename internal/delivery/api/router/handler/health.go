package handler

import (
	"net/http"

	"blog/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is unauthenticated and does not touch the store.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, response.Body{"status": "ok"})
}
