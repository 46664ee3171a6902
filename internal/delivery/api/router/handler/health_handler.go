package handler

import (
	"containerview/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness. It does not touch the database.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
