package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"inventory-service/pkg/logger"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Health check requested")

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
