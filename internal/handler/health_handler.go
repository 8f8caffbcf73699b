package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health handles the health check endpoint
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
