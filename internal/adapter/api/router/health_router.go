package router

import (
	"eliavigram/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// PublicPaths are reachable without the gallery password.
var PublicPaths = []string{"/health", "/health/store"}

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/health/store", healthHandler.CheckStoreHealth)
}
