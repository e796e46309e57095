package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// StoreCheck reports whether the backing document store is reachable.
type StoreCheck func(ctx context.Context) error

type HealthHandler struct {
	checkStore StoreCheck
}

var healthHandler *HealthHandler

func NewHealthHandler(checkStore StoreCheck) *HealthHandler {
	return &HealthHandler{
		checkStore: checkStore,
	}
}

func SetupHealthHandler(checkStore StoreCheck) {
	healthHandler = NewHealthHandler(checkStore)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckStoreHealth(c echo.Context) error {
	if h.checkStore == nil {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "No store check configured",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkStore(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Firestore connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firestore connected successfully",
	})
}
