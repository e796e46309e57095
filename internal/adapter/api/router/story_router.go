package router

import (
	"eliavigram/internal/adapter/api/handler"
	"eliavigram/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupStoryRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	storyHandler := handler.GetStoryHandler()
	e.GET("/stories", storyHandler.ListStories, rateLimitMiddleware.Limit(middleware.ActionStories))
}
