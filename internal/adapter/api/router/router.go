package router

import (
	"eliavigram/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	e.Use(sessionMiddleware.Handle)

	SetupPhotoRouter(e, rateLimitMiddleware)
	SetupStoryRouter(e, rateLimitMiddleware)
	SetupGalleryRouter(e)
	SetupHealthRouter(e)
}
