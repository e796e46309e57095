package router

import (
	"eliavigram/internal/adapter/api/handler"
	"eliavigram/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPhotoRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	photoHandler := handler.GetPhotoHandler()

	e.GET("/photos", photoHandler.ListPhotos)
	e.POST("/upload", photoHandler.Upload)

	photos := e.Group("/photos")
	photos.DELETE("/:id", photoHandler.DeletePhoto)
	photos.PATCH("/:id", photoHandler.PatchPhoto)
	photos.GET("/:id/similar", photoHandler.SimilarPhotos, rateLimitMiddleware.Limit(middleware.ActionSimilar))

	e.POST("/backfill-captions", photoHandler.BackfillCaptions, rateLimitMiddleware.Limit(middleware.ActionBackfill))
}
