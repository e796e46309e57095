package router

import (
	"eliavigram/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupGalleryRouter(e *echo.Echo) {
	galleryHandler := handler.GetGalleryHandler()
	e.GET("/gallery", galleryHandler.GetGallery)
	e.GET("/comments", galleryHandler.ListComments)
}
