package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"eliavigram/internal/domain/presentation"
	"eliavigram/internal/usecase"
	"eliavigram/pkg/logger"
	"eliavigram/pkg/response"
	"eliavigram/pkg/utils"
)

type GalleryHandler struct {
	galleryUseCase *usecase.GalleryUseCase
}

func NewGalleryHandler(galleryUseCase *usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{galleryUseCase: galleryUseCase}
}

// GetGallery orders photos for display. Seen ids come from the client as a
// comma separated "seen" query parameter.
func (h *GalleryHandler) GetGallery(c echo.Context) error {
	var ids []string
	if raw := c.QueryParam("seen"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			ids = append(ids, strings.TrimSpace(id))
		}
	}

	gallery, err := h.galleryUseCase.Load(c.Request().Context(), presentation.NewSeenSet(ids...))
	if err != nil {
		logger.Error("Failed to load gallery: %v", err)
		return response.Success(c, usecase.Gallery{Photos: []usecase.GalleryItem{}})
	}

	return response.Success(c, gallery)
}

// ListComments returns the comment feed, optionally paged with "page" and "limit".
func (h *GalleryHandler) ListComments(c echo.Context) error {
	feed, err := h.galleryUseCase.CommentsFeed(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load comments: %v", err)
		return response.Success(c, []usecase.FeedEntry{})
	}

	if page, ok := utils.GetPaginationParams(c); ok {
		feed = utils.Paginate(feed, page)
	}

	return response.Success(c, feed)
}
