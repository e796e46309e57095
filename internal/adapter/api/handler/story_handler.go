package handler

import (
	"github.com/labstack/echo/v4"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/usecase"
	"eliavigram/pkg/errors"
	"eliavigram/pkg/logger"
	"eliavigram/pkg/response"
)

type StoryHandler struct {
	storyUseCase *usecase.StoryUseCase
}

func NewStoryHandler(storyUseCase *usecase.StoryUseCase) *StoryHandler {
	return &StoryHandler{storyUseCase: storyUseCase}
}

type storiesResponse struct {
	Stories []entity.StoryTheme `json:"stories"`
}

func (h *StoryHandler) ListStories(c echo.Context) error {
	stories, err := h.storyUseCase.ListStories(c.Request().Context())
	if err != nil {
		logger.Error("Failed to generate stories: %v", err)
		return response.Error(c, errors.Internal("Failed to generate stories", err))
	}

	return response.Success(c, storiesResponse{Stories: stories})
}
