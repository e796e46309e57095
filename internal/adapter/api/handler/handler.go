package handler

import (
	"eliavigram/internal/usecase"
)

var (
	photoHandler   *PhotoHandler
	storyHandler   *StoryHandler
	galleryHandler *GalleryHandler
)

func Setup(
	photoUseCase *usecase.PhotoUseCase,
	engagementUseCase *usecase.EngagementUseCase,
	similarityUseCase *usecase.SimilarityUseCase,
	storyUseCase *usecase.StoryUseCase,
	galleryUseCase *usecase.GalleryUseCase,
	maxUploadBytes int64,
) {
	photoHandler = NewPhotoHandler(photoUseCase, engagementUseCase, similarityUseCase, maxUploadBytes)
	storyHandler = NewStoryHandler(storyUseCase)
	galleryHandler = NewGalleryHandler(galleryUseCase)
}

func GetPhotoHandler() *PhotoHandler {
	return photoHandler
}

func GetStoryHandler() *StoryHandler {
	return storyHandler
}

func GetGalleryHandler() *GalleryHandler {
	return galleryHandler
}
