package usecase

import (
	"context"
	"fmt"
	"strings"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/repository"
)

var storyGradients = []string{
	"from-pink-400 to-purple-500",
	"from-amber-300 to-orange-500",
	"from-sky-400 to-blue-600",
	"from-emerald-300 to-teal-500",
	"from-rose-300 to-red-500",
	"from-violet-400 to-indigo-600",
}

const defaultStoryEmoji = "📷"

type StoryUseCase struct {
	photoRepo  repository.PhotoRepository
	captions   *CaptionGenerator
	photoLimit int
}

func NewStoryUseCase(photoRepo repository.PhotoRepository, captions *CaptionGenerator, photoLimit int) *StoryUseCase {
	return &StoryUseCase{
		photoRepo:  photoRepo,
		captions:   captions,
		photoLimit: photoLimit,
	}
}

// ListStories groups recent photos into themed stories. When the theme model
// gives nothing usable, every photo is offered as a single story.
func (uc *StoryUseCase) ListStories(ctx context.Context) ([]entity.StoryTheme, error) {
	photos, err := uc.photoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return []entity.StoryTheme{}, nil
	}

	recent := photos
	if uc.photoLimit > 0 && len(recent) > uc.photoLimit {
		recent = recent[:uc.photoLimit]
	}

	candidates := make([]entity.StoryCandidate, 0, len(recent))
	known := make(map[string]bool, len(recent))
	for _, p := range recent {
		candidates = append(candidates, entity.StoryCandidate{
			ID:         p.ID,
			Caption:    p.Caption,
			UploadedAt: p.UploadedAt,
		})
		known[p.ID] = true
	}

	stories := buildStories(uc.captions.GenerateThemes(ctx, candidates), known)
	if len(stories) == 0 {
		return []entity.StoryTheme{fallbackStory(photos)}, nil
	}
	return stories, nil
}

func buildStories(groups []entity.ThemeGroup, known map[string]bool) []entity.StoryTheme {
	stories := []entity.StoryTheme{}
	for _, g := range groups {
		title := strings.TrimSpace(g.Title)
		if title == "" {
			continue
		}

		ids := make([]string, 0, len(g.PhotoIDs))
		seen := make(map[string]bool, len(g.PhotoIDs))
		for _, id := range g.PhotoIDs {
			if known[id] && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}

		emoji := strings.TrimSpace(g.Emoji)
		if emoji == "" {
			emoji = defaultStoryEmoji
		}

		n := len(stories)
		stories = append(stories, entity.StoryTheme{
			ID:       fmt.Sprintf("story-%d", n+1),
			Title:    title,
			Subtitle: strings.TrimSpace(g.Subtitle),
			Emoji:    emoji,
			PhotoIDs: ids,
			Gradient: storyGradients[n%len(storyGradients)],
		})
	}
	return stories
}

func fallbackStory(photos []*entity.Photo) entity.StoryTheme {
	ids := make([]string, 0, len(photos))
	for _, p := range photos {
		ids = append(ids, p.ID)
	}
	return entity.StoryTheme{
		ID:       "all",
		Title:    "All Moments",
		Subtitle: "Your photos",
		Emoji:    defaultStoryEmoji,
		PhotoIDs: ids,
		Gradient: storyGradients[0],
	}
}
