package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/testsupport"
)

func storyPhotos(n int) []*entity.Photo {
	photos := make([]*entity.Photo, n)
	for i := range photos {
		photos[i] = &entity.Photo{
			ID:         fmt.Sprintf("p%d", i),
			Caption:    fmt.Sprintf("caption %d", i),
			UploadedAt: fmt.Sprintf("2024-01-%02dT00:00:00.000Z", 28-i),
		}
	}
	return photos
}

func TestListStoriesBuildsThemes(t *testing.T) {
	repo := testsupport.NewPhotoRepository(storyPhotos(4)...)
	vision := new(testsupport.VisionService)
	vision.On("Themes", mock.Anything, mock.Anything).Return([]entity.ThemeGroup{
		{Title: "Beach Days", Subtitle: "Sun and sand", Emoji: "🏖️", PhotoIDs: []string{"p0", "ghost", "p1", "p0"}},
		{Title: "Nothing real", PhotoIDs: []string{"ghost"}},
		{Title: "  ", PhotoIDs: []string{"p2"}},
		{Title: "Birthday", PhotoIDs: []string{"p3"}},
	}, nil)

	stories, err := NewStoryUseCase(repo, newTestCaptions(vision), 60).ListStories(context.Background())
	require.NoError(t, err)

	require.Len(t, stories, 2)
	assert.Equal(t, entity.StoryTheme{
		ID:       "story-1",
		Title:    "Beach Days",
		Subtitle: "Sun and sand",
		Emoji:    "🏖️",
		PhotoIDs: []string{"p0", "p1"},
		Gradient: "from-pink-400 to-purple-500",
	}, stories[0])
	assert.Equal(t, "story-2", stories[1].ID)
	assert.Equal(t, "📷", stories[1].Emoji)
	assert.Equal(t, []string{"p3"}, stories[1].PhotoIDs)
	assert.NotEqual(t, stories[0].Gradient, stories[1].Gradient)
}

func TestListStoriesSendsNewestPhotosOnly(t *testing.T) {
	repo := testsupport.NewPhotoRepository(storyPhotos(5)...)
	vision := new(testsupport.VisionService)
	vision.On("Themes", mock.Anything, mock.MatchedBy(func(c []entity.StoryCandidate) bool {
		return len(c) == 2 && c[0].ID == "p0" && c[1].ID == "p1" && c[0].Caption == "caption 0"
	})).Return([]entity.ThemeGroup{{Title: "Recent", PhotoIDs: []string{"p0", "p4"}}}, nil)

	stories, err := NewStoryUseCase(repo, newTestCaptions(vision), 2).ListStories(context.Background())
	require.NoError(t, err)

	require.Len(t, stories, 1)
	assert.Equal(t, []string{"p0"}, stories[0].PhotoIDs)
	vision.AssertExpectations(t)
}

func TestListStoriesFallsBackToAllMoments(t *testing.T) {
	for name, reply := range map[string]struct {
		groups []entity.ThemeGroup
		err    error
	}{
		"model error": {err: stderrors.New("quota")},
		"no groups":   {groups: []entity.ThemeGroup{}},
		"unknown ids": {groups: []entity.ThemeGroup{{Title: "Ghosts", PhotoIDs: []string{"x"}}}},
	} {
		t.Run(name, func(t *testing.T) {
			repo := testsupport.NewPhotoRepository(storyPhotos(3)...)
			vision := new(testsupport.VisionService)
			vision.On("Themes", mock.Anything, mock.Anything).Return(reply.groups, reply.err)

			stories, err := NewStoryUseCase(repo, newTestCaptions(vision), 60).ListStories(context.Background())
			require.NoError(t, err)

			require.Len(t, stories, 1)
			assert.Equal(t, entity.StoryTheme{
				ID:       "all",
				Title:    "All Moments",
				Subtitle: "Your photos",
				Emoji:    "📷",
				PhotoIDs: []string{"p0", "p1", "p2"},
				Gradient: "from-pink-400 to-purple-500",
			}, stories[0])
		})
	}
}

func TestListStoriesWithoutPhotos(t *testing.T) {
	vision := new(testsupport.VisionService)

	stories, err := NewStoryUseCase(testsupport.NewPhotoRepository(), newTestCaptions(vision), 60).ListStories(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, stories)
	assert.Empty(t, stories)
	vision.AssertNotCalled(t, "Themes", mock.Anything, mock.Anything)
}

func TestListStoriesStoreFailure(t *testing.T) {
	repo := testsupport.NewPhotoRepository()
	repo.ListErr = stderrors.New("unavailable")

	_, err := NewStoryUseCase(repo, newTestCaptions(nil), 60).ListStories(context.Background())
	assert.Error(t, err)
}
