package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/testsupport"
	"eliavigram/pkg/errors"
)

func newEngagement(photos ...*entity.Photo) (*EngagementUseCase, *testsupport.PhotoRepository) {
	repo := testsupport.NewPhotoRepository(photos...)
	uc := NewEngagementUseCase(repo)
	uc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("c%d", n)
	}
	return uc, repo
}

func TestToggleLikeMia(t *testing.T) {
	uc, repo := newEngagement(&entity.Photo{ID: "p1"})
	ctx := context.Background()

	first, err := uc.ToggleLike(ctx, "p1", "Mia", "https://pics.test/mia.png")
	require.NoError(t, err)
	assert.True(t, first.Liked)
	require.Len(t, first.Photo.Likes, 1)
	assert.Equal(t, "Mia", first.Photo.Likes[0].UserName)
	assert.Equal(t, "https://pics.test/mia.png", first.Photo.Likes[0].UserProfilePic)
	assert.Equal(t, "2024-06-01T12:00:00.000Z", first.Photo.Likes[0].CreatedAt)

	second, err := uc.ToggleLike(ctx, "p1", "Mia", "")
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Empty(t, second.Photo.Likes)
	assert.Empty(t, repo.Get("p1").Likes)
}

func TestToggleLikeTwiceRestoresMembership(t *testing.T) {
	original := []entity.Like{{UserName: "Leo"}, {UserName: "Ava"}, {UserName: "Sam"}}

	for _, user := range []string{"Ava", "Noah"} {
		uc, repo := newEngagement(&entity.Photo{ID: "p1", Likes: original})
		ctx := context.Background()

		first, err := uc.ToggleLike(ctx, "p1", user, "")
		require.NoError(t, err)
		second, err := uc.ToggleLike(ctx, "p1", user, "")
		require.NoError(t, err)

		assert.Equal(t, !first.Liked, second.Liked)

		var names []string
		for _, l := range repo.Get("p1").Likes {
			names = append(names, l.UserName)
		}
		if user == "Ava" {
			assert.ElementsMatch(t, []string{"Leo", "Ava", "Sam"}, names)
		} else {
			assert.Equal(t, []string{"Leo", "Ava", "Sam"}, names)
		}
	}
}

func TestToggleLikeRemovalKeepsOthers(t *testing.T) {
	uc, repo := newEngagement(&entity.Photo{ID: "p1", Likes: []entity.Like{{UserName: "Leo"}, {UserName: "Ava"}, {UserName: "Sam"}}})

	result, err := uc.ToggleLike(context.Background(), "p1", "Ava", "")
	require.NoError(t, err)

	assert.False(t, result.Liked)
	require.Len(t, repo.Get("p1").Likes, 2)
	assert.Equal(t, "Leo", repo.Get("p1").Likes[0].UserName)
	assert.Equal(t, "Sam", repo.Get("p1").Likes[1].UserName)
}

func TestToggleLikeValidation(t *testing.T) {
	uc, _ := newEngagement(&entity.Photo{ID: "p1"})

	_, err := uc.ToggleLike(context.Background(), "p1", "   ", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.ToggleLike(context.Background(), "missing", "Mia", "")
	assert.True(t, errors.IsNotFound(err))
}

func TestConcurrentLikesAreAllKept(t *testing.T) {
	uc, repo := newEngagement(&entity.Photo{ID: "p1"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.ToggleLike(context.Background(), "p1", fmt.Sprintf("user-%d", i), "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.Get("p1").Likes, 20)
}

func TestAddCommentAppendsAndMirrors(t *testing.T) {
	existing := entity.Comment{ID: "old", Text: "first!", Author: "Leo", CreatedAt: "2024-01-01T00:00:00.000Z"}
	uc, repo := newEngagement(&entity.Photo{ID: "p1", Caption: "AI caption", Comments: []entity.Comment{existing}})
	ctx := context.Background()

	for i, text := range []string{"so cute", "  love it  ", "again"} {
		photo, err := uc.AddComment(ctx, "p1", entity.Comment{Text: text, Author: "Mia"})
		require.NoError(t, err)

		require.Len(t, photo.Comments, i+2)
		assert.Equal(t, existing, photo.Comments[0])

		latest := photo.Comments[len(photo.Comments)-1]
		assert.Equal(t, fmt.Sprintf("c%d", i+1), latest.ID)
		assert.Equal(t, "2024-06-01T12:00:00.000Z", latest.CreatedAt)
		require.NotNil(t, photo.Comment)
		assert.Equal(t, latest, *photo.Comment)
		assert.Equal(t, latest.Text, photo.Caption)
	}

	stored := repo.Get("p1")
	assert.Equal(t, "love it", stored.Comments[2].Text)
	assert.Equal(t, "again", stored.Caption)
}

func TestAddCommentKeepsClientFields(t *testing.T) {
	uc, _ := newEngagement(&entity.Photo{ID: "p1"})

	photo, err := uc.AddComment(context.Background(), "p1", entity.Comment{
		ID:        "client-id",
		Text:      "hello",
		Author:    "Mia",
		CreatedAt: "2024-02-02T00:00:00.000Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "client-id", photo.Comments[0].ID)
	assert.Equal(t, "2024-02-02T00:00:00.000Z", photo.Comments[0].CreatedAt)
}

func TestAddCommentNormalizesCreatedAt(t *testing.T) {
	uc, _ := newEngagement(&entity.Photo{ID: "p1"})
	ctx := context.Background()

	photo, err := uc.AddComment(ctx, "p1", entity.Comment{Text: "offset", CreatedAt: "2024-02-02T03:00:00+02:00"})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02T01:00:00.000Z", photo.Comments[0].CreatedAt)

	photo, err = uc.AddComment(ctx, "p1", entity.Comment{Text: "junk", CreatedAt: "yesterday"})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T12:00:00.000Z", photo.Comments[1].CreatedAt)
}

func TestAddCommentValidation(t *testing.T) {
	uc, repo := newEngagement(&entity.Photo{ID: "p1"})

	_, err := uc.AddComment(context.Background(), "p1", entity.Comment{Text: "  "})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, repo.Get("p1").Comments)

	_, err = uc.AddComment(context.Background(), "missing", entity.Comment{Text: "hi"})
	assert.True(t, errors.IsNotFound(err))
}

func TestSetCommentLeavesListAlone(t *testing.T) {
	existing := entity.Comment{ID: "c0", Text: "kept"}
	uc, repo := newEngagement(&entity.Photo{ID: "p1", Comments: []entity.Comment{existing}})

	require.NoError(t, uc.SetComment(context.Background(), "p1", entity.Comment{Text: "legacy note", Author: "Mia"}))

	stored := repo.Get("p1")
	assert.Equal(t, []entity.Comment{existing}, stored.Comments)
	require.NotNil(t, stored.Comment)
	assert.Equal(t, "legacy note", stored.Comment.Text)
	assert.Equal(t, "legacy note", stored.Caption)

	assert.True(t, errors.IsNotFound(uc.SetComment(context.Background(), "missing", entity.Comment{Text: "x"})))
}
