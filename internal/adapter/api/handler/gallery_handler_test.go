package handler

import (
	stderrors "errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/testsupport"
	"eliavigram/internal/usecase"
	"eliavigram/pkg/retry"
)

func galleryPhotos() []*entity.Photo {
	return []*entity.Photo{
		{ID: "a1", UploadedAt: "2024-01-03T00:00:00.000Z", Comments: []entity.Comment{{ID: "c1", Text: "wow", CreatedAt: "2024-01-05T00:00:00.000Z"}}},
		{ID: "b2", UploadedAt: "2024-01-02T00:00:00.000Z"},
		{ID: "c3", UploadedAt: "2024-01-01T00:00:00.000Z"},
	}
}

func newGalleryAPI(repo *testsupport.PhotoRepository) *echo.Echo {
	h := NewGalleryHandler(usecase.NewGalleryUseCase(repo, rand.New(rand.NewSource(3))))
	e := echo.New()
	e.GET("/gallery", h.GetGallery)
	e.GET("/comments", h.ListComments)
	return e
}

func TestGetGallery(t *testing.T) {
	e := newGalleryAPI(testsupport.NewPhotoRepository(galleryPhotos()...))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery?seen=a1,%20c3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Photos []struct {
			ID     string `json:"id"`
			IsNew  bool   `json:"isNew"`
			Layout struct {
				Rotation float64 `json:"rotation"`
				OffsetY  int     `json:"offsetY"`
			} `json:"layout"`
		} `json:"photos"`
		UnseenCount int `json:"unseenCount"`
	}
	decode(t, rec, &body)

	require.Len(t, body.Photos, 3)
	assert.Equal(t, 1, body.UnseenCount)
	assert.Equal(t, "b2", body.Photos[0].ID)
	assert.True(t, body.Photos[0].IsNew)
	assert.False(t, body.Photos[1].IsNew)
}

func TestGetGalleryDegradesToEmpty(t *testing.T) {
	repo := testsupport.NewPhotoRepository()
	repo.ListErr = stderrors.New("down")

	rec := httptest.NewRecorder()
	newGalleryAPI(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"photos":[],"unseenCount":0}`, rec.Body.String())

	rec = httptest.NewRecorder()
	newGalleryAPI(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comments", nil))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListComments(t *testing.T) {
	rec := httptest.NewRecorder()
	newGalleryAPI(testsupport.NewPhotoRepository(galleryPhotos()...)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comments", nil))

	var feed []usecase.FeedEntry
	decode(t, rec, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "a1", feed[0].PhotoID)
	assert.Equal(t, "wow", feed[0].Comment.Text)
}

func TestListStoriesEndpoint(t *testing.T) {
	vision := new(testsupport.VisionService)
	vision.On("Themes", mock.Anything, mock.Anything).Return(nil, stderrors.New("quota"))
	captions := usecase.NewCaptionGenerator(vision, time.Second, retry.Config{InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1})

	h := NewStoryHandler(usecase.NewStoryUseCase(testsupport.NewPhotoRepository(galleryPhotos()...), captions, 60))
	e := echo.New()
	e.GET("/stories", h.ListStories)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Stories []entity.StoryTheme `json:"stories"`
	}
	decode(t, rec, &body)
	require.Len(t, body.Stories, 1)
	assert.Equal(t, "all", body.Stories[0].ID)
	assert.Equal(t, []string{"a1", "b2", "c3"}, body.Stories[0].PhotoIDs)
}

func TestListCommentsPaged(t *testing.T) {
	repo := testsupport.NewPhotoRepository(&entity.Photo{ID: "p1", Comments: []entity.Comment{
		{ID: "c1", Text: "one", CreatedAt: "2024-01-01T00:00:00.000Z"},
		{ID: "c2", Text: "two", CreatedAt: "2024-01-02T00:00:00.000Z"},
		{ID: "c3", Text: "three", CreatedAt: "2024-01-03T00:00:00.000Z"},
	}})

	rec := httptest.NewRecorder()
	newGalleryAPI(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comments?page=2&limit=1", nil))

	var feed []usecase.FeedEntry
	decode(t, rec, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "two", feed[0].Comment.Text)
}
