package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/service"
	"eliavigram/internal/testsupport"
)

func TestGenerateCaptionRetriesTransientFailure(t *testing.T) {
	vision := new(testsupport.VisionService)
	vision.On("Caption", mock.Anything, []byte("img"), "image/jpeg").Return("", errors.New("unavailable")).Once()
	vision.On("Caption", mock.Anything, []byte("img"), "image/jpeg").Return("Sunny day", nil).Once()

	caption := newTestCaptions(vision).GenerateCaption(context.Background(), []byte("img"), "image/jpeg")

	assert.Equal(t, "Sunny day", caption)
	vision.AssertNumberOfCalls(t, "Caption", 2)
}

func TestGenerateCaptionDegradesToEmpty(t *testing.T) {
	vision := new(testsupport.VisionService)
	vision.On("Caption", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("down"))

	assert.Equal(t, "", newTestCaptions(vision).GenerateCaption(context.Background(), []byte("img"), "image/png"))
}

func TestGenerateCaptionSkipsNonImages(t *testing.T) {
	vision := new(testsupport.VisionService)

	g := newTestCaptions(vision)
	assert.Equal(t, "", g.GenerateCaption(context.Background(), []byte("vid"), "video/mp4"))
	assert.Equal(t, "", g.GenerateCaption(context.Background(), nil, "image/png"))
	vision.AssertNotCalled(t, "Caption", mock.Anything, mock.Anything, mock.Anything)
}

func TestGeneratorWithoutVision(t *testing.T) {
	g := newTestCaptions(nil)
	ctx := context.Background()

	assert.Equal(t, "", g.GenerateCaption(ctx, []byte("img"), "image/png"))
	assert.Equal(t, []string{}, g.GenerateKeywords(ctx, []byte("img"), "image/png"))
	assert.Nil(t, g.GenerateThemes(ctx, []entity.StoryCandidate{{ID: "p1"}}))
}

func TestGenerateKeywordsFailureIsEmpty(t *testing.T) {
	vision := new(testsupport.VisionService)
	vision.On("Keywords", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("bad reply"))

	keywords := newTestCaptions(vision).GenerateKeywords(context.Background(), []byte("img"), "image/jpeg")

	assert.NotNil(t, keywords)
	assert.Empty(t, keywords)
}

func TestGenerateThemesStopsOnCancelledContext(t *testing.T) {
	vision := new(testsupport.VisionService)
	vision.On("Themes", mock.Anything, mock.Anything).Return(nil, context.Canceled)

	groups := newTestCaptions(vision).GenerateThemes(context.Background(), []entity.StoryCandidate{{ID: "p1"}})

	assert.Nil(t, groups)
	vision.AssertNumberOfCalls(t, "Themes", 1)
}

func TestGenerateKeywordsDoesNotRetryUnusableReply(t *testing.T) {
	vision := new(testsupport.VisionService)
	malformed := fmt.Errorf("%w: malformed keyword reply", service.ErrUnusableReply)
	vision.On("Keywords", mock.Anything, mock.Anything, mock.Anything).Return(nil, malformed)

	keywords := newTestCaptions(vision).GenerateKeywords(context.Background(), []byte("img"), "image/jpeg")

	assert.Empty(t, keywords)
	vision.AssertNumberOfCalls(t, "Keywords", 1)
}

func TestGenerateCaptionDoesNotRetryEmptyReply(t *testing.T) {
	vision := new(testsupport.VisionService)
	vision.On("Caption", mock.Anything, mock.Anything, mock.Anything).Return("", service.ErrUnusableReply)

	assert.Equal(t, "", newTestCaptions(vision).GenerateCaption(context.Background(), []byte("img"), "image/png"))
	vision.AssertNumberOfCalls(t, "Caption", 1)
}
