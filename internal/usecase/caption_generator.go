package usecase

import (
	"context"
	"errors"
	"time"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/service"
	"eliavigram/pkg/logger"
	"eliavigram/pkg/retry"
)

// CaptionGenerator wraps the vision model for paths where AI output is an
// enrichment: every failure degrades to an empty result.
type CaptionGenerator struct {
	vision  service.VisionService
	timeout time.Duration
	retry   retry.Config
}

func NewCaptionGenerator(vision service.VisionService, timeout time.Duration, retryCfg retry.Config) *CaptionGenerator {
	return &CaptionGenerator{
		vision:  vision,
		timeout: timeout,
		retry:   retryCfg,
	}
}

// GenerateCaption returns "" when the media is not an image or the model fails.
func (g *CaptionGenerator) GenerateCaption(ctx context.Context, image []byte, mimeType string) string {
	if g.vision == nil || !entity.IsImageMIME(mimeType) || len(image) == 0 {
		return ""
	}

	var caption string
	err := g.call(ctx, "caption", func(ctx context.Context) error {
		c, err := g.vision.Caption(ctx, image, mimeType)
		if err != nil {
			return err
		}
		caption = c
		return nil
	})
	if err != nil {
		logger.Warn("Failed to generate caption: %v", err)
		return ""
	}
	return caption
}

// GenerateKeywords returns an empty slice when the media is not an image or the model fails.
func (g *CaptionGenerator) GenerateKeywords(ctx context.Context, image []byte, mimeType string) []string {
	if g.vision == nil || !entity.IsImageMIME(mimeType) || len(image) == 0 {
		return []string{}
	}

	var keywords []string
	err := g.call(ctx, "keywords", func(ctx context.Context) error {
		k, err := g.vision.Keywords(ctx, image, mimeType)
		if err != nil {
			return err
		}
		keywords = k
		return nil
	})
	if err != nil || keywords == nil {
		if err != nil {
			logger.Warn("Failed to generate keywords: %v", err)
		}
		return []string{}
	}
	return keywords
}

// GenerateThemes returns nil when the model fails.
func (g *CaptionGenerator) GenerateThemes(ctx context.Context, photos []entity.StoryCandidate) []entity.ThemeGroup {
	if g.vision == nil || len(photos) == 0 {
		return nil
	}

	var groups []entity.ThemeGroup
	err := g.call(ctx, "themes", func(ctx context.Context) error {
		t, err := g.vision.Themes(ctx, photos)
		if err != nil {
			return err
		}
		groups = t
		return nil
	})
	if err != nil {
		logger.Warn("Failed to generate story themes: %v", err)
		return nil
	}
	return groups
}

func (g *CaptionGenerator) call(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	return retry.Do(ctx, name, func() error {
		err := fn(ctx)
		if err != nil && (errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(err, service.ErrUnusableReply)) {
			return retry.Permanent(err)
		}
		return err
	}, g.retry)
}
