package service

import (
	"context"
	"errors"

	"eliavigram/internal/domain/entity"
)

// ErrUnusableReply marks a model reply that arrived but could not be used.
// Asking again with the same input will not help.
var ErrUnusableReply = errors.New("unusable model reply")

// VisionService is the generative model behind captions, keywords and stories.
// Implementations report failures; callers decide whether to degrade.
type VisionService interface {
	Caption(ctx context.Context, image []byte, mimeType string) (string, error)
	Keywords(ctx context.Context, image []byte, mimeType string) ([]string, error)
	Themes(ctx context.Context, photos []entity.StoryCandidate) ([]entity.ThemeGroup, error)
}
