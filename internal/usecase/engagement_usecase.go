package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/repository"
	"eliavigram/pkg/errors"
)

// EngagementUseCase applies likes and comments. Every change goes through
// PhotoRepository.Mutate so concurrent writers on one photo do not lose updates.
type EngagementUseCase struct {
	photoRepo repository.PhotoRepository
	now       func() time.Time
	newID     func() string
}

func NewEngagementUseCase(photoRepo repository.PhotoRepository) *EngagementUseCase {
	return &EngagementUseCase{
		photoRepo: photoRepo,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

type LikeResult struct {
	Photo *entity.Photo
	Liked bool
}

// ToggleLike removes userName's like if present and adds it otherwise.
func (uc *EngagementUseCase) ToggleLike(ctx context.Context, photoID, userName, userProfilePic string) (*LikeResult, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, errors.BadRequest("userName is required", nil)
	}

	var liked bool
	photo, err := uc.photoRepo.Mutate(ctx, photoID, func(p *entity.Photo) error {
		if i := p.LikeIndex(userName); i >= 0 {
			p.Likes = append(p.Likes[:i:i], p.Likes[i+1:]...)
			liked = false
			return nil
		}

		p.Likes = append(p.Likes, entity.Like{
			UserName:       userName,
			UserProfilePic: userProfilePic,
			CreatedAt:      entity.Timestamp(uc.now()),
		})
		liked = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &LikeResult{Photo: photo, Liked: liked}, nil
}

// AddComment appends the comment and mirrors it into the legacy comment and
// caption fields that older clients read.
func (uc *EngagementUseCase) AddComment(ctx context.Context, photoID string, comment entity.Comment) (*entity.Photo, error) {
	comment, err := uc.prepareComment(comment)
	if err != nil {
		return nil, err
	}

	return uc.photoRepo.Mutate(ctx, photoID, func(p *entity.Photo) error {
		p.Comments = append(p.Comments, comment)
		latest := comment
		p.Comment = &latest
		p.Caption = comment.Text
		return nil
	})
}

// SetComment is the single-comment write used by old clients. It leaves the
// comments list untouched.
func (uc *EngagementUseCase) SetComment(ctx context.Context, photoID string, comment entity.Comment) error {
	comment, err := uc.prepareComment(comment)
	if err != nil {
		return err
	}

	_, err = uc.photoRepo.Mutate(ctx, photoID, func(p *entity.Photo) error {
		p.Comment = &comment
		p.Caption = comment.Text
		return nil
	})
	return err
}

func (uc *EngagementUseCase) prepareComment(comment entity.Comment) (entity.Comment, error) {
	comment.Text = strings.TrimSpace(comment.Text)
	if comment.Text == "" {
		return comment, errors.BadRequest("comment text is required", nil)
	}
	if comment.ID == "" {
		comment.ID = uc.newID()
	}
	if t, ok := entity.ParseTimestamp(comment.CreatedAt); ok {
		comment.CreatedAt = entity.Timestamp(t)
	} else {
		comment.CreatedAt = entity.Timestamp(uc.now())
	}
	return comment, nil
}
