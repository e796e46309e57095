package repository

import (
	"context"

	"eliavigram/internal/domain/entity"
)

// MutateFunc edits a photo in place inside a read-modify-write cycle. Returning an
// error aborts the write.
type MutateFunc func(photo *entity.Photo) error

type PhotoRepository interface {
	// List returns every photo, newest upload first.
	List(ctx context.Context) ([]*entity.Photo, error)
	GetByID(ctx context.Context, id string) (*entity.Photo, error)
	ExistsByOriginalName(ctx context.Context, originalName string) (bool, error)
	Create(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id string) error
	UpdateCaption(ctx context.Context, id, caption string) error
	// Mutate loads the photo, applies fn and persists the result atomically with
	// respect to other Mutate calls on the same id.
	Mutate(ctx context.Context, id string, fn MutateFunc) (*entity.Photo, error)
}
