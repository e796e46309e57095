package testsupport

import (
	"context"
	"sort"
	"sync"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/repository"
	"eliavigram/pkg/errors"
)

// PhotoRepository is an in-memory repository.PhotoRepository. The *Err fields
// force the matching method to fail.
type PhotoRepository struct {
	mu     sync.Mutex
	photos map[string]*entity.Photo

	ListErr   error
	ExistsErr error
	CreateErr error
	UpdateErr error
}

var _ repository.PhotoRepository = (*PhotoRepository)(nil)

func NewPhotoRepository(photos ...*entity.Photo) *PhotoRepository {
	r := &PhotoRepository{photos: make(map[string]*entity.Photo)}
	for _, p := range photos {
		r.photos[p.ID] = p.Clone()
	}
	return r
}

func (r *PhotoRepository) List(ctx context.Context) ([]*entity.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ListErr != nil {
		return nil, r.ListErr
	}

	photos := make([]*entity.Photo, 0, len(r.photos))
	for _, p := range r.photos {
		photos = append(photos, p.Clone())
	}
	sort.SliceStable(photos, func(i, j int) bool {
		if photos[i].UploadedAt == photos[j].UploadedAt {
			return photos[i].ID < photos[j].ID
		}
		return photos[i].UploadedAt > photos[j].UploadedAt
	})
	return photos, nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*entity.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.photos[id]
	if !ok {
		return nil, errors.NotFound("Photo", nil)
	}
	return p.Clone(), nil
}

func (r *PhotoRepository) ExistsByOriginalName(ctx context.Context, originalName string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ExistsErr != nil {
		return false, r.ExistsErr
	}
	for _, p := range r.photos {
		if p.OriginalName == originalName {
			return true, nil
		}
	}
	return false, nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.photos[photo.ID] = photo.Clone()
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.photos[id]; !ok {
		return errors.NotFound("Photo", nil)
	}
	delete(r.photos, id)
	return nil
}

func (r *PhotoRepository) UpdateCaption(ctx context.Context, id, caption string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	p, ok := r.photos[id]
	if !ok {
		return errors.NotFound("Photo", nil)
	}
	p.Caption = caption
	return nil
}

func (r *PhotoRepository) Mutate(ctx context.Context, id string, fn repository.MutateFunc) (*entity.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.UpdateErr != nil {
		return nil, r.UpdateErr
	}
	p, ok := r.photos[id]
	if !ok {
		return nil, errors.NotFound("Photo", nil)
	}

	working := p.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.photos[id] = working
	return working.Clone(), nil
}

// Get returns the stored photo without copying, or nil.
func (r *PhotoRepository) Get(id string) *entity.Photo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.photos[id]
}

func (r *PhotoRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.photos)
}
