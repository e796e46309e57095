package usecase

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/presentation"
	"eliavigram/internal/domain/repository"
)

type GalleryItem struct {
	*entity.Photo
	Layout presentation.Layout `json:"layout"`
	IsNew  bool                `json:"isNew"`
}

type Gallery struct {
	Photos      []GalleryItem `json:"photos"`
	UnseenCount int           `json:"unseenCount"`
}

type FeedEntry struct {
	Comment  entity.Comment `json:"comment"`
	PhotoID  string         `json:"photoId"`
	ImageURL string         `json:"imageUrl"`
}

type GalleryUseCase struct {
	photoRepo repository.PhotoRepository
	mu        sync.Mutex
	rng       *rand.Rand
}

func NewGalleryUseCase(photoRepo repository.PhotoRepository, rng *rand.Rand) *GalleryUseCase {
	return &GalleryUseCase{
		photoRepo: photoRepo,
		rng:       rng,
	}
}

// Load returns the photos in viewing order with their polaroid placement.
func (uc *GalleryUseCase) Load(ctx context.Context, seen presentation.SeenTracker) (*Gallery, error) {
	photos, err := uc.photoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	ordered := presentation.Order(photos, seen, uc.rng)
	uc.mu.Unlock()

	gallery := &Gallery{Photos: make([]GalleryItem, 0, len(ordered))}
	for i, p := range ordered {
		isNew := seen == nil || !seen.IsSeen(p.ID)
		if isNew {
			gallery.UnseenCount++
		}
		gallery.Photos = append(gallery.Photos, GalleryItem{
			Photo:  p,
			Layout: presentation.LayoutFor(p.ID, i),
			IsNew:  isNew,
		})
	}
	return gallery, nil
}

// CommentsFeed lists every comment across all photos, newest first. Comments
// without a readable timestamp go last.
func (uc *GalleryUseCase) CommentsFeed(ctx context.Context) ([]FeedEntry, error) {
	photos, err := uc.photoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	feed := []FeedEntry{}
	for _, p := range photos {
		for _, c := range p.AllComments() {
			feed = append(feed, FeedEntry{Comment: c, PhotoID: p.ID, ImageURL: p.ImageURL})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Comment.CreatedTime().After(feed[j].Comment.CreatedTime())
	})
	return feed, nil
}
