package usecase

import (
	"context"

	lru "github.com/hashicorp/golang-lru"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/repository"
	"eliavigram/internal/domain/service"
	"eliavigram/internal/domain/similarity"
	"eliavigram/pkg/errors"
	"eliavigram/pkg/logger"
)

type SimilarityOptions struct {
	CandidateLimit int
	TopK           int
	Threshold      float64
	CacheSize      int
}

func DefaultSimilarityOptions() SimilarityOptions {
	return SimilarityOptions{
		CandidateLimit: 10,
		TopK:           4,
		Threshold:      0.1,
		CacheSize:      256,
	}
}

type SimilarityUseCase struct {
	photoRepo repository.PhotoRepository
	blobs     service.BlobStorage
	captions  *CaptionGenerator
	opts      SimilarityOptions
	// keywords memoizes keyword sets by photo id; blobs never change after upload.
	keywords *lru.Cache
}

func NewSimilarityUseCase(
	photoRepo repository.PhotoRepository,
	blobs service.BlobStorage,
	captions *CaptionGenerator,
	opts SimilarityOptions,
) (*SimilarityUseCase, error) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultSimilarityOptions().CacheSize
	}
	cache, err := lru.New(opts.CacheSize)
	if err != nil {
		return nil, err
	}

	return &SimilarityUseCase{
		photoRepo: photoRepo,
		blobs:     blobs,
		captions:  captions,
		opts:      opts,
		keywords:  cache,
	}, nil
}

// FindSimilar ranks other images by keyword overlap with the target photo.
func (uc *SimilarityUseCase) FindSimilar(ctx context.Context, photoID string) (*entity.SimilarResult, error) {
	photos, err := uc.photoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var target *entity.Photo
	for _, p := range photos {
		if p.ID == photoID {
			target = p
			break
		}
	}
	if target == nil {
		return nil, errors.NotFound("Photo", nil)
	}

	if target.IsVideo() {
		return &entity.SimilarResult{
			Similar:  []entity.SimilarPhoto{},
			Keywords: []string{},
			Message:  "Videos not supported",
		}, nil
	}

	targetKeywords := uc.keywordsFor(ctx, target)
	if len(targetKeywords) == 0 {
		return &entity.SimilarResult{
			Similar:  []entity.SimilarPhoto{},
			Keywords: []string{},
		}, nil
	}

	byID := make(map[string]*entity.Photo)
	var candidates []similarity.Candidate
	for _, p := range photos {
		if len(byID) >= uc.opts.CandidateLimit {
			break
		}
		if p.ID == photoID || p.IsVideo() {
			continue
		}
		byID[p.ID] = p

		keywords := uc.keywordsFor(ctx, p)
		if len(keywords) == 0 {
			continue
		}
		candidates = append(candidates, similarity.Candidate{ID: p.ID, Keywords: keywords})
	}

	matches := similarity.Rank(targetKeywords, candidates, uc.opts.TopK, uc.opts.Threshold)

	result := &entity.SimilarResult{
		Similar:  make([]entity.SimilarPhoto, 0, len(matches)),
		Keywords: targetKeywords,
	}
	for _, m := range matches {
		result.Similar = append(result.Similar, entity.SimilarPhoto{
			Photo:           *byID[m.ID],
			SimilarityScore: m.Percent,
		})
	}
	return result, nil
}

func (uc *SimilarityUseCase) keywordsFor(ctx context.Context, photo *entity.Photo) []string {
	if cached, ok := uc.keywords.Get(photo.ID); ok {
		return cached.([]string)
	}

	data, mimeType, err := loadMedia(ctx, uc.blobs, photo)
	if err != nil {
		logger.LogPhotoError(photo.ID, "similar_download", err)
		return nil
	}

	keywords := uc.captions.GenerateKeywords(ctx, data, mimeType)
	if len(keywords) > 0 {
		uc.keywords.Add(photo.ID, keywords)
	}
	return keywords
}
