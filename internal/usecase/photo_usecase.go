package usecase

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/repository"
	"eliavigram/internal/domain/service"
	"eliavigram/pkg/errors"
	"eliavigram/pkg/logger"
)

const blobFolder = "photos"

type PhotoUseCase struct {
	photoRepo repository.PhotoRepository
	blobs     service.BlobStorage
	captions  *CaptionGenerator
	now       func() time.Time
	random    func() float64
}

func NewPhotoUseCase(
	photoRepo repository.PhotoRepository,
	blobs service.BlobStorage,
	captions *CaptionGenerator,
) *PhotoUseCase {
	return &PhotoUseCase{
		photoRepo: photoRepo,
		blobs:     blobs,
		captions:  captions,
		now:       time.Now,
		random:    rand.Float64,
	}
}

type UploadInput struct {
	OriginalName string
	ContentType  string
	Data         []byte
}

type UploadResult struct {
	Photo   *entity.Photo
	Skipped bool
}

func (uc *PhotoUseCase) ListPhotos(ctx context.Context) ([]*entity.Photo, error) {
	return uc.photoRepo.List(ctx)
}

// IsDuplicate reports whether a photo with exactly this original name exists.
// A failed lookup permits the upload.
func (uc *PhotoUseCase) IsDuplicate(ctx context.Context, originalName string) bool {
	exists, err := uc.photoRepo.ExistsByOriginalName(ctx, originalName)
	if err != nil {
		logger.Warn("Duplicate check for %q failed, allowing upload: %v", originalName, err)
		return false
	}
	return exists
}

func (uc *PhotoUseCase) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if input.OriginalName == "" || len(input.Data) == 0 {
		return nil, errors.BadRequest("No file provided", nil)
	}

	contentType := resolveContentType(input.ContentType, input.Data)
	if !entity.IsImageMIME(contentType) && !entity.IsVideoMIME(contentType) {
		return nil, errors.BadRequest("File must be an image or video", nil)
	}

	if uc.IsDuplicate(ctx, input.OriginalName) {
		logger.Info("Skipping duplicate upload %q", input.OriginalName)
		return &UploadResult{Skipped: true}, nil
	}

	filename := fmt.Sprintf("%s.%s", uuid.New().String(), fileExtension(input.OriginalName, contentType))
	imageURL, err := uc.blobs.UploadFile(ctx, bytes.NewReader(input.Data), contentType, blobFolder+"/"+filename)
	if err != nil {
		return nil, errors.Upstream("Failed to upload file", err)
	}

	photo := &entity.Photo{
		ID:           uuid.New().String(),
		Filename:     filename,
		OriginalName: input.OriginalName,
		MediaType:    mediaTypeFor(contentType),
		UploadedAt:   entity.Timestamp(uc.now()),
		Rotation:     (uc.random() - 0.5) * 8,
		ImageURL:     imageURL,
		Comments:     []entity.Comment{},
		Likes:        []entity.Like{},
	}

	if photo.MediaType == entity.MediaTypeImage {
		photo.Caption = uc.captions.GenerateCaption(ctx, input.Data, contentType)
	}

	if err := uc.photoRepo.Create(ctx, photo); err != nil {
		if delErr := uc.blobs.DeleteFile(ctx, imageURL); delErr != nil {
			logger.LogPhotoError(photo.ID, "cleanup_blob", delErr)
		}
		return nil, err
	}

	logger.Info("Uploaded %s %s as %s", photo.MediaType, photo.OriginalName, photo.ID)
	return &UploadResult{Photo: photo}, nil
}

// DeletePhoto removes the record; the blob is removed on a best-effort basis.
func (uc *PhotoUseCase) DeletePhoto(ctx context.Context, id string) error {
	photo, err := uc.photoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if photo.ImageURL != "" {
		if err := uc.blobs.DeleteFile(ctx, photo.ImageURL); err != nil {
			logger.LogPhotoError(id, "delete_blob", err)
		}
	}

	return uc.photoRepo.Delete(ctx, id)
}

func (uc *PhotoUseCase) UpdateCaption(ctx context.Context, id, caption string) error {
	return uc.photoRepo.UpdateCaption(ctx, id, strings.TrimSpace(caption))
}

type BackfillEntry struct {
	ID      string `json:"id"`
	Caption string `json:"caption"`
}

type BackfillReport struct {
	Message   string          `json:"message"`
	Processed int             `json:"processed"`
	Failed    int             `json:"failed"`
	Total     int             `json:"total"`
	Results   []BackfillEntry `json:"results"`
}

// BackfillCaptions captions every image that has none. Each photo is handled
// independently; a failure only counts against the report.
func (uc *PhotoUseCase) BackfillCaptions(ctx context.Context) (*BackfillReport, error) {
	photos, err := uc.photoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var pending []*entity.Photo
	for _, p := range photos {
		if p.Caption == "" && !p.IsVideo() {
			pending = append(pending, p)
		}
	}

	report := &BackfillReport{
		Total:   len(pending),
		Results: []BackfillEntry{},
	}
	if len(pending) == 0 {
		report.Message = "All photos already have captions"
		return report, nil
	}

	for _, p := range pending {
		data, mimeType, err := loadMedia(ctx, uc.blobs, p)
		if err != nil {
			logger.LogPhotoError(p.ID, "backfill_download", err)
			report.Failed++
			continue
		}

		caption := uc.captions.GenerateCaption(ctx, data, mimeType)
		if caption == "" {
			report.Failed++
			continue
		}

		if err := uc.photoRepo.UpdateCaption(ctx, p.ID, caption); err != nil {
			logger.LogPhotoError(p.ID, "backfill_update", err)
			report.Failed++
			continue
		}

		report.Processed++
		report.Results = append(report.Results, BackfillEntry{ID: p.ID, Caption: caption})
	}

	report.Message = fmt.Sprintf("Processed %d photos, %d failed", report.Processed, report.Failed)
	return report, nil
}
