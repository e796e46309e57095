package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/repository"
	"eliavigram/pkg/errors"
	"eliavigram/pkg/logger"
)

type firestorePhotoRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestorePhotoRepository(client *firestore.Client, collection string) repository.PhotoRepository {
	if collection == "" {
		collection = "photos"
	}
	return &firestorePhotoRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestorePhotoRepository) photos() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *firestorePhotoRepository) List(ctx context.Context) ([]*entity.Photo, error) {
	photos, err := r.readAll(ctx, r.photos().OrderBy("uploadedAt", firestore.Desc))
	if err == nil {
		return photos, nil
	}

	// Ordering needs an index that older projects may lack; sort in memory instead.
	logger.Warn("Ordered photo query failed, falling back to unordered read: %v", err)
	photos, err = r.readAll(ctx, r.photos().Query)
	if err != nil {
		return nil, errors.Internal("Failed to list photos", err)
	}

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].UploadedTime().After(photos[j].UploadedTime())
	})
	return photos, nil
}

func (r *firestorePhotoRepository) readAll(ctx context.Context, query firestore.Query) ([]*entity.Photo, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	photos := []*entity.Photo{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		photo, err := entity.NormalizePhoto(doc.Ref.ID, doc.Data())
		if err != nil {
			logger.Error("Failed to parse photo %s: %v", doc.Ref.ID, err)
			continue
		}
		photos = append(photos, photo)
	}

	return photos, nil
}

func (r *firestorePhotoRepository) GetByID(ctx context.Context, id string) (*entity.Photo, error) {
	doc, err := r.photos().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Photo", err)
		}
		return nil, errors.Internal("Failed to get photo", err)
	}

	photo, err := entity.NormalizePhoto(doc.Ref.ID, doc.Data())
	if err != nil {
		return nil, errors.Internal("Failed to parse photo data", err)
	}

	return photo, nil
}

func (r *firestorePhotoRepository) ExistsByOriginalName(ctx context.Context, originalName string) (bool, error) {
	iter := r.photos().Where("originalName", "==", originalName).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to query photos by name", err)
	}
	return true, nil
}

func (r *firestorePhotoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	if photo.Comments == nil {
		photo.Comments = []entity.Comment{}
	}
	if photo.Likes == nil {
		photo.Likes = []entity.Like{}
	}

	_, err := r.photos().Doc(photo.ID).Create(ctx, photo.Document())
	if err != nil {
		return errors.Internal("Failed to create photo", err)
	}
	return nil
}

func (r *firestorePhotoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.photos().Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Photo", err)
		}
		return errors.Internal("Failed to delete photo", err)
	}
	return nil
}

func (r *firestorePhotoRepository) UpdateCaption(ctx context.Context, id, caption string) error {
	_, err := r.photos().Doc(id).Update(ctx, []firestore.Update{
		{Path: "caption", Value: caption},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Photo", err)
		}
		return errors.Internal("Failed to update caption", err)
	}
	return nil
}

// Mutate runs fn inside a Firestore transaction, so concurrent likes and comments on
// the same photo are retried instead of overwriting each other.
func (r *firestorePhotoRepository) Mutate(ctx context.Context, id string, fn repository.MutateFunc) (*entity.Photo, error) {
	var updated *entity.Photo

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.photos().Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Photo", err)
			}
			return err
		}

		photo, err := entity.NormalizePhoto(doc.Ref.ID, doc.Data())
		if err != nil {
			return err
		}

		if err := fn(photo); err != nil {
			return err
		}

		updates := []firestore.Update{
			{Path: "caption", Value: photo.Caption},
			{Path: "comments", Value: photo.Comments},
			{Path: "likes", Value: photo.Likes},
		}
		if photo.Comment != nil {
			updates = append(updates, firestore.Update{Path: "comment", Value: photo.Comment})
		}

		updated = photo
		return tx.Update(docRef, updates)
	})

	if err != nil {
		var appErr *errors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to update photo", err)
	}

	return updated, nil
}

// PingFirestore reads at most one document to confirm the store is reachable.
func PingFirestore(ctx context.Context, client *firestore.Client, collection string) error {
	iter := client.Collection(collection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}
