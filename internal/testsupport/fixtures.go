package testsupport

import "eliavigram/internal/domain/entity"

// Image builds a stored image photo whose blob is the given bytes.
func Image(blobs *BlobStorage, id, originalName, uploadedAt string, data []byte) *entity.Photo {
	return &entity.Photo{
		ID:           id,
		Filename:     id + ".jpg",
		OriginalName: originalName,
		MediaType:    entity.MediaTypeImage,
		UploadedAt:   uploadedAt,
		ImageURL:     blobs.Put("photos/"+id+".jpg", "image/jpeg", data),
		Comments:     []entity.Comment{},
		Likes:        []entity.Like{},
	}
}

// Video builds a stored video photo.
func Video(blobs *BlobStorage, id, originalName, uploadedAt string) *entity.Photo {
	return &entity.Photo{
		ID:           id,
		Filename:     id + ".mp4",
		OriginalName: originalName,
		MediaType:    entity.MediaTypeVideo,
		UploadedAt:   uploadedAt,
		ImageURL:     blobs.Put("photos/"+id+".mp4", "video/mp4", []byte("video-"+id)),
		Comments:     []entity.Comment{},
		Likes:        []entity.Like{},
	}
}
