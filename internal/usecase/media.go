package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/service"
)

const octetStream = "application/octet-stream"

// loadMedia fetches a photo's bytes and works out their MIME type: the stored
// content type first, then content sniffing.
func loadMedia(ctx context.Context, blobs service.BlobStorage, photo *entity.Photo) ([]byte, string, error) {
	data, contentType, err := blobs.DownloadFile(ctx, photo.ImageURL)
	if err != nil {
		return nil, "", err
	}
	return data, resolveContentType(contentType, data), nil
}

// resolveContentType keeps a declared type unless it is missing or generic.
func resolveContentType(declared string, data []byte) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if i := strings.Index(declared, ";"); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if declared != "" && declared != octetStream {
		return declared
	}
	if len(data) == 0 {
		return octetStream
	}

	detected := mimetype.Detect(data).String()
	if i := strings.Index(detected, ";"); i >= 0 {
		detected = detected[:i]
	}
	return detected
}

// fileExtension prefers the uploaded name's extension, then the canonical one for the type.
func fileExtension(originalName, contentType string) string {
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(originalName)), "."); ext != "" {
		return ext
	}
	if m := mimetype.Lookup(contentType); m != nil && m.Extension() != "" {
		return strings.TrimPrefix(m.Extension(), ".")
	}
	if entity.IsVideoMIME(contentType) {
		return "mp4"
	}
	return "jpg"
}

func mediaTypeFor(contentType string) entity.MediaType {
	if entity.IsVideoMIME(contentType) {
		return entity.MediaTypeVideo
	}
	return entity.MediaTypeImage
}
