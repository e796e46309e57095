package service

import (
	"context"
	"io"
)

// BlobStorage holds the immutable media bytes referenced by photo records.
type BlobStorage interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, objectName string) (string, error)
	// DownloadFile returns the bytes behind a URL previously returned by UploadFile
	// together with the stored content type, which may be empty.
	DownloadFile(ctx context.Context, fileURL string) ([]byte, string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	Close() error
}
