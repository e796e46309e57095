package testsupport

import (
	"context"
	"fmt"
	"io"
	"sync"

	"eliavigram/internal/domain/service"
)

type blob struct {
	data        []byte
	contentType string
}

// BlobStorage keeps objects in memory under https://blobs.test/<objectName>.
type BlobStorage struct {
	mu    sync.Mutex
	blobs map[string]blob

	UploadErr   error
	DownloadErr error
	DeleteErr   error

	Deleted []string
}

var _ service.BlobStorage = (*BlobStorage)(nil)

func NewBlobStorage() *BlobStorage {
	return &BlobStorage{blobs: make(map[string]blob)}
}

// Put stores data directly and returns its URL.
func (s *BlobStorage) Put(objectName, contentType string, data []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	url := "https://blobs.test/" + objectName
	s.blobs[url] = blob{data: data, contentType: contentType}
	return url
}

func (s *BlobStorage) UploadFile(ctx context.Context, file io.Reader, contentType, objectName string) (string, error) {
	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return s.Put(objectName, contentType, data), nil
}

func (s *BlobStorage) DownloadFile(ctx context.Context, fileURL string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DownloadErr != nil {
		return nil, "", s.DownloadErr
	}
	b, ok := s.blobs[fileURL]
	if !ok {
		return nil, "", fmt.Errorf("object %s not found", fileURL)
	}
	return b.data, b.contentType, nil
}

func (s *BlobStorage) DeleteFile(ctx context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.blobs, fileURL)
	s.Deleted = append(s.Deleted, fileURL)
	return nil
}

func (s *BlobStorage) Close() error {
	return nil
}

func (s *BlobStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
