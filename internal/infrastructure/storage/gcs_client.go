package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const (
	gcsHost      = "storage.googleapis.com"
	firebaseHost = "firebasestorage.googleapis.com"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	publicRead bool
}

func NewCloudStorageClient(ctx context.Context, bucketName string, publicRead bool, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		publicRead: publicRead,
	}, nil
}

func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, contentType, objectName string) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=31536000, immutable"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if c.publicRead {
		if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
			return "", fmt.Errorf("failed to set ACL: %v", err)
		}
	}

	return PublicURL(c.bucketName, objectName), nil
}

func (c *CloudStorageClient) DownloadFile(ctx context.Context, fileURL string) ([]byte, string, error) {
	objectName, err := ObjectNameFromURL(fileURL, c.bucketName)
	if err != nil {
		return nil, "", err
	}

	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %v", objectName, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %v", objectName, err)
	}

	return data, rc.Attrs.ContentType, nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	objectName, err := ObjectNameFromURL(fileURL, c.bucketName)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func PublicURL(bucketName, objectName string) string {
	return fmt.Sprintf("https://%s/%s/%s", gcsHost, bucketName, objectName)
}

// ObjectNameFromURL accepts both plain GCS URLs
// (https://storage.googleapis.com/<bucket>/<object>) and the Firebase download
// URLs written by older clients
// (https://firebasestorage.googleapis.com/v0/b/<bucket>/o/<escaped object>?alt=media).
func ObjectNameFromURL(fileURL, bucketName string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("invalid storage URL: %v", err)
	}

	var bucket, object string
	switch u.Host {
	case gcsHost:
		parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid GCS URL format")
		}
		bucket, object = parts[0], parts[1]
	case firebaseHost:
		parts := strings.SplitN(strings.TrimPrefix(u.EscapedPath(), "/v0/b/"), "/o/", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid Firebase storage URL format")
		}
		bucket = parts[0]
		object, err = url.PathUnescape(parts[1])
		if err != nil {
			return "", fmt.Errorf("invalid Firebase storage URL: %v", err)
		}
	default:
		return "", fmt.Errorf("unsupported storage host %q", u.Host)
	}

	if bucket != bucketName {
		return "", fmt.Errorf("bucket mismatch: %s", bucket)
	}
	if object == "" {
		return "", fmt.Errorf("storage URL has no object name")
	}
	return object, nil
}
