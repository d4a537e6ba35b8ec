// Package storage uploads files to a Google Cloud Storage bucket and hands
// back their public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	gcs "cloud.google.com/go/storage"
)

// Uploader is the narrow object-store interface the service depends on.
type Uploader interface {
	UploadFile(ctx context.Context, localPath, destName string) (string, error)
}

// GCSUploader implements Uploader against one bucket.
type GCSUploader struct {
	client *gcs.Client
	bucket string
	log    *slog.Logger
}

func NewGCSUploader(ctx context.Context, bucketName string, logger *slog.Logger) (*GCSUploader, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSUploader{client: client, bucket: bucketName, log: logger}, nil
}

// Close releases the underlying client.
func (u *GCSUploader) Close() error {
	return u.client.Close()
}

// UploadFile copies a local file into the bucket under destName and returns
// the standard storage URL (public given bucket IAM).
func (u *GCSUploader) UploadFile(ctx context.Context, localPath, destName string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", filepath.Base(localPath), err)
	}
	defer f.Close()

	w := u.client.Bucket(u.bucket).Object(destName).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", destName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", destName, err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, destName)
	u.log.Info("storage.upload.ok", "bucket", u.bucket, "object", destName)
	return url, nil
}
