package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// StoredImage is what callers get back after an upload: the public URL to
// serve and the opaque handle needed to delete the object later.
type StoredImage struct {
	URL    string `json:"url"`
	Handle string `json:"handle"`
}

// ImageStore uploads card images into a MinIO bucket and deletes them by
// handle. Callers never see raw object storage details beyond StoredImage.
type ImageStore struct {
	client *minio.Client
	bucket string
}

// NewImageStore creates an ImageStore on top of the given MinIO client and bucket.
func NewImageStore(client *minio.Client, bucket string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket}
}

// Upload stores an image and returns its URL and deletion handle. The handle
// is the object key under the cards/ prefix.
func (s *ImageStore) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (*StoredImage, error) {
	key := fmt.Sprintf("cards/%s%s", uuid.New().String(), filepath.Ext(filename))
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload image")
	}
	return &StoredImage{
		URL:    fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key),
		Handle: key,
	}, nil
}

// Delete removes a previously uploaded image by its handle.
func (s *ImageStore) Delete(ctx context.Context, handle string) error {
	err := s.client.RemoveObject(ctx, s.bucket, handle, minio.RemoveObjectOptions{})
	return errors.Wrap(err, "failed to delete image")
}
