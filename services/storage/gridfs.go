package storage

import (
	"fmt"
	"io"

	"evermore/database"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageStore stores and retrieves memory photo blobs.
type ImageStore interface {
	Upload(filename string, r io.Reader) (string, error)
	Download(fileID string, w io.Writer) (int64, error)
	Delete(fileID string) error
}

// Ensure GridFSImageStore implements ImageStore
var _ ImageStore = (*GridFSImageStore)(nil)

// GridFSImageStore keeps photo blobs in the same Mongo deployment as the
// documents that reference them.
type GridFSImageStore struct{}

func NewGridFSImageStore() *GridFSImageStore {
	return &GridFSImageStore{}
}

// Upload streams a blob into the bucket and returns its file ID as a hex
// object id string.
func (s *GridFSImageStore) Upload(filename string, r io.Reader) (string, error) {
	bucket, err := database.ImageBucket()
	if err != nil {
		return "", err
	}
	id, err := bucket.UploadFromStream(filename, r)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return id.Hex(), nil
}

// Download streams a blob out of the bucket by file ID.
func (s *GridFSImageStore) Download(fileID string, w io.Writer) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return 0, fmt.Errorf("invalid image id %s: %w", fileID, err)
	}
	bucket, err := database.ImageBucket()
	if err != nil {
		return 0, err
	}
	n, err := bucket.DownloadToStream(oid, w)
	if err != nil {
		return 0, fmt.Errorf("failed to download image %s: %w", fileID, err)
	}
	return n, nil
}

// Delete removes a blob from the bucket.
func (s *GridFSImageStore) Delete(fileID string) error {
	oid, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid image id %s: %w", fileID, err)
	}
	bucket, err := database.ImageBucket()
	if err != nil {
		return err
	}
	if err := bucket.Delete(oid); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", fileID, err)
	}
	return nil
}
