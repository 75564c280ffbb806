package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const imageBucketName = "memory_images"

// ImageBucket returns the GridFS bucket used for memory photo blobs.
func ImageBucket() (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(DB(), options.GridFSBucket().SetName(imageBucketName))
	if err != nil {
		return nil, fmt.Errorf("failed to open image bucket: %w", err)
	}
	return bucket, nil
}
