package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ObjectPutter is the subset of *minio.Client used here.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinioUploader writes objects to one bucket and returns their public URL,
// <publicBaseURL>/<bucket>/<key>.
type MinioUploader struct {
	client        ObjectPutter
	bucket        string
	publicBaseURL string
}

func NewMinioUploader(client ObjectPutter, bucket, publicBaseURL string) *MinioUploader {
	return &MinioUploader{client: client, bucket: bucket, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (u *MinioUploader) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := u.client.PutObject(ctx, u.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, u.bucket, err)
	}
	return fmt.Sprintf("%s/%s/%s", u.publicBaseURL, u.bucket, key), nil
}
