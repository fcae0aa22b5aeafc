package storage

import (
	"context"
	"io"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorageRepository struct {
	client     *minio.Client
	bucketName string
}

func NewMinioStorageRepository(client *minio.Client, bucketName string) contracts.StorageRepository {
	return &minioStorageRepository{
		client:     client,
		bucketName: bucketName,
	}
}

func (s *minioStorageRepository) Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioUpload(err)
	}
	return nil
}

func (s *minioStorageRepository) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresign(err)
	}
	return presignedURL.String(), nil
}
