package storage

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/exceptions"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type letterStorage struct {
	client     *minio.Client
	bucketName string
}

func NewLetterStorage(client *minio.Client, bucketName string) contracts.LetterStorage {
	return &letterStorage{client: client, bucketName: bucketName}
}

func (s *letterStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.bucketName)
	}
	return nil
}

func (s *letterStorage) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, s.bucketName)
	}
	return presignedURL.String(), nil
}
