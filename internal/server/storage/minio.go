package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioClient is the subset of *minio.Client used here.
type minioClient interface {
	PresignHeader(ctx context.Context, method, bucketName, objectName string, expires time.Duration, reqParams url.Values, extraHeaders http.Header) (*url.URL, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinioStorage talks to a MinIO server.
type MinioStorage struct {
	opts   Options
	client minioClient
}

// NewMinioStorage connects to the host in opts.Endpoint. TLS is used when
// the endpoint scheme is https.
func NewMinioStorage(opts Options) (*MinioStorage, error) {
	u, err := url.Parse(opts.Endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid minio endpoint %q", opts.Endpoint)
	}

	client, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: u.Scheme == "https",
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &MinioStorage{opts: opts, client: client}, nil
}

func (s *MinioStorage) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)

	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.opts.Bucket, key, expiry, nil, headers)
	if err != nil {
		return "", fmt.Errorf("presign put %s: %w", key, err)
	}
	return u.String(), nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.opts.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *MinioStorage) PublicURL(key string) string {
	return publicURL(s.opts.publicBase(), s.opts.Bucket, key)
}
