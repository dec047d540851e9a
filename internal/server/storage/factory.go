package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/edutube/internal/server/config"
)

// New builds the provider selected by cfg.StorageProvider.
func New(ctx context.Context, cfg *config.Config) (ObjectStorage, error) {
	opts := Options{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3BaseEndpoint,
		AccessKey:     cfg.S3RootUser,
		SecretKey:     cfg.S3RootPassword,
		PublicBaseURL: cfg.S3PublicBaseURL,
	}

	switch cfg.StorageProvider {
	case config.StorageS3, "":
		return NewS3Storage(ctx, opts)
	case config.StorageMinio:
		return NewMinioStorage(opts)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}
