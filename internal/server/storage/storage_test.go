package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/edutube/internal/server/config"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		key  string
		want string
	}{
		{
			name: "explicit public base",
			opts: Options{Bucket: "videos", Endpoint: "http://minio:9000", PublicBaseURL: "https://storage.googleapis.com/"},
			key:  "uploads/abc-lecture.mp4",
			want: "https://storage.googleapis.com/videos/uploads/abc-lecture.mp4",
		},
		{
			name: "endpoint fallback",
			opts: Options{Bucket: "videos", Endpoint: "http://127.0.0.1:9000/"},
			key:  "uploads/abc-lecture.mp4",
			want: "http://127.0.0.1:9000/videos/uploads/abc-lecture.mp4",
		},
		{
			name: "aws regional host",
			opts: Options{Bucket: "videos", Region: "eu-west-1"},
			key:  "uploads/abc-lecture.mp4",
			want: "https://s3.eu-west-1.amazonaws.com/videos/uploads/abc-lecture.mp4",
		},
		{
			name: "key with spaces kept verbatim",
			opts: Options{Bucket: "videos", PublicBaseURL: "https://storage.googleapis.com"},
			key:  "uploads/abc-my lecture.mp4",
			want: "https://storage.googleapis.com/videos/uploads/abc-my lecture.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := publicURL(tt.opts.publicBase(), tt.opts.Bucket, tt.key)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, got, tt.key)
		})
	}
}

func TestNew(t *testing.T) {
	base := func() *config.Config {
		var c config.Config
		c.LoadDefaults()
		return &c
	}

	t.Run("s3", func(t *testing.T) {
		s, err := New(context.Background(), base())
		require.NoError(t, err)
		assert.IsType(t, &S3Storage{}, s)
	})

	t.Run("minio", func(t *testing.T) {
		c := base()
		c.StorageProvider = config.StorageMinio
		s, err := New(context.Background(), c)
		require.NoError(t, err)
		assert.IsType(t, &MinioStorage{}, s)
	})

	t.Run("minio bad endpoint", func(t *testing.T) {
		c := base()
		c.StorageProvider = config.StorageMinio
		c.S3BaseEndpoint = "not a url"
		_, err := New(context.Background(), c)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		c := base()
		c.StorageProvider = "gcs"
		_, err := New(context.Background(), c)
		assert.ErrorContains(t, err, "gcs")
	})
}
