package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3001", c.HTTPAddr)
	assert.Equal(t, ":50051", c.GRPCAddr)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, YouTubeKeyPlaceholder, c.YouTubeAPIKey)
	assert.Equal(t, "https://www.googleapis.com/youtube/v3", c.YouTubeBaseURL)
	assert.Equal(t, 10*time.Second, c.YouTubeTimeout)
	assert.Equal(t, StorageS3, c.StorageProvider)
	assert.Equal(t, "edutube-videos", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, 15*time.Minute, c.UploadURLExpiry)
	assert.Equal(t, int64(100<<20), c.MaxUploadSize)
	assert.Equal(t, MetadataFile, c.MetadataStore)
	assert.Equal(t, "./videos.json", c.MetadataPath)
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}

	c := LoadConfig()
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"http_addr":      ":7000",
		"s3_bucket":      "from-json",
		"s3_region":      "eu-central-1",
		"log_level":      "debug",
		"redis_url":      "redis://json:6379/1",
		"grpc_addr":      ":7001",
		"metadata_store": "sqlite",
	})

	t.Setenv("EDUTUBE_S3_BUCKET", "from-env")
	t.Setenv("EDUTUBE_REDIS_URL", "redis://env:6379/2")

	os.Args = []string{"server", "-c", path, "-b", "from-flag"}

	c := LoadConfig()

	assert.Equal(t, ":7000", c.HTTPAddr)
	assert.Equal(t, ":7001", c.GRPCAddr)
	assert.Equal(t, "eu-central-1", c.S3Region)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "sqlite", c.MetadataStore)
	assert.Equal(t, "redis://env:6379/2", c.RedisURL)
	assert.Equal(t, "from-flag", c.S3Bucket)
}
