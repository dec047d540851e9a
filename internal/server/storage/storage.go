// Package storage issues time-limited write URLs for object storage and
// removes objects. Two providers are supported: any S3 endpoint through
// aws-sdk-go-v2, and MinIO through minio-go.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ObjectStorage is what the upload broker needs from a provider.
type ObjectStorage interface {
	// PresignPut returns a URL allowing a single PUT of key with the given
	// Content-Type until expiry elapses.
	PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)

	// Delete removes key. Removing a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL is the read location of key.
	PublicURL(key string) string
}

// Options holds provider settings shared by both implementations.
type Options struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// publicBase picks the host used for public URLs: an explicit base, the
// configured endpoint, or the regional AWS host.
func (o Options) publicBase() string {
	switch {
	case o.PublicBaseURL != "":
		return strings.TrimRight(o.PublicBaseURL, "/")
	case o.Endpoint != "":
		return strings.TrimRight(o.Endpoint, "/")
	default:
		return fmt.Sprintf("https://s3.%s.amazonaws.com", o.Region)
	}
}

// publicURL renders {base}/{bucket}/{key}. The key is kept verbatim so the
// URL always contains the stored object key.
func publicURL(base, bucket, key string) string {
	return base + "/" + bucket + "/" + key
}
