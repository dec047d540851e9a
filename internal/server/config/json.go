package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/edutube/internal/flagx"
	"github.com/dmitrijs2005/edutube/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations go through
// timex.Duration so "15m" and integer nanoseconds are both accepted.
type JsonConfig struct {
	HTTPAddr         string         `json:"http_addr"`
	GRPCAddr         string         `json:"grpc_addr"`
	LogLevel         string         `json:"log_level"`
	AllowedOrigins   []string       `json:"allowed_origins"`
	YouTubeAPIKey    string         `json:"youtube_api_key"`
	YouTubeBaseURL   string         `json:"youtube_base_url"`
	YouTubeTimeout   timex.Duration `json:"youtube_timeout"`
	YouTubeRateLimit float64        `json:"youtube_rate_limit"`
	StorageProvider  string         `json:"storage_provider"`
	S3RootUser       string         `json:"s3_root_user"`
	S3RootPassword   string         `json:"s3_root_password"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
	S3PublicBaseURL  string         `json:"s3_public_base_url"`
	UploadURLExpiry  timex.Duration `json:"upload_url_expiry"`
	MaxUploadSize    int64          `json:"max_upload_size"`
	MetadataStore    string         `json:"metadata_store"`
	MetadataPath     string         `json:"metadata_path"`
	DatabaseDSN      string         `json:"database_dsn"`
	RedisURL         string         `json:"redis_url"`
}

// parseJson overlays config with the JSON file named by -c / -config.
//
// Keys missing from the file keep their current values. Without a config
// flag nothing happens. An unreadable file or invalid JSON panics: a broken
// config file is a deployment error, not something to run with.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := toJson(config)
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	config.HTTPAddr = c.HTTPAddr
	config.GRPCAddr = c.GRPCAddr
	config.LogLevel = c.LogLevel
	config.AllowedOrigins = c.AllowedOrigins
	config.YouTubeAPIKey = c.YouTubeAPIKey
	config.YouTubeBaseURL = c.YouTubeBaseURL
	config.YouTubeTimeout = c.YouTubeTimeout.Duration
	config.YouTubeRateLimit = c.YouTubeRateLimit
	config.StorageProvider = c.StorageProvider
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.S3PublicBaseURL = c.S3PublicBaseURL
	config.UploadURLExpiry = c.UploadURLExpiry.Duration
	config.MaxUploadSize = c.MaxUploadSize
	config.MetadataStore = c.MetadataStore
	config.MetadataPath = c.MetadataPath
	config.DatabaseDSN = c.DatabaseDSN
	config.RedisURL = c.RedisURL
}

func toJson(config *Config) *JsonConfig {
	return &JsonConfig{
		HTTPAddr:         config.HTTPAddr,
		GRPCAddr:         config.GRPCAddr,
		LogLevel:         config.LogLevel,
		AllowedOrigins:   config.AllowedOrigins,
		YouTubeAPIKey:    config.YouTubeAPIKey,
		YouTubeBaseURL:   config.YouTubeBaseURL,
		YouTubeTimeout:   timex.Duration{Duration: config.YouTubeTimeout},
		YouTubeRateLimit: config.YouTubeRateLimit,
		StorageProvider:  config.StorageProvider,
		S3RootUser:       config.S3RootUser,
		S3RootPassword:   config.S3RootPassword,
		S3Bucket:         config.S3Bucket,
		S3Region:         config.S3Region,
		S3BaseEndpoint:   config.S3BaseEndpoint,
		S3PublicBaseURL:  config.S3PublicBaseURL,
		UploadURLExpiry:  timex.Duration{Duration: config.UploadURLExpiry},
		MaxUploadSize:    config.MaxUploadSize,
		MetadataStore:    config.MetadataStore,
		MetadataPath:     config.MetadataPath,
		DatabaseDSN:      config.DatabaseDSN,
		RedisURL:         config.RedisURL,
	}
}
