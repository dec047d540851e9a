package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. EDUTUBE_S3_BUCKET.
const EnvPrefix = "EDUTUBE"

func parseEnv(config *Config) {
	parseEnvFrom(viper.New(), config)
}

// parseEnvFrom overlays config with the environment variables that are set.
// Unset variables leave the current value untouched.
func parseEnvFrom(v *viper.Viper, config *Config) {
	v.SetEnvPrefix(EnvPrefix)

	set := func(key string) bool {
		_ = v.BindEnv(key)
		return v.IsSet(key)
	}

	if set("http_addr") {
		config.HTTPAddr = v.GetString("http_addr")
	}
	if set("grpc_addr") {
		config.GRPCAddr = v.GetString("grpc_addr")
	}
	if set("log_level") {
		config.LogLevel = v.GetString("log_level")
	}
	if set("allowed_origins") {
		config.AllowedOrigins = splitList(v.GetString("allowed_origins"))
	}
	if set("youtube_api_key") {
		config.YouTubeAPIKey = v.GetString("youtube_api_key")
	}
	if set("youtube_base_url") {
		config.YouTubeBaseURL = v.GetString("youtube_base_url")
	}
	if set("youtube_timeout") {
		config.YouTubeTimeout = v.GetDuration("youtube_timeout")
	}
	if set("youtube_rate_limit") {
		config.YouTubeRateLimit = v.GetFloat64("youtube_rate_limit")
	}
	if set("storage_provider") {
		config.StorageProvider = v.GetString("storage_provider")
	}
	if set("s3_root_user") {
		config.S3RootUser = v.GetString("s3_root_user")
	}
	if set("s3_root_password") {
		config.S3RootPassword = v.GetString("s3_root_password")
	}
	if set("s3_bucket") {
		config.S3Bucket = v.GetString("s3_bucket")
	}
	if set("s3_region") {
		config.S3Region = v.GetString("s3_region")
	}
	if set("s3_base_endpoint") {
		config.S3BaseEndpoint = v.GetString("s3_base_endpoint")
	}
	if set("s3_public_base_url") {
		config.S3PublicBaseURL = v.GetString("s3_public_base_url")
	}
	if set("upload_url_expiry") {
		config.UploadURLExpiry = v.GetDuration("upload_url_expiry")
	}
	if set("max_upload_size") {
		config.MaxUploadSize = v.GetInt64("max_upload_size")
	}
	if set("metadata_store") {
		config.MetadataStore = v.GetString("metadata_store")
	}
	if set("metadata_path") {
		config.MetadataPath = v.GetString("metadata_path")
	}
	if set("database_dsn") {
		config.DatabaseDSN = v.GetString("database_dsn")
	}
	if set("redis_url") {
		config.RedisURL = v.GetString("redis_url")
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
