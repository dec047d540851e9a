package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/edutube/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3001")
//	-g string   gRPC health bind address
//	-l string   log level (debug, info, warn, error)
//	-k string   YouTube Data API key
//	-s string   storage provider (s3, minio)
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-r string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-t int      upload URL validity, minutes
//	-m string   metadata store (file, sqlite, postgres, redis)
//	-f string   metadata file path (file and sqlite stores)
//	-d string   PostgreSQL DSN
//	-i string   Redis URL
//
// Only the flags above are picked out of args, so -c and any unknown flags
// pass through untouched.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-l", "-k", "-s", "-u", "-p", "-b", "-r", "-e", "-t", "-m", "-f", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "HTTP address and port to run server")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "gRPC health address and port")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.YouTubeAPIKey, "k", config.YouTubeAPIKey, "YouTube Data API key")
	fs.StringVar(&config.StorageProvider, "s", config.StorageProvider, "storage provider (s3, minio)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	uploadURLExpiry := fs.Int("t", int(config.UploadURLExpiry.Minutes()), "upload URL validity (in minutes)")

	fs.StringVar(&config.MetadataStore, "m", config.MetadataStore, "metadata store (file, sqlite, postgres, redis)")
	fs.StringVar(&config.MetadataPath, "f", config.MetadataPath, "metadata file path")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "i", config.RedisURL, "redis URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t overrides the expiry.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.UploadURLExpiry = time.Duration(*uploadURLExpiry) * time.Minute
		}
	})
}
