package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvEndpointAddrGRPC = "DIARY_GRPC_ADDR"
	EnvDatabaseDSN      = "DIARY_DATABASE_DSN"
	EnvS3RootUser       = "DIARY_S3_USER"
	EnvS3RootPassword   = "DIARY_S3_PASSWORD"
	EnvS3Bucket         = "DIARY_S3_BUCKET"
	EnvS3Region         = "DIARY_S3_REGION"
	EnvS3BaseEndpoint   = "DIARY_S3_ENDPOINT"
	EnvImageURLExpiry   = "DIARY_IMAGE_URL_EXPIRY"
)

// envFile is loaded when present. Variables already set in the process
// environment take precedence over the file.
var envFile = ".env"

// parseEnv overlays DIARY_* variables. A malformed duration panics, like a
// malformed config file or flag.
func parseEnv(config *Config) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	setString(&config.EndpointAddrGRPC, EnvEndpointAddrGRPC)
	setString(&config.DatabaseDSN, EnvDatabaseDSN)
	setString(&config.S3RootUser, EnvS3RootUser)
	setString(&config.S3RootPassword, EnvS3RootPassword)
	setString(&config.S3Bucket, EnvS3Bucket)
	setString(&config.S3Region, EnvS3Region)
	setString(&config.S3BaseEndpoint, EnvS3BaseEndpoint)

	if v, ok := os.LookupEnv(EnvImageURLExpiry); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ImageURLExpiry = d
	}
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
