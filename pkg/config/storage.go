package config

import "time"

// StorageConfig configures the S3-compatible object store used for
// attachments and workspace exports.
type StorageConfig struct {
	// Endpoint overrides the S3 endpoint (MinIO, localstack). Empty means AWS.
	Endpoint string

	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string

	// UsePathStyle forces path-style addressing, required by MinIO.
	UsePathStyle bool

	// PresignTTL is the lifetime of generated download URLs.
	PresignTTL time.Duration
}

// LoadStorageConfig reads object storage configuration from the environment.
func LoadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		Region:          getEnv("S3_REGION", "us-east-1"),
		Bucket:          getEnv("S3_BUCKET", "poco-agent"),
		AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		UsePathStyle:    getEnv("S3_USE_PATH_STYLE", "") == "true",
		PresignTTL:      getEnvDuration("S3_PRESIGN_TTL", 15*time.Minute),
	}
}
