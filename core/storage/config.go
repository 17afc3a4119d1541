package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `setting:"STORAGE_ENDPOINT" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `setting:"STORAGE_ACCESS_KEY" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `setting:"STORAGE_SECRET_KEY" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `setting:"STORAGE_USE_SSL" default:"false"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `setting:"STORAGE_REGION" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `setting:"STORAGE_TIMEOUT_SECONDS" default:"30" validate:"min=0"`
}
