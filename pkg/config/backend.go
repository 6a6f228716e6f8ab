package config

import "time"

// BackendConfig configures the backend API server.
type BackendConfig struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string

	// ManagerURL is the base URL of the executor manager, used by the
	// workspace proxy endpoints.
	ManagerURL string

	// ReaperInterval is how often to scan for orphaned run claims.
	ReaperInterval time.Duration

	// ClaimTTL is how long a run may sit claimed without starting before
	// its claim is released back to the queue.
	ClaimTTL time.Duration

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration
}

// LoadBackendConfig reads backend configuration from the environment.
func LoadBackendConfig() *BackendConfig {
	return &BackendConfig{
		ListenAddr:      getEnv("BACKEND_LISTEN_ADDR", ":8000"),
		ManagerURL:      getEnv("MANAGER_URL", "http://localhost:8080"),
		ReaperInterval:  getEnvDuration("RUN_REAPER_INTERVAL", time.Minute),
		ClaimTTL:        getEnvDuration("RUN_CLAIM_TTL", 2*time.Minute),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}
