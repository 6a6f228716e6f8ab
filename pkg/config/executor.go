package config

import "time"

// ExecutorConfig configures an executor instance.
type ExecutorConfig struct {
	// ListenAddr is the gRPC bind address.
	ListenAddr string

	// BackendURL is the base URL of the backend API, used for callbacks.
	BackendURL string

	// CallbackTimeout bounds a single callback HTTP request.
	CallbackTimeout time.Duration

	// ShutdownTimeout bounds graceful gRPC shutdown.
	ShutdownTimeout time.Duration
}

// LoadExecutorConfig reads executor configuration from the environment.
func LoadExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		ListenAddr:      getEnv("EXECUTOR_LISTEN_ADDR", ":50051"),
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:8000"),
		CallbackTimeout: getEnvDuration("EXECUTOR_CALLBACK_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}
