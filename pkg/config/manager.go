package config

import "time"

// ManagerConfig configures the executor manager: its worker pool, backend
// connection, executor fleet and workspace layout.
type ManagerConfig struct {
	// ListenAddr is the manager's own HTTP bind address (workspace API).
	ListenAddr string

	// BackendURL is the base URL of the backend API.
	BackendURL string

	// WorkerCount is the number of dispatch workers polling for runs.
	WorkerCount int

	// Capabilities advertised when claiming runs.
	Capabilities []string

	// PollInterval is the base interval between claim attempts.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// ExecutorAddrs lists the gRPC addresses of executor instances.
	ExecutorAddrs []string

	// WorkspaceRoot is the root directory for session workspaces.
	WorkspaceRoot string

	// RunTimeout bounds a single run dispatch end to end.
	RunTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// LoadManagerConfig reads manager configuration from the environment.
func LoadManagerConfig() *ManagerConfig {
	return &ManagerConfig{
		ListenAddr:         getEnv("MANAGER_LISTEN_ADDR", ":8080"),
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:8000"),
		WorkerCount:        getEnvInt("MANAGER_WORKER_COUNT", 4),
		Capabilities:       getEnvList("MANAGER_CAPABILITIES", nil),
		PollInterval:       getEnvDuration("MANAGER_POLL_INTERVAL", 5*time.Second),
		PollIntervalJitter: getEnvDuration("MANAGER_POLL_INTERVAL_JITTER", time.Second),
		ExecutorAddrs:      getEnvList("EXECUTOR_ADDRS", []string{"localhost:50051"}),
		WorkspaceRoot:      getEnv("WORKSPACE_ROOT", "/var/lib/poco/workspaces"),
		RunTimeout:         getEnvDuration("MANAGER_RUN_TIMEOUT", 30*time.Minute),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}
