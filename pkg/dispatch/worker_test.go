package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/backendclient"
	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/resolver"
	"github.com/wuyifannppp/poco-agent/pkg/services"
	"github.com/wuyifannppp/poco-agent/pkg/stager"
	"github.com/wuyifannppp/poco-agent/pkg/storage"
	"github.com/wuyifannppp/poco-agent/pkg/workspace"
	pb "github.com/wuyifannppp/poco-agent/proto"
)

// fakeForwarder records forwarded tasks.
type fakeForwarder struct {
	mu    sync.Mutex
	tasks []*pb.TaskRequest
	err   error
}

func (f *fakeForwarder) Forward(_ context.Context, task *pb.TaskRequest) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeForwarder) Close() error { return nil }

// backendStub is a minimal in-process backend: one claimable run, then an
// empty queue, plus the internal resolution surface.
type backendStub struct {
	mu      sync.Mutex
	claimed bool
	started []string
	failed  []map[string]any
	run     map[string]any
}

func (b *backendStub) handler(t *testing.T) http.HandlerFunc {
	ok := func(w http.ResponseWriter, data any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "message": "ok", "data": data})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		switch {
		case r.URL.Path == "/api/v1/runs/claim":
			if b.claimed {
				ok(w, nil)
				return
			}
			b.claimed = true
			ok(w, map[string]any{"run": b.run, "claim_token": "tok-1"})
		case r.URL.Path == "/api/v1/runs/r-1/start":
			b.started = append(b.started, "r-1")
			ok(w, nil)
		case r.URL.Path == "/api/v1/runs/r-1/fail":
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			b.failed = append(b.failed, body)
			ok(w, nil)
		case r.URL.Path == "/internal/users/u1/env-map":
			ok(w, map[string]string{})
		case r.URL.Path == "/internal/mcp-config/resolve", r.URL.Path == "/internal/skill-config/resolve":
			ok(w, map[string]any{})
		default:
			t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}
}

func newTestWorker(t *testing.T, stub *backendStub, fleet TaskForwarder) *Worker {
	t.Helper()
	srv := httptest.NewServer(stub.handler(t))
	t.Cleanup(srv.Close)

	backend := backendclient.New(srv.URL)
	ws := workspace.NewManager(t.TempDir())
	cfg := &config.ManagerConfig{
		PollInterval: 10 * time.Millisecond,
		RunTimeout:   5 * time.Second,
	}
	return NewWorker("w-test", cfg, backend,
		resolver.New(backend),
		stager.New(ws, noopStore{}, noopCloner{}),
		ws, fleet)
}

type noopStore struct{}

func (noopStore) Put(context.Context, string, io.Reader, int64, string) error { return nil }
func (noopStore) Get(context.Context, string) (io.ReadCloser, error)          { return nil, nil }
func (noopStore) PresignGet(context.Context, string) (string, error)          { return "", nil }
func (noopStore) DownloadToFile(context.Context, string, string) error        { return nil }
func (noopStore) List(context.Context, string) ([]storage.ObjectInfo, error)  { return nil, nil }
func (noopStore) Delete(context.Context, string) error                        { return nil }

type noopCloner struct{}

func (noopCloner) Clone(context.Context, string, string, string) error { return nil }

func TestWorker_PollAndDispatch(t *testing.T) {
	ctx := context.Background()
	runJSON := map[string]any{
		"id":         "r-1",
		"session_id": "s-1",
		"status":     "claimed",
		"config_snapshot": map[string]any{
			"user_id": "u1",
			"prompt":  "summarize the logs",
		},
	}

	t.Run("claims resolves and forwards", func(t *testing.T) {
		stub := &backendStub{run: runJSON}
		fleet := &fakeForwarder{}
		worker := newTestWorker(t, stub, fleet)

		dispatched, err := worker.pollAndDispatch(ctx)
		require.NoError(t, err)
		assert.True(t, dispatched)

		require.Len(t, fleet.tasks, 1)
		task := fleet.tasks[0]
		assert.Equal(t, "r-1", task.RunId)
		assert.Equal(t, "u1", task.UserId)
		assert.Equal(t, "tok-1", task.ClaimToken)
		assert.Equal(t, "summarize the logs", task.Prompt)
		assert.NotEmpty(t, task.WorkspaceDir)

		var effective map[string]any
		require.NoError(t, json.Unmarshal([]byte(task.EffectiveConfigJson), &effective))
		assert.Contains(t, effective, "mcp_config")

		assert.Equal(t, []string{"r-1"}, stub.started)
		assert.Equal(t, 1, worker.Health().RunsDispatched)
	})

	t.Run("empty queue dispatches nothing", func(t *testing.T) {
		stub := &backendStub{run: runJSON, claimed: true}
		worker := newTestWorker(t, stub, &fakeForwarder{})

		dispatched, err := worker.pollAndDispatch(ctx)
		require.NoError(t, err)
		assert.False(t, dispatched)
	})

	t.Run("forward failure is reported to the backend", func(t *testing.T) {
		stub := &backendStub{run: runJSON}
		fleet := &fakeForwarder{err: errors.New("all executors down")}
		worker := newTestWorker(t, stub, fleet)

		dispatched, err := worker.pollAndDispatch(ctx)
		require.NoError(t, err)
		assert.True(t, dispatched)

		require.Len(t, stub.failed, 1)
		assert.Empty(t, stub.started)
		runErr := stub.failed[0]["error"].(map[string]any)
		assert.Equal(t, "EXTERNAL_SERVICE_ERROR", runErr["code"])
	})

	t.Run("snapshot without user id fails the run", func(t *testing.T) {
		stub := &backendStub{run: map[string]any{
			"id":              "r-1",
			"session_id":      "s-1",
			"status":          "claimed",
			"config_snapshot": map[string]any{"prompt": "x"},
		}}
		worker := newTestWorker(t, stub, &fakeForwarder{})

		dispatched, err := worker.pollAndDispatch(ctx)
		require.NoError(t, err)
		assert.True(t, dispatched)

		require.Len(t, stub.failed, 1)
		runErr := stub.failed[0]["error"].(map[string]any)
		assert.Equal(t, "BAD_REQUEST", runErr["code"])
	})
}

func TestMapRunError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"env var miss", &services.EnvVarNotFoundError{Name: "TOKEN"}, "ENV_VAR_NOT_FOUND"},
		{"wrapped env var miss", fmt.Errorf("resolve: %w", &services.EnvVarNotFoundError{Name: "TOKEN"}), "ENV_VAR_NOT_FOUND"},
		{"external service", services.NewExternalServiceError("executor", errors.New("refused")), "EXTERNAL_SERVICE_ERROR"},
		{"validation", services.NewValidationError("user_id", "missing"), "BAD_REQUEST"},
		{"anything else", errors.New("boom"), "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runErr := mapRunError(tt.err)
			require.NotNil(t, runErr)
			assert.Equal(t, tt.wantCode, runErr.Code)
			assert.NotEmpty(t, runErr.Message)
		})
	}
}

func TestWorker_PollInterval(t *testing.T) {
	cfg := &config.ManagerConfig{PollInterval: time.Second, PollIntervalJitter: 200 * time.Millisecond}
	w := &Worker{config: cfg}
	for i := 0; i < 50; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}

	w.config = &config.ManagerConfig{PollInterval: time.Second}
	assert.Equal(t, time.Second, w.pollInterval())
}
