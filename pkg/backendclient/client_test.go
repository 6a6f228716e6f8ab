package backendclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// newBackendStub serves canned envelopes per path.
func newBackendStub(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func writeEnvelope(w http.ResponseWriter, status, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

func TestClient_ClaimRun(t *testing.T) {
	ctx := context.Background()

	t.Run("claims a run", func(t *testing.T) {
		client := newBackendStub(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/runs/claim", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "w-1", req["worker_id"])

			writeEnvelope(w, http.StatusOK, 0, "ok", map[string]any{
				"run":         map[string]any{"id": "run-1", "status": "claimed", "session_id": "s-1"},
				"claim_token": "tok-1",
			})
		})

		claim, err := client.ClaimRun(ctx, "w-1", []string{"docker"})
		require.NoError(t, err)
		require.NotNil(t, claim)
		assert.Equal(t, "run-1", claim.Run.ID)
		assert.Equal(t, "tok-1", claim.ClaimToken)
	})

	t.Run("empty queue returns nil", func(t *testing.T) {
		client := newBackendStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, http.StatusOK, 0, "ok", nil)
		})

		claim, err := client.ClaimRun(ctx, "w-1", nil)
		require.NoError(t, err)
		assert.Nil(t, claim)
	})

	t.Run("non-zero code becomes APIError", func(t *testing.T) {
		client := newBackendStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, http.StatusBadRequest, 40000, "worker_id: required", nil)
		})

		_, err := client.ClaimRun(ctx, "", nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 40000, apiErr.Code)
		assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	})

	t.Run("garbage response is an external service error", func(t *testing.T) {
		client := newBackendStub(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>upstream error</html>"))
		})

		_, err := client.ClaimRun(ctx, "w-1", nil)
		assert.True(t, services.IsExternalServiceError(err))
	})
}

func TestClient_CatalogSurface(t *testing.T) {
	ctx := context.Background()

	t.Run("env map", func(t *testing.T) {
		client := newBackendStub(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/internal/users/alice/env-map", r.URL.Path)
			writeEnvelope(w, http.StatusOK, 0, "ok", map[string]string{"TOKEN": "x"})
		})

		env, err := client.EnvMap(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"TOKEN": "x"}, env)
	})

	t.Run("null data degrades to empty map", func(t *testing.T) {
		client := newBackendStub(t, func(w http.ResponseWriter, _ *http.Request) {
			writeEnvelope(w, http.StatusOK, 0, "ok", nil)
		})

		env, err := client.EnvMap(ctx, "alice")
		require.NoError(t, err)
		assert.NotNil(t, env)
		assert.Empty(t, env)
	})

	t.Run("mcp resolve posts ids", func(t *testing.T) {
		client := newBackendStub(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/internal/mcp-config/resolve", r.URL.Path)
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice", req["user_id"])
			assert.Equal(t, []any{float64(1), float64(2)}, req["ids"])

			writeEnvelope(w, http.StatusOK, 0, "ok", map[string]any{
				"github": map[string]any{"command": "mcp-github"},
			})
		})

		resolved, err := client.ResolveMcpPresets(ctx, "alice", []int{1, 2})
		require.NoError(t, err)
		assert.Contains(t, resolved, "github")
	})
}

func TestClient_RunReports(t *testing.T) {
	ctx := context.Background()

	var gotPath string
	var gotBody map[string]any
	client := newBackendStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeEnvelope(w, http.StatusOK, 0, "ok", map[string]any{"id": "run-1"})
	})

	require.NoError(t, client.StartRun(ctx, "run-1", "tok", "sdk-9"))
	assert.Equal(t, "/api/v1/runs/run-1/start", gotPath)
	assert.Equal(t, "sdk-9", gotBody["sdk_session_id"])

	require.NoError(t, client.FailRun(ctx, "run-1", "tok", nil))
	assert.Equal(t, "/api/v1/runs/run-1/fail", gotPath)
	assert.Equal(t, "tok", gotBody["claim_token"])
}
