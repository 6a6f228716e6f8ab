package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/config"
	"github.com/wuyifannppp/poco-agent/pkg/services"
	testdb "github.com/wuyifannppp/poco-agent/test/database"
)

// newTestRouter builds the full HTTP surface over a test database.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	server := NewServer(
		&config.BackendConfig{},
		client,
		services.NewSessionService(client.Client),
		services.NewProjectService(client.Client),
		runs,
		services.NewMessageService(client.Client, nil),
		services.NewToolExecutionService(client.Client),
		services.NewUsageService(client.Client),
		services.NewCallbackService(client.Client, runs),
		services.NewEnvVarService(client.Client),
		services.NewPresetService(client.Client),
		services.NewAttachmentService(nil),
	)
	return server.Router()
}

// doJSON performs a request with an optional JSON body and decodes the
// envelope.
func doJSON(t *testing.T, router *gin.Engine, method, path, userID string, body any) (int, Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), "body: %s", rec.Body.String())
	return rec.Code, envelope
}

func dataMap(t *testing.T, envelope Response) map[string]any {
	t.Helper()
	m, ok := envelope.Data.(map[string]any)
	require.True(t, ok, "data is %T", envelope.Data)
	return m
}

func TestSessionEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("create get delete", func(t *testing.T) {
		status, envelope := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "alice",
			map[string]any{"config": map[string]any{"model": "large"}})
		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, 0, envelope.Code)
		sessionID := dataMap(t, envelope)["id"].(string)

		status, envelope = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+sessionID, "alice", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "pending", dataMap(t, envelope)["status"])

		// Another user cannot see it.
		status, envelope = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+sessionID, "mallory", nil)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, CodeForbidden, envelope.Code)

		status, envelope = doJSON(t, router, http.MethodDelete, "/api/v1/sessions/"+sessionID, "alice", nil)
		assert.Equal(t, http.StatusOK, status)

		status, envelope = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+sessionID, "alice", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, CodeNotFound, envelope.Code)
	})

	t.Run("missing user header falls back to default user", func(t *testing.T) {
		status, envelope := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "", nil)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "default", dataMap(t, envelope)["user_id"])
	})
}

func TestRunEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("full lifecycle over HTTP", func(t *testing.T) {
		_, envelope := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "alice", nil)
		sessionID := dataMap(t, envelope)["id"].(string)

		status, envelope := doJSON(t, router, http.MethodPost,
			"/api/v1/sessions/"+sessionID+"/prompt", "alice",
			map[string]any{"prompt": "count the stars"})
		require.Equal(t, http.StatusCreated, status)
		runID := dataMap(t, envelope)["id"].(string)

		// Claim the run.
		status, envelope = doJSON(t, router, http.MethodPost, "/api/v1/runs/claim", "",
			map[string]any{"worker_id": "w-1"})
		require.Equal(t, http.StatusOK, status)
		claim := dataMap(t, envelope)
		claimedRun := claim["run"].(map[string]any)
		assert.Equal(t, runID, claimedRun["id"])
		token := claim["claim_token"].(string)
		require.NotEmpty(t, token)

		// Start, then report success through the callback sink.
		status, _ = doJSON(t, router, http.MethodPost, "/api/v1/runs/"+runID+"/start", "",
			map[string]any{"claim_token": token})
		require.Equal(t, http.StatusOK, status)

		status, envelope = doJSON(t, router, http.MethodPost, "/api/v1/callback", "",
			map[string]any{
				"kind":        "run.succeeded",
				"session_id":  sessionID,
				"run_id":      runID,
				"claim_token": token,
			})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, dataMap(t, envelope)["cancel_requested"])

		status, envelope = doJSON(t, router, http.MethodGet, "/api/v1/runs/"+runID, "alice", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "succeeded", dataMap(t, envelope)["status"])
	})

	t.Run("empty queue claims null", func(t *testing.T) {
		status, envelope := doJSON(t, router, http.MethodPost, "/api/v1/runs/claim", "",
			map[string]any{"worker_id": "w-1"})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, 0, envelope.Code)
		assert.Nil(t, envelope.Data)
	})

	t.Run("start with wrong token conflicts", func(t *testing.T) {
		_, envelope := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "alice", nil)
		sessionID := dataMap(t, envelope)["id"].(string)
		_, envelope = doJSON(t, router, http.MethodPost,
			"/api/v1/sessions/"+sessionID+"/prompt", "alice", map[string]any{"prompt": "x"})
		runID := dataMap(t, envelope)["id"].(string)
		_, _ = doJSON(t, router, http.MethodPost, "/api/v1/runs/claim", "",
			map[string]any{"worker_id": "w-1"})

		status, envelope := doJSON(t, router, http.MethodPost, "/api/v1/runs/"+runID+"/start", "",
			map[string]any{"claim_token": "wrong"})
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, CodeConflict, envelope.Code)
	})

	t.Run("blank prompt rejected", func(t *testing.T) {
		_, envelope := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "alice", nil)
		sessionID := dataMap(t, envelope)["id"].(string)

		status, envelope := doJSON(t, router, http.MethodPost,
			"/api/v1/sessions/"+sessionID+"/prompt", "alice", map[string]any{"prompt": "   "})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, CodeBadRequest, envelope.Code)
	})
}

func TestCallbackEndpoint_UnknownKind(t *testing.T) {
	router := newTestRouter(t)

	_, envelope := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "alice", nil)
	sessionID := dataMap(t, envelope)["id"].(string)

	status, envelope := doJSON(t, router, http.MethodPost, "/api/v1/callback", "",
		map[string]any{"kind": "run.paused", "session_id": sessionID})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, CodeBadRequest, envelope.Code)
}

func TestEnvVarEndpoints(t *testing.T) {
	router := newTestRouter(t)

	status, _ := doJSON(t, router, http.MethodPut, "/api/v1/env-vars", "alice",
		map[string]any{"name": "GITHUB_TOKEN", "value": "ghp_x"})
	require.Equal(t, http.StatusOK, status)

	// The list endpoint never leaks values.
	status, envelope := doJSON(t, router, http.MethodGet, "/api/v1/env-vars", "alice", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"GITHUB_TOKEN"}, envelope.Data)

	// The internal surface returns the full map.
	status, envelope = doJSON(t, router, http.MethodGet, "/internal/users/alice/env-map", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"GITHUB_TOKEN": "ghp_x"}, envelope.Data)

	status, envelope = doJSON(t, router, http.MethodDelete, "/api/v1/env-vars/GITHUB_TOKEN", "alice", nil)
	assert.Equal(t, http.StatusOK, status)

	status, envelope = doJSON(t, router, http.MethodDelete, "/api/v1/env-vars/GITHUB_TOKEN", "alice", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, CodeNotFound, envelope.Code)
}
