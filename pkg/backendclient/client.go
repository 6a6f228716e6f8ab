// Package backendclient is the executor manager's HTTP client for the
// backend API: run lifecycle calls plus the internal preset/env-var surface.
// It implements resolver.Catalog.
package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// requestTimeout bounds every backend call. Claim polling relies on this
// staying small.
const requestTimeout = 5 * time.Second

// Client talks to the backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a backend client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// envelope mirrors the backend response wrapper.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do runs one JSON request and decodes the envelope data into out (skipped
// when out is nil or data is null).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return services.NewExternalServiceError("backend", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return services.NewExternalServiceError("backend",
			fmt.Errorf("%s %s: invalid response (status %d): %w", method, path, resp.StatusCode, err))
	}
	if env.Code != 0 {
		return &APIError{
			HTTPStatus: resp.StatusCode,
			Code:       env.Code,
			Message:    env.Message,
		}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return services.NewExternalServiceError("backend",
			fmt.Errorf("%s %s: failed to decode data: %w", method, path, err))
	}
	return nil
}

// APIError is a non-zero envelope code returned by the backend.
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %d (http %d): %s", e.Code, e.HTTPStatus, e.Message)
}

// ClaimRun claims the next eligible run. Returns nil when the queue is
// empty.
func (c *Client) ClaimRun(ctx context.Context, workerID string, capabilities []string) (*models.RunClaimResponse, error) {
	var claim models.RunClaimResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/runs/claim", models.RunClaimRequest{
		WorkerID:     workerID,
		Capabilities: capabilities,
	}, &claim)
	if err != nil {
		return nil, err
	}
	if claim.Run == nil {
		return nil, nil
	}
	return &claim, nil
}

// StartRun reports a claimed run as started.
func (c *Client) StartRun(ctx context.Context, runID, claimToken, sdkSessionID string) error {
	path := fmt.Sprintf("/api/v1/runs/%s/start", url.PathEscape(runID))
	return c.do(ctx, http.MethodPost, path, models.RunStartRequest{
		ClaimToken:   claimToken,
		SdkSessionID: sdkSessionID,
	}, nil)
}

// FailRun reports a claimed or running run as failed.
func (c *Client) FailRun(ctx context.Context, runID, claimToken string, runErr *models.RunError) error {
	path := fmt.Sprintf("/api/v1/runs/%s/fail", url.PathEscape(runID))
	return c.do(ctx, http.MethodPost, path, models.RunFailRequest{
		ClaimToken: claimToken,
		Error:      runErr,
	}, nil)
}

// EnvMap implements resolver.Catalog.
func (c *Client) EnvMap(ctx context.Context, userID string) (map[string]string, error) {
	var envMap map[string]string
	path := fmt.Sprintf("/internal/users/%s/env-map", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &envMap); err != nil {
		return nil, err
	}
	if envMap == nil {
		envMap = map[string]string{}
	}
	return envMap, nil
}

// ResolveMcpPresets implements resolver.Catalog.
func (c *Client) ResolveMcpPresets(ctx context.Context, userID string, ids []int) (map[string]any, error) {
	return c.resolvePresets(ctx, "/internal/mcp-config/resolve", userID, ids)
}

// ResolveSkillPresets implements resolver.Catalog.
func (c *Client) ResolveSkillPresets(ctx context.Context, userID string, ids []int) (map[string]any, error) {
	return c.resolvePresets(ctx, "/internal/skill-config/resolve", userID, ids)
}

func (c *Client) resolvePresets(ctx context.Context, path, userID string, ids []int) (map[string]any, error) {
	if ids == nil {
		ids = []int{}
	}
	var resolved map[string]any
	err := c.do(ctx, http.MethodPost, path, models.ResolvePresetsRequest{
		UserID: userID,
		IDs:    ids,
	}, &resolved)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		resolved = map[string]any{}
	}
	return resolved, nil
}
