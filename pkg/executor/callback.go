package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// CallbackClient posts progress events to the backend callback sink. Every
// acknowledgement carries the cancellation flag.
type CallbackClient struct {
	baseURL string
	http    *http.Client
}

// NewCallbackClient creates a callback client for the given backend URL.
func NewCallbackClient(baseURL string, timeout time.Duration) *CallbackClient {
	return &CallbackClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Post sends one callback and returns the acknowledgement.
func (c *CallbackClient) Post(ctx context.Context, req models.AgentCallbackRequest) (*models.CallbackResponse, error) {
	encoded, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode callback: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/callback", bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to build callback request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, services.NewExternalServiceError("backend", err)
	}
	defer resp.Body.Close()

	var env struct {
		Code    int                      `json:"code"`
		Message string                   `json:"message"`
		Data    *models.CallbackResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, services.NewExternalServiceError("backend",
			fmt.Errorf("invalid callback response (status %d): %w", resp.StatusCode, err))
	}
	if env.Code != 0 {
		return nil, fmt.Errorf("callback rejected with code %d: %s", env.Code, env.Message)
	}
	if env.Data == nil {
		env.Data = &models.CallbackResponse{}
	}
	return env.Data, nil
}
