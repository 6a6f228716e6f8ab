package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/wuyifannppp/poco-agent/pkg/models"
)

// Task is a resolved, staged unit of agent work.
type Task struct {
	RunID           string
	SessionID       string
	UserID          string
	ClaimToken      string
	Prompt          string
	SdkSessionID    string
	WorkspaceDir    string
	EffectiveConfig map[string]any
}

// Runner is the agent runtime black box. Implementations report progress
// through the callback client and must stop promptly when a callback
// acknowledgement carries cancel_requested, returning ErrCancelled.
type Runner interface {
	Run(ctx context.Context, task Task, callbacks *CallbackClient) error
}

// ErrCancelled is returned by runners that stopped on a cancellation
// request.
var ErrCancelled = errors.New("task cancelled")

// EchoRunner is the stub runtime: it echoes the prompt back as an assistant
// message and records nominal usage. Used by tests and the stub binary.
type EchoRunner struct{}

// Run executes the echo turn.
func (EchoRunner) Run(ctx context.Context, task Task, callbacks *CallbackClient) error {
	ack, err := callbacks.Post(ctx, models.AgentCallbackRequest{
		Kind:      models.CallbackMessageAppended,
		SessionID: task.SessionID,
		RunID:     task.RunID,
		Message: &models.CallbackMessage{
			Role: "assistant",
			Content: map[string]any{
				"type": "text",
				"text": fmt.Sprintf("echo: %s", task.Prompt),
			},
		},
	})
	if err != nil {
		return err
	}
	if ack.CancelRequested {
		return ErrCancelled
	}

	ack, err = callbacks.Post(ctx, models.AgentCallbackRequest{
		Kind:      models.CallbackUsageRecorded,
		SessionID: task.SessionID,
		RunID:     task.RunID,
		Usage: &models.CallbackUsage{
			InputTokens:  len(task.Prompt),
			OutputTokens: len(task.Prompt) + 6,
			Model:        "echo",
		},
	})
	if err != nil {
		return err
	}
	if ack.CancelRequested {
		return ErrCancelled
	}
	return nil
}
