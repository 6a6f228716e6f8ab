package executor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/models"
	"github.com/wuyifannppp/poco-agent/pkg/services"
	pb "github.com/wuyifannppp/poco-agent/proto"
)

// callbackSink is a fake backend callback endpoint. It records every posted
// event and answers with a configurable cancellation flag.
type callbackSink struct {
	mu       sync.Mutex
	received []models.AgentCallbackRequest

	// cancelAfter flips cancel_requested on every ack once this many events
	// have been received. Zero means never.
	cancelAfter int
}

func (s *callbackSink) handler(w http.ResponseWriter, r *http.Request) {
	var req models.AgentCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.received = append(s.received, req)
	cancel := s.cancelAfter > 0 && len(s.received) >= s.cancelAfter
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    0,
		"message": "ok",
		"data":    models.CallbackResponse{CancelRequested: cancel},
	})
}

func (s *callbackSink) kinds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]string, len(s.received))
	for i, req := range s.received {
		kinds[i] = req.Kind
	}
	return kinds
}

func newSinkClient(t *testing.T, sink *callbackSink) *CallbackClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(sink.handler))
	t.Cleanup(srv.Close)
	return NewCallbackClient(srv.URL, 5*time.Second)
}

func TestCallbackClient_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the acknowledgement", func(t *testing.T) {
		sink := &callbackSink{cancelAfter: 1}
		client := newSinkClient(t, sink)

		ack, err := client.Post(ctx, models.AgentCallbackRequest{
			Kind:      models.CallbackSessionState,
			SessionID: "s-1",
		})
		require.NoError(t, err)
		assert.True(t, ack.CancelRequested)
		require.Len(t, sink.received, 1)
		assert.Equal(t, "s-1", sink.received[0].SessionID)
	})

	t.Run("null data yields an empty acknowledgement", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"code":0,"message":"ok","data":null}`))
		}))
		t.Cleanup(srv.Close)
		client := NewCallbackClient(srv.URL, time.Second)

		ack, err := client.Post(ctx, models.AgentCallbackRequest{Kind: models.CallbackSessionState, SessionID: "s-1"})
		require.NoError(t, err)
		require.NotNil(t, ack)
		assert.False(t, ack.CancelRequested)
	})

	t.Run("non-zero code is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":40000,"message":"kind: unknown"}`))
		}))
		t.Cleanup(srv.Close)
		client := NewCallbackClient(srv.URL, time.Second)

		_, err := client.Post(ctx, models.AgentCallbackRequest{Kind: "run.paused", SessionID: "s-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "40000")
	})

	t.Run("unreachable backend is an external service error", func(t *testing.T) {
		client := NewCallbackClient("http://127.0.0.1:1", 500*time.Millisecond)
		_, err := client.Post(ctx, models.AgentCallbackRequest{Kind: models.CallbackSessionState, SessionID: "s-1"})
		assert.True(t, services.IsExternalServiceError(err))
	})
}

func TestEchoRunner(t *testing.T) {
	ctx := context.Background()
	task := Task{RunID: "r-1", SessionID: "s-1", Prompt: "hello"}

	t.Run("echoes prompt and records usage", func(t *testing.T) {
		sink := &callbackSink{}
		client := newSinkClient(t, sink)

		require.NoError(t, EchoRunner{}.Run(ctx, task, client))

		require.Equal(t, []string{models.CallbackMessageAppended, models.CallbackUsageRecorded}, sink.kinds())
		msg := sink.received[0].Message
		require.NotNil(t, msg)
		assert.Equal(t, "assistant", msg.Role)
		assert.Equal(t, "echo: hello", msg.Content["text"])
		usage := sink.received[1].Usage
		require.NotNil(t, usage)
		assert.Equal(t, len("hello"), usage.InputTokens)
	})

	t.Run("stops when the first ack requests cancellation", func(t *testing.T) {
		sink := &callbackSink{cancelAfter: 1}
		client := newSinkClient(t, sink)

		err := EchoRunner{}.Run(ctx, task, client)
		assert.ErrorIs(t, err, ErrCancelled)
		assert.Len(t, sink.received, 1)
	})
}

func TestServer_RunTask(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects incomplete requests", func(t *testing.T) {
		server := NewServer(EchoRunner{}, nil)

		ack, err := server.RunTask(ctx, &pb.TaskRequest{RunId: "r-1"})
		require.NoError(t, err)
		assert.False(t, ack.Accepted)
		assert.NotEmpty(t, ack.Message)
	})

	t.Run("rejects malformed effective config", func(t *testing.T) {
		server := NewServer(EchoRunner{}, nil)

		ack, err := server.RunTask(ctx, &pb.TaskRequest{
			RunId:               "r-1",
			SessionId:           "s-1",
			ClaimToken:          "tok",
			EffectiveConfigJson: "{not json",
		})
		require.NoError(t, err)
		assert.False(t, ack.Accepted)
	})

	t.Run("runs the task and reports success", func(t *testing.T) {
		sink := &callbackSink{}
		server := NewServer(EchoRunner{}, newSinkClient(t, sink))

		ack, err := server.RunTask(ctx, &pb.TaskRequest{
			RunId:      "r-1",
			SessionId:  "s-1",
			ClaimToken: "tok",
			Prompt:     "ping",
		})
		require.NoError(t, err)
		require.True(t, ack.Accepted)

		server.Wait()
		require.Equal(t, []string{
			models.CallbackMessageAppended,
			models.CallbackUsageRecorded,
			models.CallbackRunSucceeded,
		}, sink.kinds())
		terminal := sink.received[2]
		assert.Equal(t, "tok", terminal.ClaimToken)
		assert.Nil(t, terminal.Error)
	})

	t.Run("cancellation lands as a failed run", func(t *testing.T) {
		sink := &callbackSink{cancelAfter: 1}
		server := NewServer(EchoRunner{}, newSinkClient(t, sink))

		ack, err := server.RunTask(ctx, &pb.TaskRequest{
			RunId:      "r-1",
			SessionId:  "s-1",
			ClaimToken: "tok",
			Prompt:     "ping",
		})
		require.NoError(t, err)
		require.True(t, ack.Accepted)

		server.Wait()
		kinds := sink.kinds()
		require.NotEmpty(t, kinds)
		terminal := sink.received[len(sink.received)-1]
		assert.Equal(t, models.CallbackRunFailed, terminal.Kind)
		require.NotNil(t, terminal.Error)
		assert.Equal(t, "CANCELLED", terminal.Error.Code)
	})
}
