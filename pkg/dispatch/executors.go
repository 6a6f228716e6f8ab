package dispatch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/wuyifannppp/poco-agent/proto"
)

// TaskForwarder hands a resolved task to an executor. Swappable for tests.
type TaskForwarder interface {
	Forward(ctx context.Context, task *pb.TaskRequest) error
	Close() error
}

// ExecutorFleet forwards tasks round-robin over a fixed set of executor
// gRPC endpoints. Connections are dialed lazily and reused.
type ExecutorFleet struct {
	addrs []string
	next  atomic.Uint64

	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

// NewExecutorFleet creates a fleet over the given addresses.
func NewExecutorFleet(addrs []string) (*ExecutorFleet, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("at least one executor address is required")
	}
	return &ExecutorFleet{
		addrs: addrs,
		conns: make(map[string]*grpc.ClientConn),
	}, nil
}

// Forward sends the task to the next executor in rotation.
func (f *ExecutorFleet) Forward(ctx context.Context, task *pb.TaskRequest) error {
	addr := f.addrs[f.next.Add(1)%uint64(len(f.addrs))]

	conn, err := f.conn(addr)
	if err != nil {
		return err
	}

	ack, err := pb.NewExecutorServiceClient(conn).RunTask(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to forward task to executor %s: %w", addr, err)
	}
	if !ack.Accepted {
		return fmt.Errorf("executor %s rejected task: %s", addr, ack.Message)
	}
	return nil
}

func (f *ExecutorFleet) conn(addr string) (*grpc.ClientConn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if conn, ok := f.conns[addr]; ok {
		return conn, nil
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to executor %s: %w", addr, err)
	}
	f.conns[addr] = conn
	return conn, nil
}

// Close closes every executor connection.
func (f *ExecutorFleet) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var firstErr error
	for addr, conn := range f.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(f.conns, addr)
	}
	return firstErr
}
