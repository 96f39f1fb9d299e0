package listener

import (
	"context"
	"io"
	"log/slog"
)

// SessionRunner runs one connection's session lifecycle to completion.
type SessionRunner interface {
	AcceptConnection(ctx context.Context, conn io.ReadWriter) error
}

// ConnectionManager hands accepted transports to the session registry.
type ConnectionManager struct {
	runner SessionRunner
}

func NewConnectionManager(runner SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		runner: runner,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.runner.AcceptConnection(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}
