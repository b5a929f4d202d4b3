package middleware

import (
	"context"
	"time"

	"log/slog"

	"github.com/castkit/scenevault/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.BlobStore
	logger *slog.Logger
}

// NewLoggingMiddleware creates a middleware that logs every store operation
// with its duration at debug level, and failures at warn level.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.BlobStore) ports.BlobStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) log(op, name string, start time.Time, err error) {
	if err != nil {
		m.logger.Warn("store operation failed",
			"op", op, "document", name, "duration", time.Since(start), "error", err)
		return
	}
	m.logger.Debug("store operation",
		"op", op, "document", name, "duration", time.Since(start))
}

func (m *loggingMiddleware) Read(ctx context.Context, name string) ([]byte, error) {
	start := time.Now()
	data, err := m.next.Read(ctx, name)
	m.log("read", name, start, err)
	return data, err
}

func (m *loggingMiddleware) Write(ctx context.Context, name string, data []byte) error {
	start := time.Now()
	err := m.next.Write(ctx, name, data)
	m.log("write", name, start, err)
	return err
}

func (m *loggingMiddleware) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := m.next.Delete(ctx, name)
	m.log("delete", name, start, err)
	return err
}

func (m *loggingMiddleware) Exists(ctx context.Context, name string) (bool, error) {
	start := time.Now()
	ok, err := m.next.Exists(ctx, name)
	m.log("exists", name, start, err)
	return ok, err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := m.next.List(ctx)
	m.log("list", "", start, err)
	return names, err
}
