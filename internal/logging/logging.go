package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init sets the level and output of the standard logrus logger. An empty
// path logs to stderr; otherwise the file is opened for append and returned
// so the caller can close it.
func Init(level, path string) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if path == "" {
		logrus.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)
	return f, nil
}

// WithRequestID returns a context whose log entries carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// WithContext returns a log entry tagged with the context's request id, if
// any.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if ctx == nil {
		return entry
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
