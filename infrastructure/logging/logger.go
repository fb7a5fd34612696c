package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Init sets up logging for one run: a timestamped log file in logDir capturing
// DEBUG and above, with INFO and above mirrored to console. It returns the
// logger, the log file path, and a cleanup function that closes the file.
func Init(logDir string, console io.Writer) (*slog.Logger, string, func(), error) {
	if console == nil {
		console = os.Stdout
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, "", nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("speakertag_%s.log", time.Now().Format("20060102_150405")))
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open log file: %w", err)
	}

	fileHandler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	logger := slog.New(&multiHandler{handlers: []slog.Handler{fileHandler, consoleHandler}})
	cleanup := func() { file.Close() }
	return logger, logPath, cleanup, nil
}

// multiHandler fans a record out to every handler that accepts its level
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}
