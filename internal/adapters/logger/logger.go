// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/zerr"
)

// messager describes an error that can report its own message without the chain.
type messager interface {
	Message() string
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	mu     sync.RWMutex
}

// New creates a new Logger writing text records to stderr at info level.
func New() *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		level:  level,
	}
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level})

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// SetLevel changes the minimum level of emitted records.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Debug logs a diagnostic message. It is only emitted at debug level.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain and any metadata attached with zerr.With.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatChain(err), metadataAttrs(err)...)
}

// formatChain renders the error followed by its causes, one per line.
func formatChain(err error) string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		current = errors.Unwrap(current)
	}

	if len(messages) == 0 {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(messages[0])
	for i, msg := range messages[1:] {
		if i == 0 {
			b.WriteString("\n  caused by:")
		}
		b.WriteString("\n    -> ")
		b.WriteString(msg)
	}
	return b.String()
}

func metadataAttrs(err error) []any {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return nil
	}
	meta := zErr.Metadata()
	attrs := make([]any, 0, len(meta))
	for k, v := range meta {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}
