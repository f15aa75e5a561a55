package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Info("test message")

	out := buf.String()
	if !strings.Contains(out, "test message") {
		t.Errorf("output missing message: %q", out)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    log.Level
		logFunc  func(*log.Logger)
		expected bool
	}{
		{
			name:     "debug filtered at info level",
			level:    log.InfoLevel,
			logFunc:  func(l *log.Logger) { l.Debug("debug message") },
			expected: false,
		},
		{
			name:     "debug shown at debug level",
			level:    log.DebugLevel,
			logFunc:  func(l *log.Logger) { l.Debug("debug message") },
			expected: true,
		},
		{
			name:     "info shown at info level",
			level:    log.InfoLevel,
			logFunc:  func(l *log.Logger) { l.Info("info message") },
			expected: true,
		},
		{
			name:     "warn shown at info level",
			level:    log.InfoLevel,
			logFunc:  func(l *log.Logger) { l.Warn("warn message") },
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)

			tt.logFunc(logger)

			if got := buf.Len() > 0; got != tt.expected {
				t.Errorf("output present = %v, want %v (output: %q)", got, tt.expected, buf.String())
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	p := newProgress(logger)
	p.done("Exported 3 files")

	out := buf.String()
	if !strings.Contains(out, "Exported 3 files") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "s)") {
		t.Errorf("output missing elapsed duration: %q", out)
	}
}

func TestWithLogger(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext without attachment should return the default logger")
	}
}
