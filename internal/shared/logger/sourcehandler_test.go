package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		minLevel   slog.Level
		level      slog.Level
		wantSource bool
	}{
		{"info below warn threshold", slog.LevelWarn, slog.LevelInfo, false},
		{"warn at threshold", slog.LevelWarn, slog.LevelWarn, true},
		{"error above threshold", slog.LevelWarn, slog.LevelError, true},
		{"debug threshold covers info", slog.LevelDebug, slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewSourceHandler(base, tt.minLevel))

			log.Log(context.Background(), tt.level, "message")

			if tt.wantSource {
				assert.Contains(t, buf.String(), "source=")
				assert.Contains(t, buf.String(), "logger/sourcehandler_test.go")
			} else {
				assert.NotContains(t, buf.String(), "source=")
			}
		})
	}
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelWarn)).
		With("component", "query").
		WithGroup("req")

	log.Warn("slow", "ms", 1200)

	out := buf.String()
	assert.Contains(t, out, "component=query")
	assert.Contains(t, out, "req.ms=1200")
	assert.Contains(t, out, "source=")
}

func TestShortFile(t *testing.T) {
	assert.Equal(t, "query/query.go", shortFile("/src/internal/application/statistics/query/query.go"))
	assert.Equal(t, "main.go", shortFile("main.go"))
}
