package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSourceHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *slog.Logger)
		wantSource bool
	}{
		{"info omits source", func(l *slog.Logger) { l.Info("transition applied") }, false},
		{"warn has source", func(l *slog.Logger) { l.Warn("delivery failed") }, true},
		{"error has source", func(l *slog.Logger) { l.Error("generation failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			tt.log(slog.New(newSourceHandler(base, slog.LevelWarn, slog.LevelError)))
			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := slog.New(newSourceHandler(base, slog.LevelError)).With("intervention_id", 7).WithGroup("req")
	l.Info("status changed", "to", "closed")

	out := buf.String()
	assert.Contains(t, out, "intervention_id=7")
	assert.Contains(t, out, "req.to=closed")
	assert.NotContains(t, out, "source=")
}

func TestSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := newSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
