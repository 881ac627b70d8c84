package logger

import (
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		mode string
		want zapcore.Level
	}{
		{"prod", zapcore.InfoLevel},
		{"Production", zapcore.InfoLevel},
		{"dev", zapcore.DebugLevel},
		{"", zapcore.DebugLevel},
	}
	for _, tt := range tests {
		l, err := New(tt.mode)
		if err != nil {
			t.Errorf("New(%q) failed: %v", tt.mode, err)
			continue
		}
		if got := l.Zap().Level(); got != tt.want {
			t.Errorf("New(%q).Zap().Level() = %v, want %v", tt.mode, got, tt.want)
		}
		w := l.With("till", "test")
		if w.Zap().Core().Enabled(zapcore.DebugLevel) != (tt.want == zapcore.DebugLevel) {
			t.Errorf("New(%q).With() changed the level", tt.mode)
		}
	}
}

func TestLogger_levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := (&Logger{SugaredLogger: zap.New(core).Sugar()}).With("seed", "USD")

	l.Debug("drawer listed", "line", 1)
	l.Info("register open", "units", 10)
	l.Warn("line rejected", "line", 2)
	l.Error("reading sales failed", "error", "closed")

	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	var got []zapcore.Level
	for _, e := range logs.All() {
		got = append(got, e.Level)
		if e.ContextMap()["seed"] != "USD" {
			t.Errorf("%q has fields %v, want seed USD", e.Message, e.ContextMap())
		}
	}
	if !slices.Equal(got, want) {
		t.Errorf("logged levels %v, want %v", got, want)
	}
}
