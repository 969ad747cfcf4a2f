package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(WarnLevel, &buf)

	l.Infow("oven_action", "op", "start")
	l.Warnw("oven_interlock", "op", "start", "door_open", true)
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "oven_action") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "oven_interlock") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestGet_ReturnsSingleton(t *testing.T) {
	a := Get(InfoLevel)
	b := Get(DebugLevel)
	if a != b {
		t.Fatalf("Get should return the same instance")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Errorw("ignored", "k", "v")
}
