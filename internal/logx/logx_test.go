package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", logger.GetLevel())
	}
	logger.Info().Msg("hidden")
	logger.Warn().Str("move", "e2e4").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked through a warn logger: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "e2e4") {
		t.Fatalf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "logx_test.go:") {
		t.Fatalf("expected caller in output: %q", out)
	}
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		if got := newLogger(&bytes.Buffer{}, level).GetLevel(); got != zerolog.InfoLevel {
			t.Fatalf("level %q: expected info, got %v", level, got)
		}
	}
}
