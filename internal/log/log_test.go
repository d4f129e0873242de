package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
		levelVar.Set(slog.LevelInfo)
	})
	return buf
}

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := captureLogs(t)

	Info(context.Background(), "hello", "user", "test")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	for _, field := range []string{"ts=", "level=info", "msg=hello", "user=test"} {
		if !strings.Contains(line, field) {
			t.Fatalf("expected %q in log line, got %q", field, line)
		}
	}
}

func TestWithAttrsAddsContextFields(t *testing.T) {
	buf := captureLogs(t)

	ctx := WithAttrs(context.Background(), "request_id", "abc")
	ctx = WithAttrs(ctx, "path", "/healthz")
	Warn(ctx, "slow request")

	line := buf.String()
	for _, field := range []string{"level=warn", "request_id=abc", "path=/healthz"} {
		if !strings.Contains(line, field) {
			t.Fatalf("expected %q in log line, got %q", field, line)
		}
	}
}

func TestSetLevel(t *testing.T) {
	buf := captureLogs(t)

	if err := SetLevel("ERROR"); err != nil {
		t.Fatalf("SetLevel returned error: %v", err)
	}
	Info(context.Background(), "suppressed")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be suppressed at error level, got %q", buf.String())
	}

	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected unknown level to be rejected")
	}
}

func TestNilContextIsTolerated(t *testing.T) {
	buf := captureLogs(t)
	Error(nil, "boom")
	if !strings.Contains(buf.String(), "level=error") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}
