package providers

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/mlbcal/internal/testutil"
)

func TestLogWithProviderAddsProviderField(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	logWithProvider(context.Background(), logger, slog.LevelWarn, "statsapi", "hello", "k", "v")

	out := buf.String()
	if !strings.Contains(out, "provider=statsapi") || !strings.Contains(out, "k=v") {
		t.Fatalf("unexpected log output %s", out)
	}

	logWithProvider(context.Background(), nil, slog.LevelWarn, "statsapi", "ignored")
}
