package main

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInitLoggingHonorsLevelEnv(t *testing.T) {
	cases := []struct {
		env string
		min slog.Level
	}{
		{env: "debug", min: slog.LevelDebug},
		{env: "DEBUG", min: slog.LevelDebug},
		{env: "warn", min: slog.LevelWarn},
		{env: "error", min: slog.LevelError},
		{env: "", min: slog.LevelInfo},
		{env: "garbage", min: slog.LevelInfo},
	}

	levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	ctx := context.Background()
	for _, tc := range cases {
		t.Run("env="+tc.env, func(t *testing.T) {
			t.Setenv("TAILORA_LOG_LEVEL", tc.env)
			initLogging()
			h := slog.Default().Handler()
			for _, lv := range levels {
				want := lv >= tc.min
				if got := h.Enabled(ctx, lv); got != want {
					t.Fatalf("level %v enabled=%v, want %v", lv, got, want)
				}
			}
		})
	}
}

func TestUsageListsCommands(t *testing.T) {
	var sb strings.Builder
	usage(&sb)
	out := sb.String()

	if !strings.Contains(out, "tailora - wardrobe manager") {
		t.Fatalf("missing title in usage output: %q", out)
	}
	for _, cmd := range []string{"server", "seed", "version", "help"} {
		if !strings.Contains(out, cmd) {
			t.Fatalf("usage does not mention %q: %q", cmd, out)
		}
	}
}
