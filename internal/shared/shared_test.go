package shared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestMaskToken(t *testing.T) {
	tc := []struct {
		name  string
		token string
		want  string
	}{
		{name: "long token", token: "BQDabc123xyz", want: "********3xyz"},
		{name: "exactly four", token: "abcd", want: "****"},
		{name: "short token", token: "ab", want: "**"},
		{name: "empty token", token: "", want: ""},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskToken(tt.token); got != tt.want {
				t.Errorf("MaskToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("GenerateID() returned invalid uuid %q: %v", first, err)
	}
	if first == GenerateID() {
		t.Error("GenerateID() should not repeat")
	}
}

func TestLogger(t *testing.T) {
	t.Run("writes to provided writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		WithLogger(logger, "component", "relay").Info("started")

		out := buf.String()
		if !strings.Contains(out, "started") || !strings.Contains(out, "component=relay") {
			t.Errorf("unexpected log output: %q", out)
		}
	})

	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.WarnLevel)
		logger.Info("hidden")

		if buf.Len() != 0 {
			t.Errorf("expected info to be filtered, got %q", buf.String())
		}
	})
}
