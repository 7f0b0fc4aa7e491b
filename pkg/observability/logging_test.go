package observability

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "info", input: "info", expected: slog.LevelInfo},
		{name: "warn", input: "warn", expected: slog.LevelWarn},
		{name: "warning alias", input: "warning", expected: slog.LevelWarn},
		{name: "error", input: "error", expected: slog.LevelError},
		{name: "uppercase", input: "DEBUG", expected: slog.LevelDebug},
		{name: "mixed case", input: "Warn", expected: slog.LevelWarn},
		{name: "empty defaults to info", input: "", expected: slog.LevelInfo},
		{name: "unknown defaults to info", input: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInitLoggerFormats(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		t.Run("format "+format, func(t *testing.T) {
			logger := InitLogger(LogConfig{Level: "debug", Format: format})
			if logger == nil {
				t.Fatal("InitLogger returned nil")
			}
			logger.Info("test message", "key", "value")
		})
	}
}

func TestInitLoggerSetsDefault(t *testing.T) {
	logger := InitLogger(LogConfig{Level: "info", Format: "json"})

	if slog.Default() == nil {
		t.Fatal("slog.Default() returned nil after InitLogger")
	}
	if logger.Handler() != slog.Default().Handler() {
		t.Error("InitLogger did not install the default logger")
	}
}

func TestInitLoggerServiceAttribute(t *testing.T) {
	// A service name must not change the configured handler, only wrap it
	// with an attribute.
	logger := InitLogger(LogConfig{Level: "info", Format: "json", Service: "decision-service"})
	if logger == nil {
		t.Fatal("InitLogger returned nil")
	}
	logger.Info("attributed message")
}
