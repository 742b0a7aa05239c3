package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)
	slog.Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	expected := map[string]interface{}{
		"service":     "test-service",
		"version":     "1.0.0",
		"environment": "test",
		"msg":         "test message",
		"level":       "INFO",
		"key":         "value",
		"number":      float64(42),
	}
	for k, want := range expected {
		if logEntry[k] != want {
			t.Errorf("Expected %s=%v, got %v", k, want, logEntry[k])
		}
	}
}

func TestTextLoggingRespectsLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text", ServiceName: "svc"}, &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "service=svc") {
		t.Errorf("Expected text record with base attributes, got %s", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID, ok := RequestIDFromContext(ctx)
	if !ok || requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %q", requestID)
	}

	FromContext(ctx).Info("with id")
	if !strings.Contains(buf.String(), `"request_id":"test-req-123"`) {
		t.Errorf("Expected request_id attribute, got %s", buf.String())
	}

	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("Expected no request id on a bare context")
	}
}

func TestLogLevelParsing(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for level, want := range tests {
		if got := (Config{Level: level}).LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	config := Config{}.withDefaults()

	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected %s service name, got %s", DefaultServiceName, config.ServiceName)
	}
	if config.Level != LogLevelInfo {
		t.Errorf("Expected info level, got %s", config.Level)
	}
	if config.Format != LogFormatText {
		t.Errorf("Expected text format outside prod, got %s", config.Format)
	}
	if config.Version != DefaultVersion {
		t.Errorf("Expected %s version, got %s", DefaultVersion, config.Version)
	}
}

func TestConfigDefaults_ProductionUsesJSON(t *testing.T) {
	config := Config{Environment: EnvironmentProduction}.withDefaults()

	if !config.IsJSON() {
		t.Errorf("Expected JSON format in prod, got %s", config.Format)
	}
}

func TestConfigDefaults_KeepsExplicitValues(t *testing.T) {
	config := NewConfig("debug", "text", "svc", "2.0.0", EnvironmentProduction, true).withDefaults()

	if config.Format != "text" || config.Level != "debug" || config.ServiceName != "svc" || config.Version != "2.0.0" {
		t.Errorf("explicit values were overwritten: %+v", config)
	}
	if !config.AddSource {
		t.Error("Expected AddSource to be preserved")
	}
}
