package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestZerologAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewZerologAdapter(&buf, FormatJSON, "info")
	if err != nil {
		t.Fatalf("NewZerologAdapter: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("disabling account",
		AccountID("acc-1"),
		StatusCode(202),
		Bool("forced", true),
		Err(errors.New("boom")),
		Any("body", json.RawMessage(`{"detailCode":"E1"}`)),
	)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug must be filtered): %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["message"] != "disabling account" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["accountId"] != "acc-1" {
		t.Errorf("accountId = %v", entry["accountId"])
	}
	if entry["statusCode"] != float64(202) {
		t.Errorf("statusCode = %v", entry["statusCode"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v", entry["error"])
	}
	body, ok := entry["body"].(map[string]any)
	if !ok || body["detailCode"] != "E1" {
		t.Errorf("body = %v, want raw JSON object", entry["body"])
	}
}

func TestNewZerologAdapter_Invalid(t *testing.T) {
	if _, err := NewZerologAdapter(&bytes.Buffer{}, "xml", "info"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := NewZerologAdapter(&bytes.Buffer{}, FormatJSON, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Info("ignored", String("k", "v"))
	l.Error("ignored")
}
