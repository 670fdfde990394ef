package logging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewLogger(t *testing.T) {
	logger := New("test-service")
	entry := logger.Plain()

	if entry.Service != "test-service" {
		t.Errorf("Service = %q, want test-service", entry.Service)
	}
	if entry.Time.IsZero() {
		t.Error("entry time not set")
	}
}

func TestFluentFields(t *testing.T) {
	entry := New("testys").
		Plain().
		WithEvent("evt-1").
		WithDoc("abc123").
		WithCollection("messages").
		WithField("status", 200)

	if entry.EventID != "evt-1" {
		t.Errorf("EventID = %q, want evt-1", entry.EventID)
	}
	if entry.DocID != "abc123" {
		t.Errorf("DocID = %q, want abc123", entry.DocID)
	}
	if entry.Collection != "messages" {
		t.Errorf("Collection = %q, want messages", entry.Collection)
	}
	if entry.Fields["status"] != 200 {
		t.Errorf("Fields[status] = %v, want 200", entry.Fields["status"])
	}
}

func TestWithError(t *testing.T) {
	entry := Plain().WithError(errors.New("boom"))
	if entry.Fields["error"] != "boom" {
		t.Errorf("Fields[error] = %v, want boom", entry.Fields["error"])
	}

	entry = Plain().WithError(nil)
	if _, ok := entry.Fields["error"]; ok {
		t.Error("nil error must not add an error field")
	}
}

func TestWithFields(t *testing.T) {
	entry := Plain().WithFields(map[string]any{"a": 1, "b": "two"})
	if entry.Fields["a"] != 1 || entry.Fields["b"] != "two" {
		t.Errorf("Fields = %v", entry.Fields)
	}
}

func TestWithContextNoTrace(t *testing.T) {
	entry := WithContext(context.Background())
	if entry.TraceID != "" {
		t.Errorf("TraceID = %q, want empty without active span", entry.TraceID)
	}
}

func TestEntryJSONShape(t *testing.T) {
	entry := &LogEntry{
		Time:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Level:      LevelInfo,
		Message:    "notification delivered",
		Service:    "testys-notifier",
		DocID:      "abc123",
		Collection: "messages",
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if decoded["msg"] != "notification delivered" {
		t.Errorf("msg = %v", decoded["msg"])
	}
	if decoded["doc_id"] != "abc123" {
		t.Errorf("doc_id = %v", decoded["doc_id"])
	}
	if _, ok := decoded["trace_id"]; ok {
		t.Error("empty trace_id must be omitted")
	}
	if _, ok := decoded["fields"]; ok {
		t.Error("empty fields must be omitted")
	}
}
