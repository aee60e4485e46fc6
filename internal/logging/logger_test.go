package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriterEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "vnf-1", "src-1")

	l.Info("hello", "count", 3)

	line := strings.TrimSpace(buf.String())
	var decoded map[string]any
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("expected valid JSON line, got %q: %v", line, err)
	}

	if decoded["msg"] != "hello" {
		t.Fatalf("expected msg=hello, got %v", decoded["msg"])
	}
	if decoded["reporting_entity_name"] != "vnf-1" {
		t.Fatalf("expected reporting_entity_name=vnf-1, got %v", decoded["reporting_entity_name"])
	}
}

func TestNoopLoggerDiscardsEverything(t *testing.T) {
	l := Noop()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

func TestGlobalDefaultsToNoop(t *testing.T) {
	SetGlobal(nil)
	if Global() == nil {
		t.Fatal("expected non-nil noop logger")
	}
}

func TestSetGlobal(t *testing.T) {
	var buf bytes.Buffer
	custom := NewWithWriter(&buf, "vnf-2", "src-2")
	SetGlobal(custom)
	defer SetGlobal(nil)

	Global().Info("marker")
	if !strings.Contains(buf.String(), "marker") {
		t.Fatalf("expected global logger to be used, got %q", buf.String())
	}
}
