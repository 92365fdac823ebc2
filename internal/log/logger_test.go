package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestSetup(t *testing.T) {
	Setup("DEBUG")
	if logger == nil {
		t.Fatal("logger should not be nil after Setup")
	}
}

func TestWithExample(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "INFO")

	WithExample("share").Info("hello")

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if out["example"] != "share" {
		t.Errorf("example = %v, want share", out["example"])
	}
	if out["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", out["msg"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "ERROR")

	Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("INFO line emitted at ERROR level: %s", buf.String())
	}

	Error("kept")
	if buf.Len() == 0 {
		t.Fatal("ERROR line was not emitted")
	}
}
