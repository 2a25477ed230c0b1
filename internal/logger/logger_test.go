package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer
	l := Setup(Config{Output: &buf})
	if L() != l {
		t.Fatal("Setup did not install the logger")
	}
	l.Debug("hidden")
	l.Info("generated", "api", "gl")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(buf.String(), "api=gl") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	Setup(Config{Output: &buf, Debug: true}).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("debug message dropped in debug mode")
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Output: &buf, JSON: true}).Info("lookup", "value", 3553)
	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["msg"] != "lookup" || rec["value"] != float64(3553) {
		t.Errorf("unexpected record %v", rec)
	}
}
