package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSilentSuppressesNormalButNotAlways(t *testing.T) {
	var buf bytes.Buffer
	log := New(Silent, &buf)

	log.Normal("should not appear")
	log.Debug("should not appear either")
	if buf.Len() != 0 {
		t.Fatalf("Silent logger emitted output for Normal/Debug: %q", buf.String())
	}

	log.Always("final stats block")
	if !strings.Contains(buf.String(), "final stats block") {
		t.Errorf("Always output missing at Silent verbosity: %q", buf.String())
	}
}

func TestWarnAlwaysEmitsRegardlessOfVerbosity(t *testing.T) {
	var buf bytes.Buffer
	log := New(Silent, &buf)
	log.Warn("protocol inconsistency")
	if !strings.Contains(buf.String(), "protocol inconsistency") {
		t.Errorf("Warn suppressed at Silent verbosity: %q", buf.String())
	}
}

func TestNormalVerbosityShowsNormalNotDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Normal, &buf)

	log.Normal("bus op")
	log.Debug("internal trace")

	out := buf.String()
	if !strings.Contains(out, "bus op") {
		t.Errorf("Normal line missing: %q", out)
	}
	if strings.Contains(out, "internal trace") {
		t.Errorf("Debug line leaked at Normal verbosity: %q", out)
	}
}

func TestDebugVerbosityShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	log := New(Debug, &buf)

	log.Normal("bus op")
	log.Debug("internal trace")

	out := buf.String()
	if !strings.Contains(out, "bus op") || !strings.Contains(out, "internal trace") {
		t.Errorf("Debug verbosity missing lines: %q", out)
	}
}
