package config

import (
	"errors"
	"testing"

	"github.com/nkanderson/ECE585-llc/internal/cachesim"
)

func TestLoadDefaults(t *testing.T) {
	opts, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil): %v", err)
	}
	if opts.Geometry.Associativity != cachesim.DefaultAssociativity {
		t.Errorf("Associativity = %d, want %d", opts.Geometry.Associativity, cachesim.DefaultAssociativity)
	}
	if opts.Geometry.LineSize != cachesim.DefaultLineSize {
		t.Errorf("LineSize = %d, want %d", opts.Geometry.LineSize, cachesim.DefaultLineSize)
	}
	if opts.Protocol != "MESI" {
		t.Errorf("Protocol = %q, want MESI", opts.Protocol)
	}
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	opts, err := Load([]string{"--line_size=32", "--associativity=4", "--capacity=1", "-f", "trace.txt"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Geometry.LineSize != 32 {
		t.Errorf("LineSize = %d, want 32", opts.Geometry.LineSize)
	}
	if opts.Geometry.Associativity != 4 {
		t.Errorf("Associativity = %d, want 4", opts.Geometry.Associativity)
	}
	if opts.TraceFile != "trace.txt" {
		t.Errorf("TraceFile = %q, want trace.txt", opts.TraceFile)
	}
}

func TestLoadRejectsBadLineSize(t *testing.T) {
	_, err := Load([]string{"--line_size=48"})
	if !errors.Is(err, cachesim.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestLoadRejectsBadAssociativity(t *testing.T) {
	_, err := Load([]string{"--associativity=3"})
	if !errors.Is(err, cachesim.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestLoadRejectsUnsupportedProtocol(t *testing.T) {
	_, err := Load([]string{"--protocol=MOESI"})
	if !errors.Is(err, cachesim.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestLoadSilentAndDebugFlags(t *testing.T) {
	opts, err := Load([]string{"--silent"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.Silent {
		t.Error("Silent = false, want true")
	}

	opts, err = Load([]string{"--debug"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.Debug {
		t.Error("Debug = false, want true")
	}
}
