// Package config loads the simulator's startup options: cache geometry,
// trace file path, and verbosity, layered defaults -> .env -> CLI
// flags, in the same precedence style calvinalkan-agent-task uses for
// its own config loading.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/nkanderson/ECE585-llc/internal/cachesim"
)

// Options is the fully-resolved startup configuration.
type Options struct {
	Geometry  cachesim.Geometry
	TraceFile string
	Silent    bool
	Debug     bool
	Protocol  string
}

// Supported line sizes and associativities, per spec.md §6's CLI
// surface (`--line_size` ∈ {4,16,32,64,128}, `--associativity` ∈
// {1,2,4,8,16,32}).
var (
	allowedLineSizes       = []uint{4, 16, 32, 64, 128}
	allowedAssociativities = []uint{1, 2, 4, 8, 16, 32}
)

// rawOptions mirrors the CLI/.env surface before geometry validation.
type rawOptions struct {
	file          string
	capacityMB    uint
	lineSize      uint
	associativity uint
	protocol      string
	silent        bool
	debug         bool
}

func defaultRaw() rawOptions {
	return rawOptions{
		capacityMB:    cachesim.DefaultCapacity / (1 << 20),
		lineSize:      cachesim.DefaultLineSize,
		associativity: cachesim.DefaultAssociativity,
		protocol:      "MESI",
	}
}

// Load resolves Options from (in increasing precedence): defaults, a
// .env file if present in the working directory, and CLI flags parsed
// from args (excluding the program name). It returns ErrConfiguration
// wrapped with details on any invalid value.
func Load(args []string) (Options, error) {
	raw := defaultRaw()
	applyEnv(&raw)

	if err := applyFlags(&raw, args); err != nil {
		return Options{}, err
	}

	if raw.protocol != "MESI" {
		return Options{}, fmt.Errorf("%w: protocol %q is not implemented (only MESI)",
			cachesim.ErrConfiguration, raw.protocol)
	}
	if !oneOf(raw.lineSize, allowedLineSizes) {
		return Options{}, fmt.Errorf("%w: line_size %d not in %v", cachesim.ErrConfiguration, raw.lineSize, allowedLineSizes)
	}
	if !oneOf(raw.associativity, allowedAssociativities) {
		return Options{}, fmt.Errorf("%w: associativity %d not in %v", cachesim.ErrConfiguration, raw.associativity, allowedAssociativities)
	}

	geometry, err := cachesim.NewGeometry(
		cachesim.DefaultAddressWidth,
		raw.capacityMB*(1<<20),
		raw.lineSize,
		raw.associativity,
	)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Geometry:  geometry,
		TraceFile: raw.file,
		Silent:    raw.silent,
		Debug:     raw.debug,
		Protocol:  raw.protocol,
	}, nil
}

// applyEnv overlays values found in a .env file (or the process
// environment) onto raw. Absence of a .env file is not an error —
// godotenv.Load silently leaves the environment untouched when no file
// is found, matching project_config.py's optional load_dotenv() call.
func applyEnv(raw *rawOptions) {
	_ = godotenv.Load()

	if v := os.Getenv("CACHE_CAPACITY_MB"); v != "" {
		raw.capacityMB = atou(v, raw.capacityMB)
	}
	if v := os.Getenv("CACHE_LINE_SIZE_B"); v != "" {
		raw.lineSize = atou(v, raw.lineSize)
	}
	if v := os.Getenv("CACHE_ASSOCIATIVITY"); v != "" {
		raw.associativity = atou(v, raw.associativity)
	}
	if v := os.Getenv("CACHE_PROTOCOL"); v != "" {
		raw.protocol = v
	}
	if v := os.Getenv("TRACE_FILE"); v != "" {
		raw.file = v
	}
}

func applyFlags(raw *rawOptions, args []string) error {
	fs := flag.NewFlagSet("llcsim", flag.ContinueOnError)

	file := fs.StringP("file", "f", raw.file, "Path to the trace file")
	capacity := fs.Uint("capacity", raw.capacityMB, "Total cache capacity in MiB")
	lineSize := fs.Uint("line_size", raw.lineSize, "Cache line size in bytes")
	associativity := fs.Uint("associativity", raw.associativity, "Cache associativity (ways per set)")
	protocol := fs.String("protocol", raw.protocol, "Coherence protocol (MESI|MSI)")
	silent := fs.BoolP("silent", "s", raw.silent, "Suppress normal-verbosity output")
	debug := fs.BoolP("debug", "d", raw.debug, "Emit debug-verbosity output")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", cachesim.ErrConfiguration, err)
	}

	raw.file = *file
	raw.capacityMB = *capacity
	raw.lineSize = *lineSize
	raw.associativity = *associativity
	raw.protocol = *protocol
	raw.silent = *silent
	raw.debug = *debug
	return nil
}

func oneOf(v uint, allowed []uint) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func atou(s string, fallback uint) uint {
	var v uint
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return fallback
	}
	return v
}
