// Command llcsim drives the LLC coherence simulator over a trace file,
// printing bus operations, snoop results, and L1 messages as it goes,
// and a final statistics block on clean EOF.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nkanderson/ECE585-llc/internal/cachesim"
	"github.com/nkanderson/ECE585-llc/internal/config"
	"github.com/nkanderson/ECE585-llc/internal/logging"
	"github.com/nkanderson/ECE585-llc/internal/metrics"
	"github.com/nkanderson/ECE585-llc/internal/trace"
)

const (
	exitOK            = 0
	exitConfiguration = 1
	exitIO            = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	opts, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(out, err)
		return exitConfiguration
	}

	level := logging.Normal
	switch {
	case opts.Debug:
		level = logging.Debug
	case opts.Silent:
		level = logging.Silent
	}
	log := logging.New(level, out)

	if opts.TraceFile == "" {
		fmt.Fprintln(out, fmt.Errorf("%w: no trace file specified (-f/--file)", cachesim.ErrConfiguration))
		return exitConfiguration
	}

	f, err := os.Open(opts.TraceFile)
	if err != nil {
		fmt.Fprintln(out, fmt.Errorf("%w: cannot open trace file: %v", cachesim.ErrIO, err))
		return exitIO
	}
	defer f.Close()

	bus := cachesim.NewStdBusPort(log)
	l1 := cachesim.NewStdL1Port(log)
	stats := cachesim.NewStatistics(metrics.Noop{})
	cache := cachesim.New(opts.Geometry, bus, l1, stats, log)
	dispatcher := cachesim.NewDispatcher(cache, log)
	reader := trace.New(f, log)

	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintln(out, fmt.Errorf("%w: reading trace file: %v", cachesim.ErrIO, err))
			return exitIO
		}
		dispatcher.Dispatch(rec.Op, rec.Addr)
	}

	log.Always("%s", stats.Report())
	return exitOK
}
