// Package logging provides the simulator's leveled console output,
// wrapping logrus the way the rest of the retrieval pack's CLI tools
// do. Three named levels — Silent, Normal, Debug — form the hierarchy
// spec.md §6 requires: Silent suppresses Normal-level operation
// tracing but never the final statistics block or opcode-9 output;
// Debug adds internal trace lines on top of Normal.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Verbosity selects which lines a Logger emits.
type Verbosity int

const (
	Silent Verbosity = iota
	Normal
	Debug
)

// Logger implements cachesim.Sink. It is safe to pass around by value
// of its pointer wherever a Sink is expected; construction is the only
// place verbosity is chosen.
type Logger struct {
	level Verbosity
	entry *logrus.Logger
}

// New builds a Logger at the given verbosity, writing to out. The
// underlying logrus logger is always set to DebugLevel; Logger itself
// gates visibility so Normal/Debug/Warn agree with the chosen
// Verbosity rather than logrus's own level filtering.
func New(level Verbosity, out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    false,
	})
	return &Logger{level: level, entry: l}
}

// Normal emits a line when verbosity is Normal or Debug.
func (l *Logger) Normal(format string, args ...any) {
	if l.level < Normal {
		return
	}
	l.entry.Info(fmt.Sprintf(format, args...))
}

// Debug emits a line only at Debug verbosity.
func (l *Logger) Debug(format string, args ...any) {
	if l.level < Debug {
		return
	}
	l.entry.Debug(fmt.Sprintf(format, args...))
}

// Warn always emits, at any verbosity: Protocol-Inconsistency and
// Trace-Format diagnostics are recovered locally but never silenced.
func (l *Logger) Warn(format string, args ...any) {
	l.entry.Warn(fmt.Sprintf(format, args...))
}

// Always emits regardless of verbosity — used for the final statistics
// block and opcode-9 cache dump, which silent mode must still show.
func (l *Logger) Always(format string, args ...any) {
	l.entry.Info(fmt.Sprintf(format, args...))
}
