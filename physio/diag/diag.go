// Package diag defines the diagnostics sink used by algorithms that recover
// locally instead of failing. Only those pass-through paths report here; the
// sink never affects results.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pion/logging"
)

// Logger receives warning- and error-level diagnostics.
// A pion logging.LeveledLogger satisfies it.
type Logger interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Scope is the logger scope used by the default sink.
const Scope = "physio"

var (
	defaultOnce   sync.Once
	defaultLogger Logger
)

// Default returns the process-wide sink: a pion leveled logger writing
// warnings and errors to stderr.
func Default() Logger {
	defaultOnce.Do(func() {
		defaultLogger = NewWriter(os.Stderr)
	})
	return defaultLogger
}

// NewWriter returns a pion leveled logger at warn level writing to w.
func NewWriter(w io.Writer) Logger {
	return logging.NewDefaultLeveledLoggerForScope(Scope, logging.LogLevelWarn, w)
}

// FromFactory adapts a pion logger factory, for callers that already configure
// pion logging through PION_LOG_* environment variables.
func FromFactory(f logging.LoggerFactory) Logger {
	return f.NewLogger(Scope)
}

// Nop discards everything.
var Nop Logger = nop{}

type nop struct{}

func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}

// Severity of a recorded entry.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Entry is one recorded diagnostic.
type Entry struct {
	Severity Severity
	Message  string
}

// Recorder keeps diagnostics in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Warnf records a warning.
func (r *Recorder) Warnf(format string, args ...any) { r.add(Warning, format, args) }

// Errorf records an error.
func (r *Recorder) Errorf(format string, args ...any) { r.add(Error, format, args) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Count returns the number of entries with the given severity.
func (r *Recorder) Count(s Severity) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Severity == s {
			n++
		}
	}
	return n
}

func (r *Recorder) add(s Severity, format string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Severity: s, Message: fmt.Sprintf(format, args...)})
}
