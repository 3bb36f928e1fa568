// This file is part of IRATA2.
//
// IRATA2 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// IRATA2 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with IRATA2.  If not, see <https://www.gnu.org/licenses/>.

// Package logger implements a small bounded, in-memory log for diagnostics
// that are useful but not worth returning as errors. No other package in
// this module writes to it.
//
// The log is a fixed-capacity ring: once full, the oldest entry is dropped to
// make room for the newest. Entries are tagged so that Tail and Write output
// can be grepped by subsystem.
package logger

import (
	"fmt"
	"io"
)

// Permission is implemented by callers that want to gate whether a
// particular Log call is recorded. This lets a noisy subsystem (e.g. the
// per-tick phase dispatcher) be silenced without littering call sites with
// if-statements.
type Permission interface {
	AllowLogging() bool
}

// Allow is the always-on Permission, used by callers that have no reason to
// suppress their own logging.
var Allow Permission = allowAlways{}

type allowAlways struct{}

func (allowAlways) AllowLogging() bool { return true }

// entry is a single logged line, already rendered to its final string form.
type entry struct {
	tag    string
	detail string
}

// Logger is a bounded ring of log entries.
type Logger struct {
	capacity int
	entries  []entry
	head     int
	count    int
}

// NewLogger creates a Logger that retains at most capacity entries.
func NewLogger(capacity int) *Logger {
	if capacity < 1 {
		capacity = 1
	}
	return &Logger{
		capacity: capacity,
		entries:  make([]entry, capacity),
	}
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.head = 0
	l.count = 0
}

// Log records tag/detail if perm allows logging. detail is rendered
// according to its type: error and fmt.Stringer use their own formatting,
// anything else falls back to the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm != nil && !perm.AllowLogging() {
		return
	}
	l.append(tag, render(detail))
}

// Logf records tag/detail using a format string, subject to the same
// permission gating as Log.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	if perm != nil && !perm.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func render(detail interface{}) string {
	switch d := detail.(type) {
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprintf("%v", d)
	}
}

func (l *Logger) append(tag, detail string) {
	idx := (l.head + l.count) % l.capacity
	l.entries[idx] = entry{tag: tag, detail: detail}
	if l.count < l.capacity {
		l.count++
	} else {
		l.head = (l.head + 1) % l.capacity
	}
}

// Write renders every retained entry, oldest first, to w.
func (l *Logger) Write(w io.Writer) {
	l.Tail(w, l.count)
}

// Tail renders the n most recent entries, oldest first, to w. Asking for
// more entries than are retained, or for zero entries, is not an error.
func (l *Logger) Tail(w io.Writer, n int) {
	if n > l.count {
		n = l.count
	}
	start := l.count - n
	for i := start; i < l.count; i++ {
		idx := (l.head + i) % l.capacity
		e := l.entries[idx]
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.detail)
	}
}
