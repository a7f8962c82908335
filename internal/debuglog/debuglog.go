// Package debuglog provides a leveled debug log that is opened once per
// session and handed to the components that write to it.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes messages at or below its level. A nil *Logger discards
// everything, so components can hold one unconditionally.
type Logger struct {
	level  int
	out    *log.Logger
	closer io.Closer
}

// Open creates (or truncates) the file at path and logs to it. An empty
// path logs to stderr.
func Open(path string, level int) (*Logger, error) {
	if path == "" {
		return New(os.Stderr, level), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log %s: %w", path, err)
	}
	l := New(f, level)
	l.closer = f
	return l, nil
}

// New logs to w without taking ownership of it.
func New(w io.Writer, level int) *Logger {
	return &Logger{
		level: level,
		out:   log.New(w, "", log.Ltime|log.Lmicroseconds),
	}
}

// Level returns the current verbosity.
func (l *Logger) Level() int {
	if l == nil {
		return -1
	}
	return l.level
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level int) bool {
	return l != nil && level <= l.level
}

// Printf writes a message when level is enabled.
func (l *Logger) Printf(level int, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Printf(format, args...)
}

// Close releases the underlying file, if the logger opened one.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
