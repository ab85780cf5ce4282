package faillog

import (
	"fmt"
	"os"
	"sync"
)

const logFilePermissions = 0644

// Log is an append-only, newline-delimited list of URLs whose downloads
// permanently failed. It persists across runs and appends are serialized so
// concurrent workers never interleave writes.
type Log struct {
	mu   sync.Mutex
	path string
}

// New creates a failure log backed by the file at path. The file is created
// lazily on first append.
func New(path string) *Log {
	return &Log{path: path}
}

// Append records one permanently failed URL
func (l *Log) Append(url string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open failure log: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintln(f, url); err != nil {
		return fmt.Errorf("failed to write failure log: %w", err)
	}
	return nil
}

// Path returns the location of the underlying file
func (l *Log) Path() string {
	return l.path
}
