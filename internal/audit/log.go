// Package audit provides the append-only activity log that submissions,
// trades, and book snapshots are written to.
package audit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Sink receives formatted activity lines. Appends are best-effort: the
// coordinator reports failures but never fails a submission over them.
type Sink interface {
	Append(line string) error
}

// FileLog is an append-only text file Sink. Each line is flushed as it
// is written so the log tails cleanly.
type FileLog struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// OpenFileLog opens the log file at path in append mode, creating the
// file and any missing parent directories.
func OpenFileLog(path string) (*FileLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create audit log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return &FileLog{f: f, w: bufio.NewWriter(f)}, nil
}

// Append writes one line to the log followed by a newline and flushes.
func (l *FileLog) Append(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.w.WriteString(line); err != nil {
		return err
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return err
	}
	return l.w.Flush()
}

// Close flushes and closes the underlying file.
func (l *FileLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.w.Flush(); err != nil {
		l.f.Close()
		return err
	}
	return l.f.Close()
}
