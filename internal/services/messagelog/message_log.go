package messagelog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrClosed is returned when appending to a closed log.
var ErrClosed = errors.New("message log is closed")

// FileLog appends inbound events to a flat file, one "<timestamp> - <json>" line per event.
type FileLog struct {
	path string

	mu     sync.Mutex
	file   *os.File
	closed bool

	now func() time.Time
}

// NewFileLog opens (or creates) the log file at path in append mode.
func NewFileLog(path string) (*FileLog, error) {
	if path == "" {
		return nil, fmt.Errorf("message log path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create message log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open message log %q: %w", path, err)
	}
	return &FileLog{
		path: path,
		file: file,
		now:  time.Now,
	}, nil
}

// Append writes a single timestamped line containing the compacted event JSON.
func (l *FileLog) Append(_ context.Context, event json.RawMessage) error {
	line, err := l.formatLine(event)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	if _, err := l.file.Write(line); err != nil {
		return fmt.Errorf("failed to append to message log %q: %w", l.path, err)
	}
	return nil
}

// Close closes the underlying file. Further appends fail with ErrClosed.
func (l *FileLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.file.Close()
}

func (l *FileLog) formatLine(event json.RawMessage) ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, event); err != nil {
		return nil, fmt.Errorf("failed to encode message log entry: %w", err)
	}
	var line bytes.Buffer
	line.Grow(compact.Len() + 40)
	line.WriteString(l.now().UTC().Format(time.RFC3339Nano))
	line.WriteString(" - ")
	line.Write(compact.Bytes())
	line.WriteByte('\n')
	return line.Bytes(), nil
}

// Discard is used when local saving is disabled.
type Discard struct{}

// Append does nothing.
func (Discard) Append(context.Context, json.RawMessage) error { return nil }

// Close does nothing.
func (Discard) Close() error { return nil }
