package logging

import (
	"strings"
	"sync"
)

// LogCaptureWriter keeps the most recent log line for the status API.
type LogCaptureWriter struct {
	mu       sync.RWMutex
	lastLine string
}

// GlobalLogCapture receives a copy of every server log line.
var GlobalLogCapture = &LogCaptureWriter{}

// Write implements io.Writer.
func (w *LogCaptureWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	w.lastLine = strings.TrimRight(string(p), "\n")
	w.mu.Unlock()
	return len(p), nil
}

// GetLastLine returns the most recently written line.
func (w *LogCaptureWriter) GetLastLine() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastLine
}
