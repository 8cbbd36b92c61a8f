package tts

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logPath = "logs/tts.log"
	mu      sync.RWMutex
)

// SetLogPath configures the path for the TTS history log file.
func SetLogPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	logPath = path
}

// Log appends a synthesis attempt to the TTS history log.
// Shared by all providers so debugging visibility stays consistent.
func Log(provider, voice, text string, err error) {
	mu.RLock()
	path := logPath
	mu.RUnlock()

	if path == "" {
		return
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)

	f, fileErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if fileErr != nil {
		return
	}
	defer f.Close()

	status := "OK"
	if err != nil {
		status = fmt.Sprintf("ERROR(%v)", err)
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("[%s] [%s] VOICE: %s STATUS: %s\nTEXT:\n%s\n--------------------------------------------------\n",
		timestamp, provider, voice, status, text)

	_, _ = f.WriteString(entry)
}
