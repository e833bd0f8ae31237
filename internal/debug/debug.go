// Package debug provides optional file-based debug logging.
//
// When the ANCHOR_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging.
const EnvVar = "ANCHOR_DEBUG"

var (
	logFile *os.File
	enabled bool
	envOnce sync.Once
	mu      sync.Mutex
)

// Init directs debug logging to the specified file path, overriding the
// environment.
func Init(path string) error {
	envOnce.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	enabled = true
	return nil
}

func initFromEnv() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(path); err != nil {
		fmt.Fprintf(os.Stderr, "anchor: %v\n", err)
	}
}

// Enabled reports whether log lines are being written.
func Enabled() bool {
	envOnce.Do(initFromEnv)
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	enabled = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	envOnce.Do(initFromEnv)
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
