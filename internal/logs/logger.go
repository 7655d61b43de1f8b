package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	prefix   = "[erhu] "
	flags    = log.LstdFlags | log.Lshortfile
	fileName = "debug.log"
)

var (
	Logger  = log.New(io.Discard, prefix, flags)
	logFile io.WriteCloser
	mu      sync.Mutex
)

// Initialize points the logger at debug.log in logDir. The file is rotated
// once it reaches a few megabytes. Until Initialize is called log output is
// discarded.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fileName)
	w := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = w
	Logger = log.New(w, prefix, flags)

	Logger.Printf("Logger initialized at: %s", logPath)

	return nil
}

// Close closes the log file and falls back to discarding output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	Logger = log.New(io.Discard, prefix, flags)
	return err
}
