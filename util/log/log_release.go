//go:build release

package log

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation of the release log file.
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

func init() {
	path, err := filePath(runtime.GOOS, os.UserCacheDir, os.UserHomeDir)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("create log directory: %v", err)
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	})
	log.SetFlags(flags)
}

// Debug does nothing in release builds.
func Debug(v ...interface{}) {}

// Debugf does nothing in release builds.
func Debugf(format string, v ...interface{}) {}
