//go:build !windows

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/dixieflatline76/Wallin/config"
	"github.com/dixieflatline76/Wallin/util/log"
)

var lockFile *os.File

func lockPath() string {
	return filepath.Join(os.TempDir(), config.AppName+".lock")
}

// acquireLock takes an exclusive flock on the lock file. It returns false when
// another instance holds it.
func acquireLock() (bool, error) {
	f, err := os.OpenFile(lockPath(), os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return false, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return false, nil
		}
		return false, fmt.Errorf("lock %s: %w", f.Name(), err)
	}

	fmt.Fprintf(f, "%d\n", os.Getpid())
	lockFile = f
	return true, nil
}

// releaseLock drops the lock and removes the lock file.
func releaseLock() {
	if lockFile == nil {
		return
	}
	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN); err != nil {
		log.Printf("Failed to unlock %s: %v", lockFile.Name(), err)
	}
	lockFile.Close()
	os.Remove(lockFile.Name())
	lockFile = nil
}
