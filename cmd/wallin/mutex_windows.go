//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/dixieflatline76/Wallin/config"
	"github.com/dixieflatline76/Wallin/util/log"
)

var mutex windows.Handle

// acquireLock creates a named mutex. It returns false when another instance
// already owns one.
func acquireLock() (bool, error) {
	name, err := windows.UTF16PtrFromString("Local\\" + config.AppName + "_SingleInstance")
	if err != nil {
		return false, err
	}

	h, err := windows.CreateMutex(nil, true, name)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if h != 0 {
			windows.CloseHandle(h)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create mutex: %w", err)
	}
	mutex = h
	return true, nil
}

// releaseLock releases and closes the mutex.
func releaseLock() {
	if mutex == 0 {
		return
	}
	if err := windows.ReleaseMutex(mutex); err != nil {
		log.Printf("Failed to release mutex: %v", err)
	}
	if err := windows.CloseHandle(mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
	mutex = 0
}
