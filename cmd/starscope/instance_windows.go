//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

const mutexName = "Local\\StarScopeMutex"

// ensureSingleInstance tries to create a named mutex. If it already exists,
// another instance is running. The data directory is not part of the key.
func ensureSingleInstance(string) (func(), error) {
	handle, err := windows.CreateMutex(nil, false, windows.StringToUTF16Ptr(mutexName))
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if handle != 0 {
			_ = windows.CloseHandle(handle)
		}
		return nil, errAlreadyRunning
	}
	if err != nil {
		return nil, fmt.Errorf("CreateMutex failed: %w", err)
	}
	return func() { _ = windows.CloseHandle(handle) }, nil
}
