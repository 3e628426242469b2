//go:build !windows

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/starscope/desktop/app/lifecycle"
)

// ensureSingleInstance holds an exclusive lock file in the data directory
// for the lifetime of the process.
func ensureSingleInstance(dataDir string) (func(), error) {
	if dataDir == "" {
		dataDir = lifecycle.AppDataDir
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	lock := flock.New(filepath.Join(dataDir, "starscope.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return nil, errAlreadyRunning
	}
	return func() { _ = lock.Unlock() }, nil
}
