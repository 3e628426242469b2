// Package store persists small host preferences across runs.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

type Store struct {
	ID           string `json:"id"`
	FirstTimeRun bool   `json:"first-time-run"`
}

var (
	lock  sync.Mutex
	store Store
	path  string
)

// SetPath points the store at its file and drops any loaded state.
func SetPath(p string) {
	lock.Lock()
	defer lock.Unlock()
	path = p
	store = Store{}
}

func GetID() string {
	lock.Lock()
	defer lock.Unlock()
	if store.ID == "" {
		initStore()
	}
	return store.ID
}

// GetFirstTimeRun reports whether the first run has already been recorded.
func GetFirstTimeRun() bool {
	lock.Lock()
	defer lock.Unlock()
	if store.ID == "" {
		initStore()
	}
	return store.FirstTimeRun
}

func SetFirstTimeRun(val bool) {
	lock.Lock()
	defer lock.Unlock()
	if store.ID == "" {
		initStore()
	}
	if store.FirstTimeRun == val {
		return
	}
	store.FirstTimeRun = val
	writeStore(path)
}

func initStore() {
	storeFile, err := os.Open(path)
	if err == nil {
		defer storeFile.Close()
		if err = json.NewDecoder(storeFile).Decode(&store); err == nil && store.ID != "" {
			slog.Debug("loaded existing store", "path", path, "id", store.ID)
			return
		}
		slog.Warn("failed to decode store file, creating a new one", "path", path, "error", err)
	} else if !errors.Is(err, os.ErrNotExist) {
		slog.Warn("unexpected error opening store, creating a new one", "path", path, "error", err)
	}

	slog.Debug("initializing new store")
	store = Store{ID: uuid.NewString()}
	writeStore(path)
}

func writeStore(storeFilename string) {
	if storeFilename == "" {
		slog.Debug("store path not set, keeping preferences in memory")
		return
	}
	dir := filepath.Dir(storeFilename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Error("failed to create dir", "path", dir, "error", err)
		return
	}

	payload, err := json.Marshal(store)
	if err != nil {
		slog.Error("failed to marshal store", "error", err)
		return
	}
	if err := os.WriteFile(storeFilename, payload, 0o644); err != nil {
		slog.Error("failed to write store", "path", storeFilename, "error", err)
		return
	}
	slog.Debug("wrote store", "path", storeFilename, "contents", string(payload))
}
