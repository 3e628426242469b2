// Package window is the host's view of its UI windows: a registry of
// windows by logical name plus best-effort show and notify helpers.
package window

import (
	"log/slog"
	"sync"
)

// Main is the logical name of the application's main window.
const Main = "main"

type Window interface {
	Show() error
	Focus() error
	Emit(event string, payload any) error
}

type EventKind int

const (
	EventCloseRequested EventKind = iota
)

func (k EventKind) String() string {
	switch k {
	case EventCloseRequested:
		return "CloseRequested"
	default:
		return "Unknown"
	}
}

// Event is a lifecycle event raised by a window.
type Event struct {
	Window string
	Kind   EventKind
}

type Manager interface {
	Lookup(name string) (Window, bool)
}

// Registry is a concurrency-safe Manager.
type Registry struct {
	mu      sync.RWMutex
	windows map[string]Window
}

func NewRegistry() *Registry {
	return &Registry{windows: make(map[string]Window)}
}

func (r *Registry) Register(name string, w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[name] = w
}

func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, name)
}

func (r *Registry) Lookup(name string) (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[name]
	return w, ok
}

// ShowAndFocus shows and focuses the named window. A missing window is not
// an error, and failures are logged rather than returned.
func ShowAndFocus(m Manager, name string) {
	w, ok := m.Lookup(name)
	if !ok {
		slog.Debug("window not found, nothing to show", "window", name)
		return
	}
	if err := w.Show(); err != nil {
		slog.Warn("Failed to show window", "window", name, "error", err)
	}
	if err := w.Focus(); err != nil {
		slog.Warn("Failed to focus window", "window", name, "error", err)
	}
}

// Notify emits a named event to the named window with the same best-effort
// rules as ShowAndFocus.
func Notify(m Manager, name, event string, payload any) {
	w, ok := m.Lookup(name)
	if !ok {
		slog.Debug("window not found, dropping event", "window", name, "event", event)
		return
	}
	if err := w.Emit(event, payload); err != nil {
		slog.Warn("Failed to emit window event", "window", name, "event", event, "error", err)
	}
}
