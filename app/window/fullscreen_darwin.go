//go:build darwin

package window

import "log/slog"

// DisableFullscreen turns off the native fullscreen control of windows that
// support it. Toggling fullscreen crashes some macOS releases.
func DisableFullscreen(w Window) {
	fl, ok := w.(FullscreenLocker)
	if !ok {
		return
	}
	if err := fl.DisableFullscreen(); err != nil {
		slog.Warn("Failed to disable fullscreen button", "error", err)
	}
}
