package window

// FullscreenLocker is implemented by native windows that can hide their
// fullscreen control.
type FullscreenLocker interface {
	DisableFullscreen() error
}
