//go:build !darwin

package window

func DisableFullscreen(Window) {}
