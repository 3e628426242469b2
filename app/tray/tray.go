package tray

import (
	"github.com/starscope/desktop/app/tray/commontray"
	"github.com/starscope/desktop/app/tray/headless"
	"github.com/starscope/desktop/app/tray/systray"
)

// Icon is the bundled tray icon.
var Icon = systray.Icon

// NewTray returns the native tray, or a headless stand-in when no tray icon
// is wanted.
func NewTray(headlessMode bool) commontray.StarscopeTray {
	if headlessMode {
		return headless.New()
	}
	return systray.New()
}
