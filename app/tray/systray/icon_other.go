//go:build !windows

package systray

import _ "embed"

// Icon is the tray icon in the format the platform tray loads.
//
//go:embed icon.png
var Icon []byte
