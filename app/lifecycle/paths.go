package lifecycle

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	AppName    = "StarScope"
	Identifier = "com.starscope.desktop"

	// DataDirEnv tells the sidecar where the application data lives.
	DataDirEnv = "STARSCOPE_DATA_DIR"
)

var AppDataDir = defaultAppDataDir()

// Paths are the files the host keeps under its data directory.
type Paths struct {
	DataDir  string
	LogFile  string
	Settings string
	Store    string
}

func PathsFor(dataDir string) Paths {
	return Paths{
		DataDir:  dataDir,
		LogFile:  filepath.Join(dataDir, "logs", "app.log"),
		Settings: filepath.Join(dataDir, "settings.yaml"),
		Store:    filepath.Join(dataDir, "store.json"),
	}
}

// defaultAppDataDir follows each platform's convention for per-user
// application data.
func defaultAppDataDir() string {
	var base string
	switch runtime.GOOS {
	case "windows", "darwin":
		dir, err := os.UserConfigDir()
		if err == nil {
			base = dir
		}
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			base = xdg
		} else if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, ".local", "share")
		}
	}
	if base == "" {
		slog.Warn("could not determine user data directory, using working directory")
		base = "."
	}
	return filepath.Join(base, Identifier)
}
