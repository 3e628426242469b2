package sidecar

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// Remediation is appended to launch warnings. A development checkout has no
// bundled sidecar; the dev script runs it separately.
const Remediation = "the app will keep running without background data; in a development tree run './start-dev.sh'"

type Resolver interface {
	Resolve(name string) (string, error)
}

type Starter interface {
	Start(path string) (Handle, error)
}

// FileResolver finds a bundled sidecar executable on disk.
type FileResolver struct {
	// Path, when set, is used as is and no other location is searched.
	Path string
	// Dirs are searched after the host executable's directory.
	Dirs []string
}

func (r FileResolver) Resolve(name string) (string, error) {
	if r.Path != "" {
		if err := checkExecutable(r.Path); err != nil {
			return "", fmt.Errorf("%w: %w", ErrResolutionFailed, err)
		}
		return r.Path, nil
	}

	file := name
	if runtime.GOOS == "windows" && filepath.Ext(file) != ".exe" {
		file += ".exe"
	}

	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	} else {
		slog.Debug("error discovering executable directory", "error", err)
	}
	dirs = append(dirs, r.Dirs...)

	for _, dir := range dirs {
		candidate := filepath.Join(dir, file)
		if err := checkExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q not in %v", ErrResolutionFailed, file, dirs)
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}

// Launcher starts the sidecar and degrades to no sidecar on any failure.
type Launcher struct {
	Resolver Resolver
	Starter  Starter
}

// Launch returns the running sidecar, or nil when it could not be started.
// Failures are logged and never returned.
func (l *Launcher) Launch(name string) Handle {
	path, err := l.Resolver.Resolve(name)
	if err != nil {
		if !errors.Is(err, ErrResolutionFailed) {
			err = fmt.Errorf("%w: %w", ErrResolutionFailed, err)
		}
		slog.Warn("sidecar not found, continuing without it", "name", name, "error", err, "hint", Remediation)
		return nil
	}

	h, err := l.Starter.Start(path)
	if err != nil || h == nil {
		if err == nil {
			err = errors.New("starter returned no process")
		}
		if !errors.Is(err, ErrSpawnFailed) {
			err = fmt.Errorf("%w: %w", ErrSpawnFailed, err)
		}
		slog.Warn("sidecar failed to start, continuing without it", "name", name, "path", path, "error", err, "hint", Remediation)
		return nil
	}
	return h
}
