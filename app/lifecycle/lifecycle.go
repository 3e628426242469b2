package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/starscope/desktop/app/sidecar"
	"github.com/starscope/desktop/app/store"
	"github.com/starscope/desktop/app/tray"
	"github.com/starscope/desktop/app/window"
	"github.com/starscope/desktop/internal/config"
	"github.com/starscope/desktop/internal/logging"
)

// trayExitTimeout bounds how long an exit waits for the tray to remove its icon.
const trayExitTimeout = 2 * time.Second

// Options are the command line overrides for a run.
type Options struct {
	DataDir     string
	SidecarPath string
	LogLevel    string
	Headless    bool
	Dev         bool
}

// Run starts the host and blocks until the tray exits. The returned error
// is fatal: the caller should report it and exit non-zero.
func Run(opts Options) error {
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = AppDataDir
	}
	paths := PathsFor(dataDir)

	cfg, err := config.Load(paths.Settings)
	if err != nil {
		return err
	}
	if opts.SidecarPath != "" {
		cfg.Sidecar.Path = opts.SidecarPath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	if err := logging.Init(logging.Options{
		File:       paths.LogFile,
		Level:      level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Stderr:     opts.Dev,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "logging initialization failed: %v; logs go to stderr only\n", err)
	}
	defer logging.Close()

	slog.Info("StarScope starting", "data_dir", dataDir)

	if err := publishDataDir(dataDir); err != nil {
		slog.Warn("failed to publish data directory", "env", DataDirEnv, "error", err)
	}

	store.SetPath(paths.Store)
	slog.Debug("installation", "id", store.GetID())

	windows := window.NewRegistry()
	mainWindow := window.NewBrowserWindow(cfg.Window.URL, &window.SidecarBridge{BaseURL: cfg.SidecarURL()})
	windows.Register(window.Main, mainWindow)
	window.DisableFullscreen(mainWindow)

	t := tray.NewTray(opts.Headless)
	trayExited := make(chan struct{})

	c := &Coordinator{
		SidecarName: cfg.Sidecar.Name,
		Store:       &sidecar.Store{},
		Tray:        t,
		Windows:     windows,
		Icon:        tray.Icon,
		Exit:        exitAfterTray(trayExited, trayExitTimeout, exitProcess),
	}
	if !cfg.Sidecar.Disabled {
		c.Launcher = &sidecar.Launcher{
			Resolver: sidecar.FileResolver{Path: cfg.Sidecar.Path, Dirs: cfg.Sidecar.ResourceDirs},
			Starter:  sidecar.ExecStarter{Env: cfg.SidecarEnv()},
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan window.Event, 1)
	go forwardSignals(ctx, events)

	startupErr := make(chan error, 1)
	t.Run(func() {
		if err := c.Startup(); err != nil {
			slog.Error("Failed to start", "error", err)
			startupErr <- err
			t.Quit()
			return
		}

		if !store.GetFirstTimeRun() {
			slog.Debug("First time run, showing main window")
			window.ShowAndFocus(windows, window.Main)
			store.SetFirstTimeRun(true)
		}

		go loop(ctx, c, events)
	}, func() {
		cancel()
		c.TerminateSidecar()
		close(trayExited)
	})

	select {
	case err := <-startupErr:
		return err
	default:
	}
	slog.Info("StarScope exiting")
	return nil
}

// publishDataDir exports the data directory into the host environment, which
// every sidecar started afterwards inherits.
func publishDataDir(dir string) error {
	if err := os.Setenv(DataDirEnv, dir); err != nil {
		return fmt.Errorf("set %s: %w", DataDirEnv, err)
	}
	slog.Debug("published data directory", "env", DataDirEnv, "dir", dir)
	return nil
}

func loop(ctx context.Context, c *Coordinator, events <-chan window.Event) {
	callbacks := c.Tray.GetCallbacks()
	slog.Debug("starting callback loop")
	for {
		select {
		case a := <-callbacks.Actions:
			c.HandleTrayAction(a)
		case click := <-callbacks.Clicks:
			c.HandleTrayClick(click)
		case ev := <-events:
			c.HandleWindowEvent(ev)
		case <-ctx.Done():
			slog.Debug("callback loop stopped")
			return
		}
	}
}

// forwardSignals turns SIGINT and SIGTERM into a close request for the main
// window.
func forwardSignals(ctx context.Context, events chan<- window.Event) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case sig := <-signals:
			slog.Info("shutting down due to signal", "signal", sig)
			select {
			case events <- window.Event{Window: window.Main, Kind: window.EventCloseRequested}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// exitAfterTray returns an exit function that first waits for the tray to
// finish tearing down, or for timeout to pass.
func exitAfterTray(trayExited <-chan struct{}, timeout time.Duration, exit func(int)) func(int) {
	return func(code int) {
		select {
		case <-trayExited:
		case <-time.After(timeout):
			slog.Warn("tray did not exit in time", "timeout", timeout)
		}
		exit(code)
	}
}

func exitProcess(code int) {
	slog.Info("StarScope exiting", "code", code)
	logging.Close()
	os.Exit(code)
}
