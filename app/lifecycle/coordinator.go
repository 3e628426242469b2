package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/starscope/desktop/app/sidecar"
	"github.com/starscope/desktop/app/tray/commontray"
	"github.com/starscope/desktop/app/window"
)

var ErrTraySetupFailed = errors.New("tray setup failed")

type Launcher interface {
	Launch(name string) sidecar.Handle
}

// Coordinator routes startup, tray and window events to the sidecar store
// and the window façade. Handlers run to completion on the caller's
// goroutine.
type Coordinator struct {
	SidecarName string
	// Launcher is nil when the sidecar is disabled.
	Launcher Launcher
	Store    *sidecar.Store
	Tray     commontray.StarscopeTray
	Windows  window.Manager
	Icon     []byte
	Exit     func(code int)
}

// Startup launches the sidecar, installs the outcome and builds the tray.
// Only a tray failure is returned; the sidecar is optional.
func (c *Coordinator) Startup() error {
	var h sidecar.Handle
	if c.Launcher != nil {
		h = c.Launcher.Launch(c.SidecarName)
	} else {
		slog.Info("sidecar disabled by configuration")
	}
	c.Store.Install(h)
	slog.Info("sidecar supervision state", "state", c.Store.State())

	if err := c.Tray.Build(commontray.DefaultMenu(c.Icon)); err != nil {
		return fmt.Errorf("%w: %w", ErrTraySetupFailed, err)
	}
	return nil
}

func (c *Coordinator) HandleTrayAction(a commontray.Action) {
	slog.Debug("tray action", "action", a)
	switch a {
	case commontray.ActionShow:
		window.ShowAndFocus(c.Windows, window.Main)
	case commontray.ActionRefreshAll:
		go window.Notify(c.Windows, window.Main, window.RefreshAll, nil)
	case commontray.ActionQuit:
		slog.Info("Quitting..")
		// Same take-once reap as the exit hook; a no-op if already done.
		c.TerminateSidecar()
		// The icon must be removed before the process goes away.
		c.Tray.Quit()
		c.Exit(0)
	default:
		slog.Warn("unknown tray action", "action", a)
	}
}

// HandleTrayClick shows the main window on a left button release.
func (c *Coordinator) HandleTrayClick(click commontray.Click) {
	if click.Button == commontray.ButtonLeft && click.State == commontray.ButtonUp {
		window.ShowAndFocus(c.Windows, window.Main)
	}
}

func (c *Coordinator) HandleWindowEvent(ev window.Event) {
	switch ev.Kind {
	case window.EventCloseRequested:
		slog.Info("window close requested", "window", ev.Window)
		c.TerminateSidecar()
		if ev.Window == window.Main {
			c.Tray.Quit()
		}
	default:
		slog.Debug("ignoring window event", "window", ev.Window, "kind", ev.Kind)
	}
}

// TerminateSidecar kills the sidecar if this caller is the one that takes
// its handle. Failures are logged and never block shutdown.
func (c *Coordinator) TerminateSidecar() {
	h := c.Store.Take()
	if h == nil {
		return
	}
	pid := h.Pid()
	if err := h.Kill(); err != nil {
		if !errors.Is(err, sidecar.ErrTerminationFailed) {
			err = fmt.Errorf("%w: %w", sidecar.ErrTerminationFailed, err)
		}
		attrs := []any{"pid", pid, "error", err}
		if p, ok := h.(interface{ Alive() bool }); ok {
			attrs = append(attrs, "still_running", p.Alive())
		}
		slog.Warn("Failed to kill sidecar process", attrs...)
		return
	}
	slog.Info("Sidecar process terminated successfully", "pid", pid)
}
