// Package systray renders the StarScope tray with getlantern/systray.
package systray

import (
	"log/slog"
	"sync"

	"github.com/getlantern/systray"

	"github.com/starscope/desktop/app/tray/commontray"
)

// Tray is the native tray icon. getlantern/systray does not report clicks on
// the icon itself, so only menu actions are delivered.
type Tray struct {
	callbacks commontray.Callbacks
	stop      chan struct{}
	stopOnce  sync.Once
}

func New() *Tray {
	return &Tray{
		callbacks: commontray.NewCallbacks(),
		stop:      make(chan struct{}),
	}
}

func (t *Tray) Build(menu commontray.Menu) error {
	if err := menu.Validate(); err != nil {
		return err
	}

	systray.SetIcon(menu.Icon)
	systray.SetTitle(menu.Title)
	systray.SetTooltip(menu.Tooltip)

	for _, item := range menu.Items {
		mi := systray.AddMenuItem(item.Title, item.Tooltip)
		go t.forward(mi, item.Action)
	}
	slog.Debug("tray menu built", "items", len(menu.Items))
	return nil
}

func (t *Tray) forward(mi *systray.MenuItem, action commontray.Action) {
	for {
		select {
		case <-mi.ClickedCh:
			select {
			case t.callbacks.Actions <- action:
			case <-t.stop:
				return
			}
		case <-t.stop:
			return
		}
	}
}

func (t *Tray) GetCallbacks() commontray.Callbacks {
	return t.callbacks
}

func (t *Tray) Run(onReady, onExit func()) {
	systray.Run(onReady, func() {
		t.stopOnce.Do(func() { close(t.stop) })
		if onExit != nil {
			onExit()
		}
	})
}

func (t *Tray) Quit() {
	systray.Quit()
}
