// Package headless is a tray without an icon, for machines with no desktop
// session. Menu actions can still be injected through the callbacks.
package headless

import (
	"log/slog"
	"sync"

	"github.com/starscope/desktop/app/tray/commontray"
)

type Tray struct {
	callbacks commontray.Callbacks
	quit      chan struct{}
	quitOnce  sync.Once
}

func New() *Tray {
	return &Tray{
		callbacks: commontray.NewCallbacks(),
		quit:      make(chan struct{}),
	}
}

func (t *Tray) Build(menu commontray.Menu) error {
	if err := menu.Validate(); err != nil {
		return err
	}
	slog.Info("running without a tray icon", "items", len(menu.Items))
	return nil
}

func (t *Tray) GetCallbacks() commontray.Callbacks {
	return t.callbacks
}

func (t *Tray) Run(onReady, onExit func()) {
	if onReady != nil {
		onReady()
	}
	<-t.quit
	if onExit != nil {
		onExit()
	}
}

func (t *Tray) Quit() {
	t.quitOnce.Do(func() { close(t.quit) })
}
