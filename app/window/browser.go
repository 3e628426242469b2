package window

import (
	"errors"

	"github.com/pkg/browser"
)

var ErrNoEventSink = errors.New("window has no event sink")

// EventSink receives events emitted to a window.
type EventSink interface {
	Deliver(event string, payload any) error
}

// BrowserWindow presents the frontend in the user's default browser.
type BrowserWindow struct {
	URL  string
	Sink EventSink

	open func(url string) error
}

func NewBrowserWindow(url string, sink EventSink) *BrowserWindow {
	return &BrowserWindow{URL: url, Sink: sink, open: browser.OpenURL}
}

func (w *BrowserWindow) Show() error {
	return w.open(w.URL)
}

// Focus is a no-op: opening the URL already raises the browser.
func (w *BrowserWindow) Focus() error {
	return nil
}

func (w *BrowserWindow) Emit(event string, payload any) error {
	if w.Sink == nil {
		return ErrNoEventSink
	}
	return w.Sink.Deliver(event, payload)
}
