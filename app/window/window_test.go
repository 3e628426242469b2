package window

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWindow struct {
	showErr, focusErr, emitErr error

	shows, focuses int
	events         []string
	fullscreenOff  int
}

func (w *recordingWindow) Show() error  { w.shows++; return w.showErr }
func (w *recordingWindow) Focus() error { w.focuses++; return w.focusErr }
func (w *recordingWindow) Emit(event string, _ any) error {
	w.events = append(w.events, event)
	return w.emitErr
}
func (w *recordingWindow) DisableFullscreen() error { w.fullscreenOff++; return nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup(Main)
	assert.False(t, ok)

	w := &recordingWindow{}
	r.Register(Main, w)
	got, ok := r.Lookup(Main)
	require.True(t, ok)
	assert.Same(t, w, got)

	r.Unregister(Main)
	_, ok = r.Lookup(Main)
	assert.False(t, ok)
}

func TestShowAndFocus(t *testing.T) {
	r := NewRegistry()
	w := &recordingWindow{}
	r.Register(Main, w)

	ShowAndFocus(r, Main)
	assert.Equal(t, 1, w.shows)
	assert.Equal(t, 1, w.focuses)
}

func TestShowAndFocusContinuesAfterShowFailure(t *testing.T) {
	r := NewRegistry()
	w := &recordingWindow{showErr: errors.New("hidden for good"), focusErr: errors.New("no focus")}
	r.Register(Main, w)

	ShowAndFocus(r, Main)
	assert.Equal(t, 1, w.shows)
	assert.Equal(t, 1, w.focuses, "focus is attempted even when show fails")
}

func TestMissingWindowIsNoop(t *testing.T) {
	r := NewRegistry()
	assert.NotPanics(t, func() {
		ShowAndFocus(r, Main)
		Notify(r, Main, RefreshAll, nil)
	})
}

func TestNotify(t *testing.T) {
	r := NewRegistry()
	w := &recordingWindow{emitErr: errors.New("webview gone")}
	r.Register(Main, w)

	Notify(r, Main, RefreshAll, nil)
	assert.Equal(t, []string{RefreshAll}, w.events)
}

func TestBrowserWindow(t *testing.T) {
	var opened []string
	w := NewBrowserWindow("http://127.0.0.1:1420", nil)
	w.open = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	require.NoError(t, w.Show())
	require.NoError(t, w.Focus())
	assert.Equal(t, []string{"http://127.0.0.1:1420"}, opened)

	assert.ErrorIs(t, w.Emit(RefreshAll, nil), ErrNoEventSink)
}

func TestSidecarBridgeRefreshAll(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, fetchNowPath, req.URL.Path)
		hits++
		rw.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := NewBrowserWindow(srv.URL, &SidecarBridge{BaseURL: srv.URL + "/"})
	require.NoError(t, w.Emit(RefreshAll, nil))
	assert.Equal(t, 1, hits)

	require.NoError(t, w.Emit("unknown-event", nil))
	assert.Equal(t, 1, hits)
}

func TestSidecarBridgeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		http.Error(rw, "scheduler not running", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	b := &SidecarBridge{BaseURL: srv.URL, Client: srv.Client()}
	err := b.Deliver(RefreshAll, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestDisableFullscreen(t *testing.T) {
	w := &recordingWindow{}
	DisableFullscreen(w)
	if runtime.GOOS == "darwin" {
		assert.Equal(t, 1, w.fullscreenOff)
	} else {
		assert.Zero(t, w.fullscreenOff)
	}
}
