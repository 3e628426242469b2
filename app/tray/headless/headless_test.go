package headless

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/starscope/desktop/app/tray/commontray"
)

func TestRunBlocksUntilQuit(t *testing.T) {
	tr := New()
	ready := make(chan struct{})
	exited := make(chan struct{})

	go tr.Run(func() {
		assert.NoError(t, tr.Build(commontray.DefaultMenu([]byte{0x1})))
		close(ready)
	}, func() { close(exited) })

	select {
	case <-ready:
	case <-time.After(time.Second):
		t.Fatal("onReady was not called")
	}

	select {
	case <-exited:
		t.Fatal("Run returned before Quit")
	case <-time.After(50 * time.Millisecond):
	}

	tr.Quit()
	tr.Quit()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("onExit was not called after Quit")
	}
}

func TestBuildRejectsInvalidMenu(t *testing.T) {
	err := New().Build(commontray.DefaultMenu(nil))
	assert.ErrorIs(t, err, commontray.ErrInvalidMenu)
}
