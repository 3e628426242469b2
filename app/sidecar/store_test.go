package sidecar

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	pid   int
	kills atomic.Int32
	err   error
}

func (f *fakeHandle) Pid() int { return f.pid }
func (f *fakeHandle) Kill() error {
	f.kills.Add(1)
	return f.err
}

func TestStoreInstallAndTake(t *testing.T) {
	var s Store
	assert.Equal(t, StateAbsent, s.State())

	h := &fakeHandle{pid: 42}
	s.Install(h)
	assert.Equal(t, StateRunning, s.State())

	got := s.Take()
	require.NotNil(t, got)
	assert.Equal(t, 42, got.Pid())
	assert.Equal(t, StateAbsent, s.State())

	assert.Nil(t, s.Take())
}

func TestStoreInstallNil(t *testing.T) {
	var s Store
	s.Install(nil)
	assert.Equal(t, StateAbsent, s.State())
	assert.Nil(t, s.Take())
}

func TestStoreConcurrentTake(t *testing.T) {
	const callers = 64

	var s Store
	s.Install(&fakeHandle{pid: 7})

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		got   atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if s.Take() != nil {
				got.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, got.Load(), "exactly one caller must receive the handle")
	assert.Equal(t, StateAbsent, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Absent", StateAbsent.String())
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Unknown", State(99).String())
}
