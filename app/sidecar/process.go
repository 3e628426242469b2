// Package sidecar starts the StarScope data engine process and holds its handle
// until shutdown.
package sidecar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"github.com/shirou/gopsutil/v3/process"
)

var (
	ErrResolutionFailed  = errors.New("sidecar executable not found")
	ErrSpawnFailed       = errors.New("sidecar failed to start")
	ErrTerminationFailed = errors.New("sidecar could not be terminated")
)

// Handle is a reference to a spawned sidecar process.
type Handle interface {
	Pid() int
	Kill() error
}

// Process is the Handle for a sidecar started through ExecStarter.
type Process struct {
	cmd  *exec.Cmd
	done chan struct{}

	mu      sync.Mutex
	waitErr error
}

func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Kill sends the kill signal without waiting for the process to exit.
func (p *Process) Kill() error {
	if err := p.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("%w: pid %d: %w", ErrTerminationFailed, p.Pid(), err)
	}
	return nil
}

// Alive reports whether the OS still knows the process.
func (p *Process) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
	}
	exists, err := process.PidExists(int32(p.Pid()))
	if err != nil {
		slog.Debug("sidecar presence check failed", "pid", p.Pid(), "error", err)
		return false
	}
	return exists
}

// Done is closed once the process has exited and its output is drained.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// ExitErr returns the error reported by Wait, if the process has exited.
func (p *Process) ExitErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.waitErr
}

// ExecStarter starts sidecars as child processes of the host.
type ExecStarter struct {
	// Env is appended to the inherited environment.
	Env []string
	// Args are passed to the sidecar executable.
	Args []string
}

func (s ExecStarter) Start(path string) (Handle, error) {
	cmd := exec.Command(path, s.Args...)
	cmd.Env = append(os.Environ(), s.Env...)
	cmd.SysProcAttr = sysProcAttr()

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %w", ErrSpawnFailed, err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stderr pipe: %w", ErrSpawnFailed, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpawnFailed, err)
	}

	p := &Process{cmd: cmd, done: make(chan struct{})}
	slog.Info("sidecar process started", "path", path, "pid", p.Pid())

	var wg sync.WaitGroup
	wg.Add(2)
	go captureOutput(&wg, stdoutPipe, "stdout", p.Pid())
	go captureOutput(&wg, stderrPipe, "stderr", p.Pid())

	go func() {
		// Output must be drained before Wait closes the pipes.
		wg.Wait()
		err := cmd.Wait()

		p.mu.Lock()
		p.waitErr = err
		p.mu.Unlock()
		close(p.done)

		if err != nil {
			slog.Warn("sidecar process exited", "pid", p.Pid(), "error", err)
		} else {
			slog.Info("sidecar process exited normally", "pid", p.Pid())
		}
	}()

	return p, nil
}

// maxLineSize bounds a single logged line of sidecar output.
const maxLineSize = 1 << 20

func captureOutput(wg *sync.WaitGroup, rc io.ReadCloser, stream string, pid int) {
	defer wg.Done()
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		slog.Info(scanner.Text(), "source", "sidecar", "stream", stream, "pid", pid)
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
		slog.Error("error reading sidecar output", "stream", stream, "error", err)
		// Keep the pipe flowing so the sidecar never blocks on a full buffer.
		if n, err := io.Copy(io.Discard, rc); err != nil && !errors.Is(err, os.ErrClosed) {
			slog.Debug("error discarding sidecar output", "stream", stream, "error", err)
		} else if n > 0 {
			slog.Warn("discarded sidecar output", "stream", stream, "bytes", n)
		}
	}
	slog.Debug("finished capturing sidecar output", "stream", stream)
}
