//go:build linux

package sidecar

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Pdeathsig takes the sidecar down with the host if the host dies without
// running its shutdown path.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Pdeathsig: unix.SIGKILL}
}
