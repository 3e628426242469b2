//go:build windows

package sidecar

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// The sidecar is a console program; keep its console window hidden.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true, CreationFlags: windows.CREATE_NO_WINDOW}
}
