//go:build windows

package main

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/regiellis/qode-chair-go/internal"
)

// CREATE_NO_WINDOW keeps the runtime from flashing a console window.
const createNoWindow = 0x08000000

func configureCmdSysProcAttr(cmd *exec.Cmd) {
	if os.Getenv(internal.ShowWindowKey) != "" {
		// Debug escape hatch: let the runtime keep its console.
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}
