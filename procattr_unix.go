//go:build !windows

package main

import (
	"os/exec"
	"syscall"
)

func configureCmdSysProcAttr(cmd *exec.Cmd) {
	// New session so the child outlives the launcher and never shares its
	// controlling terminal. Unix spawns no visible window to hide.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
