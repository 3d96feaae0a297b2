package internal

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// SpawnConfig carries everything needed for the single detached spawn.
type SpawnConfig struct {
	Runtime     string // absolute path of the runtime executable
	EntryScript string // absolute path of the entry script, sole argument
	WorkDir     string // working directory handed to the child

	// ConfigureSysProcAttr applies platform process attributes (hidden
	// window on Windows, new session on Unix). Supplied by package main so
	// this package stays free of build tags.
	ConfigureSysProcAttr func(cmd *exec.Cmd)
}

// DisplayCommandLine returns the two-token command line in its quoted
// display form, for diagnostics and logging.
func DisplayCommandLine(runtimePath, entryScript string) string {
	return fmt.Sprintf(`"%s" "%s"`, runtimePath, entryScript)
}

// SpawnDetached starts the runtime with the entry script as its only
// argument and releases the process handle immediately. The launcher never
// waits on the child; its lifetime ends as soon as the spawn succeeds.
func SpawnDetached(cfg SpawnConfig) (int, error) {
	if cfg.Runtime == "" {
		return 0, fmt.Errorf("runtime executable path cannot be empty")
	}

	cmd := exec.Command(cfg.Runtime, cfg.EntryScript)
	if cfg.WorkDir != "" {
		cmd.Dir = cfg.WorkDir
	}
	// cmd.Env stays nil: the child inherits the launcher's environment,
	// including the Qt overrides applied just before the spawn.
	if cfg.ConfigureSysProcAttr != nil {
		cfg.ConfigureSysProcAttr(cmd)
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", filepath.Base(cfg.Runtime), err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		// The child is already running on its own at this point.
		Log.WithField("pid", pid).WithError(err).Warn("failed to release process handle")
	}
	return pid, nil
}
