package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/regiellis/qode-chair-go/internal"
)

// launchApp performs the single launch operation: resolve, verify, apply
// the Qt environment, spawn detached, exit. Exit code 1 on any failure.
func launchApp() int {
	paths, err := internal.ResolvePaths()
	if err != nil {
		internal.Alert(internal.AlertTitle, err.Error())
		return 1
	}

	if missing := paths.MissingFiles(); len(missing) > 0 {
		internal.Log.WithField("dir", paths.AppDir).WithField("missing", missing).Error("required launch files not found")
		internal.Alert(internal.AlertTitle, "Cannot find "+strings.Join(missing, " and "))
		return 1
	}

	overrides := internal.QtEnvOverrides(paths.AppDir)
	if err := internal.ApplyEnv(overrides); err != nil {
		internal.Alert(internal.AlertTitle, err.Error())
		return 1
	}

	pid, err := internal.SpawnDetached(internal.SpawnConfig{
		Runtime:              paths.Runtime,
		EntryScript:          paths.EntryScript,
		WorkDir:              paths.AppDir,
		ConfigureSysProcAttr: configureCmdSysProcAttr,
	})
	if err != nil {
		internal.Log.WithField("dir", paths.AppDir).WithError(err).Error("spawn failed")
		internal.Alert(internal.SpawnAlertTitle, fmt.Sprintf("Failed to start application: %v", err))
		return 1
	}

	internal.Log.WithField("pid", pid).
		WithField("cmdline", internal.DisplayCommandLine(paths.Runtime, paths.EntryScript)).
		Info("application started")
	fmt.Println(internal.SuccessStyle.Render(fmt.Sprintf("Application started (PID: %d).", pid)))
	return 0
}

// checkApp is the dry-run diagnostic: it reports everything launchApp would
// do without spawning the runtime.
func checkApp() int {
	fmt.Println(internal.TitleStyle.Render("Qode Chair Launch Check"))

	paths, err := internal.ResolvePaths()
	if err != nil {
		fmt.Println(internal.ErrorStyle.Render(err.Error()))
		return 1
	}
	fmt.Println(internal.InfoStyle.Render("Application directory: " + paths.AppDir))

	ok := true
	for _, f := range []string{paths.Runtime, paths.EntryScript} {
		if stat, statErr := os.Stat(f); statErr == nil && !stat.IsDir() {
			fmt.Println(internal.SuccessStyle.Render("  found   ") + f)
		} else {
			fmt.Println(internal.ErrorStyle.Render("  missing ") + f)
			ok = false
		}
	}

	fmt.Println()
	fmt.Println(internal.InfoStyle.Render("Environment overrides:"))
	for _, ov := range internal.QtEnvOverrides(paths.AppDir) {
		fmt.Printf("  %s=%s\n", ov.Key, ov.Value)
	}

	fmt.Println()
	fmt.Println(internal.InfoStyle.Render("Command line:"))
	fmt.Println("  " + internal.DisplayCommandLine(paths.Runtime, paths.EntryScript))

	if !ok {
		fmt.Println()
		fmt.Println(internal.ErrorStyle.Render("This directory is not launchable."))
		return 1
	}
	fmt.Println()
	fmt.Println(internal.SuccessStyle.Render("Ready to launch."))
	return 0
}

// printEnv prints the overrides as they would be applied, one per line, in
// a shell-friendly form.
func printEnv() int {
	paths, err := internal.ResolvePaths()
	if err != nil {
		fmt.Println(internal.ErrorStyle.Render(err.Error()))
		return 1
	}
	for _, ov := range internal.QtEnvOverrides(paths.AppDir) {
		fmt.Printf("%s=%s\n", ov.Key, ov.Value)
	}
	return 0
}
