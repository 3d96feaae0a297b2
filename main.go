// Copyright (C) 2025 Regi Ellis
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/regiellis/qode-chair-go/internal"
)

// launcherPaths holds the paths that belong to the launcher binary itself,
// as opposed to the application directory it launches from.
type launcherPaths struct {
	CliDir  string
	EnvFile string
	LogFile string
}

var appPaths launcherPaths

// initPaths resolves the launcher-side paths and loads the optional .env
// beside the binary. The .env only tunes launcher behavior (log location,
// dialog suppression); the launch targets stay fixed filenames.
func initPaths() error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	appPaths.CliDir = filepath.Dir(exePath)
	appPaths.EnvFile = filepath.Join(appPaths.CliDir, internal.EnvFileName)
	appPaths.LogFile = filepath.Join(appPaths.CliDir, internal.LogFileName)

	err = godotenv.Load(appPaths.EnvFile)
	if (err != nil) && (!os.IsNotExist(err)) {
		fmt.Println(internal.WarningStyle.Render(fmt.Sprintf("Warning: Could not load .env file at %s: %v", appPaths.EnvFile, err)))
	}

	if override := os.Getenv(internal.LogPathKey); override != "" {
		appPaths.LogFile = internal.ExpandUserPath(override)
	}
	internal.SetupLogging(appPaths.LogFile)
	return nil
}

func main() {
	if err := initPaths(); err != nil {
		fmt.Println(internal.ErrorStyle.Render(fmt.Sprintf("Critical error initializing launcher paths: %v", err)))
		os.Exit(1)
	}

	router := internal.NewCLIRouter()
	router.RegisterCommand(&internal.Command{
		Name:        "launch",
		Aliases:     []string{"start", "run"},
		Description: "Launch the application (the default when no command is given)",
		Handler:     launchApp,
	})
	router.RegisterCommand(&internal.Command{
		Name:        "check",
		Aliases:     []string{"doctor"},
		Description: "Verify the directory is launchable without spawning anything",
		Handler:     checkApp,
	})
	router.RegisterCommand(&internal.Command{
		Name:        "env",
		Description: "Print the environment overrides the launch would apply",
		Handler:     printEnv,
	})
	router.RegisterCommand(&internal.Command{
		Name:        "version",
		Aliases:     []string{"--version", "-v"},
		Description: "Print the qode-chair version",
		Handler: func() int {
			fmt.Println("qode-chair " + internal.Version)
			return 0
		},
	})
	router.RegisterCommand(&internal.Command{
		Name:        "help",
		Aliases:     []string{"--help", "-h"},
		Description: "Show this help message",
		Handler: func() int {
			printLongHelp()
			return 0
		},
	})

	// No arguments is the double-click path: launch immediately.
	if len(os.Args) <= 1 {
		os.Exit(launchApp())
	}

	code, handled := router.Route(os.Args)
	if !handled {
		fmt.Println(internal.ErrorStyle.Render("Unknown command: " + os.Args[1]))
		router.ShowHelp()
		os.Exit(1)
	}
	os.Exit(code)
}
