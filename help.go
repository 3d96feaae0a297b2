package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const longHelp = `# Qode Chair

A native launcher for packaged NodeGUI applications. Drop the binary next
to the ` + "`qode`" + ` runtime and your ` + "`main.js`" + ` entry script, and it takes
care of the rest: Qt plugin paths, a PATH prefix for bundled libraries, and
a hidden-window detached spawn.

## Commands

| Command  | What it does                                                  |
|----------|---------------------------------------------------------------|
| (none)   | Launch the application immediately                            |
| launch   | Same as running with no command                               |
| check    | Dry-run: verify files, show env overrides and command line    |
| env      | Print the environment overrides in shell form                 |
| version  | Print the qode-chair version                                  |
| help     | This message                                                  |

## Launcher configuration

An optional ` + "`.env`" + ` beside the binary tunes the launcher itself. The
launch targets are fixed filenames and cannot be configured.

- ` + "`QODE_CHAIR_LOG`" + ` — alternate log file path (` + "`{HOME}`" + ` is expanded)
- ` + "`QODE_CHAIR_NO_DIALOG`" + ` — suppress the modal error dialog
- ` + "`QODE_CHAIR_SHOW_WINDOW`" + ` — Windows debug: do not hide the console

## Exit codes

` + "`0`" + ` on success, ` + "`1`" + ` when a required file is missing or the spawn fails.
`

func printLongHelp() {
	if out, err := glamour.Render(longHelp, "dark"); err == nil {
		fmt.Println(out)
	} else {
		fmt.Print(longHelp + "\n")
	}
}
