//go:build !windows

package internal

import (
	"os"

	"github.com/charmbracelet/huh"
)

// showModal blocks on a confirm form so the message is acknowledged before
// the launcher exits. Unix desktops run the launcher from a terminal often
// enough that a terminal modal is the right surface; without a terminal the
// form cannot run and the styled console line already printed is all there
// is.
func showModal(title, message string) {
	if stat, err := os.Stdin.Stat(); err != nil || stat.Mode()&os.ModeCharDevice == 0 {
		return
	}
	ok := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(message).
				Affirmative("OK").
				Negative("Close").
				Value(&ok),
		),
	).WithTheme(huh.ThemeCharm())
	_ = form.Run()
}
