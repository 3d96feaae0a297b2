package internal

import (
	"fmt"
	"os"
)

// Alert surfaces a terminal launch error to the user. The launcher is
// usually started by a double click rather than a shell, so the styled
// console line is paired with a blocking modal dialog. Setting
// QODE_CHAIR_NO_DIALOG suppresses the modal for scripted use.
func Alert(title, message string) {
	fmt.Println(ErrorStyle.Render(message))
	Log.WithField("title", title).Error(message)
	if os.Getenv(NoDialogKey) != "" {
		return
	}
	showModal(title, message)
}
