//go:build windows

package internal

import (
	"syscall"
	"unsafe"
)

const (
	mbOK        = 0x00000000
	mbIconError = 0x00000010
)

var (
	user32         = syscall.NewLazyDLL("user32.dll")
	procMessageBox = user32.NewProc("MessageBoxW")
)

// showModal raises a blocking MessageBox. The launcher may have no console
// attached on Windows, so this is the only surface the user is guaranteed
// to see.
func showModal(title, message string) {
	text, err := syscall.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	caption, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	procMessageBox.Call(0,
		uintptr(unsafe.Pointer(text)),
		uintptr(unsafe.Pointer(caption)),
		uintptr(mbOK|mbIconError))
}
