//go:build !windows

package ui

import (
	"fyne.io/fyne/v2"

	"github.com/yearglass/yearglass/internal/model"
)

// nativeHandle is unavailable off Windows; the widget runs as a plain window.
func nativeHandle(w fyne.Window) (model.SurfaceHandle, bool) {
	return 0, false
}
