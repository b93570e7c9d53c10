//go:build windows

package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"github.com/yearglass/yearglass/internal/model"
)

// nativeHandle extracts the Win32 HWND behind a fyne window. RunNative
// executes on the GUI thread; the wait keeps the call synchronous for the
// single-threaded controller.
func nativeHandle(w fyne.Window) (model.SurfaceHandle, bool) {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return 0, false
	}

	var (
		handle model.SurfaceHandle
		wg     sync.WaitGroup
	)
	wg.Add(1)
	nw.RunNative(func(ctx any) {
		defer wg.Done()
		if winCtx, ok := ctx.(driver.WindowsWindowContext); ok {
			handle = model.SurfaceHandle(winCtx.HWND)
		}
	})
	wg.Wait()

	return handle, !handle.IsZero()
}
