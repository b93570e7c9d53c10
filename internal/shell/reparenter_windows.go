//go:build windows

package shell

import (
	"fmt"
	"log/slog"
	"syscall"
	"unsafe"

	"github.com/yearglass/yearglass/internal/model"
)

// workerWReparenter embeds the widget window into the host layer.
type workerWReparenter struct {
	logger *slog.Logger
}

// NewReparenter creates a reparenter backed by the native window hierarchy.
func NewReparenter(logger *slog.Logger) Reparenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &workerWReparenter{logger: logger}
}

// Attach reparents the surface window under the host layer. Safe to call
// again while already attached; every step re-applies cleanly.
func (r *workerWReparenter) Attach(surface model.SurfaceHandle, host model.HostHandle) error {
	if surface.IsZero() {
		return fmt.Errorf("%w: surface window not created yet", ErrReparentFailed)
	}
	if !r.ValidHost(host) {
		return fmt.Errorf("%w: host %#x is not a window", ErrReparentFailed, uintptr(host))
	}

	hwnd := uintptr(surface)

	// Strip title bar, border, taskbar presence and activation before
	// reparenting so the window behaves like a wallpaper decoration, not an
	// application window.
	style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlStyle))
	plain := style &^ (wsCaption | wsThickFrame | wsSysMenu | wsMinimizeBox | wsMaximizeBox)
	if plain != style {
		procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlStyle), plain)
	}

	exStyle, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
	wanted := (exStyle &^ wsExAppWindow) | wsExToolWindow | wsExNoActivate
	if wanted != exStyle {
		procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), wanted)
	}

	ret, _, errno := procSetParent.Call(hwnd, uintptr(host))
	if ret == 0 {
		return fmt.Errorf("%w: SetParent(%#x, %#x): %v", ErrReparentFailed, hwnd, uintptr(host), errno)
	}

	// Some shell versions reset placement on reparent. Re-assert the bottom
	// of the new z-order and show without stealing focus.
	procSetWindowPos.Call(hwnd, hwndBottom, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
	procShowWindow.Call(hwnd, swShowNoActivate)

	r.logger.Info("widget reparented into wallpaper layer",
		"surface", fmt.Sprintf("%#x", hwnd),
		"host", fmt.Sprintf("%#x", uintptr(host)))
	return nil
}

// ValidHost reports whether the handle still names a live window.
func (r *workerWReparenter) ValidHost(host model.HostHandle) bool {
	if host.IsZero() {
		return false
	}
	ret, _, _ := procIsWindow.Call(uintptr(host))
	return ret != 0
}

// SurfaceOrigin returns the top-left corner of the surface window in its
// parent's coordinate space (screen space while unparented).
func SurfaceOrigin(surface model.SurfaceHandle) (int, int, error) {
	if surface.IsZero() {
		return 0, 0, fmt.Errorf("surface window not created yet")
	}
	var rect winRect
	ret, _, errno := procGetWindowRect.Call(uintptr(surface), uintptr(unsafe.Pointer(&rect)))
	if ret == 0 {
		return 0, 0, fmt.Errorf("GetWindowRect: %v", errno)
	}
	return int(rect.Left), int(rect.Top), nil
}

// MoveSurface repositions the surface window inside its current parent
// without resizing, re-ordering or activating it. Used for drag-to-move.
func MoveSurface(surface model.SurfaceHandle, x, y int) error {
	if surface.IsZero() {
		return fmt.Errorf("surface window not created yet")
	}
	ret, _, errno := procSetWindowPos.Call(
		uintptr(surface), 0,
		uintptr(int32(x)), uintptr(int32(y)), 0, 0,
		swpNoSize|swpNoZOrder|swpNoActivate,
	)
	if ret == 0 {
		if e, ok := errno.(syscall.Errno); ok && e != 0 {
			return fmt.Errorf("SetWindowPos: %w", e)
		}
		return fmt.Errorf("SetWindowPos failed")
	}
	return nil
}
