//go:build windows

package shell

import (
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/yearglass/yearglass/internal/model"
)

// enumWorkerWCallback scans top-level windows for the one hosting the desktop
// icon layer (SHELLDLL_DefView) and records the WorkerW that follows it in the
// z-order. Created once: NewCallback thunks are never released.
var enumWorkerWCallback = windows.NewCallback(func(hwnd, lparam uintptr) uintptr {
	if findWindowEx(hwnd, 0, defViewClass) != 0 {
		out := (*uintptr)(unsafe.Pointer(lparam))
		*out = findWindowEx(0, hwnd, workerWClass)
	}
	return 1 // keep enumerating
})

// workerWLocator finds Explorer's wallpaper host window.
type workerWLocator struct {
	logger *slog.Logger
}

// NewLocator creates a locator for the shell's wallpaper host layer.
func NewLocator(logger *slog.Logger) Locator {
	if logger == nil {
		logger = slog.Default()
	}
	return &workerWLocator{logger: logger}
}

// Locate runs one probe for the WorkerW layer. The spawn message is fire and
// forget and the shell creates the window asynchronously, so a single probe
// right after Explorer starts may legitimately miss; callers retry.
func (l *workerWLocator) Locate() (model.HostHandle, error) {
	progman := findWindow(progmanClass)
	if progman == 0 {
		return 0, fmt.Errorf("%w: no %s window (is Explorer running?)", ErrLayerUnavailable, progmanClass)
	}

	// Ask Progman to spawn its wallpaper worker if it has none. Only the side
	// effect matters; the reply payload is ignored.
	var msgResult uintptr
	procSendMessageTimeoutW.Call(
		progman, msgSpawnWorkerW, 0, 0,
		0, spawnTimeoutMS,
		uintptr(unsafe.Pointer(&msgResult)),
	)

	// Newer shells (Windows 11 24H2) parent the WorkerW directly under
	// Progman instead of leaving it as a top-level sibling.
	if worker := findWindowEx(progman, 0, workerWClass); worker != 0 {
		l.logger.Debug("found WorkerW as Progman child", "hwnd", fmt.Sprintf("%#x", worker))
		return model.HostHandle(worker), nil
	}

	// Classic topology: the icon layer lives in a top-level window and the
	// wallpaper WorkerW is the sibling right after it.
	var worker uintptr
	procEnumWindows.Call(enumWorkerWCallback, uintptr(unsafe.Pointer(&worker)))
	if worker != 0 {
		l.logger.Debug("found WorkerW as top-level sibling", "hwnd", fmt.Sprintf("%#x", worker))
		return model.HostHandle(worker), nil
	}

	return 0, fmt.Errorf("%w: no %s window after spawn request", ErrLayerUnavailable, workerWClass)
}
