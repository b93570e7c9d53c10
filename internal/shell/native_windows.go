//go:build windows

package shell

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Explorer implementation details. These are undocumented and version
// dependent; keep them here so a future shell release only needs this file
// touched.
const (
	progmanClass = "Progman"
	workerWClass = "WorkerW"
	defViewClass = "SHELLDLL_DefView"

	// Undocumented message that makes Progman spawn the WorkerW window which
	// renders wallpaper content behind the desktop icons.
	msgSpawnWorkerW = 0x052C

	spawnTimeoutMS = 1000
)

// Window style and positioning constants from winuser.h.
const (
	gwlStyle   = -16
	gwlExStyle = -20

	wsCaption     = 0x00C00000
	wsThickFrame  = 0x00040000
	wsSysMenu     = 0x00080000
	wsMinimizeBox = 0x00020000
	wsMaximizeBox = 0x00010000

	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000
	wsExNoActivate = 0x08000000

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	hwndBottom = 1

	swShowNoActivate = 4
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procFindWindowW                   = user32.NewProc("FindWindowW")
	procFindWindowExW                 = user32.NewProc("FindWindowExW")
	procSendMessageTimeoutW           = user32.NewProc("SendMessageTimeoutW")
	procEnumWindows                   = user32.NewProc("EnumWindows")
	procSetParent                     = user32.NewProc("SetParent")
	procGetWindowLongPtrW             = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW             = user32.NewProc("SetWindowLongPtrW")
	procSetWindowPos                  = user32.NewProc("SetWindowPos")
	procShowWindow                    = user32.NewProc("ShowWindow")
	procIsWindow                      = user32.NewProc("IsWindow")
	procGetWindowRect                 = user32.NewProc("GetWindowRect")
	procSetWindowCompositionAttribute = user32.NewProc("SetWindowCompositionAttribute")
)

type winRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// findWindow wraps FindWindowW for a class name lookup with a nil title.
func findWindow(class string) uintptr {
	classPtr, err := syscall.UTF16PtrFromString(class)
	if err != nil {
		return 0
	}
	hwnd, _, _ := procFindWindowW.Call(uintptr(unsafe.Pointer(classPtr)), 0)
	return hwnd
}

// findWindowEx wraps FindWindowExW for a class name lookup with a nil title.
func findWindowEx(parent, after uintptr, class string) uintptr {
	classPtr, err := syscall.UTF16PtrFromString(class)
	if err != nil {
		return 0
	}
	hwnd, _, _ := procFindWindowExW.Call(parent, after, uintptr(unsafe.Pointer(classPtr)), 0)
	return hwnd
}

// int32ToUintptr packs a negative index like GWL_EXSTYLE into a call argument.
func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
