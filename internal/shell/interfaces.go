package shell

import (
	"github.com/yearglass/yearglass/internal/model"
)

// Locator finds the shell's wallpaper host layer.
type Locator interface {
	// Locate runs a single probe: it asks the shell to spawn its wallpaper
	// worker layer if missing and enumerates for it. It fails with
	// ErrLayerUnavailable when no layer can be found; the caller owns the
	// retry policy, since window creation is asynchronous on the shell side.
	Locate() (model.HostHandle, error)
}

// Reparenter moves the widget's native window into the host layer.
type Reparenter interface {
	// Attach strips window-manager chrome from the surface, reparents it
	// under host and pushes it to the bottom of the new z-order. It is
	// idempotent: calling it again while already attached re-applies the
	// same steps. Fails with ErrReparentFailed on a stale or invalid host.
	Attach(surface model.SurfaceHandle, host model.HostHandle) error

	// ValidHost reports whether the host handle still refers to a live
	// window. A false result for a handle that attached before means the
	// shell restarted.
	ValidHost(host model.HostHandle) bool
}
