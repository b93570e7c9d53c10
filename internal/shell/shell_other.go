//go:build !windows

package shell

import (
	"fmt"
	"log/slog"

	"github.com/yearglass/yearglass/internal/model"
)

// The wallpaper-layer trick is Explorer-specific; on other platforms the
// locator reports the layer as unavailable and the widget runs as a normal
// floating window.

type stubLocator struct{}

// NewLocator returns a locator stub on non-Windows platforms.
func NewLocator(logger *slog.Logger) Locator {
	return stubLocator{}
}

func (stubLocator) Locate() (model.HostHandle, error) {
	return 0, fmt.Errorf("%w: desktop embedding is only supported on Windows", ErrLayerUnavailable)
}

type stubReparenter struct{}

// NewReparenter returns a reparenter stub on non-Windows platforms.
func NewReparenter(logger *slog.Logger) Reparenter {
	return stubReparenter{}
}

func (stubReparenter) Attach(surface model.SurfaceHandle, host model.HostHandle) error {
	return fmt.Errorf("%w: desktop embedding is only supported on Windows", ErrReparentFailed)
}

func (stubReparenter) ValidHost(host model.HostHandle) bool {
	return false
}

// SurfaceOrigin is unavailable on non-Windows platforms.
func SurfaceOrigin(surface model.SurfaceHandle) (int, int, error) {
	return 0, 0, fmt.Errorf("native window positioning is only supported on Windows")
}

// MoveSurface is a no-op on non-Windows platforms.
func MoveSurface(surface model.SurfaceHandle, x, y int) error {
	return nil
}

// ApplyAcrylic is a no-op on non-Windows platforms.
func ApplyAcrylic(surface model.SurfaceHandle) error {
	return nil
}
