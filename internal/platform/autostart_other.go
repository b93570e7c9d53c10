//go:build !windows

package platform

import "fmt"

// SetAutostart is not supported off Windows; desktop embedding only works
// there, so there is nothing useful to launch at login.
func SetAutostart(enabled bool) error {
	if enabled {
		return fmt.Errorf("autostart registration is only supported on Windows")
	}
	return nil
}

// AutostartEnabled always reports false on non-Windows platforms.
func AutostartEnabled() bool {
	return false
}
