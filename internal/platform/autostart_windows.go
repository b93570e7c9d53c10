//go:build windows

package platform

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	runKeyPath   = `Software\Microsoft\Windows\CurrentVersion\Run`
	runValueName = "Yearglass"
)

// SetAutostart registers or unregisters the widget in the per-user Run key so
// it launches at login. No elevation is required for HKCU.
func SetAutostart(enabled bool) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open Run key: %w", err)
	}
	defer key.Close()

	if !enabled {
		if err := key.DeleteValue(runValueName); err != nil && !errors.Is(err, registry.ErrNotExist) {
			return fmt.Errorf("remove autostart entry: %w", err)
		}
		return nil
	}

	exe, err := ExecutablePath()
	if err != nil {
		return err
	}
	if err := key.SetStringValue(runValueName, fmt.Sprintf("%q", exe)); err != nil {
		return fmt.Errorf("write autostart entry: %w", err)
	}
	return nil
}

// AutostartEnabled reports whether the Run key entry is present.
func AutostartEnabled() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer key.Close()

	_, _, err = key.GetStringValue(runValueName)
	return err == nil
}
