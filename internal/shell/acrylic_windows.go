//go:build windows

package shell

import (
	"fmt"
	"unsafe"

	"github.com/yearglass/yearglass/internal/model"
)

// Undocumented composition attribute values. Microsoft keeps shuffling this
// API; it works on current Windows 10/11 builds and fails harmlessly elsewhere.
const (
	accentEnableAcrylicBlurBehind = 4
	wcaAccentPolicy               = 19

	// ~60% opaque black in ABGR, matching the widget's dark panel.
	acrylicGradientColor = 0x99000000
)

type accentPolicy struct {
	AccentState   int32
	AccentFlags   int32
	GradientColor uint32
	AnimationID   int32
}

type windowCompositionAttribData struct {
	Attribute  uint32
	Data       unsafe.Pointer
	SizeOfData uintptr
}

// ApplyAcrylic enables the acrylic blur-behind effect on the surface window.
func ApplyAcrylic(surface model.SurfaceHandle) error {
	if surface.IsZero() {
		return fmt.Errorf("surface window not created yet")
	}

	accent := accentPolicy{
		AccentState:   accentEnableAcrylicBlurBehind,
		GradientColor: acrylicGradientColor,
	}
	data := windowCompositionAttribData{
		Attribute:  wcaAccentPolicy,
		Data:       unsafe.Pointer(&accent),
		SizeOfData: unsafe.Sizeof(accent),
	}

	ret, _, errno := procSetWindowCompositionAttribute.Call(
		uintptr(surface),
		uintptr(unsafe.Pointer(&data)),
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowCompositionAttribute: %v", errno)
	}
	return nil
}
