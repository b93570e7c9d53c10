package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/yearglass/yearglass/internal/appearance"
	"github.com/yearglass/yearglass/internal/model"
)

// TrayActions are the hooks the tray menu drives. All callbacks run on the
// UI thread.
type TrayActions struct {
	OnRefresh         func()
	OnAttachToggle    func(enabled bool)
	OnAcrylicToggle   func(enabled bool)
	OnAutostartToggle func(enabled bool)
}

// Tray owns the system tray menu. The widget has no title bar, so the tray is
// the only control surface.
type Tray struct {
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
}

// SetupTray installs the system tray icon and menu. It silently does nothing
// when the platform driver has no tray support.
func SetupTray(app fyne.App, look appearance.Appearance, attachChecked, acrylicChecked, autostartChecked bool, actions TrayActions) *Tray {
	desk, ok := app.(desktop.App)
	if !ok {
		return nil
	}

	t := &Tray{}

	t.statusItem = fyne.NewMenuItem("Status: Detached", nil)
	t.statusItem.Disabled = true

	refresh := fyne.NewMenuItem(TrayRefreshLabel, func() {
		if actions.OnRefresh != nil {
			actions.OnRefresh()
		}
	})

	attachItem := fyne.NewMenuItem(TrayAttachLabel, nil)
	attachItem.Checked = attachChecked
	attachItem.Action = func() {
		attachItem.Checked = !attachItem.Checked
		if actions.OnAttachToggle != nil {
			actions.OnAttachToggle(attachItem.Checked)
		}
		t.menu.Refresh()
	}

	acrylicItem := fyne.NewMenuItem(TrayAcrylicLabel, nil)
	acrylicItem.Checked = acrylicChecked
	acrylicItem.Action = func() {
		acrylicItem.Checked = !acrylicItem.Checked
		if actions.OnAcrylicToggle != nil {
			actions.OnAcrylicToggle(acrylicItem.Checked)
		}
		t.menu.Refresh()
	}

	autostartItem := fyne.NewMenuItem(TrayAutostartLabel, nil)
	autostartItem.Checked = autostartChecked
	autostartItem.Action = func() {
		autostartItem.Checked = !autostartItem.Checked
		if actions.OnAutostartToggle != nil {
			actions.OnAutostartToggle(autostartItem.Checked)
		}
		t.menu.Refresh()
	}

	t.menu = fyne.NewMenu("Yearglass",
		t.statusItem,
		fyne.NewMenuItemSeparator(),
		refresh,
		attachItem,
		acrylicItem,
		autostartItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(TrayQuitLabel, app.Quit),
	)

	desk.SetSystemTrayMenu(t.menu)
	desk.SetSystemTrayIcon(makeTrayIcon(look.ElapsedColor()))
	return t
}

// SetState updates the status line in the tray menu.
func (t *Tray) SetState(state model.AttachmentState, floating bool) {
	if t == nil {
		return
	}
	label := fmt.Sprintf("Status: %s", state)
	if floating {
		label = "Status: Floating"
	}
	t.statusItem.Label = label
	t.menu.Refresh()
}

// makeTrayIcon renders a solid square in the accent color, the same
// stand-in icon the widget has always used.
func makeTrayIcon(c color.NRGBA) fyne.Resource {
	img := image.NewNRGBA(image.Rect(0, 0, TrayIconSize, TrayIconSize))
	for y := 0; y < TrayIconSize; y++ {
		for x := 0; x < TrayIconSize; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return fyne.NewStaticResource("yearglass-tray.png", buf.Bytes())
}
