package main

import (
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/yearglass/yearglass/internal/appearance"
	"github.com/yearglass/yearglass/internal/attach"
	"github.com/yearglass/yearglass/internal/config"
	"github.com/yearglass/yearglass/internal/model"
	"github.com/yearglass/yearglass/internal/platform"
	"github.com/yearglass/yearglass/internal/shell"
	"github.com/yearglass/yearglass/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.yearglass.yearglass"
	AppName = "Yearglass"
)

// Attachment failures never abort the process: the widget degrades to a
// floating window so the progress display survives a broken shell. The exit
// code is therefore 0 on any normal quit.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	logger.Info("yearglass starting", "version", version)

	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Load the user's appearance file, falling back to defaults
	look := appearance.Default()
	lookPath, err := appearance.FilePath()
	if err != nil {
		logger.Warn("no user config directory, using built-in appearance", "error", err)
		lookPath = ""
	} else {
		if _, err := platform.AppConfigDir(); err != nil {
			logger.Warn("failed to ensure config dir", "error", err)
		}
		look, err = appearance.Load(lookPath)
		if err != nil {
			logger.Warn("failed to load appearance file", "path", lookPath, "error", err)
		}
	}

	myApp.Settings().SetTheme(ui.NewPanelTheme(look.BackgroundColor()))

	surface := ui.NewSurface(myApp, look)

	controller := attach.NewController(
		surface,
		shell.NewLocator(logger),
		shell.NewReparenter(logger),
		attach.NewUIScheduler(),
		logger,
	)
	controller.SetRefreshInterval(time.Duration(settings.GetRefreshMinutes()) * time.Minute)
	controller.SetPreferFloating(settings.GetFloatingMode())
	controller.SetAttachedCallback(func(handle model.SurfaceHandle) {
		// Reparenting resets composition; re-apply the blur each time
		if settings.GetAcrylic() {
			if err := shell.ApplyAcrylic(handle); err != nil {
				logger.Warn("failed to apply acrylic blur", "error", err)
			}
		}
	})

	tray := ui.SetupTray(myApp, look,
		!settings.GetFloatingMode(), settings.GetAcrylic(), settings.GetAutostart(),
		ui.TrayActions{
			OnRefresh: controller.Refresh,
			OnAttachToggle: func(enabled bool) {
				settings.SetFloatingMode(!enabled)
				controller.SetPreferFloating(!enabled)
				if enabled {
					controller.Refresh()
				}
			},
			OnAcrylicToggle: func(enabled bool) {
				settings.SetAcrylic(enabled)
				if handle, ok := surface.NativeHandle(); ok && enabled {
					if err := shell.ApplyAcrylic(handle); err != nil {
						logger.Warn("failed to apply acrylic blur", "error", err)
					}
				}
				// Turning the blur off only takes effect on restart
			},
			OnAutostartToggle: func(enabled bool) {
				if err := platform.SetAutostart(enabled); err != nil {
					logger.Warn("failed to update autostart registration", "error", err)
					return
				}
				settings.SetAutostart(enabled)
			},
		})
	controller.SetStateCallback(func(state model.AttachmentState) {
		tray.SetState(state, controller.Floating())
	})

	// Keep the autostart entry pointing at the current binary location
	if settings.GetAutostart() && !platform.AutostartEnabled() {
		if err := platform.SetAutostart(true); err != nil {
			logger.Warn("failed to restore autostart registration", "error", err)
		}
	}

	// Hot-reload the appearance file while running
	if lookPath != "" {
		watcher := appearance.NewWatcher(lookPath, logger, func(a appearance.Appearance) {
			fyne.Do(func() {
				surface.ApplyAppearance(a)
			})
		})
		if err := watcher.Start(); err != nil {
			logger.Warn("appearance hot reload unavailable", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	// The native handle only exists once the window is realized, so the
	// attach cycle starts shortly after the event loop comes up.
	time.AfterFunc(ui.AttachStartDelay, func() {
		fyne.Do(controller.Start)
	})

	surface.Window().ShowAndRun()
	controller.Stop()
}
