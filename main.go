package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/gen2brain/beeep"
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/VirajParab/zeno/config"
	"github.com/VirajParab/zeno/internal/app"
)

//go:embed all:frontend/dist
var assets embed.FS

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	slog.Info("starting zeno", "version", version, "commit", commit, "date", date)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		cfg = config.Default()
	}

	appService := app.New(version, cfg)

	wailsApp := application.New(application.Options{
		Name:        "Zeno",
		Description: "Global shortcut overlay toggler",
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(assets),
		},
		Mac: application.MacOptions{
			// Don't quit when all windows are closed (we have a system tray)
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})

	// The overlay window starts hidden; the frontend toggles it when the
	// toggle-overlay event arrives.
	overlay := wailsApp.Window.NewWithOptions(application.WebviewWindowOptions{
		Title:       "Zeno",
		Width:       cfg.Overlay.Width,
		Height:      cfg.Overlay.Height,
		URL:         "/",
		Frameless:   true,
		AlwaysOnTop: true,
		Hidden:      true,
	})

	// Intercept window close: hide instead of destroy so the overlay can
	// come back on the next toggle.
	overlay.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		e.Cancel()
		overlay.Hide()
	})

	// Register the global shortcut before the run loop starts. Failure here
	// aborts startup: running without the shortcut would leave the user no
	// way to discover the feature is broken.
	if err := appService.Init(wailsApp, overlay); err != nil {
		slog.Error("startup failed", "error", err)
		if nerr := beeep.Alert("Zeno", "Startup failed: "+err.Error(), ""); nerr != nil {
			slog.Error("show startup failure alert", "error", nerr)
		}
		os.Exit(1)
	}

	// Setup system tray
	systemTray := wailsApp.SystemTray.New()
	systemTray.SetLabel("Zeno")

	trayMenu := wailsApp.NewMenu()
	trayMenu.Add("Toggle Overlay").
		SetAccelerator(cfg.Hotkey).
		OnClick(func(ctx *application.Context) {
			if err := appService.ToggleOverlay(); err != nil {
				slog.Error("toggle overlay from tray", "error", err)
			}
		})

	// Recent-activation readout
	recentMenu := trayMenu.AddSubmenu("Recent Activations")
	activations := appService.RecentActivations(5)
	if len(activations) == 0 {
		recentMenu.Add("No activations yet").SetEnabled(false)
	}
	for _, act := range activations {
		recentMenu.Add(app.ActivationLabel(act)).SetEnabled(false)
	}

	trayMenu.AddSeparator()
	trayMenu.Add("Quit").
		SetAccelerator("CmdOrCtrl+Q").
		OnClick(func(ctx *application.Context) {
			appService.Shutdown()
			wailsApp.Quit()
		})

	systemTray.SetMenu(trayMenu)

	if err := wailsApp.Run(); err != nil {
		slog.Error("run app", "error", err)
		os.Exit(1)
	}
}
