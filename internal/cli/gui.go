package cli

import (
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"hexpick/internal/app"
	"hexpick/ui/mainwindow"
)

const (
	appID          = "io.github.hexpick"
	reloadInterval = 2 * time.Second
)

// runGUI opens the picker window and blocks until it is closed.
func runGUI(cfg *Config) error {
	cfg.Logger.Info("starting", "color", cfg.Initial.Hex(), "theme", cfg.Theme, "output", cfg.Format)

	fyneApp := fyneapp.NewWithID(appID)

	state := app.NewState(cfg.Initial)
	state.SetTheme(cfg.Theme)
	state.SetFormat(cfg.Format)

	win := mainwindow.New(fyneApp, state, cfg.Prefs, cfg.Logger)

	if cfg.HotReload {
		setupHotReload(win, cfg)
	}

	win.ShowAndRun()
	return nil
}

// setupHotReload configures restart detection when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow, cfg *Config) {
	reloader := app.NewHotReloader(reloadInterval, cfg.Logger)
	if reloader == nil {
		cfg.Logger.Warn("hot reload unavailable: unable to determine executable path")
		return
	}
	win.WatchBinary(reloader)
}
