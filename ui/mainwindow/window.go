// Package mainwindow provides the main application window.
package mainwindow

import (
	"bytes"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"hexpick/internal/app"
	"hexpick/internal/gradient"
	"hexpick/ui/panels"
	"hexpick/ui/picker"
	"hexpick/ui/prefs"
)

const (
	title    = "hex"
	iconSize = 64
	iconHue  = 305
)

// MainWindow is the picker window.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	state  *app.State
	prefs  *prefs.Prefs
	logger hclog.Logger

	plane          *picker.PlanePicker
	hue            *picker.HuePicker
	colorPanel     *panels.ColorPanel
	outputPanel    *panels.OutputPanel
	formatSelector *panels.FormatSelector
	themeButton    *widget.Button

	quit func()
}

// New creates the window. p may be nil, in which case nothing is persisted.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs, logger hclog.Logger) *MainWindow {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	mw := &MainWindow{
		Window: newWindow(fyneApp),
		app:    fyneApp,
		state:  state,
		prefs:  p,
		logger: logger.Named("window"),
		quit:   fyneApp.Quit,
	}
	mw.SetTitle(title)
	if icon, err := iconResource(); err == nil {
		mw.SetIcon(icon)
	} else {
		mw.logger.Debug("no window icon", "error", err)
	}

	fyneApp.Settings().SetTheme(app.NewTheme(state.Theme()))

	mw.setupUI()
	mw.setupKeys()
	mw.setupEventHandlers()

	return mw
}

// newWindow prefers an undecorated window where the driver supports one.
func newWindow(fyneApp fyne.App) fyne.Window {
	if drv, ok := fyneApp.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return fyneApp.NewWindow(title)
}

func iconResource() (fyne.Resource, error) {
	img := gradient.Scale(gradient.Plane(iconHue), iconSize, iconSize)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return fyne.NewStaticResource("hexpick.png", buf.Bytes()), nil
}

// setupUI creates the window layout.
func (mw *MainWindow) setupUI() {
	mw.plane = picker.NewPlanePicker(mw.state)
	mw.hue = picker.NewHuePicker(mw.state)
	mw.colorPanel = panels.NewColorPanel(mw.state, mw.logger)
	mw.outputPanel = panels.NewOutputPanel(mw.state, mw.Clipboard())
	mw.formatSelector = panels.NewFormatSelector(mw.state)

	pickers := container.NewHBox(mw.plane, layout.NewSpacer(), mw.hue)

	content := container.NewVBox(
		pickers,
		mw.colorPanel.Container(),
		container.NewCenter(mw.formatSelector.Container()),
		mw.outputPanel.Container(),
	)

	root := container.NewBorder(
		mw.createTopBar(),            // top
		nil,                          // bottom
		nil,                          // left
		nil,                          // right
		container.NewPadded(content), // center
	)

	mw.SetContent(root)
	mw.SetFixedSize(true)
	mw.Resize(root.MinSize())
}

// createTopBar creates the theme toggle, title and close button row.
func (mw *MainWindow) createTopBar() fyne.CanvasObject {
	mw.themeButton = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		mw.state.SetTheme(mw.state.Theme().Swap())
	})
	mw.themeButton.Importance = widget.LowImportance

	closeButton := widget.NewButtonWithIcon("", theme.CancelIcon(), mw.onQuit)
	closeButton.Importance = widget.DangerImportance

	label := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(nil, widget.NewSeparator(), mw.themeButton, closeButton, label)
}

// setupKeys registers the window keyboard handling.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mw.onQuit()
		}
	})
	mw.Canvas().AddShortcut(&fyne.ShortcutPaste{}, func(fyne.Shortcut) {
		mw.onPaste()
	})
	// Tab is taken by focus traversal, so the format toggle needs a modifier.
	mw.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyF,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		mw.onToggleFormat()
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventColorChanged, func(data interface{}) {
		mw.plane.Refresh()
		mw.hue.Refresh()
	})

	mw.state.On(app.EventThemeChanged, func(data interface{}) {
		if mode, ok := data.(app.ThemeMode); ok {
			mw.app.Settings().SetTheme(app.NewTheme(mode))
			mw.logger.Debug("theme changed", "theme", mode)
		}
		mw.SavePreferences()
	})

	mw.state.On(app.EventOutputChanged, func(data interface{}) {
		mw.SavePreferences()
	})
}

// SavePreferences persists the theme and output format.
func (mw *MainWindow) SavePreferences() {
	if mw.prefs == nil {
		return
	}
	mw.prefs.SetString(prefs.KeyTheme, mw.state.Theme().String())
	mw.prefs.SetString(prefs.KeyOutput, mw.state.Format().String())
	if err := mw.prefs.Save(); err != nil {
		mw.logger.Warn("failed to save preferences", "path", mw.prefs.Path(), "error", err)
	}
}

// WatchBinary offers a restart whenever reloader sees a rebuilt binary.
func (mw *MainWindow) WatchBinary(reloader *app.HotReloader) {
	reloader.OnNewBinary(func() {
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				mw.SavePreferences()
				if err := reloader.Restart(); err != nil {
					mw.logger.Error("restart failed", "error", err)
				}
			}, mw.Window)
	})
	reloader.Start()
}

func (mw *MainWindow) onToggleFormat() {
	mw.state.SetFormat(mw.state.Format().Toggle())
}

func (mw *MainWindow) onPaste() {
	mw.colorPanel.Apply(mw.Clipboard().Content())
}

func (mw *MainWindow) onQuit() {
	mw.logger.Debug("quit requested")
	mw.quit()
}
