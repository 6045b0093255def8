package mainwindow

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"hexpick/internal/app"
	"hexpick/internal/output"
	"hexpick/pkg/colorutil"
	"hexpick/ui/prefs"
)

func newTestWindow(t *testing.T) (*MainWindow, *app.State, string) {
	t.Helper()
	a := test.NewTempApp(t)

	dir := t.TempDir()
	p, err := prefs.LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}

	state := app.NewState(colorutil.BlackColor)
	mw := New(a, state, p, nil)
	t.Cleanup(mw.Close)
	return mw, state, dir
}

func TestToggleFormat(t *testing.T) {
	mw, state, dir := newTestWindow(t)

	mw.onToggleFormat()
	if state.Format() != output.Structured {
		t.Fatalf("format = %v, want structured", state.Format())
	}

	saved, err := prefs.LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := saved.String(prefs.KeyOutput); got != "ori" {
		t.Errorf("saved output = %q, want ori", got)
	}
}

func TestEscapeQuits(t *testing.T) {
	mw, _, _ := newTestWindow(t)

	quit := false
	mw.quit = func() { quit = true }
	mw.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if !quit {
		t.Error("escape did not quit")
	}
}

func TestPasteHex(t *testing.T) {
	mw, state, _ := newTestWindow(t)

	mw.Clipboard().SetContent("#ff8800")
	mw.onPaste()
	if got := state.Color().Hex(); got != "#ff8800" {
		t.Errorf("color = %s, want #ff8800", got)
	}

	mw.Clipboard().SetContent("orange")
	mw.onPaste()
	if got := state.Color().Hex(); got != "#ff8800" {
		t.Errorf("invalid paste changed color to %s", got)
	}
}

func TestThemeToggle(t *testing.T) {
	mw, state, dir := newTestWindow(t)

	test.Tap(mw.themeButton)
	if state.Theme() != app.ThemeLight {
		t.Fatalf("theme = %v, want light", state.Theme())
	}
	th, ok := mw.app.Settings().Theme().(*app.HexTheme)
	if !ok || th.Mode != app.ThemeLight {
		t.Errorf("app theme = %#v, want light HexTheme", mw.app.Settings().Theme())
	}

	saved, err := prefs.LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := saved.String(prefs.KeyTheme); got != "light" {
		t.Errorf("saved theme = %q, want light", got)
	}
}

func TestIconResource(t *testing.T) {
	res, err := iconResource()
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Content()) == 0 {
		t.Error("empty icon")
	}
}
