package picker

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"hexpick/internal/app"
	"hexpick/pkg/colorutil"
)

func mouseDown(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func greenState() *app.State {
	s := app.NewState(colorutil.BlackColor)
	s.SetSelection(app.Selection{Color: colorutil.FromHSV(120, 1, 0.5), Hue: 120})
	return s
}

func TestPlanePickerPointer(t *testing.T) {
	test.NewTempApp(t)

	state := greenState()
	var events int
	state.On(app.EventColorChanged, func(interface{}) { events++ })

	p := NewPlanePicker(state)
	p.Resize(fyne.NewSize(200, 200))
	r := test.WidgetRenderer(p)

	p.MouseDown(mouseDown(200, 0, desktop.MouseButtonPrimary))
	if got := state.Color().Hex(); got != "#00ff00" {
		t.Errorf("color after press = %s, want #00ff00", got)
	}
	if !p.Interaction().Dragging() {
		t.Error("expected dragging after press")
	}

	outer := r.Objects()[1]
	if pos := outer.Position(); pos.X != 200-ringOuter || pos.Y != -ringOuter {
		t.Errorf("marker position = %v, want (%d, %d)", pos, 200-ringOuter, -ringOuter)
	}

	p.Dragged(drag(-50, 300))
	if got := state.Color().Hex(); got != "#000000" {
		t.Errorf("color after overshooting drag = %s, want #000000", got)
	}
	if state.Selection().Hue != 120 {
		t.Errorf("plane drag changed hue to %v", state.Selection().Hue)
	}

	p.DragEnd()
	p.MouseUp(mouseDown(0, 0, desktop.MouseButtonPrimary))
	if p.Interaction().Dragging() {
		t.Error("expected idle after release")
	}

	p.Dragged(drag(100, 100))
	if got := state.Color().Hex(); got != "#000000" {
		t.Errorf("idle drag changed color to %s", got)
	}
	if events != 2 {
		t.Errorf("color events = %d, want 2", events)
	}
}

func TestPlanePickerIgnoresSecondaryButton(t *testing.T) {
	test.NewTempApp(t)

	state := greenState()
	p := NewPlanePicker(state)
	p.Resize(fyne.NewSize(200, 200))

	p.MouseDown(mouseDown(0, 0, desktop.MouseButtonSecondary))
	if p.Interaction().Dragging() {
		t.Error("secondary button started a drag")
	}
	if got := state.Color(); got != colorutil.FromHSV(120, 1, 0.5) {
		t.Errorf("secondary button changed color to %v", got)
	}
}

func TestHuePickerPointer(t *testing.T) {
	test.NewTempApp(t)

	state := greenState()
	h := NewHuePicker(state)
	h.Resize(fyne.NewSize(hueWidth, 200))
	r := test.WidgetRenderer(h)

	h.MouseDown(mouseDown(10, 100, desktop.MouseButtonPrimary))
	h.DragEnd()

	sel := state.Selection()
	if sel.Hue != 180 {
		t.Errorf("hue = %v, want 180", sel.Hue)
	}
	if !colorutil.AlmostEqual(sel.Color, colorutil.FromHSV(180, 1, 0.5), 1e-6) {
		t.Errorf("color = %v, want hsv(180, 1, 0.5)", sel.Color)
	}

	bar := r.Objects()[1]
	if y := bar.Position().Y; y != 100-barOuter/2 {
		t.Errorf("indicator y = %v, want %v", y, 100-barOuter/2)
	}
}

func TestPickerMinSize(t *testing.T) {
	test.NewTempApp(t)

	state := greenState()
	if got := NewHuePicker(state).MinSize(); got != fyne.NewSize(30, 200) {
		t.Errorf("hue MinSize = %v", got)
	}
	if got := NewPlanePicker(state).MinSize(); got != fyne.NewSize(200, 200) {
		t.Errorf("plane MinSize = %v", got)
	}
}
