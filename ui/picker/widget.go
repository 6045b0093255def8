package picker

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"hexpick/internal/app"
	"hexpick/pkg/geometry"
)

// Model is the shared selection the pickers edit. *app.State satisfies it.
type Model interface {
	Selection() app.Selection
	SetSelection(sel app.Selection)
	Emit(event app.EventType, data interface{})
}

// modelHost adapts a Model and a widget's refresh to the Host signals.
type modelHost struct {
	model  Model
	redraw func()
}

func (h modelHost) Selection() app.Selection {
	return h.model.Selection()
}

func (h modelHost) Commit(sel app.Selection) {
	h.model.SetSelection(sel)
}

func (h modelHost) RequestRedraw() {
	if h.redraw != nil {
		h.redraw()
	}
}

func (h modelHost) RequestRefresh() {
	h.model.Emit(app.EventColorChanged, h.model.Selection())
}

// pointer routes Fyne mouse and drag events into an Interaction.
type pointer struct {
	interaction *Interaction
	host        Host
	size        func() fyne.Size
}

func (p *pointer) press(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	p.interaction.Press(toPoint(ev.Position), toSize(p.size()), p.host)
}

func (p *pointer) move(ev *fyne.DragEvent) {
	p.interaction.Move(toPoint(ev.Position), toSize(p.size()), p.host)
}

func (p *pointer) release() {
	p.interaction.Release()
}

func toPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}

func toSize(s fyne.Size) geometry.Size {
	return geometry.NewSize(float64(s.Width), float64(s.Height))
}
