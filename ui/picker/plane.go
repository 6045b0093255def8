package picker

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"hexpick/internal/gradient"
	"hexpick/pkg/colorutil"
	"hexpick/pkg/geometry"
)

const (
	planeMinSize = 200
	ringOuter    = 7
	ringInner    = 5
)

// PlaneMarker returns the marker center for c within a plane of the given size.
func PlaneMarker(c colorutil.Color, size geometry.Size) geometry.Point2D {
	_, s, v := c.HSV()
	return geometry.NewPoint2D(s, 1-v).Clamp().Mul(size)
}

// PlanePicker is the square saturation/value plane for the current hue.
type PlanePicker struct {
	widget.BaseWidget

	model   Model
	cache   *gradient.PlaneCache
	pointer *pointer
}

var (
	_ desktop.Mouseable  = (*PlanePicker)(nil)
	_ desktop.Cursorable = (*PlanePicker)(nil)
	_ fyne.Draggable     = (*PlanePicker)(nil)
)

// NewPlanePicker creates a plane editing model.
func NewPlanePicker(model Model) *PlanePicker {
	p := &PlanePicker{
		model: model,
		cache: gradient.NewPlaneCache(model.Selection().Hue),
	}
	p.pointer = &pointer{
		interaction: NewInteraction(PlaneProjection{}),
		host:        modelHost{model: model, redraw: p.Refresh},
		size:        p.Size,
	}
	p.ExtendBaseWidget(p)
	return p
}

// Interaction exposes the pointer state machine.
func (p *PlanePicker) Interaction() *Interaction {
	return p.pointer.interaction
}

// Cache exposes the plane image cache.
func (p *PlanePicker) Cache() *gradient.PlaneCache {
	return p.cache
}

func (p *PlanePicker) MouseDown(ev *desktop.MouseEvent) { p.pointer.press(ev) }
func (p *PlanePicker) MouseUp(*desktop.MouseEvent)      { p.pointer.release() }
func (p *PlanePicker) Dragged(ev *fyne.DragEvent)       { p.pointer.move(ev) }
func (p *PlanePicker) DragEnd()                         { p.pointer.release() }

func (p *PlanePicker) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (p *PlanePicker) MinSize() fyne.Size {
	return fyne.NewSize(planeMinSize, planeMinSize)
}

func (p *PlanePicker) CreateRenderer() fyne.WidgetRenderer {
	r := &planeRenderer{
		picker: p,
		outer:  ring(colorutil.Black, 2),
		inner:  ring(colorutil.White, 1.5),
		hue:    p.cache.Hue(),
	}
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		return gradient.Scale(p.cache.Image(r.hue), w, h)
	})
	return r
}

func ring(c color.Color, width float32) *canvas.Circle {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = c
	circle.StrokeWidth = width
	return circle
}

type planeRenderer struct {
	picker *PlanePicker
	raster *canvas.Raster
	outer  *canvas.Circle
	inner  *canvas.Circle
	hue    float64
}

func (r *planeRenderer) Layout(size fyne.Size) {
	r.raster.Move(fyne.NewPos(0, 0))
	r.raster.Resize(size)

	m := PlaneMarker(r.picker.model.Selection().Color, toSize(size))
	center := fyne.NewPos(float32(m.X), float32(m.Y))
	place(r.outer, center, ringOuter)
	place(r.inner, center, ringInner)
}

func place(c *canvas.Circle, center fyne.Position, radius float32) {
	c.Move(center.SubtractXY(radius, radius))
	c.Resize(fyne.NewSize(2*radius, 2*radius))
}

func (r *planeRenderer) MinSize() fyne.Size {
	return r.picker.MinSize()
}

// Refresh moves the marker and regenerates the background only when the
// hue changed.
func (r *planeRenderer) Refresh() {
	hue := colorutil.NormalizeHue(r.picker.model.Selection().Hue)
	if hue != r.hue {
		r.hue = hue
		r.raster.Refresh()
	}
	r.Layout(r.picker.Size())
	r.outer.Refresh()
	r.inner.Refresh()
}

func (r *planeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.outer, r.inner}
}

func (r *planeRenderer) Destroy() {}
