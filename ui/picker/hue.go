package picker

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"hexpick/internal/gradient"
	"hexpick/pkg/colorutil"
)

const (
	hueWidth             = 30
	hueMinHeight         = 200
	barOuter     float32 = 5 // indicator thickness including the dark outline
	barInner     float32 = 1
)

// HueIndicatorY returns the vertical offset of the hue indicator.
func HueIndicatorY(hue, height float64) float64 {
	return colorutil.NormalizeHue(hue) / 360 * height
}

// HuePicker is the vertical hue strip.
type HuePicker struct {
	widget.BaseWidget

	model   Model
	strip   *image.RGBA
	pointer *pointer
}

var (
	_ desktop.Mouseable  = (*HuePicker)(nil)
	_ desktop.Cursorable = (*HuePicker)(nil)
	_ fyne.Draggable     = (*HuePicker)(nil)
)

// NewHuePicker creates a hue strip editing model.
func NewHuePicker(model Model) *HuePicker {
	h := &HuePicker{
		model: model,
		strip: gradient.HueStrip(),
	}
	h.pointer = &pointer{
		interaction: NewInteraction(HueProjection{}),
		host:        modelHost{model: model, redraw: h.Refresh},
		size:        h.Size,
	}
	h.ExtendBaseWidget(h)
	return h
}

// Interaction exposes the pointer state machine.
func (h *HuePicker) Interaction() *Interaction {
	return h.pointer.interaction
}

func (h *HuePicker) MouseDown(ev *desktop.MouseEvent) { h.pointer.press(ev) }
func (h *HuePicker) MouseUp(*desktop.MouseEvent)      { h.pointer.release() }
func (h *HuePicker) Dragged(ev *fyne.DragEvent)       { h.pointer.move(ev) }
func (h *HuePicker) DragEnd()                         { h.pointer.release() }

func (h *HuePicker) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (h *HuePicker) MinSize() fyne.Size {
	return fyne.NewSize(hueWidth, hueMinHeight)
}

func (h *HuePicker) CreateRenderer() fyne.WidgetRenderer {
	r := &hueRenderer{
		picker: h,
		outer:  canvas.NewRectangle(colorutil.Black),
		inner:  canvas.NewRectangle(colorutil.White),
	}
	r.raster = canvas.NewRaster(func(w, hgt int) image.Image {
		return gradient.Scale(h.strip, w, hgt)
	})
	return r
}

type hueRenderer struct {
	picker *HuePicker
	raster *canvas.Raster
	outer  *canvas.Rectangle
	inner  *canvas.Rectangle
}

func (r *hueRenderer) Layout(size fyne.Size) {
	r.raster.Move(fyne.NewPos(0, 0))
	r.raster.Resize(size)

	y := float32(HueIndicatorY(r.picker.model.Selection().Hue, float64(size.Height)))
	r.outer.Move(fyne.NewPos(0, y-barOuter/2))
	r.outer.Resize(fyne.NewSize(size.Width, barOuter))
	r.inner.Move(fyne.NewPos(1, y-barInner/2))
	r.inner.Resize(fyne.NewSize(size.Width-2, barInner))
}

func (r *hueRenderer) MinSize() fyne.Size {
	return r.picker.MinSize()
}

// Refresh only repositions the indicator; the strip never changes.
func (r *hueRenderer) Refresh() {
	r.Layout(r.picker.Size())
	r.outer.Refresh()
	r.inner.Refresh()
}

func (r *hueRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.outer, r.inner}
}

func (r *hueRenderer) Destroy() {}
