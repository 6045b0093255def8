package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"hexpick/internal/app"
)

const swatchHeight = 50

// ColorPanel shows a swatch of the current color and a hex entry.
type ColorPanel struct {
	state     *app.State
	logger    hclog.Logger
	container *fyne.Container

	swatch *canvas.Rectangle
	entry  *widget.Entry
}

// NewColorPanel creates the swatch and entry bound to state.
func NewColorPanel(state *app.State, logger hclog.Logger) *ColorPanel {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	cp := &ColorPanel{
		state:  state,
		logger: logger,
	}

	cp.swatch = canvas.NewRectangle(state.Color().NRGBA())
	cp.swatch.CornerRadius = 6
	cp.swatch.SetMinSize(fyne.NewSize(0, swatchHeight))

	cp.entry = widget.NewEntry()
	cp.entry.SetPlaceHolder("#rrggbb")
	cp.entry.OnSubmitted = cp.Apply

	cp.container = container.NewVBox(cp.swatch, cp.entry)
	cp.refresh()

	state.On(app.EventColorChanged, func(_ interface{}) { cp.refresh() })

	return cp
}

// Container returns the panel container for embedding.
func (cp *ColorPanel) Container() fyne.CanvasObject {
	return cp.container
}

// Entry returns the hex entry.
func (cp *ColorPanel) Entry() *widget.Entry {
	return cp.entry
}

// Swatch returns the color swatch.
func (cp *ColorPanel) Swatch() *canvas.Rectangle {
	return cp.swatch
}

// Apply sets the color from a hex string. Invalid input is logged and the
// previous color is restored in the entry.
func (cp *ColorPanel) Apply(text string) {
	if err := cp.state.SetHex(text); err != nil {
		cp.logger.Warn("ignoring color", "input", text, "error", err)
		cp.refresh()
	}
}

func (cp *ColorPanel) refresh() {
	c := cp.state.Color()
	cp.swatch.FillColor = c.NRGBA()
	cp.swatch.Refresh()
	cp.entry.SetText(c.Hex())
}
