// Package panels provides the panels around the picker widgets.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"hexpick/internal/app"
	"hexpick/internal/output"
)

// OutputPanel lists the current color in each notation with a copy button.
type OutputPanel struct {
	state     *app.State
	container *fyne.Container

	rows []outputRow
}

type outputRow struct {
	label  *widget.Label
	button *CopyButton
}

// NewOutputPanel creates the panel and keeps it in sync with state.
func NewOutputPanel(state *app.State, clipboard fyne.Clipboard) *OutputPanel {
	op := &OutputPanel{state: state}

	box := container.NewVBox()
	for range output.Lines(state.Format(), state.Color()) {
		row := outputRow{
			label:  widget.NewLabel(""),
			button: NewCopyButton(clipboard, ""),
		}
		row.label.TextStyle = fyne.TextStyle{Monospace: true}
		op.rows = append(op.rows, row)
		box.Add(container.NewHBox(row.label, layout.NewSpacer(), row.button))
	}
	op.container = box
	op.refresh()

	state.On(app.EventColorChanged, func(_ interface{}) { op.refresh() })
	state.On(app.EventOutputChanged, func(_ interface{}) { op.refresh() })

	return op
}

// Container returns the panel container for embedding.
func (op *OutputPanel) Container() fyne.CanvasObject {
	return op.container
}

// Shown returns the displayed text of every row.
func (op *OutputPanel) Shown() []string {
	out := make([]string, len(op.rows))
	for i, r := range op.rows {
		out[i] = r.label.Text
	}
	return out
}

// CopyButton returns the copy button of row i.
func (op *OutputPanel) CopyButton(i int) *CopyButton {
	return op.rows[i].button
}

func (op *OutputPanel) refresh() {
	lines := output.Lines(op.state.Format(), op.state.Color())
	for i, line := range lines {
		if i >= len(op.rows) {
			break
		}
		op.rows[i].label.SetText(line.Shown)
		op.rows[i].button.SetContent(line.Copied)
	}
}

// FormatSelector switches between the css and ori output notations.
type FormatSelector struct {
	state     *app.State
	container *fyne.Container
	buttons   map[output.Format]*widget.Button
}

// NewFormatSelector creates the two-button selector.
func NewFormatSelector(state *app.State) *FormatSelector {
	fs := &FormatSelector{
		state:   state,
		buttons: make(map[output.Format]*widget.Button),
	}

	box := container.NewHBox()
	for _, f := range []output.Format{output.CSS, output.Structured} {
		f := f
		btn := widget.NewButton(f.String(), func() { state.SetFormat(f) })
		fs.buttons[f] = btn
		box.Add(btn)
	}
	fs.container = box
	fs.refresh()

	state.On(app.EventOutputChanged, func(_ interface{}) { fs.refresh() })

	return fs
}

// Container returns the selector container for embedding.
func (fs *FormatSelector) Container() fyne.CanvasObject {
	return fs.container
}

// Button returns the button selecting f.
func (fs *FormatSelector) Button(f output.Format) *widget.Button {
	return fs.buttons[f]
}

func (fs *FormatSelector) refresh() {
	current := fs.state.Format()
	for f, btn := range fs.buttons {
		if f == current {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
}
