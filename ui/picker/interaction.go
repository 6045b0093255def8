// Package picker provides the hue strip and saturation/value plane widgets.
//
// Both widgets share one pointer state machine (Interaction). They differ
// only in how a normalized position is projected onto the selection.
package picker

import (
	"hexpick/internal/app"
	"hexpick/pkg/colorutil"
	"hexpick/pkg/geometry"
)

// Host receives the outbound signals of an Interaction.
type Host interface {
	// Selection returns the currently committed selection.
	Selection() app.Selection
	// Commit stores a new selection.
	Commit(sel app.Selection)
	// RequestRedraw asks the widget to repaint itself.
	RequestRedraw()
	// RequestRefresh asks the application to refresh dependent views.
	RequestRefresh()
}

// Projection maps a normalized widget coordinate onto a selection.
type Projection interface {
	Apply(uv geometry.Point2D, sel app.Selection) app.Selection
}

// HueProjection drives hue from the vertical axis and keeps the current
// saturation and value.
type HueProjection struct{}

func (HueProjection) Apply(uv geometry.Point2D, sel app.Selection) app.Selection {
	hue := colorutil.NormalizeHue(geometry.Clamp01(uv.Y) * 360)
	_, s, v := sel.Color.HSV()
	return app.Selection{Color: colorutil.FromHSV(hue, s, v), Hue: hue}
}

// PlaneProjection drives saturation from x and value from y, with the
// top-left corner at full value.
type PlaneProjection struct{}

func (PlaneProjection) Apply(uv geometry.Point2D, sel app.Selection) app.Selection {
	u, v := geometry.Clamp01(uv.X), geometry.Clamp01(uv.Y)
	return app.Selection{Color: colorutil.FromHSV(sel.Hue, u, 1-v), Hue: sel.Hue}
}

// Interaction is the Idle/Dragging pointer state machine.
//
// The committed value is re-derived from every event position; the last
// normalized coordinate is only kept for inspection.
type Interaction struct {
	projection Projection
	dragging   bool
	last       geometry.Point2D
}

// NewInteraction creates an idle state machine for projection.
func NewInteraction(projection Projection) *Interaction {
	return &Interaction{projection: projection}
}

// Dragging reports whether a press is in progress.
func (in *Interaction) Dragging() bool {
	return in.dragging
}

// Last returns the most recent normalized coordinate.
func (in *Interaction) Last() geometry.Point2D {
	return in.last
}

// Press starts a drag when pos lies inside the widget bounds.
// It returns false and does nothing for presses outside.
func (in *Interaction) Press(pos geometry.Point2D, size geometry.Size, host Host) bool {
	if !geometry.RectFromSize(size).Contains(pos) {
		return false
	}
	in.dragging = true
	in.apply(pos, size, host)
	return true
}

// Move updates the selection while dragging. Positions outside the widget
// are clamped to the nearest edge. Idle moves are ignored.
func (in *Interaction) Move(pos geometry.Point2D, size geometry.Size, host Host) bool {
	if !in.dragging {
		return false
	}
	in.apply(pos, size, host)
	return true
}

// Release ends any drag.
func (in *Interaction) Release() {
	in.dragging = false
}

func (in *Interaction) apply(pos geometry.Point2D, size geometry.Size, host Host) {
	in.last = geometry.Normalize(pos, size)
	host.Commit(in.projection.Apply(in.last, host.Selection()))
	host.RequestRedraw()
	host.RequestRefresh()
}
