package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// dragArea is a transparent overlay that lets the frameless panel be moved by
// dragging anywhere on it.
type dragArea struct {
	widget.BaseWidget
	onDrag func(dx, dy float32)
}

func newDragArea(onDrag func(dx, dy float32)) *dragArea {
	d := &dragArea{onDrag: onDrag}
	d.ExtendBaseWidget(d)
	return d
}

// Dragged forwards the drag delta to the window mover.
func (d *dragArea) Dragged(ev *fyne.DragEvent) {
	if d.onDrag != nil {
		d.onDrag(ev.Dragged.DX, ev.Dragged.DY)
	}
}

// DragEnd implements fyne.Draggable. The position is intentionally not
// persisted.
func (d *dragArea) DragEnd() {}

// CreateRenderer returns a fully transparent renderer.
func (d *dragArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
