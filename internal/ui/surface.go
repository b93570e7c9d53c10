package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/yearglass/yearglass/internal/appearance"
	"github.com/yearglass/yearglass/internal/model"
	"github.com/yearglass/yearglass/internal/progress"
	"github.com/yearglass/yearglass/internal/shell"
)

// Surface is the widget's presentation layer: a square panel with one dot per
// day of the year, a caption and the remaining-percent headline.
type Surface struct {
	app    fyne.App
	window fyne.Window
	look   appearance.Appearance
	info   progress.Info

	background *canvas.Rectangle
	caption    *canvas.Text
	percent    *canvas.Text
	dots       []*canvas.Circle
	drag       *dragArea

	handle model.SurfaceHandle
}

// NewSurface builds the widget window. The window is not shown yet; the
// native handle only becomes available after Show.
func NewSurface(app fyne.App, look appearance.Appearance) *Surface {
	s := &Surface{
		app:  app,
		look: look,
	}

	s.window = app.NewWindow("Yearglass")
	s.window.SetFixedSize(true)

	s.background = canvas.NewRectangle(look.BackgroundColor())
	s.caption = canvas.NewText(CaptionText, look.CaptionColor())
	s.caption.TextSize = CaptionTextSize
	s.caption.Alignment = fyne.TextAlignCenter
	s.percent = canvas.NewText("", look.TextColor())
	s.percent.TextSize = PercentTextSize
	s.percent.TextStyle = fyne.TextStyle{Bold: true}
	s.percent.Alignment = fyne.TextAlignCenter
	s.drag = newDragArea(s.moveBy)

	s.rebuild()
	return s
}

// Window exposes the underlying fyne window for lifecycle calls in main.
func (s *Surface) Window() fyne.Window {
	return s.window
}

// Show makes the widget visible. Must be called before attachment: the
// native handle does not exist until the window is realized.
func (s *Surface) Show() {
	s.window.Show()
}

// PushProgress updates the displayed year progress. Called on the UI thread.
func (s *Surface) PushProgress(info progress.Info) {
	sameShape := info.TotalDays == s.info.TotalDays
	s.info = info

	if !sameShape {
		s.rebuild()
		return
	}

	// Same grid shape: only recolor the dots and update the label
	for i, dot := range s.dots {
		dot.FillColor = s.dotColor(i)
		dot.Refresh()
	}
	s.percent.Text = fmt.Sprintf(PercentLabelFormat, info.PercentRemaining())
	s.percent.Refresh()
}

// ApplyAppearance swaps colors and layout, e.g. after a hot reload of the
// appearance file. Called on the UI thread.
func (s *Surface) ApplyAppearance(look appearance.Appearance) {
	s.look = look
	s.background.FillColor = look.BackgroundColor()
	s.caption.Color = look.CaptionColor()
	s.percent.Color = look.TextColor()
	s.rebuild()
}

// rebuild recomputes the full layout: dot count, window size and positions.
func (s *Surface) rebuild() {
	total := s.info.TotalDays
	if total == 0 {
		total = progress.DaysRegularYear
	}

	grid := s.look.Grid
	cell := float32(grid.DotSize + grid.Gap)
	rows := int(math.Ceil(float64(total) / float64(grid.DotsPerRow)))

	gridW := float32(grid.DotsPerRow) * cell
	gridH := float32(rows) * cell
	pad := float32(grid.Padding)

	side := gridW + pad*2
	if h := gridH + pad*2 + TextBlockHeight; h > side {
		side = h
	}

	startX := (side - gridW) / 2
	startY := (side-gridH-TextBlockHeight)/2 - 12

	// Grow or shrink the dot pool to the year's length
	for len(s.dots) < total {
		s.dots = append(s.dots, canvas.NewCircle(s.look.RemainingColor()))
	}
	s.dots = s.dots[:total]

	objects := make([]fyne.CanvasObject, 0, total+4)

	s.background.CornerRadius = float32(s.look.Window.CornerRadius)
	s.background.FillColor = s.look.BackgroundColor()
	s.background.Move(fyne.NewPos(0, 0))
	s.background.Resize(fyne.NewSize(side, side))
	objects = append(objects, s.background)

	dotSize := fyne.NewSize(float32(grid.DotSize), float32(grid.DotSize))
	for i, dot := range s.dots {
		row := i / grid.DotsPerRow
		col := i % grid.DotsPerRow
		dot.FillColor = s.dotColor(i)
		dot.Move(fyne.NewPos(startX+float32(col)*cell, startY+float32(row)*cell))
		dot.Resize(dotSize)
		objects = append(objects, dot)
	}

	s.caption.Color = s.look.CaptionColor()
	s.caption.Move(fyne.NewPos(0, side-TextBlockHeight+LabelSpacing))
	s.caption.Resize(fyne.NewSize(side, CaptionTextSize+LabelSpacing))
	objects = append(objects, s.caption)

	s.percent.Text = fmt.Sprintf(PercentLabelFormat, s.info.PercentRemaining())
	s.percent.Color = s.look.TextColor()
	s.percent.Move(fyne.NewPos(0, side-PercentTextSize-LabelSpacing*2))
	s.percent.Resize(fyne.NewSize(side, PercentTextSize+LabelSpacing))
	objects = append(objects, s.percent)

	// Transparent overlay that captures drags across the whole panel
	s.drag.Move(fyne.NewPos(0, 0))
	s.drag.Resize(fyne.NewSize(side, side))
	objects = append(objects, s.drag)

	s.window.SetContent(container.NewWithoutLayout(objects...))
	s.window.Resize(fyne.NewSize(side, side))
}

func (s *Surface) dotColor(index int) color.NRGBA {
	if index < s.info.DayOfYear {
		return s.look.ElapsedColor()
	}
	return s.look.RemainingColor()
}

// moveBy drags the native window by a delta in logical units. While embedded,
// WorkerW spans the full screen at the origin, so screen coordinates from
// GetWindowRect line up with the parent's client space.
func (s *Surface) moveBy(dx, dy float32) {
	handle, ok := s.NativeHandle()
	if !ok {
		return
	}

	scale := s.window.Canvas().Scale()
	x, y, err := shell.SurfaceOrigin(handle)
	if err != nil {
		return
	}
	_ = shell.MoveSurface(handle, x+int(dx*scale), y+int(dy*scale))
}

// NativeHandle resolves and caches the native window handle. It reports false
// until the window has been shown, and always on platforms without native
// handle access.
func (s *Surface) NativeHandle() (model.SurfaceHandle, bool) {
	if !s.handle.IsZero() {
		return s.handle, true
	}

	handle, ok := nativeHandle(s.window)
	if ok {
		s.handle = handle
	}
	return handle, ok
}
