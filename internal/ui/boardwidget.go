package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/board"
)

// BoardWidget hosts the drawing engine inside a Fyne widget. It forwards
// pointer events to the engine together with the widget's geometry at event
// time, and renders the engine's surface through a canvas.Raster.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{board: b}
	w.ExtendBaseWidget(w)
	return w
}

// display reports the widget's current on-screen geometry. Event positions
// are widget-local so the origin offset is zero; the size is re-read on
// every event because layout can change between events.
func (w *BoardWidget) display() board.Display {
	size := w.Size()
	return board.Display{Width: size.Width, Height: size.Height}
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.PointerDown(e.Position.X, e.Position.Y, w.display())
	}
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.PointerUp(e.Position.X, e.Position.Y, w.display())
		w.Refresh()
	}
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.board.PointerMove(e.Position.X, e.Position.Y, w.display())
	w.Refresh()
}

// DragEnd carries no position, so the engine ends the gesture at its last
// known point. Right after MouseUp this is a no-op.
func (w *BoardWidget) DragEnd() {
	w.board.EndGesture()
	w.Refresh()
}

// MouseOut is an End-class event: a gesture that leaves the surface is
// committed where it last was.
func (w *BoardWidget) MouseOut() {
	w.board.EndGesture()
	w.Refresh()
}

func (w *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// Detach releases the widget's hold on the engine. The engine discards its
// history and ignores all further input.
func (w *BoardWidget) Detach() {
	w.board.Close()
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{w: w}
	r.raster = canvas.NewRaster(func(int, int) image.Image {
		return w.board.Image()
	})
	return r
}

type boardRenderer struct {
	w      *BoardWidget
	raster *canvas.Raster
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

// Layout keeps the engine buffer bound to the widget's on-screen size.
func (r *boardRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.w.board.Resize(int(size.Width), int(size.Height))
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *boardRenderer) Destroy() {}
