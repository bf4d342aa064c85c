// Package board implements the drawing-state engine: it owns the raster
// surface, interprets pointer gestures into freehand strokes or shapes, and
// keeps a bounded raster-snapshot history for undo/redo. UI wiring lives in
// internal/ui; this package has no Fyne dependency.
package board

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/gogpu/gg"
)

const (
	// DefaultHistoryLimit bounds the undo and redo stacks.
	DefaultHistoryLimit = 50

	MinStrokeWidth = 1
	MaxStrokeWidth = 50
)

// background is the opaque fill of a blank surface.
var background = gg.RGB(1, 1, 1)

// Board owns a raster surface and its interaction state. All methods are
// safe for use from the UI event goroutine and a share broadcaster; each
// operation runs to completion under one lock, no internal goroutines.
type Board struct {
	mu          sync.Mutex
	dc          *gg.Context
	tool        Tool
	strokeColor color.Color
	strokeWidth int

	undo, redo *historyStack

	// scratch holds the surface content captured at shape-gesture start.
	// Every preview frame restores it before redrawing the shape.
	scratch *Snapshot

	active         bool
	startX, startY float64
	lastX, lastY   float64

	closed bool

	// OnChange fires after any committed change to the surface: gesture
	// end, clear, undo, redo, resize. Set once during wiring, before
	// events start flowing.
	OnChange func()
}

// NewBoard creates a surface of the given pixel dimensions, filled with the
// background color, with the initial blank snapshot already on the undo
// stack.
func NewBoard(width, height int) *Board {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(background)
	b := &Board{
		dc:          dc,
		tool:        ToolFreehand,
		strokeColor: color.Black,
		strokeWidth: 3,
		undo:        newHistoryStack(DefaultHistoryLimit),
		redo:        newHistoryStack(DefaultHistoryLimit),
	}
	b.applyStyle()
	b.undo.push(capture(b.pixmap()))
	return b
}

func (b *Board) pixmap() *gg.Pixmap {
	return b.dc.ResizeTarget()
}

// applyStyle pushes the current stroke settings into the backend. Called
// after construction and after every resize, since the backend resets its
// path state when the buffer dimensions change.
func (b *Board) applyStyle() {
	b.dc.SetColor(b.strokeColor)
	b.dc.SetLineWidth(float64(b.strokeWidth))
	b.dc.SetLineCap(gg.LineCapRound)
	b.dc.SetLineJoin(gg.LineJoinRound)
}

// SetTool selects the active tool. Unknown tool identifiers are logged and
// ignored, and so are changes made mid-gesture: a gesture runs to its end
// with the tool it started with, since the shape tools depend on state
// captured at gesture start.
func (b *Board) SetTool(t Tool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if !t.valid() {
		log.Printf("[board] ignoring unknown tool %q", t)
		return
	}
	if b.active {
		log.Printf("[board] ignoring change to tool %q during an active gesture", t)
		return
	}
	b.tool = t
}

// SetColor sets the active stroke color.
func (b *Board) SetColor(c color.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.strokeColor = c
	b.dc.SetColor(c)
}

// SetStrokeWidth sets the active stroke width, silently clamped to
// [MinStrokeWidth, MaxStrokeWidth].
func (b *Board) SetStrokeWidth(w int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if w < MinStrokeWidth {
		w = MinStrokeWidth
	} else if w > MaxStrokeWidth {
		w = MaxStrokeWidth
	}
	b.strokeWidth = w
	b.dc.SetLineWidth(float64(w))
}

// Tool returns the active tool.
func (b *Board) Tool() Tool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tool
}

// StrokeWidth returns the active stroke width after clamping.
func (b *Board) StrokeWidth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.strokeWidth
}

// Width returns the surface buffer width in pixels.
func (b *Board) Width() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dc.Width()
}

// Height returns the surface buffer height in pixels.
func (b *Board) Height() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dc.Height()
}

// PointerDown starts a gesture at the given device coordinates. A Down
// while a gesture is already active is ignored.
func (b *Board) PointerDown(x, y float32, d Display) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || b.active {
		return
	}
	sx, sy := d.toSurface(x, y, b.dc.Width(), b.dc.Height())
	b.active = true
	b.startX, b.startY = sx, sy
	b.lastX, b.lastY = sx, sy
	if b.tool != ToolFreehand {
		b.scratch = capture(b.pixmap())
	}
}

// PointerMove extends the active gesture. Freehand paints the new segment
// directly onto the surface; shape tools restore the scratch snapshot and
// redraw the preview from the gesture start to the new point. Moves while
// idle are no-ops.
func (b *Board) PointerMove(x, y float32, d Display) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || !b.active {
		return
	}
	sx, sy := d.toSurface(x, y, b.dc.Width(), b.dc.Height())
	if b.tool == ToolFreehand {
		b.dc.DrawLine(b.lastX, b.lastY, sx, sy)
		b.strokePath()
	} else {
		b.scratch.blit(b.pixmap())
		b.drawShape(sx, sy)
	}
	b.lastX, b.lastY = sx, sy
}

// PointerUp ends the active gesture at the given device coordinates. Shape
// tools draw their final geometry in one last restore-and-draw pass; every
// gesture end pushes a snapshot and clears the redo stack. Ups while idle
// are no-ops.
func (b *Board) PointerUp(x, y float32, d Display) {
	b.mu.Lock()
	if b.closed || !b.active {
		b.mu.Unlock()
		return
	}
	sx, sy := d.toSurface(x, y, b.dc.Width(), b.dc.Height())
	b.finishGesture(sx, sy)
	b.mu.Unlock()
	b.notify()
}

// EndGesture ends the active gesture at its last known coordinates. This is
// the entry point for End-class events that carry no position, such as the
// pointer leaving the surface.
func (b *Board) EndGesture() {
	b.mu.Lock()
	if b.closed || !b.active {
		b.mu.Unlock()
		return
	}
	b.finishGesture(b.lastX, b.lastY)
	b.mu.Unlock()
	b.notify()
}

func (b *Board) finishGesture(x, y float64) {
	if b.tool != ToolFreehand {
		b.scratch.blit(b.pixmap())
		b.drawShape(x, y)
		b.scratch = nil
	}
	b.lastX, b.lastY = x, y
	b.active = false
	b.commit()
}

// drawShape strokes the active shape tool's outline from the gesture start
// to (x, y).
func (b *Board) drawShape(x, y float64) {
	switch b.tool {
	case ToolRectangle:
		rx, ry, rw, rh := rectSpan(b.startX, b.startY, x, y)
		b.dc.DrawRectangle(rx, ry, rw, rh)
	case ToolCircle:
		b.dc.DrawCircle(b.startX, b.startY, math.Hypot(x-b.startX, y-b.startY))
	case ToolLine:
		b.dc.DrawLine(b.startX, b.startY, x, y)
	}
	b.strokePath()
}

func (b *Board) strokePath() {
	if err := b.dc.Stroke(); err != nil {
		log.Printf("[board] stroke failed: %v", err)
	}
}

// commit pushes a snapshot of the current surface onto the undo stack and
// invalidates the redo stack. Caller holds b.mu.
func (b *Board) commit() {
	b.undo.push(capture(b.pixmap()))
	b.redo.reset()
}

func (b *Board) notify() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// restore replaces the surface content with the snapshot. A background fill
// first covers the case where the snapshot is smaller than the current
// buffer. Caller holds b.mu.
func (b *Board) restore(s *Snapshot) {
	b.dc.ClearWithColor(background)
	s.blit(b.pixmap())
}

// Undo reverts the surface to the previous snapshot. It reports false, with
// the surface unchanged, when only the irreducible initial snapshot remains.
func (b *Board) Undo() bool {
	b.mu.Lock()
	if b.closed || b.undo.depth() <= 1 {
		b.mu.Unlock()
		return false
	}
	b.redo.push(b.undo.pop())
	b.restore(b.undo.peek())
	b.mu.Unlock()
	b.notify()
	return true
}

// Redo re-applies the most recently undone snapshot. It reports false, with
// the surface unchanged, when the redo stack is empty.
func (b *Board) Redo() bool {
	b.mu.Lock()
	if b.closed || b.redo.depth() == 0 {
		b.mu.Unlock()
		return false
	}
	s := b.redo.pop()
	b.undo.push(s)
	b.restore(s)
	b.mu.Unlock()
	b.notify()
	return true
}

// CanUndo reports whether Undo would succeed.
func (b *Board) CanUndo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed && b.undo.depth() > 1
}

// CanRedo reports whether Redo would succeed.
func (b *Board) CanRedo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed && b.redo.depth() > 0
}

// HistoryDepth returns the number of snapshots on the undo stack, the
// initial blank one included.
func (b *Board) HistoryDepth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.undo.depth()
}

// Clear fills the surface with the background color. The cleared state is
// pushed to history, so a clear is undoable like any other action.
func (b *Board) Clear() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.dc.ClearWithColor(background)
	b.commit()
	b.mu.Unlock()
	b.notify()
}

// Resize changes the surface buffer dimensions, keeping existing content
// at 1:1 pixel scale anchored at the origin: enlarging reveals background
// at the margins, shrinking crops. Content is never rescaled. History is
// untouched; restoring an older, differently-sized snapshot crops or pads
// the same way.
func (b *Board) Resize(width, height int) {
	b.mu.Lock()
	if b.closed || width <= 0 || height <= 0 {
		b.mu.Unlock()
		return
	}
	if width == b.dc.Width() && height == b.dc.Height() {
		b.mu.Unlock()
		return
	}
	prev := capture(b.pixmap())
	if err := b.dc.Resize(width, height); err != nil {
		log.Printf("[board] resize to %dx%d failed: %v", width, height, err)
		b.mu.Unlock()
		return
	}
	b.dc.ClearWithColor(background)
	prev.blit(b.pixmap())
	b.applyStyle()
	b.mu.Unlock()
	b.notify()
}

// Export encodes the current surface content in the requested MIME format.
// "image/png" is the default when format is empty. Export is a pure read:
// a failed encode leaves surface and history untouched.
func (b *Board) Export(format string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, fmt.Errorf("board is closed")
	}
	var buf bytes.Buffer
	var err error
	switch format {
	case "", "image/png":
		err = b.dc.EncodePNG(&buf)
	case "image/jpeg":
		err = b.dc.EncodeJPEG(&buf, 90)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Image returns a copy of the current surface content.
func (b *Board) Image() image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pixmap().ToImage()
}

// Close discards the history stacks and the change callback and marks the
// board unusable. Every subsequent operation is a no-op or an error.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.active = false
	b.scratch = nil
	b.undo.reset()
	b.redo.reset()
	b.OnChange = nil
}
