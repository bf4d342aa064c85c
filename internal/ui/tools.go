package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/board"
	"sketchpad/internal/export"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The Main Toolbar ---
func NewToolbar(b *board.Board, bw *BoardWidget, win fyne.Window) fyne.CanvasObject {
	// --- Tool Picker ---
	toolSelect := widget.NewSelect([]string{
		string(board.ToolFreehand),
		string(board.ToolRectangle),
		string(board.ToolCircle),
		string(board.ToolLine),
	}, func(v string) {
		b.SetTool(board.Tool(v))
	})
	toolSelect.SetSelected(string(b.Tool()))

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		b.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(board.MinStrokeWidth, board.MaxStrokeWidth)
	strokeSlider.Step = 1
	strokeSlider.SetValue(float64(b.StrokeWidth()))
	strokeSlider.OnChanged = func(val float64) {
		b.SetStrokeWidth(int(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- History and Export Actions ---
	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			b.Undo()
			bw.Refresh()
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			b.Redo()
			bw.Refresh()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			dialog.ShowConfirm("Clear board", "Erase the whole drawing?", func(ok bool) {
				if ok {
					b.Clear()
					bw.Refresh()
				}
			}, win)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			savePNG(b, win)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			savePDF(b, win)
		}),
	)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolSelect,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)
}

func savePNG(b *board.Board, win fyne.Window) {
	dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		data, err := b.Export("image/png")
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if _, err := wc.Write(data); err != nil {
			dialog.ShowError(err, win)
		}
	}, win)
}

func savePDF(b *board.Board, win fyne.Window) {
	dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := export.WritePDF(wc, b.Image()); err != nil {
			dialog.ShowError(err, win)
		}
	}, win)
}
