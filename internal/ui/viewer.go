package ui

import (
	"bytes"
	"image"
	"image/png"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Viewer is the read-only window shown by -join. It renders PNG frames
// pushed by the host and has no drawing controls.
type Viewer struct {
	app    fyne.App
	win    fyne.Window
	img    *canvas.Image
	status *widget.Label
}

func NewViewer(addr string) *Viewer {
	myApp := app.New()
	win := myApp.NewWindow("SketchPad — viewing " + addr)
	win.Resize(fyne.NewSize(800, 600))

	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillContain
	status := widget.NewLabel("Connecting to " + addr + "...")

	win.SetContent(container.NewBorder(nil, status, nil, nil, img))
	return &Viewer{app: myApp, win: win, img: img, status: status}
}

// ShowFrame decodes a PNG frame from the host and displays it. Safe to call
// from the network goroutine.
func (v *Viewer) ShowFrame(frame []byte) {
	decoded, err := png.Decode(bytes.NewReader(frame))
	if err != nil {
		log.Printf("[viewer] discarding bad frame: %v", err)
		return
	}
	fyne.Do(func() {
		v.img.Image = decoded
		v.img.Refresh()
		v.status.SetText("Live")
	})
}

// SetStatus updates the status bar. Safe to call from any goroutine.
func (v *Viewer) SetStatus(text string) {
	fyne.Do(func() {
		v.status.SetText(text)
	})
}

func (v *Viewer) Run() {
	v.win.ShowAndRun()
}
