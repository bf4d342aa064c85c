package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/board"
)

// RunApp builds the editor window around an already-constructed engine and
// runs the event loop. The engine comes first and the UI is handed a
// reference; nothing here relies on initialization order side effects.
// shareLink, when non-empty, is shown in the status bar.
func RunApp(b *board.Board, shareLink string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("SketchPad")
	myWindow.Resize(fyne.NewSize(1024, 768))

	bw := NewBoardWidget(b)
	toolbar := NewToolbar(b, bw, myWindow)

	status := widget.NewLabel("Ready")
	if shareLink != "" {
		status.SetText("Sharing at " + shareLink)
	}

	content := container.NewBorder(toolbar, status, nil, nil, bw)
	myWindow.SetContent(content)
	myWindow.SetOnClosed(bw.Detach)
	myWindow.ShowAndRun()
}
