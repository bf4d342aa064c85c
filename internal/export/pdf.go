// Package export writes the board surface to file formats the engine does
// not produce itself.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// A4 landscape with a 10mm margin.
const (
	pageW  = 297.0
	pageH  = 210.0
	margin = 10.0
	availW = pageW - 2*margin
	availH = pageH - 2*margin
)

// WritePDF embeds the surface image into a single-page landscape A4 PDF,
// scaled to fit the page while keeping the aspect ratio.
func WritePDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode surface: %w", err)
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("surface", opts, &buf)

	iw := float64(img.Bounds().Dx())
	ih := float64(img.Bounds().Dy())
	scale := availW / iw
	if ih*scale > availH {
		scale = availH / ih
	}
	p.ImageOptions("surface", margin, margin, iw*scale, ih*scale, false, opts, 0, "")

	return p.Output(w)
}
