package board

// Display describes the on-screen geometry of the surface at the moment an
// input event fired. The host layout can change between events, so callers
// pass a fresh Display with every pointer event instead of caching one.
type Display struct {
	OffsetX, OffsetY float32 // on-screen origin of the surface
	Width, Height    float32 // on-screen size of the surface
}

// toSurface converts device event coordinates to surface-buffer coordinates:
// subtract the on-screen origin, then scale each axis by the ratio of buffer
// dimension to on-screen dimension.
func (d Display) toSurface(x, y float32, bufW, bufH int) (float64, float64) {
	sx := float64(x - d.OffsetX)
	sy := float64(y - d.OffsetY)
	if d.Width > 0 {
		sx *= float64(bufW) / float64(d.Width)
	}
	if d.Height > 0 {
		sy *= float64(bufH) / float64(d.Height)
	}
	return sx, sy
}

// rectSpan normalizes two opposite corners into an origin plus non-negative
// extents, so a drag up or to the left produces the mirrored rectangle.
func rectSpan(x1, y1, x2, y2 float64) (x, y, w, h float64) {
	x, w = x1, x2-x1
	if w < 0 {
		x, w = x2, -w
	}
	y, h = y1, y2-y1
	if h < 0 {
		y, h = y2, -h
	}
	return x, y, w, h
}
