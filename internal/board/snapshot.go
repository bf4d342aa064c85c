package board

import (
	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// Snapshot is a full copy of the surface's pixel content at a point in time.
// The undo and redo stacks hold these; one more serves as the rollback
// reference while a shape gesture is previewing.
type Snapshot struct {
	ID     string
	Width  int
	Height int
	Pixels []uint8 // RGBA, row-major, Width*4 stride
}

// capture copies the pixmap's current content into a new snapshot.
func capture(pm *gg.Pixmap) *Snapshot {
	return &Snapshot{
		ID:     uuid.NewString(),
		Width:  pm.Width(),
		Height: pm.Height(),
		Pixels: append([]uint8(nil), pm.Data()...),
	}
}

// blit writes the snapshot into pm at the origin, 1:1, no rescaling. Rows
// and columns beyond the destination are cropped; where the snapshot does
// not reach, pm keeps whatever content it already has.
func (s *Snapshot) blit(pm *gg.Pixmap) {
	w := min(s.Width, pm.Width())
	h := min(s.Height, pm.Height())
	dst := pm.Data()
	for y := 0; y < h; y++ {
		copy(dst[y*pm.Width()*4:][:w*4], s.Pixels[y*s.Width*4:][:w*4])
	}
}
