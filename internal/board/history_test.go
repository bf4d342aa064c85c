package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(id string) *Snapshot {
	return &Snapshot{ID: id, Width: 1, Height: 1, Pixels: make([]uint8, 4)}
}

func TestHistoryStackLIFO(t *testing.T) {
	h := newHistoryStack(10)
	h.push(snap("a"))
	h.push(snap("b"))
	h.push(snap("c"))

	assert.Equal(t, 3, h.depth())
	assert.Equal(t, "c", h.peek().ID)
	assert.Equal(t, "c", h.pop().ID)
	assert.Equal(t, "b", h.pop().ID)
	assert.Equal(t, 1, h.depth())
}

func TestHistoryStackEvictsOldest(t *testing.T) {
	h := newHistoryStack(3)
	for i := 0; i < 5; i++ {
		h.push(snap(fmt.Sprintf("s%d", i)))
	}

	require.Equal(t, 3, h.depth())
	assert.Equal(t, "s4", h.pop().ID)
	assert.Equal(t, "s3", h.pop().ID)
	assert.Equal(t, "s2", h.pop().ID, "s0 and s1 were evicted first")
	assert.Nil(t, h.pop())
}

func TestHistoryStackReset(t *testing.T) {
	h := newHistoryStack(5)
	h.push(snap("a"))
	h.reset()
	assert.Equal(t, 0, h.depth())
	assert.Nil(t, h.peek())
}

func TestSnapshotBlitCropsAndPads(t *testing.T) {
	b := NewBoard(4, 4)
	// Paint the whole 4x4 surface dark by blitting a hand-built snapshot.
	// Pixel bytes are premultiplied RGBA, so a dark opaque gray is
	// {0x10, 0x10, 0x10, 0xFF}.
	src := &Snapshot{ID: "dark", Width: 4, Height: 4, Pixels: make([]uint8, 4*4*4)}
	for i := 0; i < len(src.Pixels); i += 4 {
		src.Pixels[i] = 0x10
		src.Pixels[i+1] = 0x10
		src.Pixels[i+2] = 0x10
		src.Pixels[i+3] = 0xFF
	}
	src.blit(b.pixmap())
	assert.True(t, dark(b, 3, 3))

	// Enlarge: origin content survives, margins are background.
	b.Resize(6, 6)
	assert.True(t, dark(b, 3, 3))
	assert.True(t, white(b, 5, 5))
}
