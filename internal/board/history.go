package board

// historyStack is a bounded stack of surface snapshots. Pushing past the
// limit evicts the oldest entry first.
type historyStack struct {
	limit int
	snaps []*Snapshot
}

func newHistoryStack(limit int) *historyStack {
	return &historyStack{limit: limit}
}

func (h *historyStack) push(s *Snapshot) {
	h.snaps = append(h.snaps, s)
	if len(h.snaps) > h.limit {
		copy(h.snaps, h.snaps[1:])
		h.snaps[len(h.snaps)-1] = nil
		h.snaps = h.snaps[:len(h.snaps)-1]
	}
}

// pop removes and returns the top snapshot, or nil if the stack is empty.
func (h *historyStack) pop() *Snapshot {
	if len(h.snaps) == 0 {
		return nil
	}
	s := h.snaps[len(h.snaps)-1]
	h.snaps[len(h.snaps)-1] = nil
	h.snaps = h.snaps[:len(h.snaps)-1]
	return s
}

// peek returns the top snapshot without removing it, or nil if empty.
func (h *historyStack) peek() *Snapshot {
	if len(h.snaps) == 0 {
		return nil
	}
	return h.snaps[len(h.snaps)-1]
}

func (h *historyStack) depth() int {
	return len(h.snaps)
}

func (h *historyStack) reset() {
	h.snaps = nil
}
