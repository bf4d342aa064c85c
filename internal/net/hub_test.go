package net

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder() (func([]byte), chan []byte) {
	got := make(chan []byte, 4)
	return func(frame []byte) {
		got <- append([]byte(nil), frame...)
	}, got
}

func TestHubBroadcastReachesViewer(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	onFrame, got := recorder()
	v, err := DialViewer(strings.TrimPrefix(srv.URL, "http://"), onFrame, nil)
	require.NoError(t, err)
	defer v.Close()

	require.Eventually(t, func() bool { return h.ViewerCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	h.Broadcast([]byte("frame-1"))
	select {
	case frame := <-got:
		assert.Equal(t, []byte("frame-1"), frame)
	case <-time.After(2 * time.Second):
		t.Fatal("no frame received")
	}
}

func TestHubReplaysLatestFrameOnConnect(t *testing.T) {
	h := NewHub()
	h.Broadcast([]byte("latest"))

	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	onFrame, got := recorder()
	v, err := DialViewer(strings.TrimPrefix(srv.URL, "http://"), onFrame, nil)
	require.NoError(t, err)
	defer v.Close()

	select {
	case frame := <-got:
		assert.Equal(t, []byte("latest"), frame)
	case <-time.After(2 * time.Second):
		t.Fatal("late joiner never saw the current board")
	}
}

func TestHubDropsDisconnectedViewer(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	onFrame, _ := recorder()
	v, err := DialViewer(strings.TrimPrefix(srv.URL, "http://"), onFrame, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return h.ViewerCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	v.Close()
	require.Eventually(t, func() bool { return h.ViewerCount() == 0 },
		2*time.Second, 10*time.Millisecond)
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, b := NewHub(), NewHub()
	assert.NotEmpty(t, a.SessionID())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}
