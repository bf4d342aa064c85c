package net

import (
	stdnet "net"
	"testing"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryAddr(t *testing.T) {
	addr, ok := entryAddr(&mdns.ServiceEntry{
		AddrV4: stdnet.IPv4(192, 168, 1, 20),
		Port:   8787,
	})
	require.True(t, ok)
	assert.Equal(t, "192.168.1.20:8787", addr)

	_, ok = entryAddr(&mdns.ServiceEntry{Port: 8787})
	assert.False(t, ok, "entries without an IPv4 address are skipped")

	_, ok = entryAddr(&mdns.ServiceEntry{AddrV4: stdnet.IPv4(192, 168, 1, 20)})
	assert.False(t, ok, "entries without a port are skipped")
}

func TestOutgoingIP(t *testing.T) {
	ip, err := OutgoingIP()
	require.NoError(t, err)
	assert.NotNil(t, stdnet.ParseIP(ip), "result must be a literal IP address")
}
