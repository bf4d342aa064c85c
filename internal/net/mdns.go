package net

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_sketchpad._tcp"

// Advertise announces the share server on the local network so viewers can
// find it with -join auto. The caller shuts the returned server down on
// exit.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // domain, defaults to .local
		"", // hostname, defaults to the OS hostname
		port,
		nil, // IPs auto-detected
		[]string{"SketchPad"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Discover browses the local network for a shared board and returns the
// first host:port it finds.
func Discover() (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)
	go func() {
		for e := range entries {
			if addr, ok := entryAddr(e); ok {
				select {
				case found <- addr:
				default:
				}
			}
		}
	}()

	err := mdns.Lookup(serviceType, entries)
	// Lookup stops sending once it returns; closing here lets the drain
	// goroutine exit.
	close(entries)
	if err != nil {
		return "", fmt.Errorf("mDNS lookup: %w", err)
	}

	select {
	case addr := <-found:
		return addr, nil
	default:
		return "", fmt.Errorf("no shared board found on the local network")
	}
}

// entryAddr extracts a dialable host:port from a browse result. Entries
// without an IPv4 address or port are incomplete records and are skipped.
func entryAddr(e *mdns.ServiceEntry) (string, bool) {
	if e.AddrV4 == nil || e.Port == 0 {
		return "", false
	}
	return fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port), true
}
