package net

import (
	"fmt"
	"net"
)

// OutgoingIP returns the local address a viewer on the LAN can reach the
// share server at. The UDP dial never sends a packet; it only asks the OS
// which interface would route out.
func OutgoingIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No default route; pick a non-loopback interface address instead.
		return firstIPv4()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String(), nil
}

func firstIPv4() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", fmt.Errorf("list interface addresses: %w", err)
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4.String(), nil
		}
	}
	// Loopback still lets a same-host viewer connect.
	return "127.0.0.1", nil
}
