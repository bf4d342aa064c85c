package net

import (
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
)

// ViewerConn is the viewer side of a share session.
type ViewerConn struct {
	conn *websocket.Conn
}

// DialViewer connects to a host's share server and delivers every received
// board frame to onFrame from a background goroutine. onClose fires once
// when the connection ends, with the error that ended it.
func DialViewer(addr string, onFrame func([]byte), onClose func(error)) (*ViewerConn, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.String(), err)
	}

	v := &ViewerConn{conn: conn}
	go func() {
		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				if onClose != nil {
					onClose(err)
				}
				return
			}
			if mt == websocket.BinaryMessage {
				onFrame(data)
			}
		}
	}()
	return v, nil
}

func (v *ViewerConn) Close() error {
	return v.conn.Close()
}
