package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"sketchpad/internal/board"
	lnet "sketchpad/internal/net"
	"sketchpad/internal/ui"
)

const defaultPort = 8787

func main() {
	share := flag.Bool("share", false, "host a read-only LAN view of the board")
	port := flag.Int("port", defaultPort, "share server port")
	join := flag.String("join", "", `view a shared board: host:port, or "auto" to discover one via mDNS`)
	verbose := flag.Bool("v", false, "enable rendering backend debug logging")
	flag.Parse()

	if *verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *join != "" {
		runViewer(*join)
		return
	}
	runEditor(*share, *port)
}

func runEditor(share bool, port int) {
	log.Println("Starting as EDITOR")
	b := board.NewBoard(1024, 640)

	var shareLink string
	if share {
		hub := lnet.NewHub()

		// Every committed change pushes a fresh frame to all viewers.
		b.OnChange = func() {
			frame, err := b.Export("image/png")
			if err != nil {
				log.Printf("[share] frame export failed: %v", err)
				return
			}
			hub.Broadcast(frame)
		}

		go func() {
			if err := hub.Serve(port); err != nil {
				log.Fatalf("[share] server: %v", err)
			}
		}()

		if srv, err := lnet.Advertise(port); err != nil {
			log.Printf("[share] mDNS advertise failed: %v", err)
		} else {
			defer srv.Shutdown()
		}

		ip, err := lnet.OutgoingIP()
		if err != nil {
			log.Printf("[share] could not determine outgoing IP: %v", err)
			ip = "127.0.0.1"
		}
		shareLink = fmt.Sprintf("http://%s:%d", ip, port)
		log.Printf("[share] session %s at %s", hub.SessionID(), shareLink)
	}

	ui.RunApp(b, shareLink)
}

func runViewer(target string) {
	log.Println("Starting as VIEWER")
	if target == "auto" {
		addr, err := lnet.Discover()
		if err != nil {
			log.Fatalf("[viewer] discovery failed: %v", err)
		}
		log.Printf("[viewer] discovered shared board at %s", addr)
		target = addr
	}

	v := ui.NewViewer(target)
	go func() {
		conn, err := lnet.DialViewer(target, v.ShowFrame, func(err error) {
			v.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
		})
		if err != nil {
			v.SetStatus(fmt.Sprintf("Connection failed: %v", err))
			return
		}
		log.Printf("[viewer] connected to %s", target)
		_ = conn // closed when the process exits with the window
	}()
	v.Run()
}
