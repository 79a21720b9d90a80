//go:build windows

// terminal_host_windows.go - Raw-mode stdin capture, Windows console flavour

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// keyPollInterval paces the stdin loop when a read returns nothing.
const keyPollInterval = 5 * time.Millisecond

// TerminalHost owns the console for the terminal backend: it switches
// stdin to raw mode and feeds each key byte to a routing function
// until stopped. Interactive use only, never tests.
type TerminalHost struct {
	route func(byte)
	fd    int
	saved *term.State
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once
}

func NewTerminalHost(route func(byte)) *TerminalHost {
	return &TerminalHost{
		route: route,
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start switches stdin to raw mode and launches the read loop. On
// setup failure the console is left as found and key input is simply
// absent. There is no non-blocking console flag here, so the loop
// issues blocking reads.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	saved, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.saved = saved

	go h.readLoop()
}

// readLoop reads stdin one byte at a time. Raw mode hands us CR for
// Enter and DEL for Backspace; the text engine wants LF and BS, so
// both are rewritten before routing.
func (h *TerminalHost) readLoop() {
	defer close(h.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-h.quit:
			return
		default:
		}

		n, err := os.Stdin.Read(buf)
		if n > 0 {
			switch buf[0] {
			case '\r':
				h.route('\n')
			case 0x7F:
				h.route(0x08)
			default:
				h.route(buf[0])
			}
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(keyPollInterval)
		}
	}
}

// Stop ends the read loop and hands the console back in its original
// state. A read blocked in the console only returns with more input or
// process exit, so the wait for the loop is bounded rather than
// unconditional.
func (h *TerminalHost) Stop() {
	h.once.Do(func() { close(h.quit) })

	select {
	case <-h.done:
	case <-time.After(100 * time.Millisecond):
	}

	if h.saved != nil {
		_ = term.Restore(h.fd, h.saved)
		h.saved = nil
	}
}
