//go:build !windows

// terminal_host.go - Raw-mode stdin capture for the terminal backend

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// keyPollInterval paces the non-blocking stdin poll when no bytes are
// pending.
const keyPollInterval = 5 * time.Millisecond

// TerminalHost owns the controlling tty for the terminal backend: it
// switches stdin to raw non-blocking mode and feeds each key byte to a
// routing function until stopped. Interactive use only, never tests.
type TerminalHost struct {
	route  func(byte)
	fd     int
	saved  *term.State
	nonblk bool
	quit   chan struct{}
	done   chan struct{}
	once   sync.Once
}

func NewTerminalHost(route func(byte)) *TerminalHost {
	return &TerminalHost{
		route: route,
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start switches stdin to raw non-blocking mode and launches the read
// loop. On any setup failure the tty is left as found and the host
// reports itself finished; key input is then simply absent.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	saved, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.saved = saved

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.saved)
		h.saved = nil
		close(h.done)
		return
	}
	h.nonblk = true

	go h.readLoop()
}

// readLoop polls stdin one byte at a time. Raw mode hands us CR for
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

		n, err := syscall.Read(h.fd, buf)
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
		switch {
		case err == syscall.EAGAIN || err == syscall.EWOULDBLOCK:
			time.Sleep(keyPollInterval)
		case err != nil:
			return
		case n == 0:
			time.Sleep(keyPollInterval)
		}
	}
}

// Stop ends the read loop and hands the tty back in its original state.
func (h *TerminalHost) Stop() {
	h.once.Do(func() { close(h.quit) })
	<-h.done

	if h.nonblk {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblk = false
	}
	if h.saved != nil {
		_ = term.Restore(h.fd, h.saved)
		h.saved = nil
	}
}
