// video_backend_terminal.go - ANSI half-block tty backend

/*
video_backend_terminal.go - Terminal display sink

Renders front-plane snapshots onto a tty using Unicode half blocks,
one character cell per 1x2 sampled pixel pair, with truecolor escapes
carrying the controller's ink and paper hints. The plane is block
sampled down to whatever the terminal can hold; a sampled pixel is lit
when any plane pixel inside its block is lit, which keeps single-pixel
strokes visible at any shrink factor.

Keyboard bytes arrive through a raw-mode TerminalHost and flow into
the registered key handler. Ctrl+C closes the Done channel instead of
being forwarded, which is how the hosting loop learns to exit.
*/

package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:terminal")
}

const terminalRenderInterval = 33 * time.Millisecond

type TerminalOutput struct {
	mu          sync.Mutex
	started     bool
	config      DisplayConfig
	frameCount  uint64
	refreshRate int

	lastFrame  FrameSnapshot
	haveFrame  bool
	frameDirty bool

	keyHandler func(byte)
	host       *TerminalHost

	stopCh chan struct{}
	loopWg sync.WaitGroup
	doneCh chan struct{}
}

func NewTerminalOutput() (VideoOutput, error) {
	return &TerminalOutput{
		refreshRate: ODC_REFRESH_HZ_PERF,
		doneCh:      make(chan struct{}),
	}, nil
}

func (to *TerminalOutput) Start() error {
	to.mu.Lock()
	defer to.mu.Unlock()
	if to.started {
		return nil
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return &VideoError{
			Operation: "terminal start",
			Details:   "stdout is not a terminal",
		}
	}
	to.started = true
	to.stopCh = make(chan struct{})

	// Alternate screen, hidden cursor, cleared scrollback region.
	os.Stdout.WriteString("\x1b[?1049h\x1b[?25l\x1b[2J")

	to.host = NewTerminalHost(to.routeKey)
	to.host.Start()

	to.loopWg.Add(1)
	go to.renderLoop()
	return nil
}

func (to *TerminalOutput) Stop() error {
	to.mu.Lock()
	if !to.started {
		to.mu.Unlock()
		return nil
	}
	to.started = false
	stopCh := to.stopCh
	host := to.host
	to.host = nil
	to.mu.Unlock()

	close(stopCh)
	to.loopWg.Wait()
	if host != nil {
		host.Stop()
	}

	// Restore colours, cursor and primary screen.
	os.Stdout.WriteString("\x1b[0m\x1b[?25h\x1b[?1049l")
	return nil
}

func (to *TerminalOutput) Close() error {
	return to.Stop()
}

func (to *TerminalOutput) IsStarted() bool {
	to.mu.Lock()
	defer to.mu.Unlock()
	return to.started
}

// Done closes when the user asks the tty session to end (Ctrl+C).
func (to *TerminalOutput) Done() <-chan struct{} {
	return to.doneCh
}

func (to *TerminalOutput) routeKey(b byte) {
	if b == 0x03 {
		select {
		case <-to.doneCh:
		default:
			close(to.doneCh)
		}
		return
	}
	to.mu.Lock()
	handler := to.keyHandler
	to.mu.Unlock()
	if handler != nil {
		handler(b)
	}
}

func (to *TerminalOutput) SetKeyHandler(fn func(byte)) {
	to.mu.Lock()
	to.keyHandler = fn
	to.mu.Unlock()
}

func (to *TerminalOutput) PushFrame(frame FrameSnapshot) {
	to.mu.Lock()
	to.lastFrame = frame
	to.haveFrame = true
	to.frameDirty = true
	to.mu.Unlock()
}

func (to *TerminalOutput) SetDisplayConfig(config DisplayConfig) error {
	to.mu.Lock()
	to.config = config
	to.mu.Unlock()
	return nil
}

func (to *TerminalOutput) GetDisplayConfig() DisplayConfig {
	to.mu.Lock()
	defer to.mu.Unlock()
	return to.config
}

func (to *TerminalOutput) WaitForVSync() error {
	time.Sleep(terminalRenderInterval)
	return nil
}

func (to *TerminalOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&to.frameCount)
}

func (to *TerminalOutput) GetRefreshRate() int {
	return to.refreshRate
}

// renderLoop repaints at a fixed cadence rather than per push; a tty
// cannot keep up with the controller's tick rate.
func (to *TerminalOutput) renderLoop() {
	defer to.loopWg.Done()
	ticker := time.NewTicker(terminalRenderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-to.stopCh:
			return
		case <-ticker.C:
			to.mu.Lock()
			dirty := to.haveFrame && to.frameDirty
			snap := to.lastFrame
			to.frameDirty = false
			to.mu.Unlock()
			if !dirty {
				continue
			}

			cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil || cols < 10 || rows < 4 {
				cols, rows = 80, 24
			}
			os.Stdout.WriteString(composeTerminalFrame(snap, cols, rows))
			atomic.AddUint64(&to.frameCount, 1)
		}
	}
}

// composeTerminalFrame builds the full ANSI repaint for one snapshot
// sized to a cols x rows terminal. The bottom row carries a status
// line; everything above it is half-block pixel data.
func composeTerminalFrame(snap FrameSnapshot, cols, rows int) string {
	usable := rows - 1
	sx := (snap.Width + cols - 1) / cols
	sy := (snap.Height + usable*2 - 1) / (usable * 2)
	sx = max(sx, 1)
	sy = max(sy, 1)
	outW := (snap.Width + sx - 1) / sx
	outH := (snap.Height + sy - 1) / sy

	ir, ig, ib := Decode332(snap.Ink)
	pr, pg, pb := Decode332(snap.Paper)

	var sb strings.Builder
	sb.Grow(outW*outH/2 + 256)
	sb.WriteString("\x1b[H")
	fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm", ir, ig, ib, pr, pg, pb)

	for ty := 0; ty < (outH+1)/2; ty++ {
		for tx := 0; tx < outW; tx++ {
			top := sampleBlock(snap, tx*sx, ty*2*sy, sx, sy)
			bottom := sampleBlock(snap, tx*sx, (ty*2+1)*sy, sx, sy)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\x1b[K\r\n")
	}

	mode := "GFX"
	if snap.Mode == ODC_MODE_TEXT {
		mode = "TEXT"
	}
	fmt.Fprintf(&sb, "\x1b[0m\x1b[7m ODC %s  SCAN %3d  Ctrl+C quits \x1b[0m\x1b[K",
		mode, snap.Scanline)
	return sb.String()
}

// sampleBlock reports whether any plane pixel in the w x h block at
// (x0, y0) is lit.
func sampleBlock(snap FrameSnapshot, x0, y0, w, h int) bool {
	rowBytes := snap.Width / 8
	for y := y0; y < y0+h && y < snap.Height; y++ {
		row := y * rowBytes
		for x := x0; x < x0+w && x < snap.Width; x++ {
			if snap.Buffer[row+x/8]&(0x80>>(x%8)) != 0 {
				return true
			}
		}
	}
	return false
}
