// video_interface.go - Display sink interface for the Orion Display Controller

/*
video_interface.go - Display sink abstraction

The controller core knows nothing about windows, terminals or pixels
on glass. It produces FrameSnapshot values and hands them to whatever
VideoOutput implementation the host wired in. Everything a sink needs
to present a frame travels inside the snapshot, so sinks never reach
back into the chip.

Backends:

    ebiten   - desktop window, GUI builds only
    terminal - ANSI half-block rendering on a tty
    headless - counts frames and keeps the last one, used by tests
               and by builds without a display

The snapshot buffer is always a fresh copy. Sinks may retain it,
render it on their own goroutine or throw it away; nothing they do
can disturb the plane the chip keeps drawing into.
*/

package main

import (
	"fmt"
	"time"
)

// VideoError is the error type every backend surface returns, carrying
// enough context to tell which operation on which backend went wrong.
type VideoError struct {
	Operation string // The operation that failed
	Details   string // Human-readable context
	Err       error  // Wrapped cause, when one exists
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

type PixelFormat int

const (
	PIXEL_FORMAT_MONO1 PixelFormat = iota // 1 bit per pixel, MSB is the leftmost pixel
	PIXEL_FORMAT_RGBA                     // 4 bytes per pixel, R G B A order
)

// FrameSnapshot carries one complete front-plane frame plus the
// register state a sink needs to present it.
type FrameSnapshot struct {
	Buffer    []byte      // Private copy of the front plane
	Width     int         // Frame width in pixels
	Height    int         // Frame height in pixels
	Format    PixelFormat // Layout of Buffer
	Mode      int         // Display mode at snapshot time
	Scanline  int         // Scanline counter at snapshot time
	Ink       byte        // 3-3-2 RGB hint for set pixels
	Paper     byte        // 3-3-2 RGB hint for clear pixels
	Border    byte        // 3-3-2 RGB hint for the surround
	Timestamp time.Time   // When the snapshot was taken
}

// DisplayConfig describes how a sink should present frames. All
// fields are scalar so configs compare with ==.
type DisplayConfig struct {
	Width       int
	Height      int
	Scale       int // Integer window scaling factor
	RefreshRate int // Presentation cadence in Hz
	PixelFormat PixelFormat
	VSync       bool // Sync presentation to the display refresh
	Fullscreen  bool
}

// VideoOutput is the whole contract between the controller and a
// display sink. Everything else a backend offers (reset hooks, done
// channels) is optional and discovered by interface probing.
type VideoOutput interface {
	// Session lifecycle
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	// Presentation
	SetDisplayConfig(config DisplayConfig) error
	GetDisplayConfig() DisplayConfig
	PushFrame(frame FrameSnapshot)

	// Keyboard bytes travel sink -> controller through this handler
	SetKeyHandler(fn func(byte))

	// Pacing
	WaitForVSync() error
	GetFrameCount() uint64
	GetRefreshRate() int
}

// Backend selectors for NewVideoOutput.
const (
	VIDEO_BACKEND_EBITEN   = iota // Desktop window backend
	VIDEO_BACKEND_TERMINAL        // ANSI tty backend
	VIDEO_BACKEND_HEADLESS        // Frame-counting null backend
)

// NewVideoOutput constructs the sink for the chosen selector. The
// returned sink is not started.
func NewVideoOutput(backend int) (VideoOutput, error) {
	switch backend {
	case VIDEO_BACKEND_EBITEN:
		return NewEbitenOutput()
	case VIDEO_BACKEND_TERMINAL:
		return NewTerminalOutput()
	case VIDEO_BACKEND_HEADLESS:
		return NewHeadlessOutput()
	}
	return nil, &VideoError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}

// ClampScale bounds the integer window scale factor.
func ClampScale(scale int) int {
	if scale < 1 {
		return 1
	}
	if scale > 8 {
		return 8
	}
	return scale
}
