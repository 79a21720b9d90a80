//go:build !headless

// video_backend_ebiten.go - Ebiten desktop window backend

/*
video_backend_ebiten.go - Desktop Window Backend

Presents the ODC front plane in a resizable desktop window. The chip
pushes one snapshot per scanline tick; the backend latches the newest
one and expands it to RGBA only when ebiten asks for a frame, so the
window never does per-tick work.

Hotkeys:

    F10 - hard reset (debounced, runs off the game loop)
    F11 - fullscreen toggle
    F12 - status bar toggle
    Ctrl+Shift+V - paste clipboard text into the key stream

Key input feeds the controller one byte at a time: printable runes in
the byte range plus Enter, Backspace, Tab and Escape. Keys that only
exist as multi-byte terminal sequences are not translated.
*/

package main

import (
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:ebiten")
}

// pasteLimit bounds how many bytes a single clipboard paste may inject.
const pasteLimit = 4096

type EbitenOutput struct {
	active     bool
	plane      *ebiten.Image
	width      int
	height     int
	format     PixelFormat
	fullscreen bool
	scale      int
	winW, winH int

	mu       sync.RWMutex
	latest   FrameSnapshot
	hasFrame bool
	dirty    bool
	rgba     []byte

	frames atomic.Uint64
	hz     int
	vsync  chan struct{}
	done   chan struct{}

	onKey       func(byte)
	onHardReset func()
	resetBusy   atomic.Bool

	clipOnce sync.Once
	clipOK   bool

	statusBar bool
}

func NewEbitenOutput() (VideoOutput, error) {
	return &EbitenOutput{
		width:     ODC_WIDTH,
		height:    ODC_HEIGHT,
		format:    PIXEL_FORMAT_RGBA,
		scale:     2,
		winW:      ODC_WIDTH * 2,
		winH:      ODC_HEIGHT * 2,
		rgba:      make([]byte, ODC_WIDTH*ODC_HEIGHT*4),
		hz:        ODC_REFRESH_HZ,
		vsync:     make(chan struct{}, 1),
		done:      make(chan struct{}),
		statusBar: true,
	}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.active {
		return nil
	}
	eo.mu.Lock()
	eo.done = make(chan struct{})
	eo.mu.Unlock()
	eo.active = true

	ebiten.SetWindowTitle("OrionDisplay - OrionRisc-128 Display Adapter")
	ebiten.SetWindowSize(eo.winW, eo.winH)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	if eo.fullscreen {
		ebiten.SetFullscreen(true)
	}

	go eo.runWindow()

	// RunGame owns its thread from here; the first Draw signalling the
	// vsync channel tells us the window is actually up.
	<-eo.vsync
	return nil
}

// runWindow hosts ebiten's game loop and closes the done channel when
// the loop ends, whatever the reason.
func (eo *EbitenOutput) runWindow() {
	defer func() {
		eo.active = false
		eo.mu.RLock()
		done := eo.done
		eo.mu.RUnlock()
		select {
		case <-done:
		default:
			close(done)
		}
	}()
	if err := ebiten.RunGame(eo); err != nil {
		fmt.Printf("Ebiten error: %v\n", err)
	}
}

func (eo *EbitenOutput) Stop() error {
	eo.active = false
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.active
}

// Done reports window teardown; the hosting loop selects on it so a
// closed window ends the run.
func (eo *EbitenOutput) Done() <-chan struct{} {
	eo.mu.RLock()
	defer eo.mu.RUnlock()
	return eo.done
}

// PushFrame arrives once per scanline tick. Only the latest snapshot
// is kept; Draw expands it on the next window frame.
func (eo *EbitenOutput) PushFrame(frame FrameSnapshot) {
	eo.mu.Lock()
	eo.latest = frame
	eo.hasFrame = true
	eo.dirty = true
	eo.mu.Unlock()
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.mu.Lock()
	defer eo.mu.Unlock()

	if config.Width > 0 {
		eo.width = config.Width
	}
	if config.Height > 0 {
		eo.height = config.Height
	}
	eo.format = config.PixelFormat
	eo.scale = ClampScale(config.Scale)

	if size := eo.width * eo.height * 4; len(eo.rgba) != size {
		eo.rgba = make([]byte, size)
		eo.hasFrame = false
		eo.dirty = false
	}

	eo.winW = eo.width * eo.scale
	eo.winH = eo.height * eo.scale
	eo.fullscreen = config.Fullscreen
	ebiten.SetFullscreen(eo.fullscreen)
	if !eo.fullscreen {
		ebiten.SetWindowSize(eo.winW, eo.winH)
	}
	if eo.plane != nil {
		eo.plane.Dispose()
		eo.plane = nil
	}
	return nil
}

func (eo *EbitenOutput) GetDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:       eo.width,
		Height:      eo.height,
		Scale:       eo.scale,
		PixelFormat: eo.format,
		RefreshRate: eo.hz,
		VSync:       true,
		Fullscreen:  eo.fullscreen,
	}
}

func (eo *EbitenOutput) WaitForVSync() error {
	<-eo.vsync
	return nil
}

func (eo *EbitenOutput) GetFrameCount() uint64 {
	return eo.frames.Load()
}

func (eo *EbitenOutput) GetRefreshRate() int {
	return eo.hz
}

func (eo *EbitenOutput) SetHardResetHandler(fn func()) {
	eo.mu.Lock()
	eo.onHardReset = fn
	eo.mu.Unlock()
}

func (eo *EbitenOutput) SetKeyHandler(fn func(byte)) {
	eo.mu.Lock()
	eo.onKey = fn
	eo.mu.Unlock()
}

func (eo *EbitenOutput) Update() error {
	if !eo.active {
		return ebiten.Termination
	}
	eo.handleHotkeys()
	eo.handleKeyboardInput()
	return nil
}

func (eo *EbitenOutput) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		eo.requestHardReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.mu.Lock()
		eo.statusBar = !eo.statusBar
		eo.mu.Unlock()
	}
}

func (eo *EbitenOutput) toggleFullscreen() {
	eo.mu.Lock()
	defer eo.mu.Unlock()
	eo.fullscreen = !eo.fullscreen
	ebiten.SetFullscreen(eo.fullscreen)
	if !eo.fullscreen {
		ebiten.SetWindowSize(eo.winW, eo.winH)
	}
}

// requestHardReset debounces F10 and runs the handler off the game
// loop, so a slow reset cannot stall Update.
func (eo *EbitenOutput) requestHardReset() {
	if !eo.resetBusy.CompareAndSwap(false, true) {
		return
	}
	eo.mu.RLock()
	handler := eo.onHardReset
	eo.mu.RUnlock()
	if handler == nil {
		eo.resetBusy.Store(false)
		return
	}
	go func() {
		defer eo.resetBusy.Store(false)
		handler()
	}()
}

func (eo *EbitenOutput) emitByte(b byte) {
	eo.mu.RLock()
	handler := eo.onKey
	eo.mu.RUnlock()
	if handler != nil {
		handler(b)
	}
}

// specialKeyCodes maps the non-printable keys the text engine
// understands to their single-byte control codes.
var specialKeyCodes = map[ebiten.Key]byte{
	ebiten.KeyEnter:       '\n',
	ebiten.KeyNumpadEnter: '\n',
	ebiten.KeyBackspace:   '\b',
	ebiten.KeyTab:         '\t',
	ebiten.KeyEscape:      0x1B,
}

func (eo *EbitenOutput) handleKeyboardInput() {
	eo.mu.RLock()
	wired := eo.onKey != nil
	eo.mu.RUnlock()
	if !wired {
		return
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		eo.pasteClipboard()
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if b, ok := runeToInputByte(r); ok {
			eo.emitByte(b)
		}
	}

	for key, code := range specialKeyCodes {
		if inpututil.IsKeyJustPressed(key) {
			eo.emitByte(code)
		}
	}
}

func runeToInputByte(r rune) (byte, bool) {
	if r <= 0 || r > 0xFF {
		return 0, false
	}
	return byte(r), true
}

// preparePasteBytes folds CR and CRLF line endings to LF and bounds
// the number of bytes a paste may inject.
func preparePasteBytes(raw []byte, limit int) []byte {
	out := make([]byte, 0, min(len(raw), limit))
	for i := 0; i < len(raw) && len(out) < limit; i++ {
		b := raw[i]
		if b == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			b = '\n'
		}
		out = append(out, b)
	}
	return out
}

func (eo *EbitenOutput) pasteClipboard() {
	eo.clipOnce.Do(func() {
		eo.clipOK = clipboard.Init() == nil
	})
	if !eo.clipOK {
		return
	}
	for _, b := range preparePasteBytes(clipboard.Read(clipboard.FmtText), pasteLimit) {
		eo.emitByte(b)
	}
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	if eo.plane == nil {
		eo.plane = ebiten.NewImage(eo.width, eo.height)
	}

	eo.mu.Lock()
	if eo.dirty {
		eo.rgba = ExpandMono1(eo.latest, eo.rgba)
		eo.dirty = false
	}
	if eo.hasFrame && len(eo.rgba) == eo.width*eo.height*4 {
		eo.plane.WritePixels(eo.rgba)
	}
	statusBar := eo.statusBar
	snap := eo.latest
	eo.mu.Unlock()

	screen.DrawImage(eo.plane, nil)
	if statusBar {
		eo.drawStatusBar(screen, snap)
	}

	eo.frames.Add(1)
	select {
	case eo.vsync <- struct{}{}:
	default:
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width, eo.height
}

var (
	statusLabel = color.RGBA{190, 190, 190, 255}
	statusDim   = color.RGBA{120, 120, 120, 255}
	statusLit   = color.RGBA{0, 220, 90, 255}
)

// statusText draws s and returns where the next token starts.
func statusText(screen *ebiten.Image, x, baseline int, s string, c color.RGBA) int {
	text.Draw(screen, s, basicfont.Face7x13, x, baseline, c)
	return x + text.BoundString(basicfont.Face7x13, s).Dx() + 8
}

func modeColor(on bool) color.RGBA {
	if on {
		return statusLit
	}
	return statusDim
}

func (eo *EbitenOutput) drawStatusBar(screen *ebiten.Image, snap FrameSnapshot) {
	const barHeight = 31
	if barHeight >= eo.height {
		return
	}
	top := eo.height - barHeight
	ebitenutil.DrawRect(screen, 0, float64(top), float64(eo.width), float64(barHeight), color.RGBA{0, 0, 0, 180})

	x := statusText(screen, 6, top+13, "MODE", statusLabel)
	x = statusText(screen, x, top+13, "GFX", modeColor(snap.Mode == ODC_MODE_GRAPHICS))
	x = statusText(screen, x, top+13, "|", statusDim)
	statusText(screen, x, top+13, "TEXT", modeColor(snap.Mode == ODC_MODE_TEXT))

	info := fmt.Sprintf("SCAN %3d  INK %02X  PAPER %02X  FPS %0.1f",
		snap.Scanline, snap.Ink, snap.Paper, ebiten.ActualFPS())
	statusText(screen, 6, top+26, info, statusLabel)

	legend := "F10 Reset  F11 Fullscreen  F12 Status Bar"
	legendW := text.BoundString(basicfont.Face7x13, legend).Dx()
	statusText(screen, max(eo.width-legendW-6, 6), top+26, legend, color.RGBA{160, 160, 160, 255})
}
