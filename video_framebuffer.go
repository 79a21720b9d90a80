// video_framebuffer.go - ODC bit-packed frame store with double buffering

/*
video_framebuffer.go - ODC Frame Store

Double-buffered 1bpp pixel plane for the Orion Display Controller.

Features:
- 640x200 monochrome plane, row-major, 80 bytes per row
- Back plane is the sole writable target; front plane holds the last
  committed snapshot and changes only on SwapBuffers
- Silent clip/no-op policy on every out-of-range coordinate
- Byte-level plane window access for the register-mapped frame window

Memory Layout:
- byteIndex = y*80 + x/8, bit = 7 - (x%8), MSB is the leftmost pixel
- Two 16,000 byte planes allocated once and reused across Reset
*/

package main

// FrameBuffer holds the ODC's back and front pixel planes. All drawing
// mutates the back plane; the front plane is the committed snapshot the
// host reads through the frame window and the sink receives.
type FrameBuffer struct {
	regs  *odcRegisterFile
	back  []byte
	front []byte
}

// NewFrameBuffer allocates both planes zero-filled and publishes the
// frame window bounds into the shared register file.
func NewFrameBuffer(regs *odcRegisterFile) *FrameBuffer {
	fb := &FrameBuffer{
		regs:  regs,
		back:  make([]byte, ODC_PLANE_SIZE),
		front: make([]byte, ODC_PLANE_SIZE),
	}
	if regs != nil {
		regs.fbStart = ODC_FB_WINDOW
		regs.fbEnd = ODC_FB_WINDOW + ODC_PLANE_SIZE
	}
	return fb
}

// =============================================================================
// Pixel Access
// =============================================================================

// SetPixel writes one pixel into the back plane. Out-of-range
// coordinates are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= ODC_WIDTH || y < 0 || y >= ODC_HEIGHT {
		return
	}
	idx := y*ODC_ROW_BYTES + x/8
	mask := byte(0x80) >> (x % 8)
	if on {
		fb.back[idx] |= mask
	} else {
		fb.back[idx] &^= mask
	}
}

// GetPixel reads one pixel from the back plane. Out-of-range
// coordinates read as false.
func (fb *FrameBuffer) GetPixel(x, y int) bool {
	if x < 0 || x >= ODC_WIDTH || y < 0 || y >= ODC_HEIGHT {
		return false
	}
	idx := y*ODC_ROW_BYTES + x/8
	return fb.back[idx]&(0x80>>(x%8)) != 0
}

// GetFrontPixel reads one pixel from the committed front plane.
func (fb *FrameBuffer) GetFrontPixel(x, y int) bool {
	if x < 0 || x >= ODC_WIDTH || y < 0 || y >= ODC_HEIGHT {
		return false
	}
	idx := y*ODC_ROW_BYTES + x/8
	return fb.front[idx]&(0x80>>(x%8)) != 0
}

// =============================================================================
// Line and Rectangle Primitives
// =============================================================================

// DrawHLine draws a horizontal run on row y between x1 and x2 inclusive.
// Endpoint order is normalized, then the run is clipped to the plane.
func (fb *FrameBuffer) DrawHLine(x1, x2, y int, on bool) {
	if y < 0 || y >= ODC_HEIGHT {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 >= ODC_WIDTH {
		x2 = ODC_WIDTH - 1
	}
	for x := x1; x <= x2; x++ {
		fb.SetPixel(x, y, on)
	}
}

// DrawVLine draws a vertical run on column x between y1 and y2 inclusive.
func (fb *FrameBuffer) DrawVLine(x, y1, y2 int, on bool) {
	if x < 0 || x >= ODC_WIDTH {
		return
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if y1 < 0 {
		y1 = 0
	}
	if y2 >= ODC_HEIGHT {
		y2 = ODC_HEIGHT - 1
	}
	for y := y1; y <= y2; y++ {
		fb.SetPixel(x, y, on)
	}
}

// FillRect fills a w*h rectangle anchored at (x, y). Negative extents
// are normalized so the call covers the same cells either way.
func (fb *FrameBuffer) FillRect(x, y, w, h int, on bool) {
	if w == 0 || h == 0 {
		return
	}
	if w < 0 {
		x, w = x+w+1, -w
	}
	if h < 0 {
		y, h = y+h+1, -h
	}
	for row := y; row < y+h; row++ {
		fb.DrawHLine(x, x+w-1, row, on)
	}
}

// =============================================================================
// Plane Operations
// =============================================================================

// ScrollUp shifts the back plane up by n rows, zero-filling the bottom.
func (fb *FrameBuffer) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	if n >= ODC_HEIGHT {
		fb.Clear()
		return
	}
	shift := n * ODC_ROW_BYTES
	copy(fb.back, fb.back[shift:])
	for i := ODC_PLANE_SIZE - shift; i < ODC_PLANE_SIZE; i++ {
		fb.back[i] = 0
	}
}

// ScrollDown shifts the back plane down by n rows, zero-filling the top.
func (fb *FrameBuffer) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	if n >= ODC_HEIGHT {
		fb.Clear()
		return
	}
	shift := n * ODC_ROW_BYTES
	copy(fb.back[shift:], fb.back[:ODC_PLANE_SIZE-shift])
	for i := 0; i < shift; i++ {
		fb.back[i] = 0
	}
}

// CopyRegion copies a w*h pixel block from (srcX, srcY) to (dstX, dstY)
// on the back plane. Pixels are copied one at a time in row-major order,
// top-left to bottom-right; any pixel whose source or destination lies
// outside the plane is skipped individually, so partial copies are fine.
// Overlapping regions are not buffered: results follow iteration order.
func (fb *FrameBuffer) CopyRegion(srcX, srcY, dstX, dstY, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		sy := srcY + row
		dy := dstY + row
		for col := 0; col < w; col++ {
			sx := srcX + col
			dx := dstX + col
			if sx < 0 || sx >= ODC_WIDTH || sy < 0 || sy >= ODC_HEIGHT {
				continue
			}
			if dx < 0 || dx >= ODC_WIDTH || dy < 0 || dy >= ODC_HEIGHT {
				continue
			}
			fb.SetPixel(dx, dy, fb.GetPixel(sx, sy))
		}
	}
}

// SwapBuffers commits the back plane by copying it into the front plane.
// The back plane keeps its contents and remains the drawing target.
func (fb *FrameBuffer) SwapBuffers() {
	copy(fb.front, fb.back)
}

// Clear zeroes the back plane.
func (fb *FrameBuffer) Clear() {
	for i := range fb.back {
		fb.back[i] = 0
	}
}

// Reset zeroes both planes in place without reallocating them.
func (fb *FrameBuffer) Reset() {
	for i := range fb.back {
		fb.back[i] = 0
		fb.front[i] = 0
	}
}

// =============================================================================
// Byte-Level Window Access
// =============================================================================

// ReadFront returns one front plane byte for the frame window.
func (fb *FrameBuffer) ReadFront(offset int) byte {
	if offset < 0 || offset >= ODC_PLANE_SIZE {
		return 0
	}
	return fb.front[offset]
}

// WriteBack stores one byte into the back plane for the frame window.
func (fb *FrameBuffer) WriteBack(offset int, value byte) {
	if offset < 0 || offset >= ODC_PLANE_SIZE {
		return
	}
	fb.back[offset] = value
}

// ReadBack returns one back plane byte.
func (fb *FrameBuffer) ReadBack(offset int) byte {
	if offset < 0 || offset >= ODC_PLANE_SIZE {
		return 0
	}
	return fb.back[offset]
}

// Snapshot returns a fresh copy of the front plane. The caller owns the
// returned slice; the planes keep mutating after the call returns.
func (fb *FrameBuffer) Snapshot() []byte {
	snap := make([]byte, ODC_PLANE_SIZE)
	copy(snap, fb.front)
	return snap
}
