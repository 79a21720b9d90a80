// video_text.go - ODC 80x25 character-cell text engine

/*
video_text.go - ODC Text Engine

Character-cell layer of the Orion Display Controller: an 80x25 grid of
(code, attribute) cells rendered through the glyph table onto the same
1bpp plane the drawing engine uses.

Features:
- Control-code state machine (BS, TAB, LF, FF, CR) via PutChar
- Scroll region constraining scroll/insert/delete operations
- Character insert/delete within the cursor row
- Cursor save/restore with value semantics
- Full-repaint Render with cursor overlay (no dirty tracking)

Signal Flow:
1. Host writes characters via the text-write command or key events
2. Controller ticks invoke Render in text mode
3. Render repaints every cell into the back plane, then inverts the
   cursor cell when the cursor is visible and in its on phase
*/

package main

type savedCursor struct {
	x, y    int
	visible bool
	blink   bool
}

// TextEngine maintains the ODC's character plane and cursor state.
type TextEngine struct {
	fb     *FrameBuffer
	glyphs *GlyphTable

	chars [ODC_TEXT_CELLS]byte
	attrs [ODC_TEXT_CELLS]byte

	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorBlink   bool
	blinkPhase    bool

	scrollTop    int
	scrollBottom int

	saved savedCursor
}

// NewTextEngine creates a cleared text plane over the given frame
// store and glyph table. The cursor starts at home, visible and
// blinking; the scroll region spans the full screen.
func NewTextEngine(fb *FrameBuffer, glyphs *GlyphTable) *TextEngine {
	te := &TextEngine{
		fb:            fb,
		glyphs:        glyphs,
		cursorVisible: true,
		cursorBlink:   true,
		blinkPhase:    true,
		scrollBottom:  ODC_TEXT_ROWS - 1,
		saved:         savedCursor{visible: true, blink: true},
	}
	te.Clear()
	return te
}

// =============================================================================
// Character Input
// =============================================================================

// PutChar feeds one character code through the control-code state
// machine. Printable codes (32 and above) are stored at the cursor
// with the given attribute and advance it, wrapping at column 80 with
// the same overflow-to-scroll behaviour as a line feed. Control codes
// below 32 that are not handled here are ignored.
func (te *TextEngine) PutChar(code, attr byte) {
	switch code {
	case 8: // backspace: step left, rub out, step left again
		te.cursorLeft()
		te.writeGlyph(' ', attr)
		te.cursorLeft()
	case 9: // tab: next multiple of 8, else last column
		next := (te.cursorX + 8) &^ 7
		if next >= ODC_TEXT_COLS {
			te.cursorX = ODC_TEXT_COLS - 1
		} else {
			te.cursorX = next
		}
	case 10: // line feed: next row, column 0
		te.lineFeed()
	case 12: // form feed: clear and home
		te.Clear()
	case 13: // carriage return
		te.cursorX = 0
	default:
		if code >= 32 {
			te.writeGlyph(code, attr)
		}
	}
}

// WriteString feeds each byte of s through PutChar.
func (te *TextEngine) WriteString(s string, attr byte) {
	for i := 0; i < len(s); i++ {
		te.PutChar(s[i], attr)
	}
}

func (te *TextEngine) writeGlyph(code, attr byte) {
	idx := te.cursorY*ODC_TEXT_COLS + te.cursorX
	te.chars[idx] = code
	te.attrs[idx] = attr
	te.cursorX++
	if te.cursorX >= ODC_TEXT_COLS {
		te.lineFeed()
	}
}

func (te *TextEngine) cursorLeft() {
	if te.cursorX > 0 {
		te.cursorX--
	}
}

func (te *TextEngine) lineFeed() {
	te.cursorX = 0
	te.cursorY++
	if te.cursorY > te.scrollBottom {
		te.ScrollUp(1)
		te.cursorY = te.scrollBottom
	}
}

// =============================================================================
// Cursor Control
// =============================================================================

// SetCursor moves the cursor, clamping into the 80x25 grid.
func (te *TextEngine) SetCursor(x, y int) {
	if x < 0 {
		x = 0
	}
	if x >= ODC_TEXT_COLS {
		x = ODC_TEXT_COLS - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= ODC_TEXT_ROWS {
		y = ODC_TEXT_ROWS - 1
	}
	te.cursorX = x
	te.cursorY = y
}

// CursorPos returns the current cursor column and row.
func (te *TextEngine) CursorPos() (x, y int) {
	return te.cursorX, te.cursorY
}

// SetCursorVisible controls whether Render draws the cursor overlay.
func (te *TextEngine) SetCursorVisible(visible bool) {
	te.cursorVisible = visible
}

// CursorVisible reports the cursor visibility flag.
func (te *TextEngine) CursorVisible() bool {
	return te.cursorVisible
}

// SetCursorBlink enables blinking. With blink off the cursor is steady.
func (te *TextEngine) SetCursorBlink(blink bool) {
	te.cursorBlink = blink
}

// CursorBlink reports the blink-enable flag.
func (te *TextEngine) CursorBlink() bool {
	return te.cursorBlink
}

// SetBlinkPhase is driven by the controller's frame counter and picks
// the on/off half of the blink cycle.
func (te *TextEngine) SetBlinkPhase(on bool) {
	te.blinkPhase = on
}

// SaveCursor captures position, visibility and blink as a value.
func (te *TextEngine) SaveCursor() {
	te.saved = savedCursor{
		x:       te.cursorX,
		y:       te.cursorY,
		visible: te.cursorVisible,
		blink:   te.cursorBlink,
	}
}

// RestoreCursor restores the last saved cursor state. Without a prior
// save it restores the power-on state.
func (te *TextEngine) RestoreCursor() {
	te.cursorX = te.saved.x
	te.cursorY = te.saved.y
	te.cursorVisible = te.saved.visible
	te.cursorBlink = te.saved.blink
}

// =============================================================================
// Scroll Region and Line Operations
// =============================================================================

// SetScrollRegion bounds scroll/insert/delete to rows [top, bottom].
// Values are clamped to the grid; an inverted pair restores the
// full-screen region.
func (te *TextEngine) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= ODC_TEXT_ROWS {
		bottom = ODC_TEXT_ROWS - 1
	}
	if top > bottom {
		top = 0
		bottom = ODC_TEXT_ROWS - 1
	}
	te.scrollTop = top
	te.scrollBottom = bottom
}

// ScrollRegion returns the current region bounds.
func (te *TextEngine) ScrollRegion() (top, bottom int) {
	return te.scrollTop, te.scrollBottom
}

// ScrollUp moves rows inside the scroll region up by n, blanking the
// vacated rows at the bottom of the region.
func (te *TextEngine) ScrollUp(n int) {
	height := te.scrollBottom - te.scrollTop + 1
	if n <= 0 {
		return
	}
	if n > height {
		n = height
	}
	for row := te.scrollTop; row <= te.scrollBottom-n; row++ {
		te.copyRow(row+n, row)
	}
	for row := te.scrollBottom - n + 1; row <= te.scrollBottom; row++ {
		te.blankRow(row)
	}
}

// ScrollDown moves rows inside the scroll region down by n, blanking
// the vacated rows at the top of the region.
func (te *TextEngine) ScrollDown(n int) {
	height := te.scrollBottom - te.scrollTop + 1
	if n <= 0 {
		return
	}
	if n > height {
		n = height
	}
	for row := te.scrollBottom; row >= te.scrollTop+n; row-- {
		te.copyRow(row-n, row)
	}
	for row := te.scrollTop; row < te.scrollTop+n; row++ {
		te.blankRow(row)
	}
}

// InsertLines opens n blank rows at the cursor row, pushing the rows
// below it toward the bottom of the scroll region. Outside the region
// it does nothing.
func (te *TextEngine) InsertLines(n int) {
	if te.cursorY < te.scrollTop || te.cursorY > te.scrollBottom {
		return
	}
	avail := te.scrollBottom - te.cursorY + 1
	if n <= 0 {
		return
	}
	if n > avail {
		n = avail
	}
	for row := te.scrollBottom; row >= te.cursorY+n; row-- {
		te.copyRow(row-n, row)
	}
	for row := te.cursorY; row < te.cursorY+n; row++ {
		te.blankRow(row)
	}
}

// DeleteLines removes n rows at the cursor row, pulling the rows below
// up and blanking the bottom of the scroll region.
func (te *TextEngine) DeleteLines(n int) {
	if te.cursorY < te.scrollTop || te.cursorY > te.scrollBottom {
		return
	}
	avail := te.scrollBottom - te.cursorY + 1
	if n <= 0 {
		return
	}
	if n > avail {
		n = avail
	}
	for row := te.cursorY; row <= te.scrollBottom-n; row++ {
		te.copyRow(row+n, row)
	}
	for row := te.scrollBottom - n + 1; row <= te.scrollBottom; row++ {
		te.blankRow(row)
	}
}

// InsertChars shifts the cursor row right by n cells from the cursor,
// dropping cells pushed past column 80 and blanking the opened gap.
func (te *TextEngine) InsertChars(n int) {
	if n <= 0 {
		return
	}
	if n > ODC_TEXT_COLS-te.cursorX {
		n = ODC_TEXT_COLS - te.cursorX
	}
	base := te.cursorY * ODC_TEXT_COLS
	for col := ODC_TEXT_COLS - 1; col >= te.cursorX+n; col-- {
		te.chars[base+col] = te.chars[base+col-n]
		te.attrs[base+col] = te.attrs[base+col-n]
	}
	for col := te.cursorX; col < te.cursorX+n; col++ {
		te.chars[base+col] = ' '
		te.attrs[base+col] = 0
	}
}

// DeleteChars removes n cells at the cursor, pulling the rest of the
// row left and blanking the freed cells at the end.
func (te *TextEngine) DeleteChars(n int) {
	if n <= 0 {
		return
	}
	if n > ODC_TEXT_COLS-te.cursorX {
		n = ODC_TEXT_COLS - te.cursorX
	}
	base := te.cursorY * ODC_TEXT_COLS
	for col := te.cursorX; col < ODC_TEXT_COLS-n; col++ {
		te.chars[base+col] = te.chars[base+col+n]
		te.attrs[base+col] = te.attrs[base+col+n]
	}
	for col := ODC_TEXT_COLS - n; col < ODC_TEXT_COLS; col++ {
		te.chars[base+col] = ' '
		te.attrs[base+col] = 0
	}
}

func (te *TextEngine) copyRow(src, dst int) {
	s := src * ODC_TEXT_COLS
	d := dst * ODC_TEXT_COLS
	copy(te.chars[d:d+ODC_TEXT_COLS], te.chars[s:s+ODC_TEXT_COLS])
	copy(te.attrs[d:d+ODC_TEXT_COLS], te.attrs[s:s+ODC_TEXT_COLS])
}

func (te *TextEngine) blankRow(row int) {
	base := row * ODC_TEXT_COLS
	for col := 0; col < ODC_TEXT_COLS; col++ {
		te.chars[base+col] = ' '
		te.attrs[base+col] = 0
	}
}

// =============================================================================
// Plane Management
// =============================================================================

// Clear resets every cell to (space, 0) and homes the cursor. The
// scroll region is left as configured.
func (te *TextEngine) Clear() {
	for i := 0; i < ODC_TEXT_CELLS; i++ {
		te.chars[i] = ' '
		te.attrs[i] = 0
	}
	te.cursorX = 0
	te.cursorY = 0
}

// Reset returns the engine to power-on state.
func (te *TextEngine) Reset() {
	te.Clear()
	te.cursorVisible = true
	te.cursorBlink = true
	te.blinkPhase = true
	te.scrollTop = 0
	te.scrollBottom = ODC_TEXT_ROWS - 1
	te.saved = savedCursor{visible: true, blink: true}
}

// CharAt returns the character code stored at (x, y); 0 out of range.
func (te *TextEngine) CharAt(x, y int) byte {
	if x < 0 || x >= ODC_TEXT_COLS || y < 0 || y >= ODC_TEXT_ROWS {
		return 0
	}
	return te.chars[y*ODC_TEXT_COLS+x]
}

// AttrAt returns the attribute byte stored at (x, y); 0 out of range.
func (te *TextEngine) AttrAt(x, y int) byte {
	if x < 0 || x >= ODC_TEXT_COLS || y < 0 || y >= ODC_TEXT_ROWS {
		return 0
	}
	return te.attrs[y*ODC_TEXT_COLS+x]
}

// =============================================================================
// Rendering
// =============================================================================

// Render repaints all 2,000 cells into the back plane, then overlays
// the cursor by inverting its 8x8 cell when the cursor is visible and
// its blink phase is on (a non-blinking cursor is always on). Every
// call repaints everything; there is no dirty tracking.
func (te *TextEngine) Render() {
	for row := 0; row < ODC_TEXT_ROWS; row++ {
		for col := 0; col < ODC_TEXT_COLS; col++ {
			idx := row*ODC_TEXT_COLS + col
			te.glyphs.RenderChar(te.fb, col*ODC_CELL_WIDTH, row*ODC_CELL_HEIGHT,
				te.chars[idx], true, false, te.attrs[idx])
		}
	}
	if te.cursorVisible && (te.blinkPhase || !te.cursorBlink) {
		te.invertCursorCell()
	}
}

func (te *TextEngine) invertCursorCell() {
	px := te.cursorX * ODC_CELL_WIDTH
	py := te.cursorY * ODC_CELL_HEIGHT
	for row := 0; row < ODC_CELL_HEIGHT; row++ {
		for col := 0; col < ODC_CELL_WIDTH; col++ {
			te.fb.SetPixel(px+col, py+row, !te.fb.GetPixel(px+col, py+row))
		}
	}
}
