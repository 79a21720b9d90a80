// video_glyphs.go - ODC glyph table and character cell renderer

package main

import "fmt"

// GlyphTable is an immutable 256-entry 8x8 bitmap font. Rows are
// MSB-first, matching the frame store's bit convention. The table is
// validated and copied at construction and never changes afterward.
type GlyphTable struct {
	glyphs [ODC_GLYPH_COUNT][ODC_GLYPH_BYTES]byte
}

// NewGlyphTable builds a table from 2048 bytes of packed glyph data
// (256 glyphs x 8 rows). Any other length is rejected; this is the only
// fatal construction condition in the display core.
func NewGlyphTable(data []byte) (*GlyphTable, error) {
	if len(data) != ODC_CHARSET_SIZE {
		return nil, fmt.Errorf("glyph table: need %d bytes (256 glyphs x 8 rows), got %d",
			ODC_CHARSET_SIZE, len(data))
	}
	gt := &GlyphTable{}
	for i := 0; i < ODC_GLYPH_COUNT; i++ {
		copy(gt.glyphs[i][:], data[i*ODC_GLYPH_BYTES:(i+1)*ODC_GLYPH_BYTES])
	}
	return gt, nil
}

// Glyph returns the 8 row bytes for a character code as a value copy.
func (gt *GlyphTable) Glyph(code byte) [ODC_GLYPH_BYTES]byte {
	return gt.glyphs[code]
}

// Row returns one row byte of a glyph. Rows outside 0-7 read as 0.
func (gt *GlyphTable) Row(code byte, row int) byte {
	if row < 0 || row >= ODC_GLYPH_BYTES {
		return 0
	}
	return gt.glyphs[code][row]
}

// RenderChar draws one character cell at pixel position (x, y) into the
// back plane. REVERSE swaps ink and paper for the whole cell before the
// glyph is applied; UNDERLINE forces glyph row 7 entirely to ink. BOLD
// and BLINK have no pixel effect here; they ride along for consumers
// that apply weight substitution or blink timing downstream. Clipping
// is the frame store's job, so partially off-screen cells just lose the
// pixels that fall outside.
func (gt *GlyphTable) RenderChar(fb *FrameBuffer, x, y int, code byte, fg, bg bool, attr byte) {
	if attr&ODC_ATTR_REVERSE != 0 {
		fg, bg = bg, fg
	}
	glyph := &gt.glyphs[code]
	for row := 0; row < ODC_GLYPH_BYTES; row++ {
		rowBits := glyph[row]
		if attr&ODC_ATTR_UNDERLINE != 0 && row == ODC_GLYPH_BYTES-1 {
			rowBits = 0xFF
		}
		for col := 0; col < ODC_CELL_WIDTH; col++ {
			if rowBits&(0x80>>col) != 0 {
				fb.SetPixel(x+col, y+row, fg)
			} else {
				fb.SetPixel(x+col, y+row, bg)
			}
		}
	}
}

// DefaultGlyphs is the process-wide font table, built once from the
// built-in charset. Never mutated.
var DefaultGlyphs = func() *GlyphTable {
	flat := make([]byte, 0, ODC_CHARSET_SIZE)
	for i := range DefaultCharset {
		flat = append(flat, DefaultCharset[i][:]...)
	}
	gt, err := NewGlyphTable(flat)
	if err != nil {
		panic(err)
	}
	return gt
}()
