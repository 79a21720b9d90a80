// video_charset.go - built-in 8x8 character set for the ODC text engine

package main

// DefaultCharset is the power-on font: 256 glyphs of 8 rows each,
// MSB-first. Printable ASCII is fully formed; the control region is
// blank; the high half carries the box-drawing, shade and block glyphs
// the OrionRisc-128 firmware uses for its screen furniture. Unlisted
// codes render as blank cells.
var DefaultCharset = [ODC_GLYPH_COUNT][ODC_GLYPH_BYTES]byte{
	0x20: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ' '
	0x21: {0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18, 0x00}, // '!'
	0x22: {0x66, 0x66, 0x44, 0x00, 0x00, 0x00, 0x00, 0x00}, // '"'
	0x23: {0x66, 0x66, 0xFF, 0x66, 0xFF, 0x66, 0x66, 0x00}, // '#'
	0x24: {0x18, 0x3E, 0x60, 0x3C, 0x06, 0x7C, 0x18, 0x00}, // '$'
	0x25: {0x62, 0x66, 0x0C, 0x18, 0x30, 0x66, 0x46, 0x00}, // '%'
	0x26: {0x3C, 0x66, 0x3C, 0x38, 0x67, 0x66, 0x3F, 0x00}, // '&'
	0x27: {0x06, 0x0C, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00}, // '\''
	0x28: {0x0C, 0x18, 0x30, 0x30, 0x30, 0x18, 0x0C, 0x00}, // '('
	0x29: {0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x18, 0x30, 0x00}, // ')'
	0x2A: {0x00, 0x66, 0x3C, 0xFF, 0x3C, 0x66, 0x00, 0x00}, // '*'
	0x2B: {0x00, 0x18, 0x18, 0x7E, 0x18, 0x18, 0x00, 0x00}, // '+'
	0x2C: {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30}, // ','
	0x2D: {0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00}, // '-'
	0x2E: {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00}, // '.'
	0x2F: {0x00, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x00}, // '/'
	0x30: {0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00}, // '0'
	0x31: {0x18, 0x18, 0x38, 0x18, 0x18, 0x18, 0x7E, 0x00}, // '1'
	0x32: {0x3C, 0x66, 0x06, 0x0C, 0x30, 0x60, 0x7E, 0x00}, // '2'
	0x33: {0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00}, // '3'
	0x34: {0x06, 0x0E, 0x1E, 0x66, 0x7F, 0x06, 0x06, 0x00}, // '4'
	0x35: {0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00}, // '5'
	0x36: {0x3C, 0x66, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00}, // '6'
	0x37: {0x7E, 0x66, 0x0C, 0x18, 0x18, 0x18, 0x18, 0x00}, // '7'
	0x38: {0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00}, // '8'
	0x39: {0x3C, 0x66, 0x66, 0x3E, 0x06, 0x66, 0x3C, 0x00}, // '9'
	0x3A: {0x00, 0x00, 0x18, 0x00, 0x00, 0x18, 0x00, 0x00}, // ':'
	0x3B: {0x00, 0x00, 0x18, 0x00, 0x00, 0x18, 0x18, 0x30}, // ';'
	0x3C: {0x0E, 0x18, 0x30, 0x60, 0x30, 0x18, 0x0E, 0x00}, // '<'
	0x3D: {0x00, 0x00, 0x7E, 0x00, 0x7E, 0x00, 0x00, 0x00}, // '='
	0x3E: {0x70, 0x18, 0x0C, 0x06, 0x0C, 0x18, 0x70, 0x00}, // '>'
	0x3F: {0x3C, 0x66, 0x06, 0x0C, 0x18, 0x00, 0x18, 0x00}, // '?'
	0x40: {0x3C, 0x66, 0x6E, 0x6E, 0x60, 0x62, 0x3C, 0x00}, // '@'
	0x41: {0x18, 0x3C, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}, // 'A'
	0x42: {0x7C, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x7C, 0x00}, // 'B'
	0x43: {0x3C, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3C, 0x00}, // 'C'
	0x44: {0x78, 0x6C, 0x66, 0x66, 0x66, 0x6C, 0x78, 0x00}, // 'D'
	0x45: {0x7E, 0x60, 0x60, 0x78, 0x60, 0x60, 0x7E, 0x00}, // 'E'
	0x46: {0x7E, 0x60, 0x60, 0x78, 0x60, 0x60, 0x60, 0x00}, // 'F'
	0x47: {0x3C, 0x66, 0x60, 0x6E, 0x66, 0x66, 0x3C, 0x00}, // 'G'
	0x48: {0x66, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}, // 'H'
	0x49: {0x3C, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, 0x00}, // 'I'
	0x4A: {0x1E, 0x0C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38, 0x00}, // 'J'
	0x4B: {0x66, 0x6C, 0x78, 0x70, 0x78, 0x6C, 0x66, 0x00}, // 'K'
	0x4C: {0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7E, 0x00}, // 'L'
	0x4D: {0x63, 0x77, 0x7F, 0x6B, 0x63, 0x63, 0x63, 0x00}, // 'M'
	0x4E: {0x66, 0x76, 0x7E, 0x7E, 0x6E, 0x66, 0x66, 0x00}, // 'N'
	0x4F: {0x3C, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00}, // 'O'
	0x50: {0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60, 0x60, 0x00}, // 'P'
	0x51: {0x3C, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x0E, 0x00}, // 'Q'
	0x52: {0x7C, 0x66, 0x66, 0x7C, 0x78, 0x6C, 0x66, 0x00}, // 'R'
	0x53: {0x3C, 0x66, 0x60, 0x3C, 0x06, 0x66, 0x3C, 0x00}, // 'S'
	0x54: {0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00}, // 'T'
	0x55: {0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00}, // 'U'
	0x56: {0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00}, // 'V'
	0x57: {0x63, 0x63, 0x63, 0x6B, 0x7F, 0x77, 0x63, 0x00}, // 'W'
	0x58: {0x66, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x66, 0x00}, // 'X'
	0x59: {0x66, 0x66, 0x66, 0x3C, 0x18, 0x18, 0x18, 0x00}, // 'Y'
	0x5A: {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x7E, 0x00}, // 'Z'
	0x5B: {0x3C, 0x30, 0x30, 0x30, 0x30, 0x30, 0x3C, 0x00}, // '['
	0x5C: {0x00, 0x60, 0x30, 0x18, 0x0C, 0x06, 0x03, 0x00}, // '\\'
	0x5D: {0x3C, 0x0C, 0x0C, 0x0C, 0x0C, 0x0C, 0x3C, 0x00}, // ']'
	0x5E: {0x18, 0x3C, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00}, // '^'
	0x5F: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF}, // '_'
	0x60: {0x30, 0x18, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00}, // '`'
	0x61: {0x00, 0x00, 0x3C, 0x06, 0x3E, 0x66, 0x3E, 0x00}, // 'a'
	0x62: {0x60, 0x60, 0x7C, 0x66, 0x66, 0x66, 0x7C, 0x00}, // 'b'
	0x63: {0x00, 0x00, 0x3C, 0x60, 0x60, 0x60, 0x3C, 0x00}, // 'c'
	0x64: {0x06, 0x06, 0x3E, 0x66, 0x66, 0x66, 0x3E, 0x00}, // 'd'
	0x65: {0x00, 0x00, 0x3C, 0x66, 0x7E, 0x60, 0x3C, 0x00}, // 'e'
	0x66: {0x0E, 0x18, 0x3E, 0x18, 0x18, 0x18, 0x18, 0x00}, // 'f'
	0x67: {0x00, 0x00, 0x3E, 0x66, 0x66, 0x3E, 0x06, 0x7C}, // 'g'
	0x68: {0x60, 0x60, 0x7C, 0x66, 0x66, 0x66, 0x66, 0x00}, // 'h'
	0x69: {0x18, 0x00, 0x38, 0x18, 0x18, 0x18, 0x3C, 0x00}, // 'i'
	0x6A: {0x06, 0x00, 0x0E, 0x06, 0x06, 0x06, 0x66, 0x3C}, // 'j'
	0x6B: {0x60, 0x60, 0x6C, 0x78, 0x78, 0x6C, 0x66, 0x00}, // 'k'
	0x6C: {0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, 0x00}, // 'l'
	0x6D: {0x00, 0x00, 0x66, 0x7F, 0x7F, 0x6B, 0x63, 0x00}, // 'm'
	0x6E: {0x00, 0x00, 0x7C, 0x66, 0x66, 0x66, 0x66, 0x00}, // 'n'
	0x6F: {0x00, 0x00, 0x3C, 0x66, 0x66, 0x66, 0x3C, 0x00}, // 'o'
	0x70: {0x00, 0x00, 0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60}, // 'p'
	0x71: {0x00, 0x00, 0x3E, 0x66, 0x66, 0x3E, 0x06, 0x06}, // 'q'
	0x72: {0x00, 0x00, 0x7C, 0x66, 0x60, 0x60, 0x60, 0x00}, // 'r'
	0x73: {0x00, 0x00, 0x3E, 0x60, 0x3C, 0x06, 0x7C, 0x00}, // 's'
	0x74: {0x18, 0x18, 0x7E, 0x18, 0x18, 0x18, 0x0E, 0x00}, // 't'
	0x75: {0x00, 0x00, 0x66, 0x66, 0x66, 0x66, 0x3E, 0x00}, // 'u'
	0x76: {0x00, 0x00, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00}, // 'v'
	0x77: {0x00, 0x00, 0x63, 0x6B, 0x7F, 0x3E, 0x36, 0x00}, // 'w'
	0x78: {0x00, 0x00, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x00}, // 'x'
	0x79: {0x00, 0x00, 0x66, 0x66, 0x66, 0x3E, 0x0C, 0x78}, // 'y'
	0x7A: {0x00, 0x00, 0x7E, 0x0C, 0x18, 0x30, 0x7E, 0x00}, // 'z'
	0x7B: {0x0E, 0x18, 0x18, 0x70, 0x18, 0x18, 0x0E, 0x00}, // '{'
	0x7C: {0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18}, // '|'
	0x7D: {0x70, 0x18, 0x18, 0x0E, 0x18, 0x18, 0x70, 0x00}, // '}'
	0x7E: {0x00, 0x3B, 0x6E, 0x00, 0x00, 0x00, 0x00, 0x00}, // '~'
	0x7F: {0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA}, // DEL hatch

	// Shades
	0xB0: {0x22, 0x88, 0x22, 0x88, 0x22, 0x88, 0x22, 0x88}, // light
	0xB1: {0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA}, // medium
	0xB2: {0x77, 0xDD, 0x77, 0xDD, 0x77, 0xDD, 0x77, 0xDD}, // dark

	// Box drawing
	0xB3: {0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18}, // vertical
	0xB4: {0x18, 0x18, 0x18, 0xF8, 0x18, 0x18, 0x18, 0x18}, // right tee
	0xBF: {0x00, 0x00, 0x00, 0xF8, 0x18, 0x18, 0x18, 0x18}, // top-right corner
	0xC0: {0x18, 0x18, 0x18, 0x1F, 0x00, 0x00, 0x00, 0x00}, // bottom-left corner
	0xC1: {0x18, 0x18, 0x18, 0xFF, 0x00, 0x00, 0x00, 0x00}, // bottom tee
	0xC2: {0x00, 0x00, 0x00, 0xFF, 0x18, 0x18, 0x18, 0x18}, // top tee
	0xC3: {0x18, 0x18, 0x18, 0x1F, 0x18, 0x18, 0x18, 0x18}, // left tee
	0xC4: {0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00}, // horizontal
	0xC5: {0x18, 0x18, 0x18, 0xFF, 0x18, 0x18, 0x18, 0x18}, // cross
	0xD9: {0x18, 0x18, 0x18, 0xF8, 0x00, 0x00, 0x00, 0x00}, // bottom-right corner
	0xDA: {0x00, 0x00, 0x00, 0x1F, 0x18, 0x18, 0x18, 0x18}, // top-left corner

	// Blocks
	0xDB: {0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, // full
	0xDC: {0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, // lower half
	0xDD: {0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0}, // left half
	0xDE: {0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}, // right half
	0xDF: {0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, // upper half

	0xFE: {0x00, 0x00, 0x3C, 0x3C, 0x3C, 0x3C, 0x00, 0x00}, // centred square
}
