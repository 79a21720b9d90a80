// odc_constants.go - ODC display controller register addresses and constants

package main

// ODC Register Base Address
const (
	ODC_BASE    = 0xE0000
	ODC_REG_END = 0xE004F

	// Core control registers
	ODC_CONTROL  = 0xE0000 // Control (bit 0=vblank ro, bit 1=display mode)
	ODC_STATUS   = 0xE0004 // Status (scanline<<8 | vblank | hblank<<1 | irq<<16)
	ODC_FB_START = 0xE0008 // Plane window start address (read-only)
	ODC_FB_END   = 0xE000C // Plane window end address (read-only)
	ODC_SCANLINE = 0xE0010 // Current scanline (read-only)
	ODC_MODE     = 0xE0014 // Display mode (0=graphics, 1=text)

	// Text mode registers
	ODC_CURSOR_POS = 0xE0018 // Cursor position (y<<8 | x)
	ODC_TEXT_CTRL  = 0xE001C // Text control (bit 0=cursor visible, bit 1=blink)

	// Command interface
	ODC_COMMAND = 0xE0020 // Command opcode; write dispatches synchronously
	ODC_PARAM0  = 0xE0024 // Command parameter 0
	ODC_PARAM1  = 0xE0028 // Command parameter 1
	ODC_PARAM2  = 0xE002C // Command parameter 2
	ODC_PARAM3  = 0xE0030 // Command parameter 3

	// Sink colour hints (3-3-2 RGB in the low byte; the plane itself is 1bpp)
	ODC_PALETTE0 = 0xE0034 // Ink colour hint
	ODC_PALETTE1 = 0xE0038 // Paper colour hint
	ODC_BORDER   = 0xE003C // Border colour hint

	// Interrupt registers
	ODC_IRQ_ENABLE = 0xE0040 // Interrupt enable mask
	ODC_IRQ_STATUS = 0xE0044 // Pending flags; write 1 to clear

	// Extended command parameters (copy-region takes six)
	ODC_PARAM4 = 0xE0048 // Command parameter 4
	ODC_PARAM5 = 0xE004C // Command parameter 5

	// Plane window: byte-addressable frame store above the register block.
	// Reads return front plane bytes, writes land in the back plane.
	ODC_FB_WINDOW     = 0xE1000
	ODC_FB_WINDOW_END = ODC_FB_WINDOW + ODC_PLANE_SIZE - 1
)

// Display geometry
const (
	ODC_WIDTH      = 640   // Pixels per row
	ODC_HEIGHT     = 200   // Rows
	ODC_ROW_BYTES  = 80    // 640 / 8
	ODC_PLANE_SIZE = 16000 // 80 * 200 bytes, 1 bit per pixel
)

// Text geometry
const (
	ODC_TEXT_COLS   = 80
	ODC_TEXT_ROWS   = 25
	ODC_TEXT_CELLS  = ODC_TEXT_COLS * ODC_TEXT_ROWS
	ODC_CELL_WIDTH  = 8
	ODC_CELL_HEIGHT = 8
)

// Glyph table
const (
	ODC_GLYPH_COUNT  = 256
	ODC_GLYPH_BYTES  = 8
	ODC_CHARSET_SIZE = ODC_GLYPH_COUNT * ODC_GLYPH_BYTES
)

// Display modes
const (
	ODC_MODE_GRAPHICS = 0
	ODC_MODE_TEXT     = 1
)

// Control register bits
const (
	ODC_CTRL_VBLANK = 1 << 0 // Vertical blank active (read-only)
	ODC_CTRL_MODE   = 1 << 1 // Display mode select
)

// Text control register bits
const (
	ODC_TEXT_CURSOR_VISIBLE = 1 << 0 // Cursor drawn during render
	ODC_TEXT_CURSOR_BLINK   = 1 << 1 // Cursor blinks; steady when clear
)

// Interrupt flags
const (
	ODC_IRQ_VBLANK  = 0x01 // Vertical blank
	ODC_IRQ_HBLANK  = 0x02 // Horizontal blank (never raised; unmodeled)
	ODC_IRQ_COMMAND = 0x04 // Command complete
	ODC_IRQ_SWAP    = 0x08 // Buffer swap done
)

// Command opcodes
const (
	ODC_CMD_NOP              = 0x00 // No operation
	ODC_CMD_CLEAR            = 0x01 // Clear back plane
	ODC_CMD_SWAP             = 0x02 // Copy back plane to front plane
	ODC_CMD_SET_PIXEL        = 0x03 // p0=x p1=y p2=value
	ODC_CMD_LINE             = 0x04 // p0=x1 p1=y1 p2=x2 p3=y2
	ODC_CMD_RECT             = 0x05 // p0=x p1=y p2=w p3=h (outline)
	ODC_CMD_FILL_RECT        = 0x06 // p0=x p1=y p2=w p3=h
	ODC_CMD_CIRCLE           = 0x07 // p0=cx p1=cy p2=r (outline)
	ODC_CMD_FILL_CIRCLE      = 0x08 // p0=cx p1=cy p2=r
	ODC_CMD_COPY_REGION      = 0x09 // p0=sx p1=sy p2=dx p3=dy p4=w p5=h
	ODC_CMD_TEXT_WRITE       = 0x0A // p0=char code p1=attribute
	ODC_CMD_TEXT_CURSOR      = 0x0B // p0=x p1=y
	ODC_CMD_TEXT_CLEAR       = 0x0C // Clear text plane, cursor home
	ODC_CMD_TEXT_SCROLL_UP   = 0x0D // p0=line count
	ODC_CMD_TEXT_SCROLL_DOWN = 0x0E // p0=line count
	ODC_CMD_COUNT            = 0x0F
)

// Character attribute bits
const (
	ODC_ATTR_BOLD      = 0x01 // Stored; no pixel effect in 1bpp
	ODC_ATTR_UNDERLINE = 0x02 // Glyph row 7 forced to foreground
	ODC_ATTR_BLINK     = 0x04 // Stored; consumer applies timing
	ODC_ATTR_REVERSE   = 0x08 // Swap foreground/background for the cell
)

// Timing
const (
	ODC_REFRESH_HZ      = 60 // Reference update cadence
	ODC_REFRESH_HZ_PERF = 30 // Performance mode cadence
	ODC_FPS_WINDOW      = 60 // Ticks between update-rate recomputes
	ODC_BLINK_FRAMES    = 16 // Frames per cursor blink half-period
)

// Power-on colour hint defaults
const (
	ODC_DEFAULT_INK    = 0xFF // White in 3-3-2
	ODC_DEFAULT_PAPER  = 0x00 // Black
	ODC_DEFAULT_BORDER = 0x00
)
