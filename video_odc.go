// video_odc.go - Orion Display Controller register file, command dispatch and frame tick

/*
video_odc.go - ODC Display Controller

Top level of the OrionRisc-128 display adapter. Owns the frame store,
drawing engine, text engine and the named register file, and is the
sole point of contact for the host CPU abstraction and the display
sink.

Features:
- Memory-mapped register file with a byte-addressable frame window
  (reads hit the front plane, writes land in the back plane)
- Synchronous command dispatch: one opcode per command-register write,
  fifteen opcodes, unknown opcodes ignored but still signalled
- Externally driven scanline tick with vertical-blank timing and a
  rolling update-rate statistic
- Interrupt pending/enable flags with write-one-to-clear semantics
- Immutable frame snapshot push to an attached video output

Signal Flow:
1. Host writes registers/commands through HandleWrite
2. Drawing and text operations mutate the back plane
3. Host issues the swap command to commit the back plane
4. UpdateFrame ticks advance the scanline and push front-plane
   snapshots to the attached sink

The controller is single threaded by contract: exactly one caller (the
host loop) drives it, every operation completes before returning, and
no locks are taken anywhere in the chip.
*/

package main

import "time"

// odcRegisterFile is the single home for the named register values.
// The frame store publishes its window bounds here and the controller
// serves every register read and write from this one place.
type odcRegisterFile struct {
	mode       uint32
	command    uint32
	params     [6]uint32
	palette0   uint32
	palette1   uint32
	border     uint32
	irqEnable  uint32
	irqPending uint32
	fbStart    uint32
	fbEnd      uint32
	scanline   uint32
	vblank     bool
	hblank     bool // never set; horizontal blank is unmodeled
}

// ODCEngine is the Orion Display Controller.
type ODCEngine struct {
	regs *odcRegisterFile
	fb   *FrameBuffer
	text *TextEngine
	draw *DrawEngine

	output VideoOutput

	frameCount uint64
	tickCount  uint64
	updateRate float64
	lastRate   time.Time

	perfMode bool
}

// NewODCEngine creates a controller in graphics mode with cleared
// planes. Passing nil glyphs selects the built-in character set.
func NewODCEngine(glyphs *GlyphTable) *ODCEngine {
	if glyphs == nil {
		glyphs = DefaultGlyphs
	}
	regs := &odcRegisterFile{
		mode:     ODC_MODE_GRAPHICS,
		palette0: ODC_DEFAULT_INK,
		palette1: ODC_DEFAULT_PAPER,
		border:   ODC_DEFAULT_BORDER,
	}
	fb := NewFrameBuffer(regs)
	o := &ODCEngine{
		regs:     regs,
		fb:       fb,
		text:     NewTextEngine(fb, glyphs),
		draw:     NewDrawEngine(fb),
		lastRate: time.Now(),
	}
	return o
}

// =============================================================================
// Register Access
// =============================================================================

// HandleRead serves a 32-bit register or frame-window read. Unmapped
// addresses read as 0.
func (o *ODCEngine) HandleRead(addr uint32) uint32 {
	if addr >= ODC_FB_WINDOW && addr <= ODC_FB_WINDOW_END {
		offset := int(addr - ODC_FB_WINDOW)
		return uint32(o.fb.ReadFront(offset)) |
			uint32(o.fb.ReadFront(offset+1))<<8 |
			uint32(o.fb.ReadFront(offset+2))<<16 |
			uint32(o.fb.ReadFront(offset+3))<<24
	}

	switch addr {
	case ODC_CONTROL:
		value := o.regs.mode << 1
		if o.regs.vblank {
			value |= ODC_CTRL_VBLANK
		}
		return value
	case ODC_STATUS:
		status := o.regs.scanline<<8 | o.regs.irqPending<<16
		if o.regs.vblank {
			status |= 1
		}
		if o.regs.hblank {
			status |= 2
		}
		return status
	case ODC_FB_START:
		return o.regs.fbStart
	case ODC_FB_END:
		return o.regs.fbEnd
	case ODC_SCANLINE:
		return o.regs.scanline
	case ODC_MODE:
		return o.regs.mode
	case ODC_CURSOR_POS:
		x, y := o.text.CursorPos()
		return uint32(y)<<8 | uint32(x)
	case ODC_TEXT_CTRL:
		var value uint32
		if o.text.CursorVisible() {
			value |= ODC_TEXT_CURSOR_VISIBLE
		}
		if o.text.CursorBlink() {
			value |= ODC_TEXT_CURSOR_BLINK
		}
		return value
	case ODC_COMMAND:
		return o.regs.command
	case ODC_PARAM0, ODC_PARAM1, ODC_PARAM2, ODC_PARAM3:
		return o.regs.params[(addr-ODC_PARAM0)/4]
	case ODC_PARAM4, ODC_PARAM5:
		return o.regs.params[4+(addr-ODC_PARAM4)/4]
	case ODC_PALETTE0:
		return o.regs.palette0
	case ODC_PALETTE1:
		return o.regs.palette1
	case ODC_BORDER:
		return o.regs.border
	case ODC_IRQ_ENABLE:
		return o.regs.irqEnable
	case ODC_IRQ_STATUS:
		return o.regs.irqPending
	default:
		return 0
	}
}

// HandleWrite serves a 32-bit register or frame-window write. Writes
// to read-only or unmapped addresses are ignored.
func (o *ODCEngine) HandleWrite(addr uint32, value uint32) {
	if addr >= ODC_FB_WINDOW && addr <= ODC_FB_WINDOW_END {
		offset := int(addr - ODC_FB_WINDOW)
		o.fb.WriteBack(offset, byte(value))
		o.fb.WriteBack(offset+1, byte(value>>8))
		o.fb.WriteBack(offset+2, byte(value>>16))
		o.fb.WriteBack(offset+3, byte(value>>24))
		return
	}

	switch addr {
	case ODC_CONTROL:
		o.regs.mode = (value >> 1) & 1
	case ODC_MODE:
		o.regs.mode = value & 1
	case ODC_CURSOR_POS:
		o.text.SetCursor(int(value&0xFF), int((value>>8)&0xFF))
	case ODC_TEXT_CTRL:
		o.text.SetCursorVisible(value&ODC_TEXT_CURSOR_VISIBLE != 0)
		o.text.SetCursorBlink(value&ODC_TEXT_CURSOR_BLINK != 0)
	case ODC_COMMAND:
		o.regs.command = value
		o.dispatchCommand(value)
	case ODC_PARAM0, ODC_PARAM1, ODC_PARAM2, ODC_PARAM3:
		o.regs.params[(addr-ODC_PARAM0)/4] = value
	case ODC_PARAM4, ODC_PARAM5:
		o.regs.params[4+(addr-ODC_PARAM4)/4] = value
	case ODC_PALETTE0:
		o.regs.palette0 = value
	case ODC_PALETTE1:
		o.regs.palette1 = value
	case ODC_BORDER:
		o.regs.border = value
	case ODC_IRQ_ENABLE:
		o.regs.irqEnable = value
	case ODC_IRQ_STATUS:
		// Write-one-to-clear
		o.regs.irqPending &^= value
	}
}

// =============================================================================
// Command Dispatch
// =============================================================================

// dispatchCommand executes one opcode synchronously. Every dispatch,
// unknown opcodes and no-op included, raises COMMAND_COMPLETE after
// the operation finishes.
func (o *ODCEngine) dispatchCommand(op uint32) {
	p := &o.regs.params
	switch op {
	case ODC_CMD_NOP:
	case ODC_CMD_CLEAR:
		o.fb.Clear()
	case ODC_CMD_SWAP:
		o.fb.SwapBuffers()
		o.SetInterrupt(ODC_IRQ_SWAP)
	case ODC_CMD_SET_PIXEL:
		o.fb.SetPixel(pint(p[0]), pint(p[1]), p[2] != 0)
	case ODC_CMD_LINE:
		o.draw.DrawLine(pint(p[0]), pint(p[1]), pint(p[2]), pint(p[3]), true)
	case ODC_CMD_RECT:
		o.draw.DrawRect(pint(p[0]), pint(p[1]), pint(p[2]), pint(p[3]), true)
	case ODC_CMD_FILL_RECT:
		o.draw.FillRect(pint(p[0]), pint(p[1]), pint(p[2]), pint(p[3]), true)
	case ODC_CMD_CIRCLE:
		o.draw.DrawCircle(pint(p[0]), pint(p[1]), pint(p[2]), true)
	case ODC_CMD_FILL_CIRCLE:
		o.draw.FillCircle(pint(p[0]), pint(p[1]), pint(p[2]), true)
	case ODC_CMD_COPY_REGION:
		o.fb.CopyRegion(pint(p[0]), pint(p[1]), pint(p[2]), pint(p[3]),
			pint(p[4]), pint(p[5]))
	case ODC_CMD_TEXT_WRITE:
		o.text.PutChar(byte(p[0]), byte(p[1]))
	case ODC_CMD_TEXT_CURSOR:
		o.text.SetCursor(pint(p[0]), pint(p[1]))
	case ODC_CMD_TEXT_CLEAR:
		o.text.Clear()
	case ODC_CMD_TEXT_SCROLL_UP:
		o.text.ScrollUp(pint(p[0]))
	case ODC_CMD_TEXT_SCROLL_DOWN:
		o.text.ScrollDown(pint(p[0]))
	default:
		// Unknown opcode: ignored
	}
	o.SetInterrupt(ODC_IRQ_COMMAND)
}

// pint reinterprets a parameter register as a signed coordinate.
func pint(v uint32) int {
	return int(int32(v))
}

// paramRegAddr maps a parameter index to its register address. The
// first four sit in the contiguous block after the command register;
// indexes 4 and 5 live past the interrupt registers.
func paramRegAddr(index int) uint32 {
	if index < 4 {
		return uint32(ODC_PARAM0 + 4*index)
	}
	return uint32(ODC_PARAM4 + 4*(index-4))
}

// =============================================================================
// Frame Tick
// =============================================================================

// UpdateFrame advances the display by one externally driven tick. The
// scanline counter increments and wraps at the plane height, raising
// the vertical-blank flag and interrupt on the wrap tick; the flag
// drops on the next tick, the one that starts back at scanline 0, so
// it is visible for exactly one update cycle per frame. Every 60 ticks
// the rolling update-rate statistic is recomputed. Text mode renders
// the character plane into the back buffer; graphics mode needs no
// extra work because drawing commands already mutated the plane. An
// attached sink receives an immutable snapshot of the front plane.
func (o *ODCEngine) UpdateFrame() {
	if o.regs.scanline == 0 && o.regs.vblank {
		o.regs.vblank = false
	}
	o.regs.scanline++
	if o.regs.scanline >= ODC_HEIGHT {
		o.regs.scanline = 0
		o.regs.vblank = true
		o.SetInterrupt(ODC_IRQ_VBLANK)
		o.frameCount++
		o.text.SetBlinkPhase((o.frameCount/ODC_BLINK_FRAMES)%2 == 0)
	}

	o.tickCount++
	if o.tickCount%ODC_FPS_WINDOW == 0 {
		now := time.Now()
		if elapsed := now.Sub(o.lastRate).Seconds(); elapsed > 0 {
			o.updateRate = float64(ODC_FPS_WINDOW) / elapsed
		}
		o.lastRate = now
	}

	if o.regs.mode == ODC_MODE_TEXT {
		o.text.Render()
	}

	if o.output != nil {
		o.output.PushFrame(o.makeSnapshot())
	}
}

func (o *ODCEngine) makeSnapshot() FrameSnapshot {
	return FrameSnapshot{
		Buffer:    o.fb.Snapshot(),
		Width:     ODC_WIDTH,
		Height:    ODC_HEIGHT,
		Format:    PIXEL_FORMAT_MONO1,
		Mode:      int(o.regs.mode),
		Scanline:  int(o.regs.scanline),
		Ink:       byte(o.regs.palette0),
		Paper:     byte(o.regs.palette1),
		Border:    byte(o.regs.border),
		Timestamp: time.Now(),
	}
}

// =============================================================================
// Interrupts
// =============================================================================

// SetInterrupt ORs a flag into the pending status. Delivery to the
// host's interrupt mechanism is the CPU core's business; the chip only
// latches the bit until the host clears it through ODC_IRQ_STATUS.
func (o *ODCEngine) SetInterrupt(flag uint32) {
	o.regs.irqPending |= flag
}

// PendingInterrupts returns the raw pending flags.
func (o *ODCEngine) PendingInterrupts() uint32 {
	return o.regs.irqPending
}

// IRQAsserted reports whether any enabled interrupt is pending.
func (o *ODCEngine) IRQAsserted() bool {
	return o.regs.irqPending&o.regs.irqEnable != 0
}

// =============================================================================
// Host Surface
// =============================================================================

// AttachOutput connects a display sink. Pass nil to detach.
func (o *ODCEngine) AttachOutput(out VideoOutput) {
	o.output = out
}

// HandleKey feeds a sink key event into the text engine. Outside text
// mode key events are dropped.
func (o *ODCEngine) HandleKey(code byte) {
	if o.regs.mode == ODC_MODE_TEXT {
		o.text.PutChar(code, 0)
	}
}

// Scanline returns the current scanline counter.
func (o *ODCEngine) Scanline() int {
	return int(o.regs.scanline)
}

// Mode returns the active display mode.
func (o *ODCEngine) Mode() int {
	return int(o.regs.mode)
}

// FrameCount returns the number of completed frames since power-on.
func (o *ODCEngine) FrameCount() uint64 {
	return o.frameCount
}

// UpdateRate returns the rolling updates-per-second statistic.
func (o *ODCEngine) UpdateRate() float64 {
	return o.updateRate
}

// SetPerformanceMode switches the advertised cadence to 30 Hz. Only
// the expectation on the external caller changes; the chip behaves
// identically either way.
func (o *ODCEngine) SetPerformanceMode(on bool) {
	o.perfMode = on
}

// PerformanceMode reports the cadence flag.
func (o *ODCEngine) PerformanceMode() bool {
	return o.perfMode
}

// TargetHz returns the update cadence the hosting loop should run at.
func (o *ODCEngine) TargetHz() int {
	if o.perfMode {
		return ODC_REFRESH_HZ_PERF
	}
	return ODC_REFRESH_HZ
}

// Capabilities exposes the drawing engine's capability report.
func (o *ODCEngine) Capabilities() DrawCapabilities {
	return o.draw.Capabilities()
}

// Reset reinitializes mode, scanline, blank flags, registers and
// counters and clears both planes without reallocating anything.
func (o *ODCEngine) Reset() {
	o.fb.Reset()
	o.text.Reset()
	o.regs.mode = ODC_MODE_GRAPHICS
	o.regs.command = 0
	o.regs.params = [6]uint32{}
	o.regs.palette0 = ODC_DEFAULT_INK
	o.regs.palette1 = ODC_DEFAULT_PAPER
	o.regs.border = ODC_DEFAULT_BORDER
	o.regs.irqEnable = 0
	o.regs.irqPending = 0
	o.regs.scanline = 0
	o.regs.vblank = false
	o.regs.hblank = false
	o.frameCount = 0
	o.tickCount = 0
	o.updateRate = 0
	o.lastRate = time.Now()
}
