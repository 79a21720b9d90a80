// memory_bus.go - Host memory bus fronting the display adapter

/*
memory_bus.go - Host Memory Bus

The 32-bit bus the OrionRisc-128 CPU abstraction uses to reach main
memory and the display controller. Mapped windows make the ODC's
register file and frame window indistinguishable from RAM to host
software.

Features:
- 16MB of little-endian main memory in one contiguous block
- Device windows dispatched through a page table keyed on bits 8..19
  of the address, so lookup cost tracks the windows sharing a page
  rather than every mapping on the bus
- I/O shadowing: every value that transits a window is mirrored into
  RAM at the same address, so memory dumps show the last transacted
  device values
- Whole-memory reset

The ODC itself takes no locks; the bus mutex is the single
serialisation point for host access, which preserves the controller's
one-caller contract.
*/

package main

import (
	"encoding/binary"
	"sync"
)

const (
	BUS_MEMORY_SIZE = 16 * 1024 * 1024
	BUS_PAGE_SIZE   = 0x100
	BUS_PAGE_MASK   = 0xFFF00
)

// MemoryBus is the host-side access contract: 32-bit reads and writes
// plus a whole-memory reset. Implementations are safe for concurrent
// use by multiple host goroutines.
type MemoryBus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, value uint32)
	Reset()
}

// busWindow is one mapped device range. Accesses inside [first, last]
// route to the callbacks; a window mapped with a nil read callback
// leaves reads to RAM.
type busWindow struct {
	first, last uint32
	read        func(addr uint32) uint32
	write       func(addr uint32, value uint32)
}

type SystemBus struct {
	/*
		SystemBus implements MemoryBus for the virtual machine: a flat
		RAM block plus a page-granular table of device windows.

		The table maps addr & BUS_PAGE_MASK to the windows touching
		that 0x100-byte page, so an access scans at most the few
		windows sharing its page. The first window containing the
		address wins.
	*/

	mutex   sync.RWMutex
	memory  []byte
	windows map[uint32][]busWindow
}

func NewSystemBus() *SystemBus {
	return &SystemBus{
		memory:  make([]byte, BUS_MEMORY_SIZE),
		windows: make(map[uint32][]busWindow),
	}
}

// MapIO routes accesses in [first, last] to the given callbacks. The
// window is entered into every page the range touches.
func (bus *SystemBus) MapIO(first, last uint32, read func(addr uint32) uint32, write func(addr uint32, value uint32)) {
	w := busWindow{first: first, last: last, read: read, write: write}
	for page := first & BUS_PAGE_MASK; page <= last&BUS_PAGE_MASK; page += BUS_PAGE_SIZE {
		bus.windows[page] = append(bus.windows[page], w)
	}
}

// windowAt finds the mapped window containing addr. Callers hold the
// bus mutex.
func (bus *SystemBus) windowAt(addr uint32) (busWindow, bool) {
	for _, w := range bus.windows[addr&BUS_PAGE_MASK] {
		if addr >= w.first && addr <= w.last {
			return w, true
		}
	}
	return busWindow{}, false
}

func (bus *SystemBus) Write32(addr uint32, value uint32) {
	/*
		Write32 stores a 32-bit little-endian value. A write inside a
		device window reaches the device first and is then shadowed
		into RAM at the same address; everywhere else it is a plain
		memory store.
	*/

	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	if w, ok := bus.windowAt(addr); ok {
		w.write(addr, value)
	}
	binary.LittleEndian.PutUint32(bus.memory[addr:addr+4], value)
}

func (bus *SystemBus) Read32(addr uint32) uint32 {
	/*
		Read32 loads a 32-bit little-endian value. A read inside a
		device window asks the device and shadows the result into RAM;
		windows mapped without a read callback fall through to RAM, as
		do unmapped addresses.
	*/

	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	if w, ok := bus.windowAt(addr); ok && w.read != nil {
		value := w.read(addr)
		binary.LittleEndian.PutUint32(bus.memory[addr:addr+4], value)
		return value
	}
	return binary.LittleEndian.Uint32(bus.memory[addr : addr+4])
}

func (bus *SystemBus) Reset() {
	/*
		Reset zeroes all of main memory. Windows stay mapped; device
		state is the device's own reset concern.
	*/

	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	for i := range bus.memory {
		bus.memory[i] = 0
	}
}
